// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package docx

import (
	"strings"

	"github.com/pdiddy/docpipe/pkg/types"
)

// vMergeDirective is a cell's raw vertical-merge state.
type vMergeDirective int

const (
	vMergeNone vMergeDirective = iota
	vMergeStart
	vMergeContinue
)

// rawCell is a grid-indexed table cell before merge resolution. The grid
// is expanded the way python-docx exposes it: a cell spanning n columns
// occupies n consecutive positions in its row, each carrying the same
// directives, and a vertically merged region has a continuation cell in
// every covered row.
type rawCell struct {
	paragraphs []string
	colspan    int // from gridSpan, >= 1
	vmerge     vMergeDirective
	nested     []rawTable
}

type rawRow struct {
	cells []rawCell
}

type rawTable struct {
	rows []rawRow
}

// coord addresses one grid position.
type coord struct {
	row, col int
}

// resolveTable reconstructs the logical structure of a raw grid: each
// visually merged region yields exactly one cell tagged with its span
// extents. The occupied set claims every coordinate covered by an
// emitted cell so that continuation positions are skipped rather than
// re-emitted. Nested tables are resolved recursively, each with its own
// occupied set; they never interact with the parent grid.
//
// Ragged rows (shorter than the widest row) end their scan early; a
// continuation cell reached directly by the scan, which only happens for
// malformed input, is emitted as a fresh single-row cell. Neither case
// is an error.
func resolveTable(t rawTable) types.Table {
	occupied := make(map[coord]struct{})

	columns := 0
	for _, row := range t.rows {
		if len(row.cells) > columns {
			columns = len(row.cells)
		}
	}

	resolved := types.Table{Rows: make([]types.Row, 0, len(t.rows))}
	for r, row := range t.rows {
		var out types.Row
		c := 0
		for c < columns {
			if _, ok := occupied[coord{r, c}]; ok {
				c++
				continue
			}
			if c >= len(row.cells) {
				break
			}
			cell := row.cells[c]

			colspan := cell.colspan
			if colspan < 1 {
				colspan = 1
			}

			rowspan := 1
			if cell.vmerge == vMergeStart {
				for i := r + 1; i < len(t.rows); i++ {
					next := t.rows[i]
					if c >= len(next.cells) || next.cells[c].vmerge != vMergeContinue {
						break
					}
					rowspan++
				}
			}

			for i := r; i < r+rowspan; i++ {
				for j := c; j < c+colspan; j++ {
					occupied[coord{i, j}] = struct{}{}
				}
			}

			rc := types.Cell{
				Text:    strings.Join(cell.paragraphs, "\n"),
				ColSpan: colspan,
				RowSpan: rowspan,
			}
			for _, nt := range cell.nested {
				rc.Tables = append(rc.Tables, resolveTable(nt))
			}
			out.Cells = append(out.Cells, rc)

			c += colspan
		}
		resolved.Rows = append(resolved.Rows, out)
	}
	return resolved
}
