// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package docx

import (
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/pdiddy/docpipe/pkg/types"
)

// ExtractFile reads a .docx file and returns its blocks in source order.
func ExtractFile(path string) ([]types.Block, error) {
	r, err := NewReaderFromFile(path)
	if err != nil {
		return nil, err
	}
	return extract(r)
}

// Extract reads in-memory DOCX data and returns its blocks in source order.
func Extract(data []byte) ([]types.Block, error) {
	r, err := NewReader(data)
	if err != nil {
		return nil, err
	}
	return extract(r)
}

func extract(r *Reader) ([]types.Block, error) {
	doc, err := r.Document()
	if err != nil {
		return nil, err
	}
	styles := r.Styles()

	var blocks []types.Block
	for _, b := range doc.Body.Blocks {
		switch {
		case b.Paragraph != nil:
			blocks = append(blocks, classifyParagraph(b.Paragraph, styles))
		case b.Table != nil:
			t := resolveTable(buildRawTable(b.Table))
			blocks = append(blocks, types.Block{Kind: types.BlockTable, Table: &t})
		}
	}
	return blocks, nil
}

// classifyParagraph maps a paragraph to a heading, bold, or plain
// paragraph block. A style name starting with "heading" wins; otherwise
// a paragraph whose non-empty runs are all bold is a heading candidate
// for the markdown stage.
func classifyParagraph(p *paragraphXML, styles *styleIndex) types.Block {
	text := paragraphText(p)

	styleName := ""
	if p.Properties != nil && p.Properties.Style != nil {
		styleName = styles.name(p.Properties.Style.Val)
	}

	if strings.HasPrefix(styleName, "heading") {
		return types.Block{
			Kind:  types.BlockHeading,
			Level: headingLevel(styleName),
			Text:  text,
		}
	}

	if strings.TrimSpace(text) != "" && allRunsBold(p.Runs) {
		return types.Block{Kind: types.BlockBold, Text: text}
	}

	return types.Block{Kind: types.BlockParagraph, Text: text}
}

// headingLevel parses the numeric suffix of a heading style name
// ("heading 3" -> 3). Unnumbered heading styles map to level 1.
func headingLevel(styleName string) int {
	suffix := strings.TrimSpace(strings.TrimPrefix(styleName, "heading"))
	if level, err := strconv.Atoi(suffix); err == nil && level > 0 {
		return level
	}
	return 1
}

// allRunsBold reports whether every run with non-blank text is bold.
// Runs holding only whitespace do not break a bold paragraph.
func allRunsBold(runs []runXML) bool {
	sawText := false
	for _, run := range runs {
		if strings.TrimSpace(runText(run)) == "" {
			continue
		}
		sawText = true
		if run.Properties == nil || !run.Properties.Bold.isTrue() {
			return false
		}
	}
	return sawText
}

// paragraphText concatenates the paragraph's run text, NFC-normalized.
func paragraphText(p *paragraphXML) string {
	var b strings.Builder
	for _, run := range p.Runs {
		b.WriteString(runText(run))
	}
	return norm.NFC.String(b.String())
}

func runText(run runXML) string {
	var b strings.Builder
	for _, t := range run.Text {
		b.WriteString(t.Value)
	}
	return b.String()
}

// buildRawTable converts a w:tbl element into the grid-indexed form the
// resolver scans. Each tc spanning n grid columns is expanded into n
// positions so that column indexes line up across rows regardless of
// horizontal merges, mirroring how python-docx presents row.cells.
func buildRawTable(t *tableXML) rawTable {
	raw := rawTable{rows: make([]rawRow, 0, len(t.Rows))}
	for _, row := range t.Rows {
		var rr rawRow
		for _, cell := range row.Cells {
			rc := buildRawCell(cell)
			for i := 0; i < rc.colspan; i++ {
				rr.cells = append(rr.cells, rc)
			}
		}
		raw.rows = append(raw.rows, rr)
	}
	return raw
}

func buildRawCell(cell tableCellXML) rawCell {
	rc := rawCell{colspan: 1}

	if props := cell.Properties; props != nil {
		if props.GridSpan != nil {
			if span, err := strconv.Atoi(props.GridSpan.Val); err == nil && span > 0 {
				rc.colspan = span
			}
		}
		if props.VMerge != nil {
			switch props.VMerge.Val {
			case "restart":
				rc.vmerge = vMergeStart
			default:
				// Word emits continuation cells as vMerge with no val;
				// val="continue" also appears in the wild.
				rc.vmerge = vMergeContinue
			}
		}
	}

	for i := range cell.Paragraphs {
		rc.paragraphs = append(rc.paragraphs, paragraphText(&cell.Paragraphs[i]))
	}
	for i := range cell.Tables {
		rc.nested = append(rc.nested, buildRawTable(&cell.Tables[i]))
	}
	return rc
}
