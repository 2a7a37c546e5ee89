// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package markdown

import (
	"fmt"
	"strings"

	"github.com/pdiddy/docpipe/pkg/types"
)

// renderTableHTML converts a resolved table to an HTML string. The first
// row renders as header cells; span attributes are emitted only when
// greater than one. Nested tables recurse and join the owning cell's
// text with <br>.
func renderTableHTML(t types.Table) string {
	var b strings.Builder
	b.WriteString("<table>\n")
	for i, row := range t.Rows {
		b.WriteString("  <tr>\n")
		tag := "td"
		if i == 0 {
			tag = "th"
		}
		for _, cell := range row.Cells {
			attrs := ""
			if cell.ColSpan > 1 {
				attrs += fmt.Sprintf(" colspan=%q", fmt.Sprint(cell.ColSpan))
			}
			if cell.RowSpan > 1 {
				attrs += fmt.Sprintf(" rowspan=%q", fmt.Sprint(cell.RowSpan))
			}
			fmt.Fprintf(&b, "    <%s%s>%s</%s>\n", tag, attrs, cellContentHTML(cell), tag)
		}
		b.WriteString("  </tr>\n")
	}
	b.WriteString("</table>")
	return b.String()
}

// cellContentHTML joins a cell's text and nested tables with <br> line
// breaks, dropping empty parts.
func cellContentHTML(cell types.Cell) string {
	var parts []string
	if text := strings.TrimSpace(cell.Text); text != "" {
		parts = append(parts, text)
	}
	for _, nested := range cell.Tables {
		parts = append(parts, renderTableHTML(nested))
	}
	return strings.Join(parts, "<br>")
}
