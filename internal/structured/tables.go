// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package structured

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// separatorRowRe matches Markdown table separator rows (| --- | :---: |).
var separatorRowRe = regexp.MustCompile(`^\s*\|(?:\s*:?---:?.*\|)+\s*$`)

// pipeTableToHTML converts Markdown pipe-table lines to a flat HTML
// table string. Every cell renders as <td>; separator rows are expected
// to be filtered out by the caller.
func pipeTableToHTML(lines []string) string {
	var b strings.Builder
	b.WriteString("<table>")
	for _, line := range lines {
		trimmed := strings.Trim(strings.TrimSpace(line), "|")
		b.WriteString("<tr>")
		for _, cell := range strings.Split(trimmed, "|") {
			b.WriteString("<td>")
			b.WriteString(strings.TrimSpace(cell))
			b.WriteString("</td>")
		}
		b.WriteString("</tr>")
	}
	b.WriteString("</table>")
	return b.String()
}

// tableDepthDelta tokenizes one line of HTML and returns the net change
// in <table> nesting depth. Tracking depth through a real tokenizer
// keeps nested tables balanced even when several tags share a line.
func tableDepthDelta(line string) int {
	delta := 0
	tz := html.NewTokenizer(strings.NewReader(line))
	for {
		switch tz.Next() {
		case html.ErrorToken:
			return delta
		case html.StartTagToken:
			if name, _ := tz.TagName(); string(name) == "table" {
				delta++
			}
		case html.EndTagToken:
			if name, _ := tz.TagName(); string(name) == "table" {
				delta--
			}
		}
	}
}

// collectHTMLTable gathers a complete HTML table block starting at
// lines[start] (which contains an opening <table>), following nested
// tables until the depth returns to zero or the input ends. It returns
// the joined block and the index of the first line after it.
func collectHTMLTable(lines []string, start int) (string, int) {
	block := []string{strings.TrimSpace(lines[start])}
	depth := tableDepthDelta(lines[start])
	i := start + 1
	for depth > 0 && i < len(lines) {
		depth += tableDepthDelta(lines[i])
		block = append(block, strings.TrimRight(lines[i], " \t"))
		i++
	}
	return strings.Join(block, "\n"), i
}
