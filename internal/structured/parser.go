// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package structured

import (
	"strings"
)

// Parse assembles a Markdown document into the structured form. fileID
// is the output document name when the file declares none (usually the
// source filename without extension).
func Parse(data []byte, fileID string) *Document {
	lines := splitLines(string(data))

	meta := extractFieldMetadata(lines)
	if meta.DocumentName == "" {
		meta.DocumentName = fileID
	}

	headingIdx, dateIdx := scanHeading(lines, &meta)
	_ = headingIdx

	doc := &Document{Metadata: meta, Parts: []*Part{}}

	var (
		part       *Part
		section    *Section
		subSection *SubSection
	)

	attach := func(item ContentItem) {
		switch {
		case subSection != nil:
			subSection.Content = append(subSection.Content, item)
		case section != nil:
			section.Content = append(section.Content, item)
		case part != nil:
			if len(part.Sections) == 0 {
				part.Sections = append(part.Sections, newSection("General"))
			}
			last := part.Sections[len(part.Sections)-1]
			last.Content = append(last.Content, item)
		default:
			part = newPart("General")
			doc.Parts = append(doc.Parts, part)
			section = newSection("General")
			part.Sections = append(part.Sections, section)
			section.Content = append(section.Content, item)
		}
	}

	i := 0
	for i < len(lines) {
		// The audit date line was consumed into metadata.
		if dateIdx >= 0 && i == dateIdx {
			i++
			continue
		}

		line := strings.TrimSpace(lines[i])
		if line == "" {
			i++
			continue
		}

		switch {
		case strings.Contains(line, "<table>"):
			block, next := collectHTMLTable(lines, i)
			i = next
			attach(ContentItem{Type: "table", Table: block})

		case strings.HasPrefix(line, "# "):
			// Title heading, already captured as metadata.
			i++

		case strings.HasPrefix(line, "## "):
			part = newPart(strings.TrimSpace(line[3:]))
			doc.Parts = append(doc.Parts, part)
			section = nil
			subSection = nil
			i++

		case strings.HasPrefix(line, "### "):
			if part == nil {
				part = newPart("General")
				doc.Parts = append(doc.Parts, part)
			}
			section = newSection(strings.TrimSpace(line[4:]))
			part.Sections = append(part.Sections, section)
			subSection = nil
			i++

		case strings.HasPrefix(line, "#### "):
			if section == nil {
				if part == nil {
					part = newPart("General")
					doc.Parts = append(doc.Parts, part)
				}
				section = newSection("General")
				part.Sections = append(part.Sections, section)
			}
			subSection = newSubSection(strings.TrimSpace(line[5:]))
			section.SubSections = append(section.SubSections, subSection)
			i++

		case strings.Contains(line, "|"):
			var tableLines []string
			for i < len(lines) && strings.Contains(lines[i], "|") {
				if !separatorRowRe.MatchString(lines[i]) {
					tableLines = append(tableLines, strings.TrimRight(lines[i], " \t"))
				}
				i++
			}
			if len(tableLines) > 0 {
				attach(ContentItem{Type: "table", Table: pipeTableToHTML(tableLines)})
			}

		default:
			attach(ContentItem{Type: "paragraph", Text: line})
			i++
		}
	}

	return doc
}

// scanHeading finds the first "# " heading, fills heading-derived
// metadata (document heading, audit years, state), and locates the audit
// date line directly below it. It returns the heading line index and the
// date line index, -1 when absent.
func scanHeading(lines []string, meta *Metadata) (headingIdx, dateIdx int) {
	headingIdx, dateIdx = -1, -1

	// The state field always comes from the heading; a missing heading
	// or one naming no state resets it.
	meta.State = "N/A"

	for idx, raw := range lines {
		line := strings.TrimSpace(raw)
		if !strings.HasPrefix(line, "# ") {
			continue
		}
		heading := strings.TrimSpace(line[2:])
		meta.DocumentHeading = heading

		years, state := headingYearsAndState(heading)
		switch len(years) {
		case 0:
		case 1:
			meta.AuditYear = years[0]
		default:
			meta.AuditYear = years
		}
		if state != "" {
			meta.State = state
		}
		headingIdx = idx
		break
	}

	if headingIdx < 0 {
		return headingIdx, dateIdx
	}

	// First non-empty line after the heading, when it looks like a date
	// line, becomes the audit dates field.
	for i := headingIdx + 1; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		if isAuditDateLine(line) {
			meta.AuditDates = line
			dateIdx = i
		}
		break
	}
	return headingIdx, dateIdx
}

// splitLines splits file content on newlines, dropping carriage returns.
func splitLines(s string) []string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
