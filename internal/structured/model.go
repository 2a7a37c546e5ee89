// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package structured assembles Markdown documents into hierarchical JSON:
// metadata plus parts containing sections containing sub-sections, with
// tables carried as HTML strings.
package structured

// Metadata holds the document-level fields extracted from the Markdown
// head and title heading.
type Metadata struct {
	DocumentName    string `json:"document_name"`
	DocumentHeading string `json:"document_heading"`

	// AuditYear is a single year-range string, or a list of them when
	// the heading names a period spanning several.
	AuditYear  any    `json:"audit_year"`
	AuditDates string `json:"audit_dates"`
	State      string `json:"state"`
	ReportType string `json:"report_type"`
}

// ContentItem is one paragraph or table inside a section.
type ContentItem struct {
	Type  string `json:"type"`
	Text  string `json:"text,omitempty"`
	Table string `json:"table,omitempty"`
}

// SubSection groups content under a level-4 heading.
type SubSection struct {
	Title   string        `json:"sub_section_title"`
	Content []ContentItem `json:"content"`
}

// Section groups content and sub-sections under a level-3 heading.
type Section struct {
	Title       string        `json:"section_title"`
	Content     []ContentItem `json:"content"`
	SubSections []*SubSection `json:"sub_sections"`
}

// Part groups sections under a level-2 heading.
type Part struct {
	Title    string     `json:"part_title"`
	Sections []*Section `json:"sections"`
}

// Document is the full structured output for one Markdown file.
type Document struct {
	Metadata Metadata `json:"metadata"`
	Parts    []*Part  `json:"parts"`
}

func newPart(title string) *Part {
	return &Part{Title: title, Sections: []*Section{}}
}

func newSection(title string) *Section {
	return &Section{Title: title, Content: []ContentItem{}, SubSections: []*SubSection{}}
}

func newSubSection(title string) *SubSection {
	return &SubSection{Title: title, Content: []ContentItem{}}
}
