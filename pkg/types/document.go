// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the shared data model and stage configuration for
// the docpipe conversion pipeline.
package types

// BlockKind discriminates the top-level block variants of a document.
type BlockKind string

const (
	// BlockHeading is a paragraph whose style marks it as a heading.
	BlockHeading BlockKind = "heading"

	// BlockBold is a paragraph whose non-empty runs are all bold. Audit
	// reports frequently use bold body text instead of heading styles, so
	// the markdown stage treats these as heading candidates.
	BlockBold BlockKind = "bold"

	// BlockParagraph is ordinary body text.
	BlockParagraph BlockKind = "paragraph"

	// BlockTable is a table with merged cells already resolved to
	// explicit column and row spans.
	BlockTable BlockKind = "table"
)

// Block is one top-level element of a document, in source order. Exactly
// one payload is meaningful for each kind: Text for heading, bold, and
// paragraph blocks (Level additionally for headings), Table for tables.
type Block struct {
	Kind  BlockKind `json:"kind"`
	Level int       `json:"level,omitempty"`
	Text  string    `json:"text,omitempty"`
	Table *Table    `json:"table,omitempty"`
}

// Table is a resolved table: every visually merged region appears exactly
// once, tagged with its span extents. Rows may hold fewer cells than the
// table has columns when spans from earlier rows or columns cover the
// remaining coordinates.
type Table struct {
	Rows []Row `json:"rows"`
}

// Row is an ordered sequence of resolved cells.
type Row struct {
	Cells []Cell `json:"cells"`
}

// Cell is a resolved table cell. ColSpan and RowSpan are always >= 1.
// Text is the newline-joined paragraph text of the source cell. Tables
// holds nested tables in encounter order.
type Cell struct {
	Text    string  `json:"text"`
	ColSpan int     `json:"colspan"`
	RowSpan int     `json:"rowspan"`
	Tables  []Table `json:"tables,omitempty"`
}
