// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package xmldoc reads and writes the pipeline's intermediate XML form:
// a <document> root holding <heading>, <bold>, <paragraph>, and <table>
// elements, with table cells carrying rowspan/colspan attributes and
// possibly nested <table> elements.
package xmldoc

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"os"
	"strconv"

	"github.com/pdiddy/docpipe/pkg/types"
)

// Marshal renders blocks as a pretty-printed XML document with a
// declaration header.
func Marshal(blocks []types.Block) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)

	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")

	root := xml.StartElement{Name: xml.Name{Local: "document"}}
	if err := enc.EncodeToken(root); err != nil {
		return nil, err
	}
	for _, b := range blocks {
		if err := encodeBlock(enc, b); err != nil {
			return nil, err
		}
	}
	if err := enc.EncodeToken(root.End()); err != nil {
		return nil, err
	}
	if err := enc.Flush(); err != nil {
		return nil, err
	}

	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// WriteFile marshals blocks and writes them to path.
func WriteFile(path string, blocks []types.Block) error {
	data, err := Marshal(blocks)
	if err != nil {
		return fmt.Errorf("marshaling XML: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func encodeBlock(enc *xml.Encoder, b types.Block) error {
	switch b.Kind {
	case types.BlockHeading:
		start := xml.StartElement{
			Name: xml.Name{Local: "heading"},
			Attr: []xml.Attr{{Name: xml.Name{Local: "level"}, Value: strconv.Itoa(b.Level)}},
		}
		return encodeTextElement(enc, start, b.Text)
	case types.BlockBold:
		return encodeTextElement(enc, xml.StartElement{Name: xml.Name{Local: "bold"}}, b.Text)
	case types.BlockParagraph:
		return encodeTextElement(enc, xml.StartElement{Name: xml.Name{Local: "paragraph"}}, b.Text)
	case types.BlockTable:
		if b.Table == nil {
			return nil
		}
		return encodeTable(enc, *b.Table)
	default:
		return fmt.Errorf("unknown block kind %q", b.Kind)
	}
}

func encodeTextElement(enc *xml.Encoder, start xml.StartElement, text string) error {
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	if err := enc.EncodeToken(xml.CharData(text)); err != nil {
		return err
	}
	return enc.EncodeToken(start.End())
}

func encodeTable(enc *xml.Encoder, t types.Table) error {
	start := xml.StartElement{Name: xml.Name{Local: "table"}}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	for _, row := range t.Rows {
		rowStart := xml.StartElement{Name: xml.Name{Local: "row"}}
		if err := enc.EncodeToken(rowStart); err != nil {
			return err
		}
		for _, cell := range row.Cells {
			if err := encodeCell(enc, cell); err != nil {
				return err
			}
		}
		if err := enc.EncodeToken(rowStart.End()); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}

// encodeCell writes one cell. Span attributes are omitted when 1, and
// nested tables follow the cell text.
func encodeCell(enc *xml.Encoder, cell types.Cell) error {
	start := xml.StartElement{Name: xml.Name{Local: "cell"}}
	if cell.RowSpan > 1 {
		start.Attr = append(start.Attr, xml.Attr{
			Name: xml.Name{Local: "rowspan"}, Value: strconv.Itoa(cell.RowSpan),
		})
	}
	if cell.ColSpan > 1 {
		start.Attr = append(start.Attr, xml.Attr{
			Name: xml.Name{Local: "colspan"}, Value: strconv.Itoa(cell.ColSpan),
		})
	}

	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	if cell.Text != "" {
		if err := enc.EncodeToken(xml.CharData(cell.Text)); err != nil {
			return err
		}
	}
	for _, nested := range cell.Tables {
		if err := encodeTable(enc, nested); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}
