// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package xmldoc

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pdiddy/docpipe/pkg/types"
)

// Parse decodes an intermediate XML document back into blocks.
func Parse(data []byte) ([]types.Block, error) {
	var doc xmlDocument
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Strict = false
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parsing document XML: %w", err)
	}
	return doc.blocks, nil
}

// ReadFile reads and parses an intermediate XML file.
func ReadFile(path string) ([]types.Block, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	blocks, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return blocks, nil
}

// xmlDocument collects <document> children in source order.
type xmlDocument struct {
	blocks []types.Block
}

func (d *xmlDocument) UnmarshalXML(dec *xml.Decoder, start xml.StartElement) error {
	if start.Name.Local != "document" {
		return fmt.Errorf("unexpected root element <%s>", start.Name.Local)
	}
	for {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "heading":
				level := 0
				for _, a := range t.Attr {
					if a.Name.Local == "level" {
						level, _ = strconv.Atoi(a.Value)
					}
				}
				text, err := decodeText(dec, &t)
				if err != nil {
					return err
				}
				d.blocks = append(d.blocks, types.Block{Kind: types.BlockHeading, Level: level, Text: text})
			case "bold":
				text, err := decodeText(dec, &t)
				if err != nil {
					return err
				}
				d.blocks = append(d.blocks, types.Block{Kind: types.BlockBold, Text: text})
			case "paragraph":
				text, err := decodeText(dec, &t)
				if err != nil {
					return err
				}
				d.blocks = append(d.blocks, types.Block{Kind: types.BlockParagraph, Text: text})
			case "table":
				var xt xmlTable
				if err := dec.DecodeElement(&xt, &t); err != nil {
					return err
				}
				table := xt.toTable()
				d.blocks = append(d.blocks, types.Block{Kind: types.BlockTable, Table: &table})
			default:
				if err := dec.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			return nil
		}
	}
}

// decodeText collects all character data inside an element, including
// text surrounding any nested elements, and strips surrounding space.
func decodeText(dec *xml.Decoder, start *xml.StartElement) (string, error) {
	var el struct {
		Text string `xml:",chardata"`
	}
	if err := dec.DecodeElement(&el, start); err != nil {
		return "", err
	}
	return strings.TrimSpace(el.Text), nil
}

type xmlTable struct {
	Rows []xmlRow `xml:"row"`
}

type xmlRow struct {
	Cells []xmlCell `xml:"cell"`
}

type xmlCell struct {
	RowSpan string     `xml:"rowspan,attr"`
	ColSpan string     `xml:"colspan,attr"`
	Text    string     `xml:",chardata"`
	Tables  []xmlTable `xml:"table"`
}

func (t xmlTable) toTable() types.Table {
	out := types.Table{Rows: make([]types.Row, 0, len(t.Rows))}
	for _, row := range t.Rows {
		var r types.Row
		for _, cell := range row.Cells {
			c := types.Cell{
				Text:    strings.TrimSpace(cell.Text),
				ColSpan: spanValue(cell.ColSpan),
				RowSpan: spanValue(cell.RowSpan),
			}
			for _, nested := range cell.Tables {
				c.Tables = append(c.Tables, nested.toTable())
			}
			r.Cells = append(r.Cells, c)
		}
		out.Rows = append(out.Rows, r)
	}
	return out
}

// spanValue parses a span attribute, defaulting to 1 when absent or
// malformed.
func spanValue(s string) int {
	if n, err := strconv.Atoi(s); err == nil && n > 0 {
		return n
	}
	return 1
}
