// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package docx reads Word documents and extracts their block structure:
// headings, bold paragraphs, plain paragraphs, and tables with merged
// cells resolved to explicit column and row spans.
package docx

import "encoding/xml"

// documentXML is the root of word/document.xml.
type documentXML struct {
	XMLName xml.Name `xml:"document"`
	Body    bodyXML  `xml:"body"`
}

// bodyXML holds the document content in source order. Paragraphs and
// tables are interleaved in the body, so decoding goes through a custom
// unmarshaler instead of separate per-name slices.
type bodyXML struct {
	Blocks []bodyBlockXML
}

// bodyBlockXML is one body child: exactly one field is set.
type bodyBlockXML struct {
	Paragraph *paragraphXML
	Table     *tableXML
}

// UnmarshalXML decodes body children, keeping w:p and w:tbl order and
// skipping everything else (sectPr, bookmarks, sdt wrappers).
func (b *bodyXML) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				var p paragraphXML
				if err := d.DecodeElement(&p, &t); err != nil {
					return err
				}
				b.Blocks = append(b.Blocks, bodyBlockXML{Paragraph: &p})
			case "tbl":
				var tbl tableXML
				if err := d.DecodeElement(&tbl, &t); err != nil {
					return err
				}
				b.Blocks = append(b.Blocks, bodyBlockXML{Table: &tbl})
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			return nil
		}
	}
}

// paragraphXML represents w:p.
type paragraphXML struct {
	Properties *paragraphPropsXML `xml:"pPr"`
	Runs       []runXML           `xml:"r"`
}

// paragraphPropsXML represents w:pPr.
type paragraphPropsXML struct {
	Style *valAttrXML `xml:"pStyle"`
}

// valAttrXML is the common single-attribute element (w:val).
type valAttrXML struct {
	Val string `xml:"val,attr"`
}

// runXML represents w:r.
type runXML struct {
	Properties *runPropsXML `xml:"rPr"`
	Text       []textXML    `xml:"t"`
}

// runPropsXML represents w:rPr. Only bold matters for block
// classification.
type runPropsXML struct {
	Bold *boolPropXML `xml:"b"`
}

// boolPropXML is an OOXML toggle property: present without val means on.
type boolPropXML struct {
	Val *bool `xml:"val,attr"`
}

// isTrue reports whether the toggle is enabled.
func (p *boolPropXML) isTrue() bool {
	if p == nil {
		return false
	}
	if p.Val == nil {
		return true
	}
	return *p.Val
}

// textXML represents w:t.
type textXML struct {
	Space string `xml:"space,attr"`
	Value string `xml:",chardata"`
}

// tableXML represents w:tbl.
type tableXML struct {
	Rows []tableRowXML `xml:"tr"`
}

// tableRowXML represents w:tr.
type tableRowXML struct {
	Cells []tableCellXML `xml:"tc"`
}

// tableCellXML represents w:tc. Cells can contain nested tables.
type tableCellXML struct {
	Properties *tableCellPropsXML `xml:"tcPr"`
	Paragraphs []paragraphXML     `xml:"p"`
	Tables     []tableXML         `xml:"tbl"`
}

// tableCellPropsXML represents w:tcPr.
type tableCellPropsXML struct {
	GridSpan *valAttrXML `xml:"gridSpan"`
	VMerge   *vMergeXML  `xml:"vMerge"`
}

// vMergeXML represents w:vMerge. Val "restart" starts a vertical merge;
// an empty or "continue" val continues one.
type vMergeXML struct {
	Val string `xml:"val,attr"`
}

// stylesXML is the root of word/styles.xml.
type stylesXML struct {
	XMLName xml.Name   `xml:"styles"`
	Styles  []styleXML `xml:"style"`
}

// styleXML is one w:style definition.
type styleXML struct {
	Type string      `xml:"type,attr"`
	ID   string      `xml:"styleId,attr"`
	Name *valAttrXML `xml:"name"`
}
