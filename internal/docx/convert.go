// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package docx

import (
	"github.com/pdiddy/docpipe/internal/xmldoc"
)

// ConvertFile extracts the blocks of a .docx file and writes them as
// intermediate XML.
func ConvertFile(docxPath, xmlPath string) error {
	blocks, err := ExtractFile(docxPath)
	if err != nil {
		return err
	}
	return xmldoc.WriteFile(xmlPath, blocks)
}
