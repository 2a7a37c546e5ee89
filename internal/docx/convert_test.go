// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package docx

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertFile(t *testing.T) {
	dir := t.TempDir()
	docxPath := filepath.Join(dir, "report.docx")
	xmlPath := filepath.Join(dir, "report.xml")

	doc := wrapBody(
		`<w:p><w:pPr><w:pStyle w:val="Hd1"/></w:pPr><w:r><w:t>Report</w:t></w:r></w:p>` +
			`<w:tbl><w:tr><w:tc><w:tcPr><w:gridSpan w:val="2"/></w:tcPr>` +
			`<w:p><w:r><w:t>wide</w:t></w:r></w:p></w:tc></w:tr></w:tbl>`)
	require.NoError(t, os.WriteFile(docxPath, buildDocx(t, doc, testStyles), 0o644))

	require.NoError(t, ConvertFile(docxPath, xmlPath))

	out, err := os.ReadFile(xmlPath)
	require.NoError(t, err)
	s := string(out)
	assert.Contains(t, s, `<heading level="1">Report</heading>`)
	assert.Contains(t, s, `<cell colspan="2">wide</cell>`)
}

func TestConvertFileBadInput(t *testing.T) {
	dir := t.TempDir()
	docxPath := filepath.Join(dir, "broken.docx")
	require.NoError(t, os.WriteFile(docxPath, []byte("not a zip"), 0o644))

	err := ConvertFile(docxPath, filepath.Join(dir, "broken.xml"))
	assert.Error(t, err)
}
