// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package structured

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertFile(t *testing.T) {
	dir := t.TempDir()
	mdPath := filepath.Join(dir, "ir_office_2023.md")
	jsonPath := filepath.Join(dir, "ir_office_2023.json")

	require.NoError(t, os.WriteFile(mdPath, []byte(sampleMarkdown), 0o644))
	require.NoError(t, ConvertFile(mdPath, jsonPath))

	data, err := os.ReadFile(jsonPath)
	require.NoError(t, err)

	var doc Document
	require.NoError(t, json.Unmarshal(data, &doc))

	// The document name defaults to the file basename.
	assert.Equal(t, "ir_office_2023", doc.Metadata.DocumentName)
	assert.Equal(t, "Kerala", doc.Metadata.State)
	require.Len(t, doc.Parts, 3)
	assert.Equal(t, "PART I", doc.Parts[1].Title)
}

func TestConvertFileMissingInput(t *testing.T) {
	err := ConvertFile(filepath.Join(t.TempDir(), "absent.md"), filepath.Join(t.TempDir(), "out.json"))
	assert.Error(t, err)
}
