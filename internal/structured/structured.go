// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package structured

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// MarshalDocument renders the structured document as 2-space-indented
// JSON with HTML left unescaped, so table markup stays readable.
func MarshalDocument(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("marshaling document: %w", err)
	}
	return buf.Bytes(), nil
}

// ConvertFile parses a Markdown file and writes the structured JSON
// output.
func ConvertFile(mdPath, jsonPath string) error {
	data, err := os.ReadFile(mdPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", mdPath, err)
	}

	base := filepath.Base(mdPath)
	fileID := strings.TrimSuffix(base, filepath.Ext(base))

	doc := Parse(data, fileID)

	out, err := MarshalDocument(doc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(jsonPath, out, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", jsonPath, err)
	}
	return nil
}
