// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
)

const (
	documentPart = "word/document.xml"
	stylesPart   = "word/styles.xml"
)

// Reader opens a DOCX container (a ZIP archive) and gives access to its
// parsed parts.
type Reader struct {
	files map[string]*zip.File
}

// NewReader creates a Reader from in-memory DOCX data.
func NewReader(data []byte) (*Reader, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("opening ZIP archive: %w", err)
	}

	r := &Reader{files: make(map[string]*zip.File, len(zr.File))}
	for _, f := range zr.File {
		r.files[f.Name] = f
	}

	if _, ok := r.files[documentPart]; !ok {
		return nil, fmt.Errorf("not a valid DOCX file: missing %s", documentPart)
	}
	return r, nil
}

// NewReaderFromFile creates a Reader from a file path.
func NewReaderFromFile(path string) (*Reader, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	return NewReader(data)
}

// Document parses word/document.xml.
func (r *Reader) Document() (*documentXML, error) {
	var doc documentXML
	if err := r.readXML(documentPart, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Styles parses word/styles.xml into a style index. The part is
// optional; a missing or unparseable styles part yields an empty index.
func (r *Reader) Styles() *styleIndex {
	var styles stylesXML
	if err := r.readXML(stylesPart, &styles); err != nil {
		return newStyleIndex(nil)
	}
	return newStyleIndex(&styles)
}

// readXML decodes one archive part into v. Word XML is decoded leniently:
// unknown entities and minor namespace quirks must not fail the whole
// document.
func (r *Reader) readXML(name string, v interface{}) error {
	f, ok := r.files[name]
	if !ok {
		return fmt.Errorf("part not found: %s", name)
	}

	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("opening %s: %w", name, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}

	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Strict = false
	dec.Entity = xml.HTMLEntity
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("parsing %s: %w", name, err)
	}
	return nil
}
