// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package markdown

import (
	"fmt"
	"os"

	"github.com/pdiddy/docpipe/internal/xmldoc"
	"github.com/pdiddy/docpipe/pkg/types"
)

// Converter turns intermediate XML documents into Markdown.
type Converter struct {
	classifier *Classifier
}

// NewConverter creates a converter using the given heading classifier.
func NewConverter(c *Classifier) *Converter {
	return &Converter{classifier: c}
}

// Render converts blocks into a Markdown document.
func (cv *Converter) Render(blocks []types.Block) string {
	return RenderMarkdown(BuildSections(blocks, cv.classifier))
}

// ConvertFile reads an intermediate XML file and writes the Markdown
// output.
func (cv *Converter) ConvertFile(xmlPath, mdPath string) error {
	blocks, err := xmldoc.ReadFile(xmlPath)
	if err != nil {
		return err
	}
	md := cv.Render(blocks)
	if err := os.WriteFile(mdPath, []byte(md), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", mdPath, err)
	}
	return nil
}
