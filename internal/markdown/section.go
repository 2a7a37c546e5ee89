// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package markdown

import (
	"strings"

	"github.com/pdiddy/docpipe/pkg/types"
)

// Section is one node of the heading hierarchy. The root section has no
// heading and level 0; children nest by classified heading level.
type Section struct {
	Heading  string
	Level    int
	Content  []string
	Children []*Section
}

// BuildSections groups blocks under their classified headings. Heading
// and bold blocks open sections; the first one is always the document
// title (level 1). Paragraphs and tables attach to the innermost open
// section.
func BuildSections(blocks []types.Block, c *Classifier) *Section {
	root := &Section{}
	stack := []*Section{root}
	titleSeen := false

	for _, b := range blocks {
		switch b.Kind {
		case types.BlockHeading, types.BlockBold:
			text := strings.TrimSpace(b.Text)
			level := 0
			if !titleSeen {
				level = 1
				titleSeen = true
			} else {
				level = c.Classify(text)
			}

			// Pop to the correct parent level.
			for len(stack) > 1 && stack[len(stack)-1].Level >= level {
				stack = stack[:len(stack)-1]
			}
			section := &Section{Heading: text, Level: level}
			parent := stack[len(stack)-1]
			parent.Children = append(parent.Children, section)
			stack = append(stack, section)

		case types.BlockParagraph:
			if strings.TrimSpace(b.Text) != "" {
				top := stack[len(stack)-1]
				top.Content = append(top.Content, strings.TrimSpace(b.Text))
			}

		case types.BlockTable:
			if b.Table != nil {
				top := stack[len(stack)-1]
				top.Content = append(top.Content, renderTableHTML(*b.Table))
			}
		}
	}
	return root
}

// RenderMarkdown writes the section tree as Markdown: hash-prefixed
// headings and blank-line separated content.
func RenderMarkdown(root *Section) string {
	var b strings.Builder
	for _, child := range root.Children {
		writeSection(&b, child)
	}
	return b.String()
}

func writeSection(b *strings.Builder, s *Section) {
	if s.Heading != "" {
		b.WriteString(strings.Repeat("#", s.Level))
		b.WriteString(" ")
		b.WriteString(s.Heading)
		b.WriteString("\n\n")
	}
	for _, item := range s.Content {
		b.WriteString(item)
		b.WriteString("\n\n")
	}
	for _, child := range s.Children {
		writeSection(b, child)
	}
}
