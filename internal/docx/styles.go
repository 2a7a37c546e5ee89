// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package docx

import "strings"

// styleIndex maps paragraph style IDs to their human-readable names
// ("Heading1" -> "heading 1"). Names are lowercased once at build time
// since classification is case-insensitive.
type styleIndex struct {
	names map[string]string
}

func newStyleIndex(styles *stylesXML) *styleIndex {
	idx := &styleIndex{names: make(map[string]string)}
	if styles == nil {
		return idx
	}
	for _, s := range styles.Styles {
		if s.Type != "" && s.Type != "paragraph" {
			continue
		}
		if s.ID == "" || s.Name == nil {
			continue
		}
		idx.names[s.ID] = strings.ToLower(s.Name.Val)
	}
	return idx
}

// name returns the lowercased style name for a style ID, falling back to
// the lowercased ID itself when the styles part does not define it.
func (idx *styleIndex) name(styleID string) string {
	if n, ok := idx.names[styleID]; ok {
		return n
	}
	return strings.ToLower(styleID)
}
