// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package markdown converts intermediate XML documents to Markdown,
// classifying heading levels and rendering tables as HTML.
package markdown

import (
	"fmt"
	"regexp"
	"strings"
)

// Rule maps a heading-text pattern to a Markdown heading level. Patterns
// are anchored regular expressions evaluated in order; the first match
// wins.
type Rule struct {
	Pattern string `yaml:"pattern"`
	Level   int    `yaml:"level"`
}

// defaultRules classifies the headings of government audit inspection
// reports: the report title, PART divisions, the fixed set of section
// headings, and para/subject sub-headings. Level 0 means unclassified.
var defaultRules = []Rule{
	// Report title (H1).
	{`(?i)^INSPECTION REPORT`, 1},

	// PART divisions (H2): Roman or Arabic numerals, dash and colon variants.
	{`(?i)^PART[\s\-]*[IVX]+`, 2},
	{`(?i)^Part[\s\-]*\d+`, 2},
	{`(?i)^Part[\s\-]*[IVX]*\s*:`, 2},

	// Main sections under a PART (H3).
	{`(?i)^Introductory$`, 3},
	{`(?i)^Budget and Expenditure$`, 3},
	{`(?i)^Revenue Receipt$`, 3},
	{`(?i)^Organisational set up$`, 3},
	{`(?i)^Scope of Audit$`, 3},
	{`(?i)^Sampling$`, 3},
	{`(?i)^Audit Objectives$`, 3},
	{`(?i)^Criteria$`, 3},
	{`(?i)^Audit Mandate$`, 3},
	{`(?i)^Best Practice`, 3},
	{`(?i)^Acknowledgement`, 3},
	{`(?i)^Review of old outstanding paras`, 3},
	{`(?i)^Introduction$`, 3},

	// Reference numbers and findings groups (H3).
	{`(?i)^REFERENCE NUMBER`, 3},
	{`(?i)^\(.*Audit Findings\)`, 3},
	{`^A[:\s]`, 3},
	{`^B[:\s]`, 3},
	{`^A\s*I[:\s]`, 3},
	{`^A\s*II[:\s]`, 3},
	{`^A\s*III[:\s]`, 3},
	{`^B\s*I[:\s]`, 3},
	{`^B\s*II[:\s]`, 3},

	// Para numbers and subject lines (H4).
	{`^Para \d+`, 4},
	{`(?i)^[IVX]+\s+Subject`, 4},
	{`^Subject:`, 4},
	{`(?i)^Subject\s+`, 4},

	// Follow-up notes and other parenthesized subsections (H3).
	{`(?i)^\(Follow up`, 3},
	{`^\([^)]+\)$`, 3},
}

type compiledRule struct {
	re    *regexp.Regexp
	level int
}

// Classifier assigns heading levels from an ordered rule list.
type Classifier struct {
	rules []compiledRule
}

// NewClassifier compiles a rule list into a classifier.
func NewClassifier(rules []Rule) (*Classifier, error) {
	c := &Classifier{rules: make([]compiledRule, 0, len(rules))}
	for _, r := range rules {
		re, err := regexp.Compile(r.Pattern)
		if err != nil {
			return nil, fmt.Errorf("compiling rule %q: %w", r.Pattern, err)
		}
		c.rules = append(c.rules, compiledRule{re: re, level: r.Level})
	}
	return c, nil
}

// DefaultClassifier returns a classifier built from the inspection-report
// rules.
func DefaultClassifier() *Classifier {
	c, err := NewClassifier(defaultRules)
	if err != nil {
		// The built-in patterns are compile-checked by tests.
		panic(err)
	}
	return c
}

// Classify returns the heading level for text, or 0 when no rule matches.
func (c *Classifier) Classify(text string) int {
	t := strings.TrimSpace(text)
	for _, r := range c.rules {
		if r.re.MatchString(t) {
			return r.level
		}
	}
	return 0
}
