// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package markdown

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// RuleFile is the on-disk representation of a heading-rule set. Teams
// converting other document families can save the defaults, edit the
// patterns, and point the markdown stage at the file.
type RuleFile struct {
	Rules []Rule `yaml:"rules"`
}

// DefaultRules returns a copy of the built-in inspection-report rules.
func DefaultRules() []Rule {
	rules := make([]Rule, len(defaultRules))
	copy(rules, defaultRules)
	return rules
}

// ReadRuleFile loads heading rules from a YAML file.
func ReadRuleFile(path string) ([]Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rule file: %w", err)
	}
	var rf RuleFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parsing rule file: %w", err)
	}
	if len(rf.Rules) == 0 {
		return nil, fmt.Errorf("rule file %s defines no rules", path)
	}
	return rf.Rules, nil
}

// WriteRuleFile saves a rule set to a YAML file.
func WriteRuleFile(path string, rules []Rule) error {
	data, err := yaml.Marshal(RuleFile{Rules: rules})
	if err != nil {
		return fmt.Errorf("marshaling rules: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ClassifierFromFile builds a classifier from a rule file, or from the
// built-in rules when path is empty.
func ClassifierFromFile(path string) (*Classifier, error) {
	if path == "" {
		return DefaultClassifier(), nil
	}
	rules, err := ReadRuleFile(path)
	if err != nil {
		return nil, err
	}
	return NewClassifier(rules)
}
