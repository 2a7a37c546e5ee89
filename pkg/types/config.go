// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// StageStatus indicates the per-file outcome of one pipeline stage.
type StageStatus string

const (
	StageSkipped   StageStatus = "skipped"
	StageConverted StageStatus = "converted"
	StageFailed    StageStatus = "failed"
)

// XMLConfig holds settings for the DOCX-to-XML stage.
type XMLConfig struct {
	// InputDir is the folder of source .docx files.
	InputDir string `json:"input_dir" yaml:"input_dir" mapstructure:"input_dir"`

	// OutputDir is the folder for intermediate .xml output.
	OutputDir string `json:"output_dir" yaml:"output_dir" mapstructure:"output_dir"`
}

// MarkdownConfig holds settings for the XML-to-Markdown stage.
type MarkdownConfig struct {
	// InputDir is the folder of intermediate .xml files.
	InputDir string `json:"input_dir" yaml:"input_dir" mapstructure:"input_dir"`

	// OutputDir is the folder for .md output.
	OutputDir string `json:"output_dir" yaml:"output_dir" mapstructure:"output_dir"`

	// RulesFile optionally points to a YAML heading-rule file. When empty
	// the built-in inspection-report rules are used.
	RulesFile string `json:"rules_file,omitempty" yaml:"rules_file,omitempty" mapstructure:"rules_file"`
}

// JSONConfig holds settings for the Markdown-to-JSON stage.
type JSONConfig struct {
	// InputDir is the folder of .md files.
	InputDir string `json:"input_dir" yaml:"input_dir" mapstructure:"input_dir"`

	// OutputDir is the folder for structured .json output.
	OutputDir string `json:"output_dir" yaml:"output_dir" mapstructure:"output_dir"`
}

// CatalogConfig holds settings for the conversion catalog.
type CatalogConfig struct {
	// Dir is the directory holding the catalog database (docpipe.db).
	Dir string `json:"dir" yaml:"dir" mapstructure:"dir"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	// DataDir is the base directory for the run command's standard layout
	// (docs/, xml/, markdown/, json/, catalog/).
	DataDir string `json:"data_dir" yaml:"data_dir" mapstructure:"data_dir"`

	XML      XMLConfig      `json:"xml" yaml:"xml" mapstructure:"xml"`
	Markdown MarkdownConfig `json:"markdown" yaml:"markdown" mapstructure:"markdown"`
	JSON     JSONConfig     `json:"json" yaml:"json" mapstructure:"json"`
	Catalog  CatalogConfig  `json:"catalog" yaml:"catalog" mapstructure:"catalog"`
}
