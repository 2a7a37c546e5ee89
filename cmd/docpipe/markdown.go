// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/docpipe/internal/markdown"
	"github.com/pdiddy/docpipe/internal/pipeline"
)

var markdownCmd = &cobra.Command{
	Use:   "markdown [files...]",
	Short: "Convert intermediate XML files to Markdown",
	Long: `Markdown converts intermediate XML documents to Markdown. Heading
levels come from an ordered regex rule set (built-in inspection-report
rules by default, overridable with --rules); tables render as HTML so
merged cells survive.`,
	RunE: runMarkdown,
}

func runMarkdown(cmd *cobra.Command, args []string) error {
	rulesFile, _ := cmd.Flags().GetString("rules")
	if rulesFile == "" {
		rulesFile = cfg.Markdown.RulesFile
	}

	if dump, _ := cmd.Flags().GetString("write-default-rules"); dump != "" {
		if err := markdown.WriteRuleFile(dump, markdown.DefaultRules()); err != nil {
			return err
		}
		fmt.Println("Wrote default heading rules to", dump)
		return nil
	}

	classifier, err := markdown.ClassifierFromFile(rulesFile)
	if err != nil {
		return err
	}
	converter := markdown.NewConverter(classifier)

	stage := pipeline.Stage{
		Name:      "markdown",
		InputExt:  ".xml",
		OutputExt: ".md",
		Convert:   converter.ConvertFile,
	}
	inputDir := stageDir(cmd, "input", cfg.Markdown.InputDir, "xml")
	outputDir := stageDir(cmd, "output", cfg.Markdown.OutputDir, "markdown")
	return runStage(cmd, args, stage, inputDir, outputDir)
}

func init() {
	markdownCmd.Flags().String("input", "", "folder of intermediate .xml files")
	markdownCmd.Flags().String("output", "", "folder for .md output")
	markdownCmd.Flags().Bool("force", false, "re-convert files whose output already exists")
	markdownCmd.Flags().String("rules", "", "YAML heading-rule file (default: built-in rules)")
	markdownCmd.Flags().String("write-default-rules", "", "write the built-in heading rules to a YAML file and exit")

	rootCmd.AddCommand(markdownCmd)
}
