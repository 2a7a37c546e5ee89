// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/docpipe/internal/pipeline"
	"github.com/pdiddy/docpipe/internal/structured"
)

var jsonCmd = &cobra.Command{
	Use:   "json [files...]",
	Short: "Convert Markdown files to structured JSON",
	Long: `Json assembles Markdown documents into hierarchical JSON: document
metadata (name, heading, audit years, dates, state) plus parts
containing sections containing sub-sections, with tables carried as
HTML strings.`,
	RunE: runJSON,
}

func runJSON(cmd *cobra.Command, args []string) error {
	stage := pipeline.Stage{
		Name:      "json",
		InputExt:  ".md",
		OutputExt: ".json",
		Convert:   structured.ConvertFile,
	}
	inputDir := stageDir(cmd, "input", cfg.JSON.InputDir, "markdown")
	outputDir := stageDir(cmd, "output", cfg.JSON.OutputDir, "json")
	return runStage(cmd, args, stage, inputDir, outputDir)
}

func init() {
	jsonCmd.Flags().String("input", "", "folder of .md files")
	jsonCmd.Flags().String("output", "", "folder for structured .json output")
	jsonCmd.Flags().Bool("force", false, "re-convert files whose output already exists")

	rootCmd.AddCommand(jsonCmd)
}
