// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/docpipe/internal/docx"
	"github.com/pdiddy/docpipe/internal/pipeline"
)

var xmlCmd = &cobra.Command{
	Use:   "xml [files...]",
	Short: "Convert DOCX files to intermediate XML",
	Long: `Xml converts Word documents into the pipeline's intermediate XML
form: headings, bold paragraphs, plain paragraphs, and tables with
merged cells resolved to explicit colspan/rowspan attributes, nested
tables included. Without file arguments it processes every .docx in the
input folder; a file that fails to parse is skipped and the batch
continues.`,
	RunE: runXML,
}

func runXML(cmd *cobra.Command, args []string) error {
	stage := pipeline.Stage{
		Name:      "xml",
		InputExt:  ".docx",
		OutputExt: ".xml",
		Convert:   docx.ConvertFile,
	}
	inputDir := stageDir(cmd, "input", cfg.XML.InputDir, "docs")
	outputDir := stageDir(cmd, "output", cfg.XML.OutputDir, "xml")
	return runStage(cmd, args, stage, inputDir, outputDir)
}

func init() {
	xmlCmd.Flags().String("input", "", "folder of source .docx files")
	xmlCmd.Flags().String("output", "", "folder for intermediate .xml output")
	xmlCmd.Flags().Bool("force", false, "re-convert files whose output already exists")

	rootCmd.AddCommand(xmlCmd)
}
