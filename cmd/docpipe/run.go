// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pdiddy/docpipe/internal/docx"
	"github.com/pdiddy/docpipe/internal/markdown"
	"github.com/pdiddy/docpipe/internal/pipeline"
	"github.com/pdiddy/docpipe/internal/structured"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full pipeline: DOCX to XML to Markdown to JSON",
	Long: `Run chains all three conversion stages over the standard data
directory layout: docs/ holds source documents, and xml/, markdown/,
and json/ receive each stage's output. Files whose output already
exists are skipped unless --force is set; a file failing one stage is
dropped from later ones.`,
	RunE: runPipeline,
}

func runPipeline(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")

	rulesFile, _ := cmd.Flags().GetString("rules")
	if rulesFile == "" {
		rulesFile = cfg.Markdown.RulesFile
	}
	classifier, err := markdown.ClassifierFromFile(rulesFile)
	if err != nil {
		return err
	}
	converter := markdown.NewConverter(classifier)

	base := dataDir()
	stages := []struct {
		stage     pipeline.Stage
		inputDir  string
		outputDir string
	}{
		{
			stage:     pipeline.Stage{Name: "xml", InputExt: ".docx", OutputExt: ".xml", Convert: docx.ConvertFile},
			inputDir:  filepath.Join(base, "docs"),
			outputDir: filepath.Join(base, "xml"),
		},
		{
			stage:     pipeline.Stage{Name: "markdown", InputExt: ".xml", OutputExt: ".md", Convert: converter.ConvertFile},
			inputDir:  filepath.Join(base, "xml"),
			outputDir: filepath.Join(base, "markdown"),
		},
		{
			stage:     pipeline.Stage{Name: "json", InputExt: ".md", OutputExt: ".json", Convert: structured.ConvertFile},
			inputDir:  filepath.Join(base, "markdown"),
			outputDir: filepath.Join(base, "json"),
		},
	}

	store := openCatalog()
	if store != nil {
		defer store.Close()
	}

	failed := 0
	for _, s := range stages {
		fmt.Printf("==> %s: %s -> %s\n", s.stage.Name, s.inputDir, s.outputDir)
		s.stage.Observe = recordTo(store, s.stage.Name)
		result, err := pipeline.Run(s.stage, s.inputDir, s.outputDir, force, os.Stdout)
		if err != nil {
			return err
		}
		failed += result.Failed
		fmt.Println()
	}

	if failed > 0 {
		return fmt.Errorf("%d conversion(s) failed across the pipeline", failed)
	}
	return nil
}

func init() {
	runCmd.Flags().Bool("force", false, "re-convert files whose output already exists")
	runCmd.Flags().String("rules", "", "YAML heading-rule file for the markdown stage")

	rootCmd.AddCommand(runCmd)
}
