// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline runs one conversion stage over a folder of files:
// sequential, skip-and-continue, with per-file status lines written to
// an injected sink.
package pipeline

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/docpipe/pkg/types"
)

// ConvertFunc converts one input file into one output file.
type ConvertFunc func(inputPath, outputPath string) error

// Stage describes one pipeline stage: which files it consumes, what it
// produces, and how.
type Stage struct {
	// Name identifies the stage in status output and the catalog.
	Name string

	// InputExt and OutputExt are the file extensions consumed and
	// produced, with leading dot (".docx", ".xml").
	InputExt  string
	OutputExt string

	// Convert performs the per-file conversion.
	Convert ConvertFunc

	// Observe, when set, receives the outcome of every processed file.
	// Used to record outcomes in the conversion catalog.
	Observe func(file string, status types.StageStatus, detail string)
}

// BatchResult holds the outcome of one batch run.
type BatchResult struct {
	Converted int
	Skipped   int
	Failed    int
}

// Total returns the total number of files processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Skipped + r.Failed
}

// HasFailures reports whether any file failed conversion.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// Run converts every matching file in inputDir into outputDir. Existing
// outputs are skipped unless force is set. A failing file is reported
// and counted; it never aborts the batch. Only an unreadable input
// folder or an uncreatable output folder is an error.
func Run(stage Stage, inputDir, outputDir string, force bool, w io.Writer) (BatchResult, error) {
	var result BatchResult

	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return result, fmt.Errorf("reading input folder %s: %w", inputDir, err)
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return result, fmt.Errorf("creating output folder %s: %w", outputDir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := filepath.Ext(name)
		if !strings.EqualFold(ext, stage.InputExt) {
			continue
		}

		base := strings.TrimSuffix(name, ext)
		inPath := filepath.Join(inputDir, name)
		outPath := filepath.Join(outputDir, base+stage.OutputExt)

		if !force {
			if _, err := os.Stat(outPath); err == nil {
				fmt.Fprintf(w, "skipped: %s (already exists)\n", base)
				result.Skipped++
				observe(stage, name, types.StageSkipped, "")
				continue
			}
		}

		if err := stage.Convert(inPath, outPath); err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", base, err)
			result.Failed++
			observe(stage, name, types.StageFailed, err.Error())
			continue
		}

		fmt.Fprintf(w, "converted: %s\n", base)
		result.Converted++
		observe(stage, name, types.StageConverted, "")
	}

	fmt.Fprintf(w, "\n%s summary: %d converted, %d skipped, %d failed (total: %d)\n",
		stage.Name, result.Converted, result.Skipped, result.Failed, result.Total())
	return result, nil
}

// ConvertPaths converts an explicit list of input files, writing outputs
// next to each input with the stage's output extension.
func ConvertPaths(stage Stage, paths []string, force bool, w io.Writer) BatchResult {
	var result BatchResult
	for _, inPath := range paths {
		base := strings.TrimSuffix(filepath.Base(inPath), filepath.Ext(inPath))
		outPath := strings.TrimSuffix(inPath, filepath.Ext(inPath)) + stage.OutputExt

		if !force {
			if _, err := os.Stat(outPath); err == nil {
				fmt.Fprintf(w, "skipped: %s (already exists)\n", base)
				result.Skipped++
				observe(stage, filepath.Base(inPath), types.StageSkipped, "")
				continue
			}
		}

		if err := stage.Convert(inPath, outPath); err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", base, err)
			result.Failed++
			observe(stage, filepath.Base(inPath), types.StageFailed, err.Error())
			continue
		}

		fmt.Fprintf(w, "converted: %s\n", base)
		result.Converted++
		observe(stage, filepath.Base(inPath), types.StageConverted, "")
	}

	fmt.Fprintf(w, "\n%s summary: %d converted, %d skipped, %d failed (total: %d)\n",
		stage.Name, result.Converted, result.Skipped, result.Failed, result.Total())
	return result
}

func observe(stage Stage, file string, status types.StageStatus, detail string) {
	if stage.Observe != nil {
		stage.Observe(file, status, detail)
	}
}
