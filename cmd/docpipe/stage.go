// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pdiddy/docpipe/internal/catalog"
	"github.com/pdiddy/docpipe/internal/pipeline"
	"github.com/pdiddy/docpipe/pkg/types"
)

// catalogDir resolves the catalog database directory.
func catalogDir() string {
	if dir := cfg.Catalog.Dir; dir != "" {
		return dir
	}
	return filepath.Join(dataDir(), "catalog")
}

// openCatalog opens the conversion catalog. Catalog problems degrade to
// a warning: recording outcomes must never fail a conversion.
func openCatalog() *catalog.Store {
	store, err := catalog.NewStore(catalogDir())
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: catalog unavailable: %v\n", err)
		return nil
	}
	return store
}

// recordTo builds a stage observer writing outcomes to the catalog.
// A nil store yields a nil observer.
func recordTo(store *catalog.Store, stageName string) func(string, types.StageStatus, string) {
	if store == nil {
		return nil
	}
	return func(file string, status types.StageStatus, detail string) {
		if err := store.Record(context.Background(), stageName, file, status, detail); err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		}
	}
}

// runStage executes one stage over its folders, or over explicit file
// arguments, and reports failures as a command error.
func runStage(cmd *cobra.Command, args []string, stage pipeline.Stage, inputDir, outputDir string) error {
	force, _ := cmd.Flags().GetBool("force")

	store := openCatalog()
	if store != nil {
		defer store.Close()
		stage.Observe = recordTo(store, stage.Name)
	}

	var result pipeline.BatchResult
	if len(args) > 0 {
		result = pipeline.ConvertPaths(stage, args, force, os.Stdout)
	} else {
		var err error
		result, err = pipeline.Run(stage, inputDir, outputDir, force, os.Stdout)
		if err != nil {
			return err
		}
	}

	if result.HasFailures() {
		return fmt.Errorf("%d file(s) failed conversion", result.Failed)
	}
	return nil
}
