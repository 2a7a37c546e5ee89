// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/docpipe/internal/catalog"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Summarize recorded conversion outcomes",
	Long: `Status reads the conversion catalog and prints per-stage outcome
counts. Use --export to write the full catalog to a YAML file.`,
	RunE: runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	store, err := catalog.NewStore(catalogDir())
	if err != nil {
		return err
	}
	defer store.Close()

	if export, _ := cmd.Flags().GetString("export"); export != "" {
		if err := store.ExportYAML(context.Background(), export); err != nil {
			return err
		}
		fmt.Println("Exported catalog to", export)
		return nil
	}

	summaries, err := store.Summary(context.Background())
	if err != nil {
		return err
	}
	if len(summaries) == 0 {
		fmt.Println("No conversions recorded yet.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-10s  %10s  %8s  %7s\n", "Stage", "Converted", "Skipped", "Failed")
	for _, s := range summaries {
		fmt.Fprintf(os.Stdout, "%-10s  %10d  %8d  %7d\n", s.Stage, s.Converted, s.Skipped, s.Failed)
	}
	return nil
}

func init() {
	statusCmd.Flags().String("export", "", "write the full catalog to a YAML file")

	rootCmd.AddCommand(statusCmd)
}
