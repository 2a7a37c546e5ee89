// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the docpipe CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/docpipe/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// cfg holds the resolved pipeline configuration for this invocation.
var cfg types.PipelineConfig

// rootCmd is the base command for the docpipe CLI.
var rootCmd = &cobra.Command{
	Use:   "docpipe",
	Short: "Batch conversion of word-processor documents to structured JSON",
	Long: `docpipe converts folders of Word documents through a three-stage
pipeline: DOCX to intermediate XML (preserving headings, paragraphs, and
tables with merged cells), XML to Markdown (with heading classification
and HTML tables), and Markdown to hierarchical JSON.

Each stage is a subcommand operating on a folder of files; run chains
all three over a standard data directory layout.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./docpipe.yaml or ~/.config/docpipe/config.yaml)")
	rootCmd.PersistentFlags().String("data-dir", "", "base data directory (default: ./data)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("docpipe")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "docpipe"))
		}
	}

	viper.SetEnvPrefix("DOCPIPE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
	if err := viper.Unmarshal(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "warning: invalid configuration: %v\n", err)
	}
}

// dataDir resolves the base data directory: flag, then config, then
// "data".
func dataDir() string {
	if dir, _ := rootCmd.PersistentFlags().GetString("data-dir"); dir != "" {
		return dir
	}
	if cfg.DataDir != "" {
		return cfg.DataDir
	}
	return "data"
}

// stageDir resolves one stage folder: flag value, then the configured
// directory, then the standard layout under the data directory.
func stageDir(cmd *cobra.Command, flag, configured, layoutDir string) string {
	if dir, _ := cmd.Flags().GetString(flag); dir != "" {
		return dir
	}
	if configured != "" {
		return configured
	}
	return filepath.Join(dataDir(), layoutDir)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
