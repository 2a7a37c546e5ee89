//go:build mage

package main

import (
	"fmt"
	"os"
	"os/exec"
)

// runDocpipe invokes a CLI subcommand through go run, so stage targets
// work without a prior Build.
func runDocpipe(args ...string) error {
	cmd := exec.Command("go", append([]string{"run", cmdPkg}, args...)...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("docpipe %s: %w", args[0], err)
	}
	return nil
}

// Xml converts data/docs DOCX files to intermediate XML.
func Xml() error {
	return runDocpipe("xml")
}

// Markdown converts intermediate XML to Markdown.
func Markdown() error {
	return runDocpipe("markdown")
}

// Json converts Markdown to structured JSON.
func Json() error {
	return runDocpipe("json")
}

// Pipeline runs all three stages in order.
func Pipeline() error {
	return runDocpipe("run")
}

// Status prints the conversion catalog summary.
func Status() error {
	return runDocpipe("status")
}
