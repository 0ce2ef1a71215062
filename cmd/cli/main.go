// Package main provides the command line entry point for running CV analyses
// without the HTTP API.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cvassist",
	Short: "Recruitly AI CV Assistant",
	Long:  "Score résumés against a job description with Gemini and split combined reports into per-candidate views.",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
