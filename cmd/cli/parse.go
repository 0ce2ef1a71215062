package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"recruitly/cv-assistant/internal/services"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Split a combined report into per-candidate views",
	Long:  "Parse a combined report (from a file or stdin) into JSON keyed by candidate display name with extracted match scores.",
	RunE:  runParse,
}

var (
	parseInputFile string
	parseJobFile   string
	parseJobText   string
)

func init() {
	parseCmd.Flags().StringVarP(&parseInputFile, "in", "i", "", "Path to the combined report (default: stdin)")
	parseCmd.Flags().StringVarP(&parseJobFile, "job", "j", "", "Path to the job description used for the report")
	parseCmd.Flags().StringVar(&parseJobText, "job-text", "", "Job description text (alternative to --job)")

	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, _ []string) error {
	jobDescription, err := readJobDescription(parseJobFile, parseJobText)
	if err != nil {
		return err
	}

	var content []byte
	if parseInputFile != "" {
		content, err = os.ReadFile(parseInputFile)
	} else {
		content, err = io.ReadAll(cmd.InOrStdin())
	}
	if err != nil {
		return fmt.Errorf("failed to read report: %w", err)
	}

	parsed := services.NewResultParser().Parse(string(content), jobDescription)

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(parsed); err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	return nil
}
