package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var reportFile string

var reportCmd = &cobra.Command{
	Use:   "report [question]",
	Short: "Analyze a tabular export",
	Long: `Loads a CSV or XLSX export and answers the question over its rows using
the analysis agent. The file is never interpreted locally; the agent does
all the reasoning.`,
	Args: cobra.ExactArgs(1),
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVarP(&reportFile, "file", "f", "", "path to the CSV or XLSX export (required)")
	_ = reportCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	if reportService == nil {
		return errors.New("report service not configured")
	}
	if frameLoader == nil {
		return errors.New("frame loader not configured")
	}

	frame, err := frameLoader.Load(reportFile)
	if err != nil {
		return fmt.Errorf("loading %s: %w", reportFile, err)
	}

	result, err := reportService.Analyze(cmd.Context(), args[0], frame)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	cmd.Println(result)
	return nil
}
