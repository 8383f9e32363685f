// Package cli implements the draftsman command-line interface using cobra.
// Commands talk to the core services through the driving ports; wiring
// happens in the main package via SetServices.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/calibra-labs/draftsman-cli/internal/core/ports/driven"
	"github.com/calibra-labs/draftsman-cli/internal/core/ports/driving"
	"github.com/calibra-labs/draftsman-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services injected by the main package before Execute.
var (
	ingestService    driving.IngestService
	answerService    driving.AnswerService
	reportService    driving.ReportService
	inspectService   driving.InspectService
	assistantService driving.AssistantService
	configStore      driven.ConfigStore
	frameLoader      driven.FrameLoader
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "draftsman",
	Short: "Local document assistant for engineering teams",
	Long: `Draftsman answers questions over your design documents using a local
Ollama model. Documents are ingested into a local vector store; nothing
leaves your machine.

Modes:
  ask      - Q&A over ingested design documents
  report   - analysis of structured tabular exports
  inspect  - raw view of the indexed store`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

// Services bundles everything the CLI needs.
type Services struct {
	Ingest    driving.IngestService
	Answer    driving.AnswerService
	Report    driving.ReportService
	Inspect   driving.InspectService
	Assistant driving.AssistantService
	Config    driven.ConfigStore
	Frames    driven.FrameLoader
}

// SetServices injects the core services. Must be called before Execute.
func SetServices(s Services) {
	ingestService = s.Ingest
	answerService = s.Answer
	reportService = s.Report
	inspectService = s.Inspect
	assistantService = s.Assistant
	configStore = s.Config
	frameLoader = s.Frames
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}
