package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/calibra-labs/draftsman-cli/internal/core/ports/driven"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest [dir]",
	Short: "Index documents into the local store",
	Long: `Extracts, chunks and embeds every supported document (PDF, plain text)
under the given directory and writes the records to the local vector store.
Re-running appends new records; it does not replace earlier ones.

Without an argument the configured docs directory is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runIngest,
}

func init() {
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	if ingestService == nil {
		return errors.New("ingest service not configured")
	}

	dir := ""
	if len(args) > 0 {
		dir = args[0]
	} else if configStore != nil {
		dir = configStore.GetString(driven.ConfigKeyDocsDir)
	}
	if dir == "" {
		dir = filepath.Join("data_source", "documents")
	}

	summary, err := ingestService.Ingest(cmd.Context(), dir)
	if err != nil {
		return fmt.Errorf("ingestion failed: %w", err)
	}

	cmd.Printf("Indexed %d chunk(s) from %d document(s):\n", summary.Chunks, summary.Documents)
	for _, source := range summary.Sources {
		cmd.Printf("  - %s\n", source)
	}
	return nil
}
