package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calibra-labs/draftsman-cli/internal/core/domain"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "List the raw contents of the indexed store",
	RunE:  runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, _ []string) error {
	if inspectService == nil {
		return errors.New("inspect service not configured")
	}

	report, err := inspectService.Inspect(cmd.Context())
	if err != nil {
		if errors.Is(err, domain.ErrEmptyStore) {
			cmd.Println("The store is empty. Run 'draftsman ingest' first.")
			return nil
		}
		return fmt.Errorf("inspection failed: %w", err)
	}

	cmd.Printf("%d record(s) indexed:\n\n", report.Total)
	for i, rec := range report.Records {
		cmd.Printf("  [%d] %s (%s)\n", i+1, rec.ID, rec.Source)
		cmd.Printf("      %s\n", rec.Preview)
	}
	return nil
}
