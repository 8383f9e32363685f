package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/calibra-labs/draftsman-cli/internal/adapters/driving/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive assistant session.

The session keeps a history of your questions and answers. Any history
entry can be re-run, even after switching modes.

Controls:
  Enter    - Submit question
  Tab      - Cycle mode (Q&A / report / admin)
  Ctrl+G   - Toggle general-knowledge fallback
  Ctrl+R   - Re-run the selected history entry
  Ctrl+L   - Clear history
  ↑/↓      - Select history entry
  Ctrl+C   - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Panic recovery so a TUI crash still prints a stack trace
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if assistantService == nil {
		return errors.New("assistant service not configured")
	}

	app := tui.NewApp(tui.Ports{
		Assistant: assistantService,
		Frames:    frameLoader,
		Config:    configStore,
	})
	app.WithContext(cmd.Context())

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
