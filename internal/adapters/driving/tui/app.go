// Package tui implements the interactive assistant session as a Bubble
// Tea program. One session lives for the lifetime of the program; its
// history survives mode switches and powers the replay feature.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/calibra-labs/draftsman-cli/internal/core/domain"
	"github.com/calibra-labs/draftsman-cli/internal/core/ports/driven"
	"github.com/calibra-labs/draftsman-cli/internal/core/ports/driving"
)

// Ports holds the services the TUI drives.
type Ports struct {
	Assistant driving.AssistantService
	Frames    driven.FrameLoader
	Config    driven.ConfigStore
}

// App is the Bubble Tea model for the assistant session.
type App struct {
	ports   Ports
	ctx     context.Context
	session *domain.Session

	input    textinput.Model
	viewport viewport.Model

	frame   *domain.Frame
	outcome *driving.Outcome
	status  string
	busy    bool
	cursor  int // selected history entry, -1 when none
	ready   bool
	topK    int
}

// evalDoneMsg carries a finished evaluation back into Update.
type evalDoneMsg struct {
	outcome *driving.Outcome
	err     error
}

// frameLoadedMsg carries a loaded tabular export back into Update.
type frameLoadedMsg struct {
	frame *domain.Frame
	err   error
}

// NewApp creates the TUI application.
func NewApp(ports Ports) *App {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Ask about assembly details or standards..."
	ti.Focus()
	ti.CharLimit = 0

	app := &App{
		ports:    ports,
		ctx:      context.Background(),
		session:  domain.NewSession(domain.ModeUnstructuredQA),
		input:    ti,
		viewport: viewport.New(0, 0),
		status:   "Ready. Tab cycles modes, Ctrl+R replays history.",
		cursor:   -1,
	}
	if ports.Config != nil {
		app.topK = ports.Config.GetInt(driven.ConfigKeyTopK)
		if ports.Config.GetBool(driven.ConfigKeyHybrid) {
			app.session.SetHybridEnabled(true)
		}
	}
	return app
}

// WithContext sets the context used for service calls.
func (a *App) WithContext(ctx context.Context) {
	if ctx != nil {
		a.ctx = ctx
	}
}

// Session exposes the session state, mainly for tests.
func (a *App) Session() *domain.Session {
	return a.session
}

// Init starts the text input cursor blink.
func (a *App) Init() tea.Cmd { return textinput.Blink }

// Update handles key, window and completion events.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.ready = true
		_, fh := contentStyle.GetFrameSize()
		_, ih := inputStyle.GetFrameSize()
		reserved := 3 + ih // header, status, spacer
		vh := msg.Height - reserved
		if vh < 3 {
			vh = 3
		}
		a.viewport.Width = maxInt(20, msg.Width)
		a.viewport.Height = maxInt(3, vh-fh)
		a.viewport.SetContent(a.renderContent())
		return a, nil

	case evalDoneMsg:
		a.busy = false
		if msg.err != nil {
			a.status = "Error: " + msg.err.Error()
		} else {
			a.outcome = msg.outcome
			a.status = fmt.Sprintf("Done (%s)", msg.outcome.Mode.Description())
			a.cursor = -1
		}
		a.viewport.SetContent(a.renderContent())
		return a, nil

	case frameLoadedMsg:
		if msg.err != nil {
			a.status = "Error: " + msg.err.Error()
		} else {
			a.frame = msg.frame
			a.status = fmt.Sprintf("Loaded %s: %d row(s)", msg.frame.Name, len(msg.frame.Rows))
			a.viewport.SetContent(renderFramePreview(msg.frame))
		}
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	// An in-flight evaluation owns the session: the Cmd goroutine is
	// consuming the replay and appending to history. Until evalDoneMsg
	// lands, every key that touches session state is ignored.
	if a.busy {
		switch msg.String() {
		case "enter", "tab", "ctrl+g", "ctrl+l", "ctrl+r", "up", "down":
			return a, nil
		}
	}

	switch msg.String() {
	case "enter":
		text := strings.TrimSpace(a.input.Value())
		if text == "" {
			return a, nil
		}
		a.input.SetValue("")
		if path, ok := strings.CutPrefix(text, "/load "); ok {
			return a, a.loadFrame(strings.TrimSpace(path))
		}
		return a, a.evaluate(text)

	case "tab":
		a.cycleMode()
		a.status = "Mode: " + a.session.Mode().Description()
		return a, nil

	case "ctrl+g":
		a.session.SetHybridEnabled(!a.session.HybridEnabled())
		if a.session.HybridEnabled() {
			a.status = "General-knowledge fallback enabled"
		} else {
			a.status = "Strict document-only answers"
		}
		return a, nil

	case "ctrl+l":
		a.session.ClearHistory()
		a.cursor = -1
		a.status = "History cleared"
		a.viewport.SetContent(a.renderContent())
		return a, nil

	case "ctrl+r":
		history := a.session.History()
		if a.cursor < 0 || a.cursor >= len(history) {
			a.status = "Select a history entry first (up/down)"
			return a, nil
		}
		a.session.RequestReplay(history[a.cursor])
		return a, a.evaluate("")

	case "up":
		a.moveCursor(-1)
		return a, nil

	case "down":
		a.moveCursor(1)
		return a, nil
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// cycleMode advances to the next mode in a fixed order.
func (a *App) cycleMode() {
	switch a.session.Mode() {
	case domain.ModeUnstructuredQA:
		a.session.SetMode(domain.ModeStructuredReport)
	case domain.ModeStructuredReport:
		a.session.SetMode(domain.ModeAdminInspect)
	default:
		a.session.SetMode(domain.ModeUnstructuredQA)
	}
}

func (a *App) moveCursor(delta int) {
	n := a.session.Len()
	if n == 0 {
		return
	}
	if a.cursor < 0 {
		a.cursor = n - 1
	} else {
		a.cursor = (a.cursor + delta + n) % n
	}
	a.viewport.SetContent(a.renderContent())
}

// evaluate runs one evaluation cycle off the update loop.
func (a *App) evaluate(input string) tea.Cmd {
	a.busy = true
	a.status = "Thinking..."
	sess, frame := a.session, a.frame
	return func() tea.Msg {
		outcome, err := a.ports.Assistant.Evaluate(a.ctx, sess, driving.EvalRequest{
			Input: input,
			Frame: frame,
			TopK:  a.topK,
		})
		return evalDoneMsg{outcome: outcome, err: err}
	}
}

func (a *App) loadFrame(path string) tea.Cmd {
	if a.ports.Frames == nil {
		a.status = "Frame loader not configured"
		return nil
	}
	a.status = "Loading " + path
	return func() tea.Msg {
		frame, err := a.ports.Frames.Load(path)
		return frameLoadedMsg{frame: frame, err: err}
	}
}

// View renders the session.
func (a *App) View() string {
	if !a.ready {
		return "Loading..."
	}

	hybrid := ""
	if a.session.HybridEnabled() {
		hybrid = "  [general knowledge ON]"
	}
	header := headerStyle.Render("Draftsman") + "  " +
		modeStyle.Render(a.session.Mode().Description()) + hybrid

	content := contentStyle.Render(a.viewport.View())
	input := inputStyle.Render(a.input.View())
	status := statusStyle.Render(a.status)

	return header + "\n" + content + "\n" + input + "\n" + status
}

func (a *App) renderContent() string {
	var sb strings.Builder

	if a.outcome != nil {
		sb.WriteString(a.renderOutcome(a.outcome))
		sb.WriteString("\n")
	}

	history := a.session.History()
	if len(history) > 0 {
		sb.WriteString("History:\n")
		for i, rec := range history {
			marker := "  "
			if i == a.cursor {
				marker = selectStyle.Render("> ")
			}
			sb.WriteString(fmt.Sprintf("%s[%d] (%s) %s\n", marker, i+1, rec.Mode, truncate(rec.Question, 30)))
			sb.WriteString(fmt.Sprintf("      %s\n", truncate(rec.Answer, 80)))
		}
	}

	if sb.Len() == 0 {
		return "No questions asked yet."
	}
	return sb.String()
}

func (a *App) renderOutcome(o *driving.Outcome) string {
	var sb strings.Builder

	if o.Replayed {
		sb.WriteString(replayStyle.Render("(replayed) "))
	}
	sb.WriteString(fmt.Sprintf("Q: %s\n\n", o.Question))

	if o.Inspection != nil {
		sb.WriteString(fmt.Sprintf("%d record(s) indexed:\n", o.Inspection.Total))
		for i, rec := range o.Inspection.Records {
			sb.WriteString(fmt.Sprintf("  [%d] %s (%s)\n      %s\n", i+1, rec.ID, rec.Source, rec.Preview))
		}
		return sb.String()
	}

	sb.WriteString(o.Text)
	sb.WriteString("\n")
	if len(o.Sources) > 0 {
		sb.WriteString("\nSources: " + strings.Join(o.Sources, ", ") + "\n")
	} else if o.Mode == domain.ModeUnstructuredQA {
		sb.WriteString("\n(no local documents used)\n")
	}
	return sb.String()
}

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	modeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	contentStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	inputStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	selectStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	replayStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}

// renderFramePreview shows the schema and leading rows of a freshly
// loaded export before any analysis runs.
func renderFramePreview(frame *domain.Frame) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Loaded %s\n\n", frame.Name))
	sb.WriteString(strings.Join(frame.Columns, " | "))
	sb.WriteString("\n")
	for _, row := range frame.Head(3) {
		sb.WriteString(strings.Join(row, " | "))
		sb.WriteString("\n")
	}
	if len(frame.Rows) > 3 {
		sb.WriteString(fmt.Sprintf("... %d row(s) total\n", len(frame.Rows)))
	}
	return sb.String()
}
