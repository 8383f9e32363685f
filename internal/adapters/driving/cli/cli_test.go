package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calibra-labs/draftsman-cli/internal/core/domain"
	"github.com/calibra-labs/draftsman-cli/internal/core/ports/driven"
	"github.com/calibra-labs/draftsman-cli/internal/core/ports/driving"
)

type stubAnswer struct {
	answer *domain.Answer
	err    error
	opts   driving.AnswerOptions
}

func (s *stubAnswer) Answer(_ context.Context, _ string, opts driving.AnswerOptions) (*domain.Answer, error) {
	s.opts = opts
	return s.answer, s.err
}

type stubConfig struct {
	values map[string]any
}

func (s *stubConfig) Get(key string) (any, bool) {
	v, ok := s.values[key]
	return v, ok
}

func (s *stubConfig) GetString(key string) string {
	v, _ := s.values[key].(string)
	return v
}

func (s *stubConfig) GetInt(key string) int {
	v, _ := s.values[key].(int)
	return v
}

func (s *stubConfig) GetBool(key string) bool {
	v, _ := s.values[key].(bool)
	return v
}

func (s *stubConfig) Set(key string, value any) error {
	s.values[key] = value
	return nil
}

func (s *stubConfig) Save() error  { return nil }
func (s *stubConfig) Load() error  { return nil }
func (s *stubConfig) Path() string { return "" }

// setupTestConfig swaps the config store and returns a cleanup restoring
// the previous one.
func setupTestConfig(values map[string]any) func() {
	prev := configStore
	configStore = &stubConfig{values: values}
	return func() { configStore = prev }
}

type stubInspect struct {
	report *driving.InspectReport
	err    error
}

func (s *stubInspect) Inspect(_ context.Context) (*driving.InspectReport, error) {
	return s.report, s.err
}

// setupTestServices wires stub services and returns a cleanup restoring
// the previous wiring.
func setupTestServices(answer driving.AnswerService, inspect driving.InspectService) func() {
	prevAnswer := answerService
	prevInspect := inspectService
	answerService = answer
	inspectService = inspect
	return func() {
		answerService = prevAnswer
		inspectService = prevInspect
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestAskCmd_Use(t *testing.T) {
	assert.Equal(t, "ask [question]", askCmd.Use)
}

func TestAskCmd_RequiresExactlyOneArg(t *testing.T) {
	_, err := execute(t, "ask")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestAskCmd_HasFlags(t *testing.T) {
	flag := askCmd.Flags().Lookup("top-k")
	require.NotNil(t, flag)
	assert.Equal(t, "n", flag.Shorthand)

	assert.NotNil(t, askCmd.Flags().Lookup("hybrid"))
	assert.NotNil(t, askCmd.Flags().Lookup("json"))
}

func TestAskCmd_PrintsAnswerAndSources(t *testing.T) {
	cleanup := setupTestServices(&stubAnswer{
		answer: &domain.Answer{
			Text: "The torque spec is 45 Nm.",
			Sources: []domain.Chunk{
				{Source: "spec.pdf"},
			},
		},
	}, nil)
	defer cleanup()

	out, err := execute(t, "ask", "what is the torque spec?")
	require.NoError(t, err)

	assert.Contains(t, out, "The torque spec is 45 Nm.")
	assert.Contains(t, out, "spec.pdf")
}

func TestAskCmd_JSONOutput(t *testing.T) {
	cleanup := setupTestServices(&stubAnswer{
		answer: &domain.Answer{Text: "45 Nm"},
	}, nil)
	defer cleanup()

	out, err := execute(t, "ask", "--json", "torque?")
	require.NoError(t, err)

	assert.Contains(t, out, `"answer": "45 Nm"`)
}

func TestAskCmd_ConfigSuppliesDefaults(t *testing.T) {
	stub := &stubAnswer{answer: &domain.Answer{Text: "45 Nm"}}
	cleanup := setupTestServices(stub, nil)
	defer cleanup()
	restore := setupTestConfig(map[string]any{
		driven.ConfigKeyTopK:   5,
		driven.ConfigKeyHybrid: true,
	})
	defer restore()

	_, err := execute(t, "ask", "torque?")
	require.NoError(t, err)

	assert.Equal(t, 5, stub.opts.TopK)
	assert.True(t, stub.opts.Hybrid)
}

func TestAskCmd_FlagsOverrideConfig(t *testing.T) {
	stub := &stubAnswer{answer: &domain.Answer{Text: "45 Nm"}}
	cleanup := setupTestServices(stub, nil)
	defer cleanup()
	restore := setupTestConfig(map[string]any{
		driven.ConfigKeyTopK:   5,
		driven.ConfigKeyHybrid: true,
	})
	defer restore()

	_, err := execute(t, "ask", "--top-k", "2", "--hybrid=false", "torque?")
	require.NoError(t, err)

	assert.Equal(t, 2, stub.opts.TopK)
	assert.False(t, stub.opts.Hybrid)
}

func TestAskCmd_NotConfigured(t *testing.T) {
	cleanup := setupTestServices(nil, nil)
	defer cleanup()

	_, err := execute(t, "ask", "anything")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}

func TestInspectCmd_PrintsRecords(t *testing.T) {
	cleanup := setupTestServices(nil, &stubInspect{
		report: &driving.InspectReport{
			Total: 1,
			Records: []driving.RecordSummary{
				{ID: "r1", Source: "spec.pdf", Preview: "Bolt torque spec is 45 Nm."},
			},
		},
	})
	defer cleanup()

	out, err := execute(t, "inspect")
	require.NoError(t, err)

	assert.Contains(t, out, "1 record(s) indexed")
	assert.Contains(t, out, "spec.pdf")
}

func TestInspectCmd_EmptyStoreIsNotAnError(t *testing.T) {
	cleanup := setupTestServices(nil, &stubInspect{err: domain.ErrEmptyStore})
	defer cleanup()

	out, err := execute(t, "inspect")
	require.NoError(t, err)
	assert.Contains(t, out, "store is empty")
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "draftsman version")
}
