package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calibra-labs/draftsman-cli/internal/core/domain"
	"github.com/calibra-labs/draftsman-cli/internal/core/ports/driven"
)

func TestPromptStore_LoadDefaults(t *testing.T) {
	store, err := NewPromptStore(t.TempDir())
	require.NoError(t, err)

	for _, name := range []string{
		driven.PromptAnswerStrict,
		driven.PromptAnswerHybrid,
		driven.PromptTabularAnalysis,
	} {
		prompt, err := store.Load(name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, prompt, name)
	}
}

func TestPromptStore_DefaultsCarryRecognisedSentences(t *testing.T) {
	store, err := NewPromptStore(t.TempDir())
	require.NoError(t, err)

	strict, err := store.Load(driven.PromptAnswerStrict)
	require.NoError(t, err)
	assert.Contains(t, strict, domain.RefusalSentence)

	hybrid, err := store.Load(driven.PromptAnswerHybrid)
	require.NoError(t, err)
	assert.Contains(t, hybrid, domain.DisclosureSentence)
}

func TestPromptStore_LoadCreatesDefaultFiles(t *testing.T) {
	dir := t.TempDir()
	store, err := NewPromptStore(dir)
	require.NoError(t, err)

	_, err = store.Load(driven.PromptAnswerStrict)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, "answer_strict.txt"))
	assert.FileExists(t, filepath.Join(dir, "answer_hybrid.txt"))
	assert.FileExists(t, filepath.Join(dir, "tabular_analysis.txt"))
	assert.FileExists(t, filepath.Join(dir, "README.md"))
}

func TestPromptStore_UserFileOverridesDefault(t *testing.T) {
	dir := t.TempDir()
	custom := "Custom context: %s\nCustom question: %s"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "answer_strict.txt"), []byte(custom), 0600))

	store, err := NewPromptStore(dir)
	require.NoError(t, err)

	prompt, err := store.Load(driven.PromptAnswerStrict)
	require.NoError(t, err)
	assert.Equal(t, custom, prompt)
}

func TestPromptStore_ReloadPicksUpEdits(t *testing.T) {
	dir := t.TempDir()
	store, err := NewPromptStore(dir)
	require.NoError(t, err)

	first, err := store.Load(driven.PromptAnswerStrict)
	require.NoError(t, err)

	edited := "Edited: %s %s"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "answer_strict.txt"), []byte(edited), 0600))

	// Cached value until reload
	cached, err := store.Load(driven.PromptAnswerStrict)
	require.NoError(t, err)
	assert.Equal(t, first, cached)

	store.Reload()
	fresh, err := store.Load(driven.PromptAnswerStrict)
	require.NoError(t, err)
	assert.Equal(t, edited, fresh)
}

func TestPromptStore_UnknownPrompt(t *testing.T) {
	store, err := NewPromptStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Load("no_such_prompt")
	assert.Error(t, err)
}
