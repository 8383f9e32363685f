// Command draftsman is a local document assistant for engineering teams.
// It ingests design documents into a local vector store and answers
// questions over them with a local Ollama model.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/calibra-labs/draftsman-cli/internal/adapters/driven/agent/ollama"
	"github.com/calibra-labs/draftsman-cli/internal/adapters/driven/config/file"
	ollamaembed "github.com/calibra-labs/draftsman-cli/internal/adapters/driven/embedding/ollama"
	"github.com/calibra-labs/draftsman-cli/internal/adapters/driven/extract"
	ollamallm "github.com/calibra-labs/draftsman-cli/internal/adapters/driven/llm/ollama"
	"github.com/calibra-labs/draftsman-cli/internal/adapters/driven/storage/sqlite"
	"github.com/calibra-labs/draftsman-cli/internal/adapters/driven/tabular"
	"github.com/calibra-labs/draftsman-cli/internal/adapters/driving/cli"
	"github.com/calibra-labs/draftsman-cli/internal/chunker"
	"github.com/calibra-labs/draftsman-cli/internal/core/ports/driven"
	"github.com/calibra-labs/draftsman-cli/internal/core/services"
)

func main() {
	// Optional .env for OLLAMA_HOST and friends; absence is fine.
	_ = godotenv.Load()

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run() error {
	config, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}

	prompts, err := file.NewPromptStore("")
	if err != nil {
		return fmt.Errorf("opening prompt store: %w", err)
	}

	docsDir := config.GetString(driven.ConfigKeyDocsDir)
	if docsDir == "" {
		docsDir = filepath.Join("data_source", "documents")
	}
	exportsDir := config.GetString(driven.ConfigKeyExportsDir)
	if exportsDir == "" {
		exportsDir = filepath.Join("data_source", "structured_data")
	}
	for _, dir := range []string{docsDir, exportsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}

	store, err := sqlite.NewStore(config.GetString(driven.ConfigKeyDataDir))
	if err != nil {
		return fmt.Errorf("opening vector store: %w", err)
	}
	defer store.Close()

	ollamaURL := config.GetString(driven.ConfigKeyOllamaURL)

	embedder, err := ollamaembed.NewEmbedder(ollamaURL, config.GetString(driven.ConfigKeyEmbeddingModel))
	if err != nil {
		return fmt.Errorf("creating embedder: %w", err)
	}

	llm, err := ollamallm.NewClient(ollamaURL, config.GetString(driven.ConfigKeyLLMModel))
	if err != nil {
		return fmt.Errorf("creating llm client: %w", err)
	}

	var chunkOpts []chunker.Option
	if size := config.GetInt(driven.ConfigKeyChunkSize); size > 0 {
		chunkOpts = append(chunkOpts, chunker.WithChunkSize(size))
	}
	if overlap := config.GetInt(driven.ConfigKeyChunkOverlap); overlap > 0 {
		chunkOpts = append(chunkOpts, chunker.WithOverlap(overlap))
	}

	ingest := services.NewIngestService(extract.DefaultRegistry(), chunker.New(chunkOpts...), embedder, store)
	answer := services.NewAnswerService(embedder, store, llm, prompts)
	report := services.NewReportService(ollama.NewAgent(llm, prompts))
	inspect := services.NewInspectService(store)
	assistant := services.NewAssistantService(answer, report, inspect)

	cli.SetServices(cli.Services{
		Ingest:    ingest,
		Answer:    answer,
		Report:    report,
		Inspect:   inspect,
		Assistant: assistant,
		Config:    config,
		Frames:    tabular.NewLoader(),
	})

	cli.Execute()
	return nil
}
