package cli

import (
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/calibra-labs/draftsman-cli/internal/core/ports/driven"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View and change configuration",
	RunE:  runConfigShow,
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Print one configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Long: `Sets a configuration value and persists it immediately.

Keys:
  docs_dir         ingestion source directory
  data_dir         vector store directory
  exports_dir      tabular exports directory
  ollama_url       Ollama API base URL
  llm_model        chat model name
  embedding_model  embedding model name
  chunk_size       ingestion chunk size in bytes
  chunk_overlap    overlap between consecutive chunks
  top_k            chunks retrieved per question
  hybrid           allow general-knowledge fallback (true/false)`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

// knownConfigKeys lists every key the application reads.
var knownConfigKeys = []string{
	driven.ConfigKeyDocsDir,
	driven.ConfigKeyDataDir,
	driven.ConfigKeyExportsDir,
	driven.ConfigKeyOllamaURL,
	driven.ConfigKeyLLMModel,
	driven.ConfigKeyEmbeddingModel,
	driven.ConfigKeyChunkSize,
	driven.ConfigKeyChunkOverlap,
	driven.ConfigKeyTopK,
	driven.ConfigKeyHybrid,
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	cmd.Printf("Config file: %s\n\n", configStore.Path())
	for _, key := range knownConfigKeys {
		if val, ok := configStore.Get(key); ok {
			cmd.Printf("  %-16s = %v\n", key, val)
		} else {
			cmd.Printf("  %-16s   (unset)\n", key)
		}
	}
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	val, ok := configStore.Get(args[0])
	if !ok {
		cmd.Printf("%s is unset\n", args[0])
		return nil
	}
	cmd.Printf("%v\n", val)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	key, raw := args[0], args[1]

	// Store numbers and booleans typed so GetInt/GetBool work.
	var value any = raw
	if n, err := strconv.Atoi(raw); err == nil {
		value = n
	} else if b, err := strconv.ParseBool(raw); err == nil {
		value = b
	}

	if err := configStore.Set(key, value); err != nil {
		return err
	}
	cmd.Printf("%s = %v\n", key, value)
	return nil
}
