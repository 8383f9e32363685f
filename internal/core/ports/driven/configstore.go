package driven

// ConfigStore provides access to application configuration.
// Implementations handle persistence (e.g., TOML files) and type conversion.
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	// Returns the value and a boolean indicating if the key exists.
	Get(key string) (any, bool)

	// GetString retrieves a string configuration value.
	// Returns empty string if key doesn't exist or isn't a string.
	GetString(key string) string

	// GetInt retrieves an integer configuration value.
	// Returns 0 if key doesn't exist or isn't an integer.
	GetInt(key string) int

	// GetBool retrieves a boolean configuration value.
	// Returns false if key doesn't exist or isn't a boolean.
	GetBool(key string) bool

	// Set stores a configuration value.
	// The value is persisted immediately.
	Set(key string, value any) error

	// Save persists the current configuration to storage.
	Save() error

	// Load reads configuration from storage.
	Load() error

	// Path returns the configuration file path.
	Path() string
}

// Configuration keys used throughout the application.
const (
	// ConfigKeyDocsDir is the ingestion source directory.
	ConfigKeyDocsDir = "docs_dir"

	// ConfigKeyDataDir is the directory holding the persisted vector store.
	ConfigKeyDataDir = "data_dir"

	// ConfigKeyExportsDir is the directory for structured tabular exports.
	ConfigKeyExportsDir = "exports_dir"

	// ConfigKeyOllamaURL is the Ollama API base URL.
	ConfigKeyOllamaURL = "ollama_url"

	// ConfigKeyLLMModel is the chat/completion model name.
	ConfigKeyLLMModel = "llm_model"

	// ConfigKeyEmbeddingModel is the embedding model name.
	ConfigKeyEmbeddingModel = "embedding_model"

	// ConfigKeyChunkSize is the ingestion chunk size in bytes.
	ConfigKeyChunkSize = "chunk_size"

	// ConfigKeyChunkOverlap is the overlap between consecutive chunks.
	ConfigKeyChunkOverlap = "chunk_overlap"

	// ConfigKeyTopK is the number of chunks retrieved per query.
	ConfigKeyTopK = "top_k"

	// ConfigKeyHybrid enables hybrid (general-knowledge) answering.
	ConfigKeyHybrid = "hybrid"
)
