package domain

// Default tuning values, matching the segmentation and retrieval
// behaviour the pipeline was calibrated with.
const (
	// DefaultChunkSize is the maximum chunk length in characters.
	DefaultChunkSize = 1000

	// DefaultChunkOverlap is the shared span between consecutive chunks.
	DefaultChunkOverlap = 200

	// DefaultRetrievalK is how many chunks a query retrieves.
	DefaultRetrievalK = 5

	// DefaultContextLimit caps how many deduplicated chunks are
	// concatenated into the prompt context.
	DefaultContextLimit = 3

	// DefaultSourceCap caps the citation list length.
	DefaultSourceCap = 5

	// MaxQuestionLength is the longest accepted question in characters.
	MaxQuestionLength = 1000
)

// AIProvider identifies an AI service provider for embeddings or LLM.
type AIProvider string

// Available AI providers.
const (
	// AIProviderOllama is a local Ollama instance.
	AIProviderOllama AIProvider = "ollama"

	// AIProviderOpenAI is an OpenAI-compatible cloud API.
	AIProviderOpenAI AIProvider = "openai"
)

// IsValid returns true if the AI provider is recognised.
func (p AIProvider) IsValid() bool {
	switch p {
	case AIProviderOllama, AIProviderOpenAI:
		return true
	default:
		return false
	}
}

// RequiresAPIKey returns true if this provider needs an API key.
func (p AIProvider) RequiresAPIKey() bool {
	return p == AIProviderOpenAI
}

// String returns the string representation.
func (p AIProvider) String() string {
	return string(p)
}

// EmbeddingSettings holds embedding provider configuration.
type EmbeddingSettings struct {
	// Provider is the embedding service provider.
	Provider AIProvider

	// Model is the embedding model name.
	Model string

	// BaseURL is the API endpoint (for Ollama and self-hosted servers).
	BaseURL string

	// APIKey is the API key (for OpenAI).
	APIKey string

	// Dimensions is the embedding vector size produced by Model.
	Dimensions int
}

// IsConfigured returns true if the embedding provider is set up.
func (e EmbeddingSettings) IsConfigured() bool {
	if !e.Provider.IsValid() {
		return false
	}
	if e.Provider.RequiresAPIKey() && e.APIKey == "" {
		return false
	}
	return true
}

// LLMSettings holds LLM provider configuration.
type LLMSettings struct {
	// Provider is the LLM service provider.
	Provider AIProvider

	// Model is the LLM model name.
	Model string

	// BaseURL is the API endpoint (for Ollama and self-hosted servers).
	BaseURL string

	// APIKey is the API key (for OpenAI).
	APIKey string
}

// IsConfigured returns true if the LLM provider is set up.
func (l LLMSettings) IsConfigured() bool {
	if !l.Provider.IsValid() {
		return false
	}
	if l.Provider.RequiresAPIKey() && l.APIKey == "" {
		return false
	}
	return true
}

// RetrievalSettings holds query-time tuning.
type RetrievalSettings struct {
	// K is the number of chunks retrieved per question.
	K int

	// ContextLimit caps the deduplicated chunks used as prompt context.
	ContextLimit int

	// SourceCap caps the citation list length.
	SourceCap int
}

// SegmentSettings holds chunking parameters.
type SegmentSettings struct {
	// ChunkSize is the maximum chunk length in characters.
	ChunkSize int

	// Overlap is the shared span between consecutive chunks.
	// Must be smaller than ChunkSize.
	Overlap int
}

// AppSettings holds all application settings.
type AppSettings struct {
	// DataDir is the root directory for the corpus and index snapshot.
	// Empty means the per-user default (~/.docent/data).
	DataDir string

	// Segment holds chunking parameters.
	Segment SegmentSettings

	// Retrieval holds query-time tuning.
	Retrieval RetrievalSettings

	// Embedding holds embedding provider settings.
	Embedding EmbeddingSettings

	// LLM holds LLM provider settings.
	LLM LLMSettings
}

// DefaultEmbeddingModels returns the default embedding model per provider.
func DefaultEmbeddingModels() map[AIProvider]string {
	return map[AIProvider]string{
		AIProviderOllama: "nomic-embed-text",
		AIProviderOpenAI: "text-embedding-3-small",
	}
}

// DefaultLLMModels returns the default LLM model per provider.
func DefaultLLMModels() map[AIProvider]string {
	return map[AIProvider]string{
		AIProviderOllama: "llama3.2",
		AIProviderOpenAI: "gpt-4o-mini",
	}
}

// EmbeddingDimensions returns known embedding dimensions by model name.
func EmbeddingDimensions() map[string]int {
	return map[string]int{
		"nomic-embed-text":       768,
		"mxbai-embed-large":      1024,
		"all-minilm":             384,
		"text-embedding-3-small": 1536,
		"text-embedding-3-large": 3072,
		"text-embedding-ada-002": 1536,
	}
}

// DefaultAppSettings returns settings with sensible defaults. Providers
// default to a local Ollama instance so the tool works without API keys.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Segment: SegmentSettings{
			ChunkSize: DefaultChunkSize,
			Overlap:   DefaultChunkOverlap,
		},
		Retrieval: RetrievalSettings{
			K:            DefaultRetrievalK,
			ContextLimit: DefaultContextLimit,
			SourceCap:    DefaultSourceCap,
		},
		Embedding: EmbeddingSettings{
			Provider: AIProviderOllama,
		},
		LLM: LLMSettings{
			Provider: AIProviderOllama,
		},
	}
}
