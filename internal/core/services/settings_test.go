package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docent-labs/docent-cli/internal/core/domain"
	"github.com/docent-labs/docent-cli/internal/core/ports/driven"
)

// mockConfigStore is an in-memory driven.ConfigStore.
type mockConfigStore struct {
	data map[string]any
}

var _ driven.ConfigStore = (*mockConfigStore)(nil)

func newMockConfigStore() *mockConfigStore {
	return &mockConfigStore{data: make(map[string]any)}
}

func (m *mockConfigStore) Get(key string) (any, bool) {
	val, ok := m.data[key]
	return val, ok
}

func (m *mockConfigStore) GetString(key string) string {
	if val, ok := m.data[key].(string); ok {
		return val
	}
	return ""
}

func (m *mockConfigStore) GetInt(key string) int {
	switch v := m.data[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	default:
		return 0
	}
}

func (m *mockConfigStore) GetBool(key string) bool {
	if val, ok := m.data[key].(bool); ok {
		return val
	}
	return false
}

func (m *mockConfigStore) Set(key string, value any) error {
	m.data[key] = value
	return nil
}

func (m *mockConfigStore) Save() error  { return nil }
func (m *mockConfigStore) Load() error  { return nil }
func (m *mockConfigStore) Path() string { return "/tmp/config.toml" }

func TestSettingsService_Get_Defaults(t *testing.T) {
	svc := NewSettingsService(newMockConfigStore())

	settings, err := svc.Get()
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultChunkSize, settings.Segment.ChunkSize)
	assert.Equal(t, domain.DefaultChunkOverlap, settings.Segment.Overlap)
	assert.Equal(t, domain.DefaultRetrievalK, settings.Retrieval.K)
	assert.Equal(t, domain.DefaultContextLimit, settings.Retrieval.ContextLimit)
	assert.Equal(t, domain.DefaultSourceCap, settings.Retrieval.SourceCap)
	assert.Equal(t, domain.AIProviderOllama, settings.Embedding.Provider)
	assert.Equal(t, "nomic-embed-text", settings.Embedding.Model)
	assert.Equal(t, 768, settings.Embedding.Dimensions)
	assert.Equal(t, domain.AIProviderOllama, settings.LLM.Provider)
	assert.Equal(t, "llama3.2", settings.LLM.Model)
}

func TestSettingsService_Get_ConfiguredValues(t *testing.T) {
	store := newMockConfigStore()
	store.data["segment.chunk_size"] = int64(500)
	store.data["segment.overlap"] = int64(50)
	store.data["retrieval.k"] = int64(10)
	store.data["embedding.provider"] = "openai"
	store.data["embedding.model"] = "text-embedding-3-large"
	store.data["embedding.api_key"] = "sk-test"
	store.data["llm.provider"] = "openai"
	store.data["llm.api_key"] = "sk-test"

	svc := NewSettingsService(store)

	settings, err := svc.Get()
	require.NoError(t, err)

	assert.Equal(t, 500, settings.Segment.ChunkSize)
	assert.Equal(t, 50, settings.Segment.Overlap)
	assert.Equal(t, 10, settings.Retrieval.K)
	assert.Equal(t, domain.AIProviderOpenAI, settings.Embedding.Provider)
	assert.Equal(t, "text-embedding-3-large", settings.Embedding.Model)
	assert.Equal(t, 3072, settings.Embedding.Dimensions)
	assert.Equal(t, domain.AIProviderOpenAI, settings.LLM.Provider)
	assert.Equal(t, "gpt-4o-mini", settings.LLM.Model)
}

func TestSettingsService_Get_ExplicitZeroOverlap(t *testing.T) {
	store := newMockConfigStore()
	store.data["segment.overlap"] = int64(0)

	svc := NewSettingsService(store)

	settings, err := svc.Get()
	require.NoError(t, err)

	assert.Equal(t, 0, settings.Segment.Overlap)
}

func TestSettingsService_Get_InvalidProviderFallsBack(t *testing.T) {
	store := newMockConfigStore()
	store.data["embedding.provider"] = "replicate"

	svc := NewSettingsService(store)

	settings, err := svc.Get()
	require.NoError(t, err)

	assert.Equal(t, domain.AIProviderOllama, settings.Embedding.Provider)
}

func TestSettingsService_SaveRoundTrip(t *testing.T) {
	store := newMockConfigStore()
	svc := NewSettingsService(store)

	settings, err := svc.Get()
	require.NoError(t, err)
	settings.Segment.ChunkSize = 800
	settings.Retrieval.K = 7

	require.NoError(t, svc.Save(settings))

	reloaded, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, 800, reloaded.Segment.ChunkSize)
	assert.Equal(t, 7, reloaded.Retrieval.K)
}

func TestSettingsService_SetEmbeddingProvider(t *testing.T) {
	store := newMockConfigStore()
	svc := NewSettingsService(store)

	err := svc.SetEmbeddingProvider(domain.AIProviderOpenAI, "", "sk-test")
	require.NoError(t, err)

	settings, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.AIProviderOpenAI, settings.Embedding.Provider)
	assert.Equal(t, "text-embedding-3-small", settings.Embedding.Model)
	assert.Equal(t, 1536, settings.Embedding.Dimensions)
	assert.Equal(t, "sk-test", settings.Embedding.APIKey)
	assert.Empty(t, settings.Embedding.BaseURL)
}

func TestSettingsService_SetEmbeddingProvider_RequiresAPIKey(t *testing.T) {
	svc := NewSettingsService(newMockConfigStore())

	err := svc.SetEmbeddingProvider(domain.AIProviderOpenAI, "", "")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "API key required")
}

func TestSettingsService_SetEmbeddingProvider_Invalid(t *testing.T) {
	svc := NewSettingsService(newMockConfigStore())

	err := svc.SetEmbeddingProvider("bedrock", "", "key")

	assert.Error(t, err)
}

func TestSettingsService_SetLLMProvider(t *testing.T) {
	store := newMockConfigStore()
	svc := NewSettingsService(store)

	err := svc.SetLLMProvider(domain.AIProviderOllama, "mistral", "")
	require.NoError(t, err)

	settings, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.AIProviderOllama, settings.LLM.Provider)
	assert.Equal(t, "mistral", settings.LLM.Model)
	assert.Equal(t, "http://localhost:11434", settings.LLM.BaseURL)
}

func TestSettingsService_Validate(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		svc := NewSettingsService(newMockConfigStore())
		assert.NoError(t, svc.Validate())
	})

	t.Run("openai without key is invalid", func(t *testing.T) {
		store := newMockConfigStore()
		store.data["llm.provider"] = "openai"
		svc := NewSettingsService(store)

		assert.Error(t, svc.Validate())
	})

	t.Run("overlap at chunk size is invalid", func(t *testing.T) {
		store := newMockConfigStore()
		store.data["segment.chunk_size"] = int64(100)
		store.data["segment.overlap"] = int64(100)
		svc := NewSettingsService(store)

		assert.Error(t, svc.Validate())
	})
}

func TestSettingsService_GetDefaults(t *testing.T) {
	svc := NewSettingsService(newMockConfigStore())

	defaults := svc.GetDefaults()

	assert.Equal(t, domain.DefaultChunkSize, defaults.Segment.ChunkSize)
	assert.Equal(t, domain.AIProviderOllama, defaults.Embedding.Provider)
}
