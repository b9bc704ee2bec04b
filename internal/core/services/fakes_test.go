package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/docent-labs/docent-cli/internal/core/domain"
	"github.com/docent-labs/docent-cli/internal/core/ports/driven"
)

// fakeVocabulary is the axis set for fakeEmbedder vectors. A text's
// vector counts occurrences of each word, so texts sharing words score
// higher under cosine similarity.
var fakeVocabulary = []string{"alpha", "beta", "gamma", "delta"}

// fakeEmbedder produces deterministic vectors from word counts.
type fakeEmbedder struct {
	model    string
	embedErr error
	calls    int
}

var _ driven.EmbeddingService = (*fakeEmbedder)(nil)

func newFakeEmbedder() *fakeEmbedder {
	return &fakeEmbedder{model: "fake-embed"}
}

func (f *fakeEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	f.calls++
	if f.embedErr != nil {
		return nil, f.embedErr
	}
	lower := strings.ToLower(text)
	vec := make([]float32, len(fakeVocabulary))
	for i, word := range fakeVocabulary {
		vec[i] = float32(strings.Count(lower, word))
	}
	// Avoid zero vectors for texts outside the vocabulary.
	vec[0] += 0.01
	return vec, nil
}

func (f *fakeEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, text := range texts {
		vec, err := f.Embed(ctx, text)
		if err != nil {
			return nil, err
		}
		out[i] = vec
	}
	return out, nil
}

func (f *fakeEmbedder) Dimensions() int                { return len(fakeVocabulary) }
func (f *fakeEmbedder) ModelName() string              { return f.model }
func (f *fakeEmbedder) Ping(ctx context.Context) error { return nil }
func (f *fakeEmbedder) Close() error                   { return nil }

// fakeLLM returns a canned response and records the last prompt.
type fakeLLM struct {
	response   string
	err        error
	lastPrompt string
}

var _ driven.LLMService = (*fakeLLM)(nil)

func (f *fakeLLM) Generate(ctx context.Context, prompt string, opts driven.GenerateOptions) (string, error) {
	f.lastPrompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func (f *fakeLLM) ModelName() string              { return "fake-llm" }
func (f *fakeLLM) Ping(ctx context.Context) error { return nil }
func (f *fakeLLM) Close() error                   { return nil }

// fakePromptStore serves a minimal answer template.
type fakePromptStore struct{}

var _ driven.PromptStore = (*fakePromptStore)(nil)

func (f *fakePromptStore) Load(name string) (string, error) {
	if name != driven.PromptAnswer {
		return "", fmt.Errorf("unknown prompt %q", name)
	}
	return "Context:\n%s\n\nQuestion:\n%s", nil
}

func (f *fakePromptStore) Reload() {}

// memSnapshotStore keeps the persisted snapshot in memory.
type memSnapshotStore struct {
	mu      sync.Mutex
	snap    *domain.Snapshot
	saveErr error
}

var _ driven.SnapshotStore = (*memSnapshotStore)(nil)

func (m *memSnapshotStore) Save(ctx context.Context, snap *domain.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.snap = snap
	return nil
}

func (m *memSnapshotStore) Load(ctx context.Context) (*domain.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.snap == nil {
		return nil, domain.ErrIndexNotFound
	}
	return m.snap, nil
}

func (m *memSnapshotStore) Delete(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snap = nil
	return nil
}
