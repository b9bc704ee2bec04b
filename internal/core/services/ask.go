package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/docent-labs/docent-cli/internal/core/domain"
	"github.com/docent-labs/docent-cli/internal/core/ports/driven"
	"github.com/docent-labs/docent-cli/internal/core/ports/driving"
	"github.com/docent-labs/docent-cli/internal/index"
	"github.com/docent-labs/docent-cli/internal/logger"
)

// Ensure AssistantService implements the interface.
var _ driving.AssistantService = (*AssistantService)(nil)

// AssistantService answers questions against the active index snapshot.
// Reads never block ingestion: the snapshot is taken once per question
// from the atomic handle and used for the whole retrieval.
type AssistantService struct {
	handle    *index.Handle
	embedder  driven.EmbeddingService
	llm       driven.LLMService
	prompts   driven.PromptStore
	retrieval domain.RetrievalSettings
}

// NewAssistantService creates a new assistant service.
func NewAssistantService(
	handle *index.Handle,
	embedder driven.EmbeddingService,
	llm driven.LLMService,
	prompts driven.PromptStore,
	retrieval domain.RetrievalSettings,
) *AssistantService {
	if retrieval.K <= 0 {
		retrieval.K = domain.DefaultRetrievalK
	}
	if retrieval.ContextLimit <= 0 {
		retrieval.ContextLimit = domain.DefaultContextLimit
	}
	if retrieval.SourceCap <= 0 {
		retrieval.SourceCap = domain.DefaultSourceCap
	}

	return &AssistantService{
		handle:    handle,
		embedder:  embedder,
		llm:       llm,
		prompts:   prompts,
		retrieval: retrieval,
	}
}

// Ask answers a question using the indexed corpus.
func (s *AssistantService) Ask(ctx context.Context, question string, opts driving.AskOptions) (*domain.Answer, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, fmt.Errorf("%w: question is empty", domain.ErrInvalidQuestion)
	}
	if len(question) > domain.MaxQuestionLength {
		return nil, fmt.Errorf("%w: question exceeds %d characters",
			domain.ErrInvalidQuestion, domain.MaxQuestionLength)
	}

	snap, err := s.handle.Active()
	if err != nil {
		return nil, err
	}

	// A snapshot built with another embedding model produces vectors in
	// a different space. Comparing against them gives garbage scores.
	if snap.Meta.Model != s.embedder.ModelName() {
		return nil, fmt.Errorf("%w: snapshot built with model %q but embedder is %q, re-run ingest",
			domain.ErrIndexCorrupt, snap.Meta.Model, s.embedder.ModelName())
	}

	queryVec, err := s.embedder.Embed(ctx, question)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrEmbeddingFailed, err)
	}

	k := opts.K
	if k <= 0 {
		k = s.retrieval.K
	}

	results, err := index.Query(snap, queryVec, k)
	if err != nil {
		return nil, fmt.Errorf("query index: %w", err)
	}
	logger.Debug("Retrieved %d chunks for question", len(results))

	if len(results) == 0 {
		return &domain.Answer{
			Text:    domain.NoInformationAnswer,
			Sources: []string{},
		}, nil
	}

	contextLimit := opts.ContextLimit
	if contextLimit <= 0 {
		contextLimit = s.retrieval.ContextLimit
	}

	promptContext := buildContext(results, contextLimit)

	template, err := s.prompts.Load(driven.PromptAnswer)
	if err != nil {
		return nil, fmt.Errorf("load answer prompt: %w", err)
	}
	prompt := fmt.Sprintf(template, promptContext, question)

	raw, err := s.llm.Generate(ctx, prompt, driven.GenerateOptions{
		Temperature: 0,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrLLMFailed, err)
	}

	return &domain.Answer{
		Text:    NormalizeAnswer(raw),
		Sources: collectSources(results, s.retrieval.SourceCap),
	}, nil
}

// buildContext deduplicates retrieved chunk texts by exact content,
// keeping first-seen order, and joins the first limit survivors with
// blank lines.
func buildContext(results []domain.ScoredChunk, limit int) string {
	seen := make(map[string]struct{})
	var texts []string
	for _, sc := range results {
		text := strings.TrimSpace(sc.Chunk.Content)
		if _, ok := seen[text]; ok {
			continue
		}
		seen[text] = struct{}{}
		texts = append(texts, text)
		if len(texts) == limit {
			break
		}
	}
	return strings.Join(texts, "\n\n")
}

// collectSources builds the citation list from every retrieved chunk,
// not only the ones that made it into the context. Duplicates are
// dropped keeping first-seen order and the list is capped.
func collectSources(results []domain.ScoredChunk, limit int) []string {
	seen := make(map[string]struct{})
	sources := make([]string, 0, len(results))
	for _, sc := range results {
		citation := fmt.Sprintf("%s — page %d", filepath.Base(sc.Chunk.Source), sc.Chunk.Page)
		if _, ok := seen[citation]; ok {
			continue
		}
		seen[citation] = struct{}{}
		sources = append(sources, citation)
		if len(sources) == limit {
			break
		}
	}
	return sources
}
