package search

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/HinataHamura/ai-reality-engine/internal/cache"
	"github.com/HinataHamura/ai-reality-engine/internal/model"
	"github.com/HinataHamura/ai-reality-engine/internal/worker"
)

// Provider defines the interface for web search providers
type Provider interface {
	// Name returns the provider name
	Name() string

	// Search returns up to max evidence snippets for the query
	Search(ctx context.Context, query string, max int) ([]model.EvidenceSnippet, error)
}

// Retriever fetches evidence for a claim from a primary provider with a
// single documented fallback to a secondary provider. Results are cached
// per query and provider calls are rate limited per API host.
type Retriever struct {
	primary   Provider
	secondary Provider
	cache     cache.Cache
	limiter   *worker.Limiter
	config    model.SearchConfig
	logger    *zap.Logger
}

// NewRetriever creates a retriever over the given provider pair.
// secondary may be nil, in which case no fallback is attempted.
func NewRetriever(primary, secondary Provider, c cache.Cache, limiter *worker.Limiter, cfg model.SearchConfig, logger *zap.Logger) *Retriever {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Retriever{
		primary:   primary,
		secondary: secondary,
		cache:     c,
		limiter:   limiter,
		config:    cfg,
		logger:    logger,
	}
}

// Retrieve returns evidence snippets for the claim text. A primary failure
// (error or empty result) triggers exactly one secondary call. An error is
// returned only when no provider produced results and at least one errored.
func (r *Retriever) Retrieve(ctx context.Context, claimText string) ([]model.EvidenceSnippet, error) {
	if cached, ok := r.cacheGet(claimText); ok {
		return cached, nil
	}

	snippets, primaryErr := r.callProvider(ctx, r.primary, claimText)
	if primaryErr == nil && len(snippets) > 0 {
		r.cachePut(claimText, snippets)
		return snippets, nil
	}

	if primaryErr != nil {
		r.logger.Warn("primary search provider failed",
			zap.String("provider", r.primary.Name()),
			zap.Error(primaryErr))
	}

	if r.secondary == nil {
		if primaryErr != nil {
			return nil, fmt.Errorf("search %s: %w", r.primary.Name(), primaryErr)
		}
		return nil, nil // Empty but successful: no evidence found
	}

	snippets, secondaryErr := r.callProvider(ctx, r.secondary, claimText)
	if secondaryErr != nil {
		r.logger.Warn("secondary search provider failed",
			zap.String("provider", r.secondary.Name()),
			zap.Error(secondaryErr))
		if primaryErr != nil {
			return nil, fmt.Errorf("search %s: %v; fallback %s: %w",
				r.primary.Name(), primaryErr, r.secondary.Name(), secondaryErr)
		}
		return nil, fmt.Errorf("fallback %s: %w", r.secondary.Name(), secondaryErr)
	}

	if len(snippets) > 0 {
		r.cachePut(claimText, snippets)
	}
	return snippets, nil
}

func (r *Retriever) callProvider(ctx context.Context, p Provider, query string) ([]model.EvidenceSnippet, error) {
	if r.limiter != nil {
		if err := r.limiter.Wait(ctx, p.Name()); err != nil {
			return nil, fmt.Errorf("rate limit: %w", err)
		}
	}
	return p.Search(ctx, query, r.config.MaxResults)
}

func (r *Retriever) cacheGet(query string) ([]model.EvidenceSnippet, bool) {
	if r.cache == nil {
		return nil, false
	}
	data, found := r.cache.Get(cache.Key(query))
	if !found {
		return nil, false
	}
	var snippets []model.EvidenceSnippet
	if err := json.Unmarshal(data, &snippets); err != nil {
		return nil, false
	}
	return snippets, true
}

func (r *Retriever) cachePut(query string, snippets []model.EvidenceSnippet) {
	if r.cache == nil {
		return
	}
	data, err := json.Marshal(snippets)
	if err != nil {
		return
	}
	_ = r.cache.Set(cache.Key(query), data, r.config.CacheTTL)
}
