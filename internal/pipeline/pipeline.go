package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/HinataHamura/ai-reality-engine/internal/cache"
	"github.com/HinataHamura/ai-reality-engine/internal/extract"
	"github.com/HinataHamura/ai-reality-engine/internal/llm"
	"github.com/HinataHamura/ai-reality-engine/internal/model"
	"github.com/HinataHamura/ai-reality-engine/internal/score"
	"github.com/HinataHamura/ai-reality-engine/internal/search"
	"github.com/HinataHamura/ai-reality-engine/internal/verify"
	"github.com/HinataHamura/ai-reality-engine/internal/worker"
)

// ClaimExtractor extracts factual claims from free text
type ClaimExtractor interface {
	Extract(ctx context.Context, text string) ([]model.Claim, error)
}

// EvidenceRetriever fetches evidence snippets for one claim
type EvidenceRetriever interface {
	Retrieve(ctx context.Context, claimText string) ([]model.EvidenceSnippet, error)
}

// Judge classifies one claim against its evidence
type Judge interface {
	Judge(ctx context.Context, claim model.Claim, evidence []model.EvidenceSnippet) (*model.Judgment, error)
}

// SummaryGenerator produces the overall prose summary
type SummaryGenerator interface {
	IsEnabled() bool
	GenerateSummary(ctx context.Context, verdicts []model.ClaimVerdict, language string) (string, error)
}

// Pipeline orchestrates one fact-check request: extract claims, retrieve
// evidence, judge each claim, aggregate and summarize. It holds no state
// across requests.
type Pipeline struct {
	extractor  ClaimExtractor
	retriever  EvidenceRetriever
	judge      Judge
	summarizer SummaryGenerator
	pool       *worker.Pool
	logger     *zap.Logger
}

// New wires a Pipeline from configuration: one LLM provider shared by the
// extraction, verification and summary stages, and a search retriever with
// Tavily as primary when a key is configured and DuckDuckGo as fallback.
func New(cfg *model.Config, logger *zap.Logger) (*Pipeline, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	provider, err := llm.NewProvider(llm.ConfigFromModel(cfg.LLM))
	if err != nil {
		return nil, fmt.Errorf("init LLM provider: %w", err)
	}

	ddg := search.NewDuckDuckGoProvider(cfg.Search.Timeout)
	var primary, secondary search.Provider = ddg, nil
	if cfg.Search.TavilyAPIKey != "" {
		tavily, err := search.NewTavilyProvider(cfg.Search.TavilyAPIKey, cfg.Search.Timeout)
		if err != nil {
			return nil, fmt.Errorf("init Tavily provider: %w", err)
		}
		primary, secondary = tavily, ddg
	} else {
		logger.Info("TAVILY_API_KEY not set, using DuckDuckGo only")
	}

	retriever := search.NewRetriever(
		primary,
		secondary,
		cache.NewMemoryCache(cfg.Search.CacheTTL, 2*cfg.Search.CacheTTL),
		worker.NewLimiter(cfg.Search.RequestsPerSecond, cfg.Search.Burst),
		cfg.Search,
		logger,
	)

	return &Pipeline{
		extractor:  extract.NewClaimExtractor(provider),
		retriever:  retriever,
		judge:      verify.NewVerifier(provider),
		summarizer: llm.NewSummarizer(provider),
		pool:       worker.NewPool(cfg.Concurrency.ClaimWorkers),
		logger:     logger,
	}, nil
}

// NewWithStages wires a Pipeline from explicit stage implementations (tests)
func NewWithStages(extractor ClaimExtractor, retriever EvidenceRetriever, judge Judge, summarizer SummaryGenerator, workers int, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{
		extractor:  extractor,
		retriever:  retriever,
		judge:      judge,
		summarizer: summarizer,
		pool:       worker.NewPool(workers),
		logger:     logger,
	}
}

// CheckText runs the full pipeline over one text submission.
// Claim-scoped failures degrade to NEUTRAL/UNVERIFIED verdicts and are
// surfaced in the report's error list; only extraction failure aborts.
func (p *Pipeline) CheckText(ctx context.Context, text, language string) (*model.Report, error) {
	report := &model.Report{
		JobID:        newID("job"),
		RunID:        newID("run"),
		CreatedAt:    time.Now().UTC(),
		OriginalText: text,
		Language:     language,
	}

	claims, err := p.extractor.Extract(ctx, text)
	if err != nil {
		return nil, model.NewStageError(model.ErrExtraction, "", err)
	}
	report.Claims = claims
	p.logger.Info("claims extracted", zap.String("job_id", report.JobID), zap.Int("count", len(claims)))

	jobs := make([]worker.Job, len(claims))
	for i, claim := range claims {
		jobs[i] = &claimJob{pipeline: p, claim: claim}
	}
	results := p.pool.Run(ctx, jobs)

	verdicts := make([]model.ClaimVerdict, 0, len(claims))
	for i, res := range results {
		if res == nil {
			// Cancelled before dispatch
			verdicts = append(verdicts, score.NeutralVerdict(claims[i], "verification cancelled"))
			report.Errors = append(report.Errors, model.NewStageError(model.ErrVerdict, claims[i].ID, ctx.Err()))
			continue
		}
		cr := res.(*claimResult)
		verdicts = append(verdicts, cr.verdict)
		report.Errors = append(report.Errors, cr.errors...)
	}
	report.Verdicts = verdicts
	report.Overall = score.Aggregate(verdicts)

	if p.summarizer != nil && p.summarizer.IsEnabled() {
		summary, err := p.summarizer.GenerateSummary(ctx, verdicts, language)
		if err != nil {
			p.logger.Warn("summary generation failed", zap.String("job_id", report.JobID), zap.Error(err))
			report.Errors = append(report.Errors, model.NewStageError(model.ErrSummary, "", err))
		} else {
			report.Summary = summary
		}
	}

	p.logger.Info("fact-check complete",
		zap.String("job_id", report.JobID),
		zap.String("label", string(report.Overall.Label)),
		zap.Float64("confidence", report.Overall.Confidence),
		zap.Int("errors", len(report.Errors)))

	return report, nil
}

// claimJob retrieves evidence and judges a single claim on the worker pool
type claimJob struct {
	pipeline *Pipeline
	claim    model.Claim
}

type claimResult struct {
	verdict model.ClaimVerdict
	errors  []model.StageError
}

func (r *claimResult) GetError() error {
	if len(r.errors) == 0 {
		return nil
	}
	return r.errors[0]
}

// Execute implements worker.Job. Evidence failure degrades to a NEUTRAL
// judgment rather than skipping the claim; judge failure forces the
// UNVERIFIED verdict.
func (j *claimJob) Execute(ctx context.Context) worker.Result {
	result := &claimResult{}
	p, claim := j.pipeline, j.claim

	evidence, err := p.retriever.Retrieve(ctx, claim.Text)
	if err != nil {
		result.errors = append(result.errors, model.NewStageError(model.ErrEvidence, claim.ID, err))
		result.verdict = score.NeutralVerdict(claim, "evidence unavailable: all search providers failed")
		return result
	}

	judgment, err := p.judge.Judge(ctx, claim, evidence)
	if err != nil {
		result.errors = append(result.errors, model.NewStageError(model.ErrVerdict, claim.ID, err))
		result.verdict = score.NeutralVerdict(claim, "verification unavailable")
		result.verdict.Evidence = evidence
		return result
	}

	result.verdict = score.DeriveVerdict(claim, *judgment, evidence)
	return result
}

// newID builds the short request identifiers used in responses
func newID(prefix string) string {
	return prefix + "-" + strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}
