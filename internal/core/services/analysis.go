package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/radar/internal/core/analysis"
	"github.com/custodia-labs/radar/internal/core/domain"
	"github.com/custodia-labs/radar/internal/core/ports/driven"
	"github.com/custodia-labs/radar/internal/core/ports/driving"
	"github.com/custodia-labs/radar/internal/logger"
)

// Ensure AnalysisService implements the interface.
var _ driving.AnalysisService = (*AnalysisService)(nil)

// AnalysisService produces verdicts, optionally asking an LLM first.
// Without an LLM it is a thin wrapper over the rule-based registry.
type AnalysisService struct {
	registry *analysis.Registry
	llm      driven.LLMService
	prompts  driven.PromptStore
	timeout  time.Duration
	limiter  *rate.Limiter
	genOpts  driven.GenerateOptions
}

// AnalysisOption configures an AnalysisService.
type AnalysisOption func(*AnalysisService)

// WithLLM enables the AI attempt. A nil service keeps verdicts rule-based.
func WithLLM(llm driven.LLMService) AnalysisOption {
	return func(s *AnalysisService) {
		s.llm = llm
	}
}

// WithPromptStore lets prompts be customised. Without it the built-in
// templates are used.
func WithPromptStore(store driven.PromptStore) AnalysisOption {
	return func(s *AnalysisService) {
		s.prompts = store
	}
}

// WithTimeout bounds each AI call. Non-positive values keep the default.
func WithTimeout(d time.Duration) AnalysisOption {
	return func(s *AnalysisService) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithRateLimit caps AI calls per minute. Calls over the budget are not
// queued; they get the rule-based verdict straight away.
func WithRateLimit(perMinute int) AnalysisOption {
	return func(s *AnalysisService) {
		if perMinute > 0 {
			s.limiter = rate.NewLimiter(rate.Limit(float64(perMinute)/60), perMinute)
		}
	}
}

// WithGenerateOptions overrides the sampling settings.
func WithGenerateOptions(opts driven.GenerateOptions) AnalysisOption {
	return func(s *AnalysisService) {
		s.genOpts = opts
	}
}

// NewAnalysisService creates an analysis service over registry.
func NewAnalysisService(registry *analysis.Registry, opts ...AnalysisOption) *AnalysisService {
	s := &AnalysisService{
		registry: registry,
		timeout:  domain.DefaultLLMTimeout,
		genOpts:  driven.DefaultGenerateOptions(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AIEnabled reports whether an LLM is wired in.
func (s *AnalysisService) AIEnabled() bool {
	return s.llm != nil
}

// RuleBased returns the deterministic verdict for d.
func (s *AnalysisService) RuleBased(d domain.Domain, answers domain.AnswerSet) (domain.Verdict, error) {
	a, err := s.registry.Get(d)
	if err != nil {
		return domain.Verdict{}, err
	}
	return a.Analyze(answers), nil
}

// Analyze returns the AI verdict when an LLM is configured and answers in
// time, otherwise the rule-based verdict. The AI is tried at most once.
func (s *AnalysisService) Analyze(ctx context.Context, d domain.Domain, answers domain.AnswerSet) (domain.Verdict, error) {
	fallback, err := s.RuleBased(d, answers)
	if err != nil {
		return domain.Verdict{}, err
	}
	if s.llm == nil {
		logger.Debug("rule-based verdict for %s", d)
		return fallback, nil
	}
	return s.attempt(ctx, d, answers).OrElse(fallback), nil
}

// AnalyzeDebt analyzes a debt recovery case.
func (s *AnalysisService) AnalyzeDebt(ctx context.Context, answers domain.AnswerSet) domain.Verdict {
	return s.mustAnalyze(ctx, domain.DomainDebt, answers)
}

// AnalyzeMarket analyzes a market position.
func (s *AnalysisService) AnalyzeMarket(ctx context.Context, answers domain.AnswerSet) domain.Verdict {
	return s.mustAnalyze(ctx, domain.DomainMarket, answers)
}

// AnalyzeHiring analyzes a hiring candidate.
func (s *AnalysisService) AnalyzeHiring(ctx context.Context, answers domain.AnswerSet) domain.Verdict {
	return s.mustAnalyze(ctx, domain.DomainHiring, answers)
}

// AnalyzeImport analyzes an import deal.
func (s *AnalysisService) AnalyzeImport(ctx context.Context, answers domain.AnswerSet) domain.Verdict {
	return s.mustAnalyze(ctx, domain.DomainImport, answers)
}

// AnalyzeIdea analyzes a business idea.
func (s *AnalysisService) AnalyzeIdea(ctx context.Context, answers domain.AnswerSet) domain.Verdict {
	return s.mustAnalyze(ctx, domain.DomainIdea, answers)
}

// mustAnalyze is for the built-in domains, which are always registered
// by NewRegistry. A custom registry missing one yields an unknown verdict.
func (s *AnalysisService) mustAnalyze(ctx context.Context, d domain.Domain, answers domain.AnswerSet) domain.Verdict {
	v, err := s.Analyze(ctx, d, answers)
	if err != nil {
		return domain.Verdict{Domain: d, Zone: domain.ZoneUnknown, Origin: domain.OriginRuleBased}
	}
	return v
}

type reply struct {
	text string
	err  error
}

// providerResult is the outcome of one AI attempt.
type providerResult struct {
	verdict domain.Verdict
	err     error
}

// OrElse returns the AI verdict, or fallback if the attempt failed.
func (r providerResult) OrElse(fallback domain.Verdict) domain.Verdict {
	if r.err != nil {
		return fallback
	}
	return r.verdict
}

func (s *AnalysisService) attempt(ctx context.Context, d domain.Domain, answers domain.AnswerSet) providerResult {
	id := uuid.NewString()
	start := time.Now()
	logger.Infow("ai attempt", "request_id", id, "domain", d, "model", s.llm.ModelName())

	result := s.generate(ctx, d, answers)
	if result.err != nil {
		logger.Warnw("ai attempt failed, using rule-based verdict",
			"request_id", id, "domain", d, "error", result.err, "elapsed", time.Since(start))
		return result
	}

	logger.Infow("ai verdict", "request_id", id, "domain", d, "zone", result.verdict.Zone, "elapsed", time.Since(start))
	return result
}

func (s *AnalysisService) generate(ctx context.Context, d domain.Domain, answers domain.AnswerSet) providerResult {
	if s.limiter != nil && !s.limiter.Allow() {
		return providerResult{err: domain.ErrRateLimited}
	}

	prompt, err := analysis.RenderPrompt(s.loadPrompt(d), answers)
	if err != nil {
		return providerResult{err: err}
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	// The call is bounded even if a provider ignores ctx; its goroutine
	// exits as soon as the provider returns.
	replies := make(chan reply, 1)
	go func() {
		defer func() {
			if p := recover(); p != nil {
				replies <- reply{err: fmt.Errorf("%w: provider panicked: %v", domain.ErrLLMUnavailable, p)}
			}
		}()
		text, err := s.llm.Generate(ctx, prompt, s.genOpts)
		replies <- reply{text: text, err: err}
	}()

	var text string
	select {
	case r := <-replies:
		if r.err != nil {
			return providerResult{err: fmt.Errorf("generate: %w", r.err)}
		}
		text = strings.TrimSpace(r.text)
	case <-ctx.Done():
		return providerResult{err: fmt.Errorf("generate: %w", ctx.Err())}
	}
	if text == "" {
		return providerResult{err: domain.ErrEmptyResponse}
	}

	return providerResult{verdict: domain.Verdict{
		Domain:   d,
		Zone:     analysis.InferZoneFor(d, text),
		Headline: text,
		Signals:  []domain.Signal{},
		Origin:   domain.OriginAIGenerated,
	}}
}

// loadPrompt loads a prompt from the store, falling back to the default if unavailable.
func (s *AnalysisService) loadPrompt(d domain.Domain) string {
	fallback := analysis.DefaultPrompt(d)
	if s.prompts == nil {
		return fallback
	}
	prompt, err := s.prompts.Load(driven.PromptName(d))
	if err != nil || prompt == "" {
		return fallback
	}
	return prompt
}
