package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel/trace"

	"lintora.co/server/common/llm"
	"lintora.co/server/common/logger"
	"lintora.co/server/core/config"
	"lintora.co/server/internal/model"
	"lintora.co/server/internal/queue"
	"lintora.co/server/internal/review"
)

var (
	ErrEmptyCode           = errors.New("code is required")
	ErrInvalidAnalysisType = errors.New("invalid analysis type")
	ErrProvider            = errors.New("llm provider request failed")
)

// costPerToken is the rough blended price used for the cost estimate
// surfaced in metrics. Not a billing figure.
const costPerToken = 0.00001

// reviewTemperature keeps the model factual; higher values produce
// findings the parser can't anchor to real lines.
const reviewTemperature = 0.2

type ReviewService interface {
	AnalyzeCode(ctx context.Context, user *model.User, req review.Request) (*model.AnalysisResult, error)
	AnalyzeIncremental(ctx context.Context, user *model.User, req review.IncrementalRequest) (*model.AnalysisResult, error)
	GenerateFix(ctx context.Context, code string, finding model.Finding, language string) (string, error)
	GenerateCompleteFix(ctx context.Context, code, language string, findings []model.Finding) (string, error)
}

type reviewService struct {
	llmClient     llm.Client
	subscriptions SubscriptionService
	producer      queue.Producer
	cfg           config.LLMConfig
}

func NewReviewService(
	llmClient llm.Client,
	subscriptions SubscriptionService,
	producer queue.Producer,
	cfg config.LLMConfig,
) ReviewService {
	return &reviewService{
		llmClient:     llmClient,
		subscriptions: subscriptions,
		producer:      producer,
		cfg:           cfg,
	}
}

func (s *reviewService) AnalyzeCode(ctx context.Context, user *model.User, req review.Request) (*model.AnalysisResult, error) {
	if strings.TrimSpace(req.Code) == "" {
		return nil, ErrEmptyCode
	}
	for _, t := range req.AnalysisTypes {
		if !model.ValidAnalysisType(t) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidAnalysisType, t)
		}
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{
		UserID:    logger.Ptr(user.ID),
		Language:  logger.Ptr(req.Language),
		Component: "lintora.review",
	})

	systemPrompt, userPrompt := review.BuildPrompts(req)

	started := time.Now()
	resp, err := s.generate(ctx, systemPrompt, userPrompt, 0)
	if err != nil {
		return nil, fmt.Errorf("generating review: %w", err)
	}
	elapsed := time.Since(started)

	findings := review.Parse(resp.Text, req.FindingType())
	overallScore := review.Score(findings)

	result := &model.AnalysisResult{
		Summary:     review.Summarize(findings, overallScore),
		Findings:    findings,
		Suggestions: review.BuildSuggestions(findings),
		Metrics:     buildMetrics(resp.TotalTokens(), elapsed),
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}

	slog.InfoContext(ctx, "code analyzed",
		"findings", len(findings),
		"overall_score", overallScore,
		"tokens_used", resp.TotalTokens(),
		"duration_ms", elapsed.Milliseconds())

	s.settle(ctx, user, req.Language, req.Filename, len(req.Code), result)
	return result, nil
}

func (s *reviewService) AnalyzeIncremental(ctx context.Context, user *model.User, req review.IncrementalRequest) (*model.AnalysisResult, error) {
	if strings.TrimSpace(req.ModifiedCode) == "" {
		return nil, ErrEmptyCode
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{
		UserID:    logger.Ptr(user.ID),
		Language:  logger.Ptr(req.Language),
		Component: "lintora.review",
	})

	diff := review.Diff(req.OriginalCode, req.ModifiedCode)
	if diff == "" {
		// Nothing changed: perfect score, no model call, no charge.
		slog.InfoContext(ctx, "incremental review skipped, no changes")
		return &model.AnalysisResult{
			Summary:   review.Summarize(nil, 100),
			Findings:  []model.Finding{},
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		}, nil
	}

	systemPrompt, userPrompt := review.BuildIncrementalPrompts(req, diff)

	started := time.Now()
	resp, err := s.generate(ctx, systemPrompt, userPrompt, 0)
	if err != nil {
		return nil, fmt.Errorf("generating incremental review: %w", err)
	}
	elapsed := time.Since(started)

	findings := review.Parse(resp.Text, model.AnalysisQuality)
	overallScore := review.ScoreIncremental(findings)

	result := &model.AnalysisResult{
		Summary:     review.Summarize(findings, overallScore),
		Findings:    findings,
		Suggestions: review.BuildSuggestions(findings),
		Metrics:     buildMetrics(resp.TotalTokens(), elapsed),
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}

	slog.InfoContext(ctx, "incremental review analyzed",
		"findings", len(findings),
		"overall_score", overallScore,
		"tokens_used", resp.TotalTokens(),
		"duration_ms", elapsed.Milliseconds())

	s.settle(ctx, user, req.Language, req.Filename, len(req.ModifiedCode), result)
	return result, nil
}

func (s *reviewService) GenerateFix(ctx context.Context, code string, finding model.Finding, language string) (string, error) {
	if strings.TrimSpace(code) == "" {
		return "", ErrEmptyCode
	}

	systemPrompt, userPrompt := review.BuildFixPrompt(code, finding, language)
	resp, err := s.generate(ctx, systemPrompt, userPrompt, 0)
	if err != nil {
		return "", fmt.Errorf("generating fix: %w", err)
	}

	return review.StripCodeFences(resp.Text), nil
}

func (s *reviewService) GenerateCompleteFix(ctx context.Context, code, language string, findings []model.Finding) (string, error) {
	if strings.TrimSpace(code) == "" {
		return "", ErrEmptyCode
	}

	systemPrompt, userPrompt := review.BuildCompleteFixPrompt(code, language, findings)

	// The whole corrected file has to fit, so give it more room than a
	// review reply gets.
	maxTokens := s.cfg.MaxTokens * 4
	resp, err := s.generate(ctx, systemPrompt, userPrompt, maxTokens)
	if err != nil {
		return "", fmt.Errorf("generating complete fix: %w", err)
	}

	return review.StripCodeFences(resp.Text), nil
}

func (s *reviewService) generate(ctx context.Context, systemPrompt, userPrompt string, maxTokens int) (*llm.Response, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	resp, err := s.llmClient.Generate(ctx, llm.Request{
		SystemPrompt: systemPrompt,
		UserPrompt:   userPrompt,
		MaxTokens:    maxTokens,
		Temperature:  llm.Temp(reviewTemperature),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProvider, err)
	}
	return resp, nil
}

// settle charges the ledger and records usage after a successful analysis.
// Both are best-effort: the caller already has their result.
func (s *reviewService) settle(ctx context.Context, user *model.User, language, filename string, codeSize int, result *model.AnalysisResult) {
	if err := s.subscriptions.ChargeReview(ctx, user); err != nil {
		slog.ErrorContext(ctx, "failed to charge review", "error", err, "user_id", user.ID)
	}

	event := queue.UsageEvent{
		UserID:       user.ID,
		Language:     language,
		Filename:     filename,
		CodeSize:     codeSize,
		Findings:     result.Summary.TotalFindings,
		OverallScore: result.Summary.OverallScore,
		TokensUsed:   result.Metrics.TokensUsed,
		AnalysisTime: result.Metrics.AnalysisTime,
	}
	if span := trace.SpanContextFromContext(ctx); span.HasTraceID() {
		event.TraceID = logger.Ptr(span.TraceID().String())
	}

	if err := s.producer.Enqueue(ctx, event); err != nil {
		slog.ErrorContext(ctx, "failed to enqueue usage event", "error", err, "user_id", user.ID)
	}
}

func buildMetrics(tokens int, elapsed time.Duration) model.Metrics {
	return model.Metrics{
		TokensUsed:   tokens,
		AnalysisTime: elapsed.Milliseconds(),
		CostEstimate: float64(tokens) * costPerToken,
	}
}
