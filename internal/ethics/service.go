package ethics

import (
	"context"

	"github.com/yungbote/ethos-backend/internal/platform/anthropic"
	"github.com/yungbote/ethos-backend/internal/platform/logger"
)

const (
	analysisMaxTokens = 2048
	graderMaxTokens   = 256
	temperature       = 0.2
)

// Service runs the two model-backed operations. Both are single blocking
// calls: validate upstream, compose, submit, return the aggregated text.
type Service interface {
	Analyze(ctx context.Context, situation string) (string, error)
	Grade(ctx context.Context, completion string, rubric string) (string, error)
}

type Config struct {
	AnalysisModel string
	GraderModel   string
}

type service struct {
	log    *logger.Logger
	client anthropic.Client
	cfg    Config
}

func NewService(log *logger.Logger, client anthropic.Client, cfg Config) Service {
	return &service{
		log:    log.With("service", "EthicsService"),
		client: client,
		cfg:    cfg,
	}
}

func (s *service) Analyze(ctx context.Context, situation string) (string, error) {
	prompt := ComposePrompt(situation)
	text, err := s.client.Complete(ctx, anthropic.CompletionRequest{
		Model:       s.cfg.AnalysisModel,
		System:      SystemRole,
		UserMessage: prompt,
		MaxTokens:   analysisMaxTokens,
		Temperature: temperature,
	})
	if err != nil {
		s.log.Error("Ethical analysis failed", "model", s.cfg.AnalysisModel, "error", err)
		return "", err
	}
	return text, nil
}

func (s *service) Grade(ctx context.Context, completion string, rubric string) (string, error) {
	prompt := BuildGraderPrompt(completion, rubric)
	text, err := s.client.Complete(ctx, anthropic.CompletionRequest{
		Model:       s.cfg.GraderModel,
		UserMessage: prompt,
		MaxTokens:   graderMaxTokens,
		Temperature: temperature,
	})
	if err != nil {
		s.log.Error("Completion grading failed", "model", s.cfg.GraderModel, "error", err)
		return "", err
	}
	return text, nil
}
