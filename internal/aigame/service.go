package aigame

import (
	"context"
	"strings"

	"github.com/saulo-duarte/genai-learning-games/internal/config"
)

type Service interface {
	GenerateQuestion(ctx context.Context, req QuestionRequest) (*QuestionResponse, error)
	EvaluateAnswer(ctx context.Context, req AnswerEvaluationRequest) (*FeedbackResponse, error)
}

type service struct {
	provider Provider
	catalog  *Catalog
	model    string
}

func NewService(provider Provider, catalog *Catalog, model string) Service {
	return &service{
		provider: provider,
		catalog:  catalog,
		model:    model,
	}
}

func (s *service) GenerateQuestion(ctx context.Context, req QuestionRequest) (*QuestionResponse, error) {
	log := config.WithContext(ctx).WithField("topic", req.Topic)

	text, err := s.complete(ctx, BuildQuestionPrompt(req))
	if err != nil {
		log.WithError(err).Warn("Failed to generate question")
		return nil, err
	}

	log.Info("[AIGAME] Question generated")
	return &QuestionResponse{Question: text}, nil
}

func (s *service) EvaluateAnswer(ctx context.Context, req AnswerEvaluationRequest) (*FeedbackResponse, error) {
	log := config.WithContext(ctx)

	text, err := s.complete(ctx, BuildEvaluationPrompt(req))
	if err != nil {
		log.WithError(err).Warn("Failed to evaluate answer")
		return nil, err
	}

	log.Info("[AIGAME] Answer evaluated")
	return &FeedbackResponse{Feedback: text}, nil
}

// complete runs the credential and catalog checks before touching the
// provider, then trims the reply.
func (s *service) complete(ctx context.Context, prompt string) (string, error) {
	if !s.catalog.HasCredential() {
		return "", ErrMissingCredential
	}
	if !s.catalog.Has(s.model) {
		return "", &ModelNotFoundError{Model: s.model}
	}

	raw, err := s.provider.Generate(ctx, s.model, prompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(raw), nil
}
