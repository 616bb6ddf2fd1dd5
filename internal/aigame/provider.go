package aigame

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"google.golang.org/genai"

	"github.com/saulo-duarte/genai-learning-games/internal/config"
)

// Provider is the generative model collaborator. Generate failures are always
// a *ProviderError.
type Provider interface {
	Generate(ctx context.Context, model, prompt string) (string, error)
	ListModels(ctx context.Context) ([]string, error)
}

type geminiProvider struct {
	client *genai.Client
}

func NewGeminiProvider(ctx context.Context, apiKey string) (Provider, error) {
	p, err := newGeminiProvider(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func newGeminiProvider(ctx context.Context, cfg *genai.ClientConfig) (*geminiProvider, error) {
	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &geminiProvider{client: client}, nil
}

func (p *geminiProvider) Generate(ctx context.Context, model, prompt string) (string, error) {
	log := config.WithContext(ctx).WithFields(logrus.Fields{
		"generation_id": uuid.NewString(),
		"model":         model,
	})

	result, err := p.client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
	if err != nil {
		perr := classify(err)
		log.WithError(err).WithField("kind", perr.Kind.String()).Error("Gemini content generation failed")
		return "", perr
	}

	raw := result.Text()
	log.Debugf("[AIGAME] Raw Gemini reply:\n%s", raw)

	if strings.TrimSpace(raw) == "" {
		return "", providerError(KindUnexpected, errors.New("empty response from model"))
	}
	return raw, nil
}

func (p *geminiProvider) ListModels(ctx context.Context) ([]string, error) {
	var names []string
	for m, err := range p.client.Models.All(ctx) {
		if err != nil {
			return nil, fmt.Errorf("failed to list models: %w", err)
		}
		names = append(names, m.Name)
	}
	return names, nil
}

// classify tags a genai error with the category the HTTP layer maps on.
func classify(err error) *ProviderError {
	var apiErr genai.APIError
	if !errors.As(err, &apiErr) {
		var apiErrPtr *genai.APIError
		if !errors.As(err, &apiErrPtr) || apiErrPtr == nil {
			return providerError(KindUnexpected, err)
		}
		apiErr = *apiErrPtr
	}

	status := strings.ToUpper(apiErr.Status)
	switch {
	case apiErr.Code == http.StatusTooManyRequests || strings.Contains(status, "RESOURCE_EXHAUSTED"):
		return providerError(KindRateLimited, err)
	case apiErr.Code == http.StatusBadRequest,
		strings.Contains(status, "INVALID_ARGUMENT"),
		strings.Contains(status, "FAILED_PRECONDITION"):
		return providerError(KindInvalidRequest, err)
	default:
		return providerError(KindUnexpected, err)
	}
}
