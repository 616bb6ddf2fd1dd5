package aigame

import (
	"context"

	"github.com/saulo-duarte/genai-learning-games/internal/config"
)

type AIGameContainer struct {
	Handler *Handler
	Catalog *Catalog
}

// NewAIGameContainer builds the Gemini provider and resolves the model
// catalog once for the life of the process.
func NewAIGameContainer(ctx context.Context, s *config.Settings) (*AIGameContainer, error) {
	provider, err := NewGeminiProvider(ctx, s.APIKey)
	if err != nil {
		return nil, err
	}
	return NewAIGameContainerWithProvider(ctx, s, provider), nil
}

func NewAIGameContainerWithProvider(ctx context.Context, s *config.Settings, provider Provider) *AIGameContainer {
	catalog := LoadCatalog(ctx, s.APIKey, provider)
	service := NewService(provider, catalog, s.Model)
	handler := NewHandler(service)

	return &AIGameContainer{
		Handler: handler,
		Catalog: catalog,
	}
}
