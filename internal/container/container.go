package container

import (
	"context"

	"github.com/go-chi/chi/v5"

	"github.com/saulo-duarte/genai-learning-games/internal/aigame"
	"github.com/saulo-duarte/genai-learning-games/internal/config"
	"github.com/saulo-duarte/genai-learning-games/internal/router"
)

type Container struct {
	Settings        *config.Settings
	AIGameContainer *aigame.AIGameContainer
}

// New loads settings, configures logging and resolves the model catalog.
// It fails when the Gemini credential is absent.
func New(ctx context.Context) (*Container, error) {
	settings, err := config.Load()
	if err != nil {
		return nil, err
	}
	config.InitLogger(settings)

	aiGameContainer, err := aigame.NewAIGameContainer(ctx, settings)
	if err != nil {
		return nil, err
	}

	log := config.WithContext(ctx).WithField("model", settings.Model)
	if aiGameContainer.Catalog.Has(settings.Model) {
		log.Info("Configured model is available")
	} else {
		log.Warn("Configured model is not in the model catalog; generation requests will be rejected")
	}

	return &Container{
		Settings:        settings,
		AIGameContainer: aiGameContainer,
	}, nil
}

func (c *Container) Router() *chi.Mux {
	return router.New(router.RouterConfig{
		AIGameHandler:  c.AIGameContainer.Handler,
		FrontendOrigin: c.Settings.FrontendOrigin,
	})
}
