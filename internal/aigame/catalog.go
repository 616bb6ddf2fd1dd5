package aigame

import (
	"context"
	"sort"
	"strings"

	"github.com/saulo-duarte/genai-learning-games/internal/config"
)

const modelPrefix = "models/"

type ModelLister interface {
	ListModels(ctx context.Context) ([]string, error)
}

// Catalog is the credential and model list resolved at startup. It is never
// modified after construction.
type Catalog struct {
	hasCredential bool
	models        map[string]struct{}
}

func NewCatalog(apiKey string, models []string) *Catalog {
	set := make(map[string]struct{}, len(models))
	for _, m := range models {
		if n := normalizeModel(m); n != "" {
			set[n] = struct{}{}
		}
	}
	return &Catalog{hasCredential: apiKey != "", models: set}
}

// LoadCatalog fetches the models visible to apiKey. A listing failure is
// logged and produces an empty catalog, so every generation call will then
// be rejected as model-not-found.
func LoadCatalog(ctx context.Context, apiKey string, lister ModelLister) *Catalog {
	log := config.WithContext(ctx)

	models, err := lister.ListModels(ctx)
	if err != nil {
		log.WithError(err).Error("Error fetching model list")
		return NewCatalog(apiKey, nil)
	}

	catalog := NewCatalog(apiKey, models)
	log.WithField("models", catalog.Models()).Info("Available models")
	return catalog
}

func (c *Catalog) HasCredential() bool {
	return c != nil && c.hasCredential
}

func (c *Catalog) Has(model string) bool {
	if c == nil {
		return false
	}
	_, ok := c.models[normalizeModel(model)]
	return ok
}

func (c *Catalog) Models() []string {
	if c == nil {
		return nil
	}
	out := make([]string, 0, len(c.models))
	for m := range c.models {
		out = append(out, m)
	}
	sort.Strings(out)
	return out
}

func normalizeModel(m string) string {
	m = strings.TrimSpace(m)
	if m == "" || strings.HasPrefix(m, modelPrefix) {
		return m
	}
	return modelPrefix + m
}
