package aigame_test

import (
	"context"
	"sync"

	"github.com/saulo-duarte/genai-learning-games/internal/aigame"
)

const testModel = "models/gemini-1.5-flash"

type stubProvider struct {
	mu      sync.Mutex
	reply   string
	err     error
	models  []string
	listErr error
	prompts []string
}

func (p *stubProvider) Generate(_ context.Context, model, prompt string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.prompts = append(p.prompts, prompt)
	if p.err != nil {
		return "", p.err
	}
	return p.reply, nil
}

func (p *stubProvider) ListModels(context.Context) ([]string, error) {
	if p.listErr != nil {
		return nil, p.listErr
	}
	return p.models, nil
}

func (p *stubProvider) calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.prompts)
}

func newService(p *stubProvider, apiKey string) aigame.Service {
	catalog := aigame.LoadCatalog(context.Background(), apiKey, p)
	return aigame.NewService(p, catalog, testModel)
}
