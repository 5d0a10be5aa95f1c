package ai

import (
	"fmt"
	"strings"

	"github.com/shauryacodes/nas-backend/internal/platform/envutil"
	"github.com/shauryacodes/nas-backend/internal/platform/logger"
)

// Completion is the normalized response shape shared by every provider.
type Completion struct {
	Service        string `json:"service"`
	Model          string `json:"model"`
	Content        string `json:"content"`
	TokensUsed     int    `json:"tokens_used"`
	ResponseTimeMS int    `json:"response_time_ms"`
}

// Provider answers a single prompt. Providers here return canned
// completions: the dashboard demonstrates the integration surface without
// holding real API keys.
type Provider interface {
	Name() string
	Model() string
	Complete(prompt string) (*Completion, error)
}

type cannedProvider struct {
	name  string
	model string
}

func (p *cannedProvider) Name() string  { return p.name }
func (p *cannedProvider) Model() string { return p.model }

func (p *cannedProvider) Complete(prompt string) (*Completion, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return nil, fmt.Errorf("empty prompt")
	}
	content := fmt.Sprintf(
		"[%s/%s] Based on your question about %q: neural architecture search benefits from "+
			"starting simple, measuring the efficiency ratio, and only then scaling depth. "+
			"This is a demonstration response.",
		p.name, p.model, truncate(prompt, 80),
	)
	return &Completion{
		Service:        p.name,
		Model:          p.model,
		Content:        content,
		TokensUsed:     len(strings.Fields(prompt)) + len(strings.Fields(content)),
		ResponseTimeMS: 150 + len(prompt)%200,
	}, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// Registry resolves provider names for the external-AI endpoint.
type Registry struct {
	providers map[string]Provider
	log       *logger.Logger
}

func NewRegistry(baseLog *logger.Logger) *Registry {
	models := map[string]string{
		"openai":      envutil.String("OPENAI_MODEL", "gpt-4o-mini"),
		"anthropic":   envutil.String("ANTHROPIC_MODEL", "claude-3-5-haiku"),
		"cohere":      envutil.String("COHERE_MODEL", "command-r"),
		"huggingface": envutil.String("HUGGINGFACE_MODEL", "mistral-7b-instruct"),
		"replicate":   envutil.String("REPLICATE_MODEL", "llama-3-8b-instruct"),
	}
	providers := make(map[string]Provider, len(models))
	for name, model := range models {
		providers[name] = &cannedProvider{name: name, model: model}
	}
	return &Registry{
		providers: providers,
		log:       baseLog.With("client", "AIRegistry"),
	}
}

func (r *Registry) Resolve(service string) (Provider, error) {
	p, ok := r.providers[strings.ToLower(strings.TrimSpace(service))]
	if !ok {
		return nil, fmt.Errorf("unknown service %q", service)
	}
	return p, nil
}

func (r *Registry) Services() []string {
	out := make([]string, 0, len(r.providers))
	for name := range r.providers {
		out = append(out, name)
	}
	return out
}
