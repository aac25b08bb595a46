// Package openai implements llm.Provider against the OpenAI chat
// completions API (or any endpoint speaking the same protocol).
package openai

import (
	"context"
	"encoding/json"
	"time"

	"github.com/notedly/minutes/errors"
	"github.com/notedly/minutes/httpclient"
	"github.com/notedly/minutes/llm"
	"github.com/notedly/minutes/provider"
	"github.com/notedly/minutes/util"
)

const (
	// ProviderName is the registered name for the OpenAI provider.
	ProviderName = "openai"

	defaultURL     = "https://api.openai.com/v1/chat/completions"
	defaultModel   = "gpt-4o-mini"
	defaultTimeout = 120 * time.Second
)

// Config holds configuration for the OpenAI chat provider.
type Config struct {
	// URL is the full chat completions endpoint.
	URL string `json:"url"`
	// APIKey is the bearer token for the service.
	APIKey string `json:"api_key"`
	// Model is the default chat model identifier.
	Model string `json:"model"`
	// Timeout bounds a single completion round trip.
	Timeout time.Duration `json:"timeout"`
}

// Provider implements llm.Provider over the chat completions protocol.
type Provider struct {
	cfg    Config
	client *httpclient.Client
}

// NewProvider creates a new OpenAI chat provider.
func NewProvider(cfg Config) (*Provider, error) {
	cfg.URL = util.Coalesce(cfg.URL, defaultURL)
	cfg.Model = util.Coalesce(cfg.Model, defaultModel)
	cfg.Timeout = util.Coalesce(cfg.Timeout, defaultTimeout)
	client, err := httpclient.New(httpclient.Config{
		BaseURL: cfg.URL,
		Timeout: cfg.Timeout,
		Auth:    httpclient.BearerAuth(cfg.APIKey),
	})
	if err != nil {
		return nil, err
	}
	return &Provider{cfg: cfg, client: client}, nil
}

// Factory returns a provider.Factory that creates OpenAI Provider
// instances from a generic config map.
func Factory() provider.Factory[llm.Provider] {
	return func(cfg map[string]any) (llm.Provider, error) {
		pc := Config{}
		if v, ok := cfg["url"].(string); ok {
			pc.URL = v
		}
		if v, ok := cfg["api_key"].(string); ok {
			pc.APIKey = v
		}
		if v, ok := cfg["model"].(string); ok {
			pc.Model = v
		}
		if v, ok := cfg["timeout"].(time.Duration); ok {
			pc.Timeout = v
		}
		return NewProvider(pc)
	}
}

// Name returns the provider name.
func (p *Provider) Name() string { return ProviderName }

// IsAvailable reports whether the provider has a credential to use.
func (p *Provider) IsAvailable(ctx context.Context) bool {
	return p.cfg.APIKey != ""
}

// Complete sends a chat completion request and returns the first choice.
func (p *Provider) Complete(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	model := util.Coalesce(req.Model, p.cfg.Model)

	messages := make([]chatMessage, 0, len(req.Messages)+1)
	if req.SystemPrompt != "" {
		messages = append(messages, chatMessage{Role: "system", Content: req.SystemPrompt})
	}
	for _, m := range req.Messages {
		messages = append(messages, chatMessage{Role: m.Role, Content: m.Content})
	}

	resp, err := p.client.Do(ctx, httpclient.Request{
		Method: "POST",
		Body: chatRequest{
			Model:       model,
			Messages:    messages,
			Temperature: req.Temperature,
			MaxTokens:   req.MaxTokens,
		},
	})
	if err != nil {
		return nil, errors.New(errors.ErrCodeExternalService, "chat completion failed").WithCause(err)
	}

	var parsed chatResponse
	if err := json.Unmarshal(resp.Body, &parsed); err != nil {
		return nil, errors.New(errors.ErrCodeExternalService, "failed to decode chat completion response").WithCause(err)
	}
	if len(parsed.Choices) == 0 {
		return nil, errors.New(errors.ErrCodeExternalService, "chat completion returned no choices")
	}

	return &llm.CompletionResponse{
		Content: parsed.Choices[0].Message.Content,
		Model:   parsed.Model,
		Usage: llm.Usage{
			PromptTokens:     parsed.Usage.PromptTokens,
			CompletionTokens: parsed.Usage.CompletionTokens,
			TotalTokens:      parsed.Usage.TotalTokens,
		},
	}, nil
}

// --- internal chat API types ---

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature,omitempty"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}
