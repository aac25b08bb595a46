// Package whisper implements transcription.Provider against the OpenAI
// Whisper API (or any endpoint speaking the same protocol).
package whisper

import (
	"context"
	"encoding/json"
	"time"

	"github.com/notedly/minutes/errors"
	"github.com/notedly/minutes/httpclient"
	"github.com/notedly/minutes/provider"
	"github.com/notedly/minutes/transcription"
	"github.com/notedly/minutes/util"
)

const (
	// ProviderName is the registered name for the Whisper provider.
	ProviderName = "whisper"

	defaultURL     = "https://api.openai.com/v1/audio/transcriptions"
	defaultModel   = "whisper-1"
	defaultTimeout = 300 * time.Second
)

// Config holds configuration for the Whisper transcription provider.
type Config struct {
	// URL is the full transcription endpoint.
	URL string `json:"url"`
	// APIKey is the bearer token for the service.
	APIKey string `json:"api_key"`
	// Model is the transcription model identifier.
	Model string `json:"model"`
	// Timeout bounds a single upload round trip. Uploads of large
	// chunks are slow, so this defaults generously.
	Timeout time.Duration `json:"timeout"`
}

// Provider implements transcription.Provider over HTTP multipart uploads.
type Provider struct {
	cfg    Config
	client *httpclient.Client
}

// NewProvider creates a new Whisper transcription provider.
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

// Factory returns a provider.Factory that creates Whisper Provider
// instances from a generic config map.
func Factory() provider.Factory[transcription.Provider] {
	return func(cfg map[string]any) (transcription.Provider, error) {
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
// The service has no health endpoint, so no network check is made.
func (p *Provider) IsAvailable(ctx context.Context) bool {
	return p.cfg.APIKey != ""
}

// Transcribe uploads audio as a multipart form and returns the parsed
// result. Segment timestamps are always requested; backends that do not
// produce them fall back to plain text.
func (p *Provider) Transcribe(ctx context.Context, req transcription.Request) (*transcription.Result, error) {
	body := &httpclient.MultipartBody{
		Fields: map[string]string{
			"model":                   p.cfg.Model,
			"response_format":         "verbose_json",
			"timestamp_granularities": "segment",
		},
		Files: []httpclient.FileField{
			{
				FieldName:   "file",
				FileName:    req.FileName,
				ContentType: req.MIMEType,
				Data:        req.Audio,
			},
		},
	}
	if req.Language != "" {
		body.Fields["language"] = req.Language
	}
	if req.Prompt != "" {
		body.Fields["prompt"] = req.Prompt
	}

	resp, err := p.client.Do(ctx, httpclient.Request{
		Method: "POST",
		Body:   body,
	})
	if err != nil {
		return nil, errors.Transcription(err)
	}

	var parsed whisperResponse
	if err := json.Unmarshal(resp.Body, &parsed); err != nil {
		return nil, errors.Transcription(err)
	}

	result := &transcription.Result{
		Text:      parsed.Text,
		Segmented: parsed.Segments != nil,
	}
	for _, seg := range parsed.Segments {
		result.Segments = append(result.Segments, transcription.Segment{
			Start: seg.Start,
			End:   seg.End,
			Text:  seg.Text,
		})
	}
	return result, nil
}

// --- internal Whisper API types ---

type whisperResponse struct {
	Text     string           `json:"text"`
	Segments []whisperSegment `json:"segments"`
}

type whisperSegment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}
