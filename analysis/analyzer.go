package analysis

import (
	"context"
	"fmt"

	"github.com/notedly/minutes/errors"
	"github.com/notedly/minutes/llm"
	"github.com/notedly/minutes/logger"
)

const (
	analysisTemperature = 0.7
	analysisMaxTokens   = 1000
)

// Config controls the analyzer.
type Config struct {
	// Enabled turns analysis on. Disabled analysis yields no result
	// and no error.
	Enabled bool
	// Model is the chat model to use.
	Model string
	// SystemPrompt is the analysis instruction given to the model.
	SystemPrompt string
}

// Analyzer runs meeting analysis through an LLM provider.
type Analyzer struct {
	provider llm.Provider
	cfg      Config
	log      *logger.Logger
}

// NewAnalyzer creates an analyzer backed by the given provider.
func NewAnalyzer(provider llm.Provider, cfg Config, log *logger.Logger) *Analyzer {
	return &Analyzer{
		provider: provider,
		cfg:      cfg,
		log:      log.WithComponent("analysis"),
	}
}

// Analyze extracts meeting insights from a transcript.
//
// It returns (nil, nil) when analysis is disabled or the provider has no
// credential; that is a configuration state, not an error. A transport
// or API failure returns (nil, err) so the caller can report it and
// proceed without analysis.
//
// When userNotes is non-empty it is prepended to the transcript, and the
// system prompt instructs the model to prioritize it.
func (a *Analyzer) Analyze(ctx context.Context, transcript, userNotes string) (*MeetingAnalysis, error) {
	if !a.cfg.Enabled {
		return nil, nil
	}
	if a.provider == nil || !a.provider.IsAvailable(ctx) {
		a.log.Warn("analysis enabled but provider unavailable, skipping")
		return nil, nil
	}

	input := transcript
	if userNotes != "" {
		input = fmt.Sprintf("User Notes:\n%s\n\nTranscription:\n%s", userNotes, transcript)
	}

	a.log.Debug("requesting meeting analysis", map[string]any{
		logger.FieldModel: a.cfg.Model,
	})

	resp, err := a.provider.Complete(ctx, llm.CompletionRequest{
		Model:        a.cfg.Model,
		SystemPrompt: a.cfg.SystemPrompt,
		Messages:     []llm.Message{{Role: "user", Content: input}},
		Temperature:  analysisTemperature,
		MaxTokens:    analysisMaxTokens,
	})
	if err != nil {
		return nil, errors.Analysis(err)
	}

	result := ParseResponse(resp.Content)
	a.log.Info("meeting analysis complete", map[string]any{
		"participants": len(result.Participants),
		"key_points":   len(result.KeyPoints),
		"action_items": len(result.ActionItems),
	})
	return result, nil
}
