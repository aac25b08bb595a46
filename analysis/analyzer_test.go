package analysis

import (
	"context"
	"fmt"
	"testing"

	"github.com/notedly/minutes/errors"
	"github.com/notedly/minutes/llm"
	"github.com/notedly/minutes/logger"
)

type fakeLLM struct {
	available bool
	reply     string
	err       error
	lastReq   llm.CompletionRequest
	calls     int
}

func (f *fakeLLM) Name() string                         { return "fake" }
func (f *fakeLLM) IsAvailable(ctx context.Context) bool { return f.available }

func (f *fakeLLM) Complete(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	f.calls++
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &llm.CompletionResponse{Content: f.reply}, nil
}

func testAnalyzer(provider llm.Provider, cfg Config) *Analyzer {
	return NewAnalyzer(provider, cfg, logger.NewDefault("test"))
}

func TestAnalyzeDisabled(t *testing.T) {
	fake := &fakeLLM{available: true}
	a := testAnalyzer(fake, Config{Enabled: false})

	result, err := a.Analyze(context.Background(), "transcript", "")
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if result != nil {
		t.Error("disabled analyzer should return nil result")
	}
	if fake.calls != 0 {
		t.Error("disabled analyzer should not call the provider")
	}
}

func TestAnalyzeProviderUnavailable(t *testing.T) {
	fake := &fakeLLM{available: false}
	a := testAnalyzer(fake, Config{Enabled: true})

	result, err := a.Analyze(context.Background(), "transcript", "")
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if result != nil {
		t.Error("unavailable provider should yield nil result, not an error")
	}
	if fake.calls != 0 {
		t.Error("unavailable provider should not be called")
	}
}

func TestAnalyzeSuccess(t *testing.T) {
	fake := &fakeLLM{
		available: true,
		reply:     "**Key Points**:\n- Release shipped",
	}
	a := testAnalyzer(fake, Config{
		Enabled:      true,
		Model:        "gpt-4o-mini",
		SystemPrompt: "Analyze this meeting.",
	})

	result, err := a.Analyze(context.Background(), "We shipped the release.", "")
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if result == nil {
		t.Fatal("Analyze() returned nil result")
	}
	if len(result.KeyPoints) != 1 || result.KeyPoints[0] != "Release shipped" {
		t.Errorf("KeyPoints = %v", result.KeyPoints)
	}

	if fake.lastReq.Model != "gpt-4o-mini" {
		t.Errorf("Model = %q", fake.lastReq.Model)
	}
	if fake.lastReq.SystemPrompt != "Analyze this meeting." {
		t.Errorf("SystemPrompt = %q", fake.lastReq.SystemPrompt)
	}
	if fake.lastReq.Temperature != 0.7 {
		t.Errorf("Temperature = %v, want 0.7", fake.lastReq.Temperature)
	}
	if fake.lastReq.MaxTokens != 1000 {
		t.Errorf("MaxTokens = %d, want 1000", fake.lastReq.MaxTokens)
	}
	if fake.lastReq.Messages[0].Content != "We shipped the release." {
		t.Errorf("user content = %q", fake.lastReq.Messages[0].Content)
	}
}

func TestAnalyzePrimesUserNotes(t *testing.T) {
	fake := &fakeLLM{available: true, reply: "- point"}
	a := testAnalyzer(fake, Config{Enabled: true})

	if _, err := a.Analyze(context.Background(), "the transcript", "my notes"); err != nil {
		t.Fatal(err)
	}
	want := "User Notes:\nmy notes\n\nTranscription:\nthe transcript"
	if fake.lastReq.Messages[0].Content != want {
		t.Errorf("user content = %q, want %q", fake.lastReq.Messages[0].Content, want)
	}
}

func TestAnalyzeProviderFailure(t *testing.T) {
	fake := &fakeLLM{available: true, err: fmt.Errorf("boom")}
	a := testAnalyzer(fake, Config{Enabled: true})

	result, err := a.Analyze(context.Background(), "transcript", "")
	if result != nil {
		t.Error("failed analysis should return nil result")
	}
	if err == nil {
		t.Fatal("expected error from failed provider call")
	}
	if !errors.Is(err, errors.ErrCodeAnalysis) {
		t.Errorf("error code = %v, want %v", errors.CodeOf(err), errors.ErrCodeAnalysis)
	}
}
