package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestAppErrorError(t *testing.T) {
	err := New(ErrCodeConfiguration, "template not found")
	if got := err.Error(); got != "CONFIGURATION: template not found" {
		t.Errorf("Error() = %q", got)
	}

	wrapped := New(ErrCodeTranscription, "upload failed").WithCause(stderrors.New("boom"))
	if got := wrapped.Error(); !strings.Contains(got, "cause: boom") {
		t.Errorf("Error() with cause = %q", got)
	}
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("connection reset")
	err := Transcription(cause)

	if !stderrors.Is(err, cause) {
		t.Error("errors.Is should find the cause through Unwrap")
	}
}

func TestChunkTranscription(t *testing.T) {
	cause := stderrors.New("HTTP 503")
	err := ChunkTranscription(3, cause)

	if err.Code != ErrCodeChunkTranscription {
		t.Errorf("Code = %q", err.Code)
	}
	if !err.Retryable {
		t.Error("chunk failures should be retryable")
	}
	if err.Details["chunk_index"] != 3 {
		t.Errorf("chunk_index detail = %v", err.Details["chunk_index"])
	}
	if !strings.Contains(err.Message, "chunk 3") {
		t.Errorf("Message = %q", err.Message)
	}
}

func TestAllChunksFailed(t *testing.T) {
	err := AllChunksFailed(4)
	if err.Code != ErrCodeTranscription {
		t.Errorf("Code = %q", err.Code)
	}
	if !strings.Contains(err.Message, "all 4") {
		t.Errorf("Message = %q", err.Message)
	}
}

func TestRetryableDetection(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want bool
	}{
		{ErrCodeTimeout, true},
		{ErrCodeConnectionFailed, true},
		{ErrCodeRateLimited, true},
		{ErrCodeChunkTranscription, true},
		{ErrCodeConfiguration, false},
		{ErrCodeAnalysis, false},
		{ErrCodeSynthesis, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := IsRetryableCode(tt.code); got != tt.want {
				t.Errorf("IsRetryableCode(%s) = %v, want %v", tt.code, got, tt.want)
			}
			if got := New(tt.code, "x").Retryable; got != tt.want {
				t.Errorf("New(%s).Retryable = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}

func TestCodeOf(t *testing.T) {
	if got := CodeOf(MissingCredential("transcription")); got != ErrCodeConfiguration {
		t.Errorf("CodeOf = %q", got)
	}
	if got := CodeOf(stderrors.New("plain")); got != ErrCodeInternal {
		t.Errorf("CodeOf foreign = %q", got)
	}

	// wrapped via fmt.Errorf
	wrapped := fmt.Errorf("outer: %w", Analysis(stderrors.New("api down")))
	if got := CodeOf(wrapped); got != ErrCodeAnalysis {
		t.Errorf("CodeOf wrapped = %q", got)
	}
}

func TestIs(t *testing.T) {
	err := Synthesis("meeting.md", stderrors.New("read-only vault"))
	if !Is(err, ErrCodeSynthesis) {
		t.Error("Is should match own code")
	}
	if Is(err, ErrCodeAnalysis) {
		t.Error("Is should not match another code")
	}
	if Is(nil, ErrCodeSynthesis) {
		t.Error("Is(nil) must be false")
	}
}

func TestWithDetail(t *testing.T) {
	err := Internal("oops").WithDetail("stage", "assemble")
	if err.Details["stage"] != "assemble" {
		t.Errorf("Details = %v", err.Details)
	}
}
