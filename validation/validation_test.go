package validation

import (
	"strings"
	"testing"

	"github.com/notedly/minutes/errors"
)

type sampleSettings struct {
	APIURL    string  `mapstructure:"api_url" validate:"required,url"`
	Model     string  `mapstructure:"model" validate:"required"`
	Threshold float64 `mapstructure:"threshold" validate:"gte=0"`
}

func TestValidateOK(t *testing.T) {
	s := sampleSettings{
		APIURL:    "https://api.openai.com/v1/audio/transcriptions",
		Model:     "whisper-1",
		Threshold: 2,
	}
	if err := Validate(s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateMissingRequired(t *testing.T) {
	s := sampleSettings{APIURL: "https://example.com"}
	err := Validate(s)
	if err == nil {
		t.Fatal("expected error for missing model")
	}

	appErr, ok := errors.AsAppError(err)
	if !ok {
		t.Fatalf("expected *errors.AppError, got %T", err)
	}
	if appErr.Code != errors.ErrCodeInvalidInput {
		t.Errorf("Code = %q", appErr.Code)
	}
	if !strings.Contains(appErr.Message, "model is required") {
		t.Errorf("Message = %q, want mapstructure field name", appErr.Message)
	}
}

func TestValidateBadURL(t *testing.T) {
	s := sampleSettings{APIURL: "not a url", Model: "whisper-1"}
	err := Validate(s)
	if err == nil {
		t.Fatal("expected error for invalid URL")
	}
	if !strings.Contains(err.Error(), "api_url must be a valid URL") {
		t.Errorf("error = %v", err)
	}
}

func TestValidateCollectsAllFields(t *testing.T) {
	s := sampleSettings{Threshold: -1}
	err := Validate(s)
	if err == nil {
		t.Fatal("expected error")
	}
	appErr, _ := errors.AsAppError(err)
	fields, ok := appErr.Details["fields"].([]FieldError)
	if !ok {
		t.Fatalf("fields detail = %T", appErr.Details["fields"])
	}
	if len(fields) != 3 {
		t.Errorf("got %d field errors, want 3: %v", len(fields), fields)
	}
}
