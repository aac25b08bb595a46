package errors

import (
	stderrors "errors"
	"fmt"
)

// AppError is the unified application error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Retryable indicates if the operation can be retried.
	Retryable bool `json:"retryable"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError with automatic retryable detection.
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:      code,
		Message:   message,
		Retryable: IsRetryableCode(code),
	}
}

// --- Pipeline taxonomy constructors ---

// Configuration creates an error for missing or invalid configuration.
// Operations carrying this error abort before any network call.
func Configuration(reason string) *AppError {
	return &AppError{
		Code: ErrCodeConfiguration, Message: reason,
		Retryable: false,
	}
}

// MissingCredential creates a configuration error for an absent API key.
func MissingCredential(service string) *AppError {
	return &AppError{
		Code:    ErrCodeConfiguration,
		Message: fmt.Sprintf("API key for %s is missing. Add it to your settings.", service),
		Details: map[string]any{"service": service},
	}
}

// ChunkTranscription wraps a single chunk's transcription failure. The
// chunk index identifies which part of the recording is lost.
func ChunkTranscription(index int, cause error) *AppError {
	return &AppError{
		Code:      ErrCodeChunkTranscription,
		Message:   fmt.Sprintf("transcription of chunk %d failed", index),
		Retryable: true,
		Details:   map[string]any{"chunk_index": index},
		Cause:     cause,
	}
}

// Transcription wraps an overall transcription failure.
func Transcription(cause error) *AppError {
	return &AppError{
		Code: ErrCodeTranscription, Message: "transcription failed",
		Cause: cause,
	}
}

// AllChunksFailed reports that every chunk of a recording failed.
func AllChunksFailed(total int) *AppError {
	return &AppError{
		Code:    ErrCodeTranscription,
		Message: fmt.Sprintf("all %d audio chunks failed to transcribe", total),
		Details: map[string]any{"chunks": total},
	}
}

// Analysis wraps a meeting analysis failure.
func Analysis(cause error) *AppError {
	return &AppError{
		Code: ErrCodeAnalysis, Message: "meeting analysis failed",
		Cause: cause,
	}
}

// Synthesis wraps a document read/write failure during note synthesis.
func Synthesis(path string, cause error) *AppError {
	return &AppError{
		Code:    ErrCodeSynthesis,
		Message: fmt.Sprintf("could not write note %s; transcript output was kept", path),
		Details: map[string]any{"path": path},
		Cause:   cause,
	}
}

// NotFound creates an error for a resource that was not found.
func NotFound(resource, id string) *AppError {
	details := map[string]any{"resource": resource}
	if id != "" {
		details["id"] = id
	}
	return &AppError{
		Code: ErrCodeNotFound, Message: fmt.Sprintf("the requested %s was not found", resource),
		Details: details,
	}
}

// InvalidInput creates an error for invalid input.
func InvalidInput(field, reason string) *AppError {
	details := make(map[string]any)
	if field != "" {
		details["field"] = field
	}
	return &AppError{
		Code: ErrCodeInvalidInput, Message: fmt.Sprintf("invalid input: %s", reason),
		Details: details,
	}
}

// Internal creates an error for an unexpected internal failure.
func Internal(reason string) *AppError {
	return &AppError{Code: ErrCodeInternal, Message: reason}
}

// --- Inspection helpers ---

// AsAppError extracts an *AppError from an error chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// CodeOf returns the error code of err, or ErrCodeInternal for foreign errors.
func CodeOf(err error) ErrorCode {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return ErrCodeInternal
}

// IsRetryable reports whether err is marked retryable.
func IsRetryable(err error) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Retryable
	}
	return false
}

// Is reports whether err carries the given code anywhere in its chain.
func Is(err error, code ErrorCode) bool {
	for err != nil {
		if appErr, ok := err.(*AppError); ok && appErr.Code == code {
			return true
		}
		err = stderrors.Unwrap(err)
	}
	return false
}
