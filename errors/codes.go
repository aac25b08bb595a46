package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Configuration errors. These abort an operation before any network call.
const (
	// ErrCodeConfiguration indicates missing or invalid configuration
	// (no API credential, unknown template, bad settings value).
	ErrCodeConfiguration ErrorCode = "CONFIGURATION"
)

// Transcription errors.
const (
	// ErrCodeChunkTranscription indicates a single chunk's transcription
	// call failed. The chunk is skipped; processing continues.
	ErrCodeChunkTranscription ErrorCode = "CHUNK_TRANSCRIPTION_FAILED"
	// ErrCodeTranscription indicates the transcription as a whole failed
	// (every chunk failed, or a single-clip call failed).
	ErrCodeTranscription ErrorCode = "TRANSCRIPTION_FAILED"
)

// Enhancement and output errors.
const (
	// ErrCodeAnalysis indicates the meeting analysis call failed. Analysis
	// is an enhancement; callers proceed without it.
	ErrCodeAnalysis ErrorCode = "ANALYSIS_FAILED"
	// ErrCodeSynthesis indicates the note document could not be read or
	// written. Upstream transcript/analysis output is not discarded.
	ErrCodeSynthesis ErrorCode = "SYNTHESIS_FAILED"
)

// Transport errors surfaced by outbound service calls (retryable).
const (
	// ErrCodeTimeout indicates the request timed out.
	ErrCodeTimeout ErrorCode = "TIMEOUT"
	// ErrCodeConnectionFailed indicates a failed connection to a service.
	ErrCodeConnectionFailed ErrorCode = "CONNECTION_FAILED"
	// ErrCodeRateLimited indicates the client is rate limited.
	ErrCodeRateLimited ErrorCode = "RATE_LIMITED"
	// ErrCodeExternalService indicates an error from an external service.
	ErrCodeExternalService ErrorCode = "EXTERNAL_SERVICE_ERROR"
)

// Generic errors.
const (
	// ErrCodeNotFound indicates the requested resource was not found.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeInternal indicates an internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeTimeout:            true,
	ErrCodeConnectionFailed:   true,
	ErrCodeRateLimited:        true,
	ErrCodeChunkTranscription: true,
}

// IsRetryableCode reports whether an error code is retryable by default.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
