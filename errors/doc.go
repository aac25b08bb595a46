// Package errors provides unified error handling for the minutes pipeline.
// It implements structured error types with machine-readable codes,
// retryable detection, and the pipeline's failure taxonomy: configuration
// problems abort before any network call, per-chunk transcription failures
// are skippable, analysis failures degrade to transcript-only output, and
// synthesis failures surface without discarding upstream results.
package errors
