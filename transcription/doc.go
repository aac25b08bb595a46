// Package transcription defines the speech-to-text provider interface and
// common types for interacting with transcription backends.
package transcription
