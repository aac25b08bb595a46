// Package pipeline orchestrates the full meeting flow: chunking audio,
// transcribing chunk-by-chunk, assembling the transcript, running
// optional analysis, and synthesizing the final note.
//
// Chunks are processed sequentially in index order. A failed chunk is
// skipped with a notice and processing continues; the operation fails
// only when configuration is invalid, every chunk fails, or the note
// cannot be written. Analysis failures never block the transcript.
package pipeline
