// Package transcript turns timestamped transcription segments into
// readable markdown: paragraphs split on silence gaps or sentence
// boundaries, each led by a bolded time marker.
//
// Multi-chunk recordings are handled by rebasing each chunk's segment
// times onto the recording's timeline and concatenating chunk outputs
// in index order.
package transcript
