// Package audio models recorded meeting audio and plans how large
// recordings are split into chunks small enough for the transcription
// service's upload limit.
//
// Splitting is size-based. Chunks are byte slices of the encoded stream,
// so a chunk boundary can fall mid-frame; time offsets are estimated
// from an assumed voice bitrate and are approximate.
package audio
