package audio

import (
	"fmt"
	"math"
)

const (
	// MaxChunkBytes keeps uploads under the transcription service's
	// 25 MB request limit.
	MaxChunkBytes = 24 * 1024 * 1024

	// WarnBytes is the size above which a recording is flagged as
	// approaching the upload limit.
	WarnBytes = 20 * 1024 * 1024

	// assumedBitrate is a rough average for Opus-encoded voice,
	// used to estimate durations from byte counts.
	assumedBitrate = 24000
)

// Chunk is one byte range of a clip, with estimated time bounds in
// seconds relative to the start of the recording.
type Chunk struct {
	Index     int
	Data      []byte
	MIMEType  string
	Name      string
	StartTime float64
	EndTime   float64
}

// NeedsChunking reports whether the clip exceeds the single-upload limit.
func NeedsChunking(c *Clip) bool {
	return c.Size() > MaxChunkBytes
}

// IsApproachingLimit reports whether the clip is close enough to the
// upload limit to warrant a warning.
func IsApproachingLimit(c *Clip) bool {
	return c.Size() > WarnBytes
}

// Plan splits a clip into sequential byte-range chunks of at most
// MaxChunkBytes. The estimated total duration is divided evenly across
// chunks to produce time offsets. A clip under the limit yields a
// single chunk covering the whole recording; a zero-length clip yields
// an empty plan.
func Plan(c *Clip, maxChunkBytes int64) []Chunk {
	if maxChunkBytes <= 0 {
		maxChunkBytes = MaxChunkBytes
	}
	size := c.Size()
	if size == 0 {
		return nil
	}
	totalChunks := int(math.Ceil(float64(size) / float64(maxChunkBytes)))

	duration := EstimateDuration(size)
	chunkDuration := duration / float64(totalChunks)

	chunks := make([]Chunk, 0, totalChunks)
	for i := 0; i < totalChunks; i++ {
		start := int64(i) * maxChunkBytes
		end := start + maxChunkBytes
		if end > size {
			end = size
		}
		chunks = append(chunks, Chunk{
			Index:     i,
			Data:      c.Data[start:end],
			MIMEType:  c.MIMEType,
			Name:      chunkName(c.Name, i, totalChunks),
			StartTime: float64(i) * chunkDuration,
			EndTime:   float64(i+1) * chunkDuration,
		})
	}
	return chunks
}

func chunkName(name string, index, total int) string {
	if total == 1 {
		return name
	}
	return fmt.Sprintf("%s.part%d", name, index+1)
}

// EstimateDuration approximates a recording's duration in seconds from
// its encoded size.
func EstimateDuration(sizeBytes int64) float64 {
	return float64(sizeBytes) * 8 / assumedBitrate
}

// FormatDuration renders seconds as a compact human-readable string,
// e.g. "1h 4m 10s", "5m 3s", "42s".
func FormatDuration(seconds float64) string {
	total := int(seconds)
	hours := total / 3600
	minutes := (total % 3600) / 60
	secs := total % 60

	switch {
	case hours > 0:
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, secs)
	case minutes > 0:
		return fmt.Sprintf("%dm %ds", minutes, secs)
	default:
		return fmt.Sprintf("%ds", secs)
	}
}
