package transcript

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/notedly/minutes/transcription"
)

// ChunkSeparator visibly marks a chunk boundary in a combined transcript.
const ChunkSeparator = "\n\n---\n\n"

var terminalPunctuation = regexp.MustCompile(`[.!?]$`)

// Assemble formats segments into paragraphs. A new paragraph starts when
// the silence gap before a segment exceeds thresholdSeconds, or when the
// accumulated paragraph already ends in terminal punctuation. Each
// paragraph is prefixed with the start time of its first segment.
//
// An empty segment list yields an empty string.
func Assemble(segments []transcription.Segment, thresholdSeconds float64) string {
	var formatted strings.Builder
	var paragraph strings.Builder
	lastEnd := 0.0

	for _, segment := range segments {
		text := strings.TrimSpace(segment.Text)

		newParagraph := segment.Start-lastEnd > thresholdSeconds ||
			(paragraph.Len() > 0 && terminalPunctuation.MatchString(strings.TrimSpace(paragraph.String())))

		if newParagraph && paragraph.Len() > 0 {
			formatted.WriteString(strings.TrimSpace(paragraph.String()) + "\n\n")
			paragraph.Reset()
		}
		if paragraph.Len() == 0 {
			formatted.WriteString(fmt.Sprintf("**[%s]** ", FormatTime(segment.Start)))
		}

		paragraph.WriteString(text + " ")
		lastEnd = segment.End
	}

	if paragraph.Len() > 0 {
		formatted.WriteString(strings.TrimSpace(paragraph.String()) + "\n")
	}
	return formatted.String()
}

// FormatTime renders seconds as M:SS, or H:MM:SS from one hour up.
func FormatTime(seconds float64) string {
	total := int(seconds)
	hours := total / 3600
	minutes := (total % 3600) / 60
	secs := total % 60

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%d:%02d", minutes, secs)
}

// Rebase shifts segment times by a chunk's start offset so they line up
// with the recording's timeline.
func Rebase(segments []transcription.Segment, offsetSeconds float64) []transcription.Segment {
	rebased := make([]transcription.Segment, len(segments))
	for i, segment := range segments {
		rebased[i] = transcription.Segment{
			Start: segment.Start + offsetSeconds,
			End:   segment.End + offsetSeconds,
			Text:  segment.Text,
		}
	}
	return rebased
}

// ChunkTranscript pairs one chunk's transcription result with its
// position in the recording.
type ChunkTranscript struct {
	Index       int
	StartOffset float64
	Result      *transcription.Result
}

// Combine assembles per-chunk results into one transcript. Chunks are
// processed in strictly increasing index order regardless of the slice
// order given; segmented results are rebased and paragraph-formatted,
// plain-text results are passed through. Chunk outputs are joined with
// ChunkSeparator.
func Combine(chunks []ChunkTranscript, thresholdSeconds float64) string {
	ordered := make([]ChunkTranscript, len(chunks))
	copy(ordered, chunks)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Index < ordered[j].Index })

	parts := make([]string, 0, len(ordered))
	for _, chunk := range ordered {
		if chunk.Result == nil {
			continue
		}
		var text string
		if chunk.Result.Segmented {
			text = Assemble(Rebase(chunk.Result.Segments, chunk.StartOffset), thresholdSeconds)
		} else {
			text = chunk.Result.Text
		}
		text = strings.TrimSpace(text)
		if text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, ChunkSeparator)
}
