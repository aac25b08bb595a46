package transcript

import (
	"strings"
	"testing"

	"github.com/notedly/minutes/transcription"
)

func TestAssembleEmpty(t *testing.T) {
	if got := Assemble(nil, 2); got != "" {
		t.Errorf("Assemble(nil) = %q, want empty", got)
	}
}

func TestAssembleSingleParagraph(t *testing.T) {
	segments := []transcription.Segment{
		{Start: 0, End: 2, Text: " so we were thinking"},
		{Start: 2, End: 4, Text: " about the rollout"},
	}
	got := Assemble(segments, 2)
	want := "**[0:00]** so we were thinking about the rollout\n"
	if got != want {
		t.Errorf("Assemble() = %q, want %q", got, want)
	}
}

func TestAssembleBreaksOnSilenceGap(t *testing.T) {
	segments := []transcription.Segment{
		{Start: 0, End: 2, Text: "first part"},
		{Start: 7, End: 9, Text: "after a pause"},
	}
	got := Assemble(segments, 2)
	want := "**[0:00]** first part\n\n**[0:07]** after a pause\n"
	if got != want {
		t.Errorf("Assemble() = %q, want %q", got, want)
	}
}

func TestAssembleBreaksOnTerminalPunctuation(t *testing.T) {
	segments := []transcription.Segment{
		{Start: 0, End: 2, Text: "That settles it."},
		{Start: 2.5, End: 4, Text: "Moving on to budget"},
	}
	got := Assemble(segments, 2)
	want := "**[0:00]** That settles it.\n\n**[0:02]** Moving on to budget\n"
	if got != want {
		t.Errorf("Assemble() = %q, want %q", got, want)
	}
}

func TestAssembleNoBreakWithinThreshold(t *testing.T) {
	segments := []transcription.Segment{
		{Start: 0, End: 2, Text: "no punctuation here"},
		{Start: 3.5, End: 5, Text: "so still one paragraph"},
	}
	got := Assemble(segments, 2)
	if strings.Count(got, "**[") != 1 {
		t.Errorf("Assemble() = %q, want a single paragraph", got)
	}
}

func TestAssembleHourLongTimestamps(t *testing.T) {
	segments := []transcription.Segment{
		{Start: 3725, End: 3730, Text: "Late in the call."},
	}
	got := Assemble(segments, 2)
	if !strings.HasPrefix(got, "**[1:02:05]** ") {
		t.Errorf("Assemble() = %q, want 1:02:05 prefix", got)
	}
}

func TestFormatTime(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "0:00"},
		{5, "0:05"},
		{65, "1:05"},
		{450, "7:30"},
		{3600, "1:00:00"},
		{3725, "1:02:05"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatTime(tt.seconds); got != tt.want {
				t.Errorf("FormatTime(%v) = %q, want %q", tt.seconds, got, tt.want)
			}
		})
	}
}

func TestRebase(t *testing.T) {
	segments := []transcription.Segment{
		{Start: 0, End: 3, Text: "World"},
	}
	rebased := Rebase(segments, 450)
	if rebased[0].Start != 450 || rebased[0].End != 453 {
		t.Errorf("Rebase() = %+v, want start 450 end 453", rebased[0])
	}
	// Input untouched.
	if segments[0].Start != 0 {
		t.Errorf("Rebase mutated input: %+v", segments[0])
	}
}

func TestCombineTwoChunks(t *testing.T) {
	chunks := []ChunkTranscript{
		{
			Index:       0,
			StartOffset: 0,
			Result: &transcription.Result{
				Segmented: true,
				Segments:  []transcription.Segment{{Start: 0, End: 5, Text: "Hello"}},
			},
		},
		{
			Index:       1,
			StartOffset: 450,
			Result: &transcription.Result{
				Segmented: true,
				Segments:  []transcription.Segment{{Start: 0, End: 3, Text: "World"}},
			},
		},
	}

	got := Combine(chunks, 2)
	want := "**[0:00]** Hello" + ChunkSeparator + "**[7:30]** World"
	if got != want {
		t.Errorf("Combine() = %q, want %q", got, want)
	}
}

func TestCombineOrdersByIndex(t *testing.T) {
	chunks := []ChunkTranscript{
		{Index: 1, Result: &transcription.Result{Text: "second"}},
		{Index: 0, Result: &transcription.Result{Text: "first"}},
	}
	got := Combine(chunks, 2)
	want := "first" + ChunkSeparator + "second"
	if got != want {
		t.Errorf("Combine() = %q, want %q", got, want)
	}
}

func TestCombineSkipsFailedChunks(t *testing.T) {
	chunks := []ChunkTranscript{
		{Index: 0, Result: &transcription.Result{Text: "kept"}},
		{Index: 1, Result: nil},
		{Index: 2, Result: &transcription.Result{Text: "also kept"}},
	}
	got := Combine(chunks, 2)
	want := "kept" + ChunkSeparator + "also kept"
	if got != want {
		t.Errorf("Combine() = %q, want %q", got, want)
	}
}

// Splitting a segment run into two contiguous, correctly rebased halves
// must yield the same paragraphs as assembling the whole run at once.
func TestCombineMatchesWholeAssembly(t *testing.T) {
	whole := []transcription.Segment{
		{Start: 0, End: 2, Text: "We shipped the release."},
		{Start: 2.5, End: 4, Text: "Next up is monitoring"},
		{Start: 10, End: 12, Text: "and alerting."},
	}

	wholeText := Assemble(whole, 2)

	chunks := []ChunkTranscript{
		{
			Index: 0, StartOffset: 0,
			Result: &transcription.Result{Segmented: true, Segments: whole[:2]},
		},
		{
			Index: 1, StartOffset: 0,
			Result: &transcription.Result{Segmented: true, Segments: whole[2:]},
		},
	}
	combined := Combine(chunks, 2)

	normalize := func(s string) []string {
		var paragraphs []string
		for _, part := range strings.Split(s, "\n\n") {
			part = strings.TrimSpace(strings.Trim(strings.TrimSpace(part), "-"))
			if part != "" {
				paragraphs = append(paragraphs, part)
			}
		}
		return paragraphs
	}

	wantParagraphs := normalize(wholeText)
	gotParagraphs := normalize(combined)
	if len(wantParagraphs) != len(gotParagraphs) {
		t.Fatalf("paragraph count = %d, want %d\ncombined: %q\nwhole: %q",
			len(gotParagraphs), len(wantParagraphs), combined, wholeText)
	}
	for i := range wantParagraphs {
		if wantParagraphs[i] != gotParagraphs[i] {
			t.Errorf("paragraph %d = %q, want %q", i, gotParagraphs[i], wantParagraphs[i])
		}
	}
}
