package audio

import (
	"math"
	"testing"
)

func clipOfSize(size int) *Clip {
	return &Clip{Name: "meeting.webm", MIMEType: "audio/webm", Data: make([]byte, size)}
}

func TestNeedsChunking(t *testing.T) {
	tests := []struct {
		name string
		size int
		want bool
	}{
		{"small clip", 1024, false},
		{"exactly at limit", MaxChunkBytes, false},
		{"one byte over", MaxChunkBytes + 1, true},
		{"thirty mebibytes", 30 * 1024 * 1024, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NeedsChunking(clipOfSize(tt.size)); got != tt.want {
				t.Errorf("NeedsChunking(%d bytes) = %v, want %v", tt.size, got, tt.want)
			}
		})
	}
}

func TestIsApproachingLimit(t *testing.T) {
	if IsApproachingLimit(clipOfSize(19 * 1024 * 1024)) {
		t.Error("19 MiB should not be flagged")
	}
	if !IsApproachingLimit(clipOfSize(21 * 1024 * 1024)) {
		t.Error("21 MiB should be flagged")
	}
}

func TestPlanSingleChunk(t *testing.T) {
	clip := clipOfSize(1024 * 1024)
	chunks := Plan(clip, 0)

	if len(chunks) != 1 {
		t.Fatalf("len(chunks) = %d, want 1", len(chunks))
	}
	if chunks[0].Index != 0 {
		t.Errorf("Index = %d, want 0", chunks[0].Index)
	}
	if len(chunks[0].Data) != 1024*1024 {
		t.Errorf("chunk size = %d, want full clip", len(chunks[0].Data))
	}
	if chunks[0].StartTime != 0 {
		t.Errorf("StartTime = %v, want 0", chunks[0].StartTime)
	}
	if chunks[0].Name != "meeting.webm" {
		t.Errorf("Name = %q, want unmodified clip name", chunks[0].Name)
	}
}

func TestPlanZeroLengthClip(t *testing.T) {
	chunks := Plan(clipOfSize(0), 0)
	if len(chunks) != 0 {
		t.Errorf("Plan(empty clip) = %d chunks, want empty plan", len(chunks))
	}
}

func TestPlanThirtyMebibytes(t *testing.T) {
	size := 30 * 1024 * 1024
	clip := clipOfSize(size)
	chunks := Plan(clip, 0)

	if len(chunks) != 2 {
		t.Fatalf("len(chunks) = %d, want 2", len(chunks))
	}
	if len(chunks[0].Data) != MaxChunkBytes {
		t.Errorf("first chunk size = %d, want %d", len(chunks[0].Data), MaxChunkBytes)
	}
	if len(chunks[1].Data) != size-MaxChunkBytes {
		t.Errorf("second chunk size = %d, want %d", len(chunks[1].Data), size-MaxChunkBytes)
	}

	// 30 MiB at 24 kbps is about 10486 seconds; each chunk gets half.
	duration := EstimateDuration(int64(size))
	if math.Abs(chunks[0].EndTime-duration/2) > 0.001 {
		t.Errorf("first chunk EndTime = %v, want %v", chunks[0].EndTime, duration/2)
	}
	if math.Abs(chunks[1].StartTime-duration/2) > 0.001 {
		t.Errorf("second chunk StartTime = %v, want %v", chunks[1].StartTime, duration/2)
	}
	if chunks[1].Name != "meeting.webm.part2" {
		t.Errorf("second chunk Name = %q, want meeting.webm.part2", chunks[1].Name)
	}
}

func TestPlanCoversEveryByte(t *testing.T) {
	clip := clipOfSize(50*1024*1024 + 17)
	chunks := Plan(clip, 0)

	var total int
	for i, chunk := range chunks {
		if chunk.Index != i {
			t.Errorf("chunk %d has Index %d", i, chunk.Index)
		}
		total += len(chunk.Data)
	}
	if total != len(clip.Data) {
		t.Errorf("chunks cover %d bytes, want %d", total, len(clip.Data))
	}
}

func TestEstimateDuration(t *testing.T) {
	// 3000 bytes at 24 kbps is exactly one second.
	if got := EstimateDuration(3000); got != 1 {
		t.Errorf("EstimateDuration(3000) = %v, want 1", got)
	}
	if got := EstimateDuration(0); got != 0 {
		t.Errorf("EstimateDuration(0) = %v, want 0", got)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "0s"},
		{42, "42s"},
		{303, "5m 3s"},
		{3850, "1h 4m 10s"},
		{59.9, "59s"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatDuration(tt.seconds); got != tt.want {
				t.Errorf("FormatDuration(%v) = %q, want %q", tt.seconds, got, tt.want)
			}
		})
	}
}

func TestSizeMB(t *testing.T) {
	clip := clipOfSize(5 * 1024 * 1024)
	if got := clip.SizeMB(); got != 5 {
		t.Errorf("SizeMB() = %v, want 5", got)
	}
}
