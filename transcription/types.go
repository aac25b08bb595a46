package transcription

// Segment is a timestamped span of transcribed speech. Times are in
// seconds relative to the start of the uploaded audio.
type Segment struct {
	// Start is the segment start time in seconds.
	Start float64 `json:"start"`
	// End is the segment end time in seconds.
	End float64 `json:"end"`
	// Text is the transcribed text for this segment.
	Text string `json:"text"`
}

// Request holds one audio upload for transcription.
type Request struct {
	// Audio is the encoded audio payload.
	Audio []byte
	// FileName names the upload in the multipart form.
	FileName string
	// MIMEType is the audio content type, e.g. "audio/webm".
	MIMEType string
	// Language is the expected spoken language (ISO code, e.g. "en").
	Language string
	// Prompt seeds the model with domain vocabulary. Optional.
	Prompt string
}

// Result is a transcription backend's reply. Backends that support
// timestamps return Segments; others return plain Text only.
type Result struct {
	// Segments contains segment-level timestamps when the backend
	// provided them.
	Segments []Segment `json:"segments,omitempty"`
	// Text is the full transcribed text.
	Text string `json:"text"`
	// Segmented reports whether Segments carries backend timestamps.
	Segmented bool `json:"-"`
}
