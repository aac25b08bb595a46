package notes

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/notedly/minutes/analysis"
)

// PendingTranscription marks where the transcript will land in a note
// created before recording finished.
const PendingTranscription = "<!-- Transcription will be added after recording -->"

// TranscriptionMode selects how {{transcription}} is rendered.
type TranscriptionMode int

const (
	// TranscriptionInline substitutes the transcript text.
	TranscriptionInline TranscriptionMode = iota
	// TranscriptionPending substitutes the pending marker, for notes
	// created while recording is still in progress.
	TranscriptionPending
	// TranscriptionOmitted removes the placeholder and its enclosing
	// Transcription section. Pasted transcripts are summarized, never
	// reproduced verbatim.
	TranscriptionOmitted
)

// Metadata carries user-entered meeting details.
type Metadata struct {
	Attendees   string
	Agenda      string
	MeetingType string
}

// RenderContext bundles everything placeholder substitution can draw on.
type RenderContext struct {
	Transcription string
	Mode          TranscriptionMode
	Metadata      *Metadata
	Analysis      *analysis.MeetingAnalysis
	Now           time.Time
}

var transcriptionSection = regexp.MustCompile(`(?m)^### Transcription\s*\n(?:\{\{transcription\}\}\n?)?`)

// Render substitutes the known placeholders in a template. Unknown
// placeholders are left untouched.
//
// {{attendees}} and {{agenda}} prefer metadata, then analysis-derived
// values, then empty. {{notes}} and {{audio}} are always cleared.
func Render(template string, rc RenderContext) string {
	content := template

	if rc.Mode == TranscriptionOmitted {
		content = transcriptionSection.ReplaceAllString(content, "")
	}

	date := rc.Now.Format("1/2/2006")
	clock := rc.Now.Format("3:04:05 PM")

	replacements := map[string]string{
		"{{date}}":          date,
		"{{time}}":          clock,
		"{{datetime}}":      date + " " + clock,
		"{{transcription}}": transcriptionValue(rc),
		"{{notes}}":         "",
		"{{audio}}":         "",
		"{{attendees}}":     attendeesValue(rc),
		"{{agenda}}":        agendaValue(rc),
	}
	for placeholder, value := range replacements {
		content = strings.ReplaceAll(content, placeholder, value)
	}
	return content
}

func transcriptionValue(rc RenderContext) string {
	switch rc.Mode {
	case TranscriptionPending:
		return PendingTranscription
	case TranscriptionOmitted:
		return ""
	default:
		return rc.Transcription
	}
}

func attendeesValue(rc RenderContext) string {
	if rc.Metadata != nil && rc.Metadata.Attendees != "" {
		return rc.Metadata.Attendees
	}
	if rc.Analysis != nil && len(rc.Analysis.Participants) > 0 {
		return strings.Join(rc.Analysis.Participants, ", ")
	}
	return ""
}

func agendaValue(rc RenderContext) string {
	if rc.Metadata != nil && rc.Metadata.Agenda != "" {
		return rc.Metadata.Agenda
	}
	if rc.Analysis != nil && len(rc.Analysis.Agenda) > 0 {
		return formatBullets(rc.Analysis.Agenda)
	}
	return ""
}

// FallbackNote is the no-template layout: an audio embed reference
// followed by the transcript.
func FallbackNote(audioName, transcript string) string {
	return fmt.Sprintf("![[%s]]\n\n%s", audioName, transcript)
}

// FallbackPastedNote is the no-template layout for pasted transcripts:
// a metadata header block plus analysis sections, with the raw
// transcript deliberately excluded.
func FallbackPastedNote(rc RenderContext) string {
	var b strings.Builder
	b.WriteString("# Meeting Notes\n\n")
	b.WriteString(fmt.Sprintf("**Date**: %s\n", rc.Now.Format("1/2/2006")))
	b.WriteString(fmt.Sprintf("**Time**: %s\n", rc.Now.Format("3:04:05 PM")))
	if attendees := attendeesValue(rc); attendees != "" {
		b.WriteString(fmt.Sprintf("**Attendees**: %s\n", attendees))
	}
	if agenda := agendaValue(rc); agenda != "" {
		b.WriteString("\n### Agenda\n" + agenda + "\n")
	}

	if rc.Analysis != nil {
		if len(rc.Analysis.KeyPoints) > 0 {
			b.WriteString("\n### Key Points\n" + formatBullets(rc.Analysis.KeyPoints) + "\n")
		}
		if len(rc.Analysis.ActionItems) > 0 {
			b.WriteString("\n### Action Items\n" + formatActionItems(rc.Analysis.ActionItems) + "\n")
		}
		if len(rc.Analysis.NextSteps) > 0 {
			b.WriteString("\n### Next Steps\n" + formatBullets(rc.Analysis.NextSteps) + "\n")
		}
	}
	return b.String()
}

// NoteFileName builds the default note name for a meeting started at t,
// e.g. "2026-08-29 2.05 PM - Meeting Notes.md".
func NoteFileName(t time.Time) string {
	return t.Format("2006-01-02 3.04 PM") + " - Meeting Notes.md"
}
