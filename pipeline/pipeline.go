package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/notedly/minutes/analysis"
	"github.com/notedly/minutes/audio"
	"github.com/notedly/minutes/config"
	"github.com/notedly/minutes/errors"
	"github.com/notedly/minutes/logger"
	"github.com/notedly/minutes/notes"
	"github.com/notedly/minutes/transcript"
	"github.com/notedly/minutes/transcription"
	"github.com/notedly/minutes/util"
	"github.com/notedly/minutes/vault"
)

// Notifier delivers user-visible progress and problem notices. Errors
// that do not abort the pipeline still pass through here so nothing
// fails silently.
type Notifier func(message string)

// Pipeline wires the meeting components together.
type Pipeline struct {
	settings    *config.Settings
	transcriber transcription.Provider
	analyzer    *analysis.Analyzer
	store       vault.Vault
	catalog     *notes.Catalog
	log         *logger.Logger
	notify      Notifier
	now         func() time.Time
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithNotifier sets the user-notice callback.
func WithNotifier(n Notifier) Option {
	return func(p *Pipeline) { p.notify = n }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) { p.now = now }
}

// New creates a pipeline.
func New(settings *config.Settings, transcriber transcription.Provider, analyzer *analysis.Analyzer, store vault.Vault, catalog *notes.Catalog, log *logger.Logger, opts ...Option) *Pipeline {
	p := &Pipeline{
		settings:    settings,
		transcriber: transcriber,
		analyzer:    analyzer,
		store:       store,
		catalog:     catalog,
		log:         log.WithComponent("pipeline"),
		notify:      func(string) {},
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Result summarizes one completed pipeline run.
type Result struct {
	SessionID    string
	NotePath     string
	Transcript   string
	Analysis     *analysis.MeetingAnalysis
	ChunksTotal  int
	ChunksFailed int
}

// ProcessOptions carries per-run inputs.
type ProcessOptions struct {
	// Metadata holds user-entered meeting details. Optional.
	Metadata *notes.Metadata
	// ExistingNotePath points at a note created when recording started;
	// when set the transcript is merged into it instead of creating a
	// new note.
	ExistingNotePath string
}

// ProcessRecording runs the full flow for a recorded clip.
func (p *Pipeline) ProcessRecording(ctx context.Context, clip *audio.Clip, opts ProcessOptions) (*Result, error) {
	session := uuid.NewString()
	opts.Metadata = p.metadataDefaults(opts.Metadata)
	log := p.log.WithFields(map[string]any{logger.FieldSession: session})

	if p.transcriber == nil || !p.transcriber.IsAvailable(ctx) {
		return nil, errors.MissingCredential("transcription")
	}

	if audio.IsApproachingLimit(clip) && !audio.NeedsChunking(clip) {
		p.notify(fmt.Sprintf("Recording is %.1f MB, approaching the upload limit", clip.SizeMB()))
	}

	result := &Result{SessionID: session}

	chunkResults, total, failed, err := p.transcribeClip(ctx, clip, log)
	if err != nil {
		return nil, err
	}
	result.ChunksTotal = total
	result.ChunksFailed = failed
	result.Transcript = transcript.Combine(chunkResults, p.settings.ParagraphBreakThreshold)

	if opts.ExistingNotePath != "" {
		return p.updateExistingNote(ctx, result, opts)
	}
	return p.createNewNote(ctx, clip, result, opts)
}

// transcribeClip transcribes a clip chunk by chunk, in index order.
// Failed chunks are skipped with a notice.
func (p *Pipeline) transcribeClip(ctx context.Context, clip *audio.Clip, log *logger.Logger) ([]transcript.ChunkTranscript, int, int, error) {
	var chunks []audio.Chunk
	if audio.NeedsChunking(clip) {
		chunks = audio.Plan(clip, util.ParseSize(p.settings.MaxChunkSize, audio.MaxChunkBytes))
		p.notify(fmt.Sprintf("Audio split into %d chunks for processing", len(chunks)))
	} else {
		chunks = []audio.Chunk{{
			Index:    0,
			Data:     clip.Data,
			MIMEType: clip.MIMEType,
			Name:     clip.Name,
			EndTime:  audio.EstimateDuration(clip.Size()),
		}}
	}

	log.Info("transcribing clip", map[string]any{
		logger.FieldChunks:    len(chunks),
		logger.FieldSizeBytes: clip.Size(),
		logger.FieldDuration:  audio.FormatDuration(audio.EstimateDuration(clip.Size())),
	})

	var results []transcript.ChunkTranscript
	failed := 0
	for _, chunk := range chunks {
		res, err := p.transcriber.Transcribe(ctx, transcription.Request{
			Audio:    chunk.Data,
			FileName: chunk.Name,
			MIMEType: chunk.MIMEType,
			Language: p.settings.Language,
			Prompt:   p.settings.Prompt,
		})
		if err != nil {
			failed++
			chunkErr := errors.ChunkTranscription(chunk.Index, err)
			log.WithError(chunkErr).Warn("chunk transcription failed, skipping", map[string]any{
				logger.FieldChunk: chunk.Index,
			})
			p.notify(fmt.Sprintf("Chunk %d failed to transcribe and was skipped", chunk.Index+1))
			continue
		}
		results = append(results, transcript.ChunkTranscript{
			Index:       chunk.Index,
			StartOffset: chunk.StartTime,
			Result:      res,
		})
	}

	if failed == len(chunks) {
		return nil, len(chunks), failed, errors.AllChunksFailed(len(chunks))
	}
	return results, len(chunks), failed, nil
}

// updateExistingNote merges the transcript and analysis into a note
// created when recording started.
func (p *Pipeline) updateExistingNote(ctx context.Context, result *Result, opts ProcessOptions) (*Result, error) {
	content, err := p.store.Read(opts.ExistingNotePath)
	if err != nil {
		p.notify("Transcription finished but the note could not be read; output was not written")
		return result, errors.Synthesis(opts.ExistingNotePath, err)
	}

	doc := notes.Parse(content)
	userNotes := doc.Body(notes.HeaderNotes)

	result.Analysis = p.runAnalysis(ctx, result.Transcript, userNotes)

	updated := strings.Replace(content, notes.PendingTranscription, result.Transcript, 1)
	doc = notes.Parse(updated)
	notes.ApplyAnalysis(doc, result.Analysis)

	if err := p.store.Write(opts.ExistingNotePath, doc.String()); err != nil {
		p.notify("Transcription finished but the note could not be written; output was not written")
		return result, errors.Synthesis(opts.ExistingNotePath, err)
	}
	p.log.Info("note updated", map[string]any{logger.FieldPath: opts.ExistingNotePath})
	result.NotePath = opts.ExistingNotePath
	return result, nil
}

// createNewNote synthesizes and writes a fresh note for the transcript.
func (p *Pipeline) createNewNote(ctx context.Context, clip *audio.Clip, result *Result, opts ProcessOptions) (*Result, error) {
	result.Analysis = p.runAnalysis(ctx, result.Transcript, "")

	var content string
	if template, ok := p.selectTemplate(opts.Metadata); ok {
		content = notes.Render(template, notes.RenderContext{
			Transcription: result.Transcript,
			Mode:          notes.TranscriptionInline,
			Metadata:      opts.Metadata,
			Analysis:      result.Analysis,
			Now:           p.now(),
		})
		content = mergeAnalysis(content, result.Analysis)
	} else {
		content = notes.FallbackNote(clip.Name, result.Transcript)
	}

	path, err := p.store.Create(notes.NoteFileName(p.now()), content)
	if err != nil {
		p.notify("Transcription finished but the note could not be created; output was not written")
		return result, errors.Synthesis("new note", err)
	}
	p.log.Info("note created", map[string]any{logger.FieldPath: path})
	result.NotePath = path
	return result, nil
}

// ProcessPasted synthesizes a note from a manually pasted transcript.
// The raw transcript is never reproduced in the note body.
func (p *Pipeline) ProcessPasted(ctx context.Context, text string, meta *notes.Metadata) (*Result, error) {
	session := uuid.NewString()
	meta = p.metadataDefaults(meta)
	result := &Result{
		SessionID:  session,
		Transcript: transcript.FormatPasted(text),
	}

	result.Analysis = p.runAnalysis(ctx, result.Transcript, "")

	rc := notes.RenderContext{
		Transcription: result.Transcript,
		Mode:          notes.TranscriptionOmitted,
		Metadata:      meta,
		Analysis:      result.Analysis,
		Now:           p.now(),
	}

	var content string
	if template, ok := p.selectTemplate(meta); ok {
		content = mergeAnalysis(notes.Render(template, rc), result.Analysis)
	} else {
		content = notes.FallbackPastedNote(rc)
	}

	path, err := p.store.Create(notes.NoteFileName(p.now()), content)
	if err != nil {
		p.notify("Analysis finished but the note could not be created; output was not written")
		return result, errors.Synthesis("new note", err)
	}
	result.NotePath = path
	return result, nil
}

// StartNote creates the initial note for a meeting that is about to be
// recorded. The transcription lands later via ProcessRecording with
// ExistingNotePath set to the returned path.
func (p *Pipeline) StartNote(meta *notes.Metadata) (string, error) {
	meta = p.metadataDefaults(meta)
	var content string
	if template, ok := p.selectTemplate(meta); ok {
		content = notes.Render(template, notes.RenderContext{
			Mode:     notes.TranscriptionPending,
			Metadata: meta,
			Now:      p.now(),
		})
	} else {
		content = "## Notes\n\n"
	}
	return p.store.Create(notes.NoteFileName(p.now()), content)
}

// mergeAnalysis folds analysis results into a freshly rendered note's
// anchor sections.
func mergeAnalysis(content string, result *analysis.MeetingAnalysis) string {
	if result == nil {
		return content
	}
	doc := notes.Parse(content)
	notes.ApplyAnalysis(doc, result)
	return doc.String()
}

// runAnalysis runs optional analysis; failures are reported and
// swallowed so the transcript always survives.
func (p *Pipeline) runAnalysis(ctx context.Context, transcriptText, userNotes string) *analysis.MeetingAnalysis {
	if p.analyzer == nil {
		return nil
	}
	result, err := p.analyzer.Analyze(ctx, transcriptText, userNotes)
	if err != nil {
		p.log.WithError(err).Warn("meeting analysis failed, continuing without it")
		p.notify("Meeting analysis failed; proceeding with transcript only")
		return nil
	}
	return result
}

// metadataDefaults fills the attendees from settings when metadata
// prompting is enabled and the caller supplied none.
func (p *Pipeline) metadataDefaults(meta *notes.Metadata) *notes.Metadata {
	if !p.settings.PromptForMetadata || p.settings.DefaultAttendees == "" {
		return meta
	}
	if meta == nil {
		return &notes.Metadata{Attendees: p.settings.DefaultAttendees}
	}
	if meta.Attendees == "" {
		filled := *meta
		filled.Attendees = p.settings.DefaultAttendees
		return &filled
	}
	return meta
}

// selectTemplate resolves the template for a run: the metadata's
// meeting type when given, otherwise the configured default. Returns
// false when templates are disabled or the template is unknown.
func (p *Pipeline) selectTemplate(meta *notes.Metadata) (string, bool) {
	if !p.settings.UseTemplate || p.catalog == nil {
		return "", false
	}
	name := p.settings.SelectedTemplate
	if meta != nil && meta.MeetingType != "" {
		name = meta.MeetingType
	}
	template, err := p.catalog.Get(name)
	if err != nil {
		p.log.WithError(err).Warn("template not found, using fallback layout", map[string]any{
			logger.FieldTemplate: name,
		})
		return "", false
	}
	return template, true
}
