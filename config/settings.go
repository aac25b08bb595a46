package config

import (
	"strings"

	"github.com/notedly/minutes/logger"
	"github.com/notedly/minutes/validation"
)

// Default values applied by Settings.ApplyDefaults.
const (
	DefaultAPIURL             = "https://api.openai.com/v1/audio/transcriptions"
	DefaultModel              = "whisper-1"
	DefaultLanguage           = "en"
	DefaultParagraphThreshold = 2.0
	DefaultAnalysisModel      = "gpt-4o-mini"
	DefaultTemplate           = "general"
)

// DefaultAnalysisPrompt is the system prompt used for meeting analysis when
// no custom prompt is configured.
const DefaultAnalysisPrompt = `Analyze this meeting transcription and any provided notes to extract:

1. **Participants**: List all people mentioned or speaking in the meeting
2. **Agenda**: Main topics or purpose of the meeting (2-3 bullet points)
3. **Key Points**: 3-5 main topics or decisions discussed
4. **Action Items**: Specific tasks with owners if mentioned (format as "- [ ] Task description @owner")
5. **Next Steps**: Future actions or follow-ups discussed

Be concise and focus on actionable insights. If notes are provided, prioritize information from the notes over the transcription.`

// Settings is the full configuration surface of the pipeline.
type Settings struct {
	// Transcription service.
	APIKey   string `mapstructure:"api_key"`
	APIURL   string `mapstructure:"api_url" validate:"required,url"`
	Model    string `mapstructure:"model" validate:"required"`
	Language string `mapstructure:"language"`
	// Prompt seeds the transcription model with domain vocabulary.
	Prompt string `mapstructure:"prompt"`

	// Transcript assembly.
	ParagraphBreakThreshold float64 `mapstructure:"paragraph_break_threshold" validate:"gte=0"`

	// MaxChunkSize overrides the chunk size ceiling, e.g. "24MB".
	// Empty keeps the built-in limit.
	MaxChunkSize string `mapstructure:"max_chunk_size"`

	// AI analysis.
	EnableAnalysis bool   `mapstructure:"enable_analysis"`
	AnalysisModel  string `mapstructure:"analysis_model"`
	AnalysisPrompt string `mapstructure:"analysis_prompt"`

	// Note synthesis.
	UseTemplate       bool   `mapstructure:"use_template"`
	SelectedTemplate  string `mapstructure:"selected_template"`
	PromptForMetadata bool   `mapstructure:"prompt_for_metadata"`
	DefaultAttendees  string `mapstructure:"default_attendees"`

	Logging logger.Config `mapstructure:"logging"`

	Debug bool `mapstructure:"debug"`
}

// ApplyDefaults fills zero-valued fields with production defaults.
func (s *Settings) ApplyDefaults() {
	if s.APIURL == "" {
		s.APIURL = DefaultAPIURL
	}
	if s.Model == "" {
		s.Model = DefaultModel
	}
	if s.Language == "" {
		s.Language = DefaultLanguage
	}
	if s.ParagraphBreakThreshold == 0 {
		s.ParagraphBreakThreshold = DefaultParagraphThreshold
	}
	if s.AnalysisModel == "" {
		s.AnalysisModel = DefaultAnalysisModel
	}
	if s.AnalysisPrompt == "" {
		s.AnalysisPrompt = DefaultAnalysisPrompt
	}
	if s.SelectedTemplate == "" {
		s.SelectedTemplate = DefaultTemplate
	}
	s.Logging.ApplyDefaults()
	if s.Debug {
		s.Logging.Level = "debug"
	}
}

// Validate reports configuration problems that must abort before any
// network call is made.
func (s *Settings) Validate() error {
	if err := validation.Validate(s); err != nil {
		return err
	}
	return s.Logging.Validate()
}

// ChatURL derives the chat completions endpoint from the transcription
// endpoint, so a custom base URL carries over to analysis.
func (s *Settings) ChatURL() string {
	if strings.Contains(s.APIURL, "/audio/transcriptions") {
		return strings.Replace(s.APIURL, "/audio/transcriptions", "/chat/completions", 1)
	}
	return "https://api.openai.com/v1/chat/completions"
}
