// Command minutes transcribes meeting audio and synthesizes markdown
// meeting notes into a vault directory.
package main

import (
	"fmt"
	"os"

	"github.com/notedly/minutes/analysis"
	"github.com/notedly/minutes/config"
	"github.com/notedly/minutes/llm"
	"github.com/notedly/minutes/llm/openai"
	"github.com/notedly/minutes/logger"
	"github.com/notedly/minutes/notes"
	"github.com/notedly/minutes/pipeline"
	"github.com/notedly/minutes/transcription"
	"github.com/notedly/minutes/transcription/whisper"
	"github.com/notedly/minutes/util"
	"github.com/notedly/minutes/vault"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// dependencies holds everything commands need, built once per
// invocation after global flags are parsed.
type dependencies struct {
	Settings *config.Settings
	Pipeline *pipeline.Pipeline
	Catalog  *notes.Catalog
	Log      *logger.Logger
}

// setup loads settings and wires the pipeline.
func setup(configFile, vaultDir string, debug bool) (*dependencies, error) {
	var loadOpts []config.LoaderOption
	if configFile != "" {
		loadOpts = append(loadOpts, config.WithConfigFile(configFile))
	}
	settings, err := config.LoadSettings(loadOpts...)
	if err != nil {
		return nil, err
	}
	if debug {
		settings.Debug = true
		settings.Logging.Level = "debug"
	}

	log := logger.New(&settings.Logging, "minutes")
	log.Debug("settings loaded", map[string]any{
		"api_url": settings.APIURL,
		"api_key": util.MaskSecret(settings.APIKey, 6),
		"model":   settings.Model,
	})

	store, err := vault.NewDir(vaultDir)
	if err != nil {
		return nil, err
	}

	p, err := buildPipeline(settings, store, log)
	if err != nil {
		return nil, err
	}

	return &dependencies{
		Settings: settings,
		Pipeline: p,
		Catalog:  notes.DefaultCatalog(),
		Log:      log,
	}, nil
}

// buildPipeline wires providers through their registries so backends
// stay swappable by name.
func buildPipeline(settings *config.Settings, store vault.Vault, log *logger.Logger) (*pipeline.Pipeline, error) {
	transcribers := transcription.NewRegistry()
	transcribers.RegisterFactory(whisper.ProviderName, whisper.Factory())
	transcriber, err := transcribers.Create(whisper.ProviderName, map[string]any{
		"url":     settings.APIURL,
		"api_key": settings.APIKey,
		"model":   settings.Model,
	})
	if err != nil {
		return nil, err
	}

	chats := llm.NewRegistry()
	chats.RegisterFactory(openai.ProviderName, openai.Factory())
	chat, err := chats.Create(openai.ProviderName, map[string]any{
		"url":     settings.ChatURL(),
		"api_key": settings.APIKey,
		"model":   settings.AnalysisModel,
	})
	if err != nil {
		return nil, err
	}

	analyzer := analysis.NewAnalyzer(chat, analysis.Config{
		Enabled:      settings.EnableAnalysis,
		Model:        settings.AnalysisModel,
		SystemPrompt: settings.AnalysisPrompt,
	}, log)

	notify := func(message string) {
		fmt.Fprintln(os.Stderr, message)
	}
	return pipeline.New(settings, transcriber, analyzer, store, notes.DefaultCatalog(), log,
		pipeline.WithNotifier(notify)), nil
}
