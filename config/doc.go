// Package config loads minutes configuration from YAML files and the
// environment.
//
// Settings carries the full configuration surface of the pipeline:
// transcription endpoint and model, assembly thresholds, analysis toggles,
// and template selection. LoadSettings resolves a config.yml and optional
// .env file, binds environment variables, applies defaults, and validates
// the result.
package config
