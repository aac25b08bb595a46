package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/notedly/minutes/errors"
)

// EnvPrefix namespaces environment variables, e.g. MINUTES_API_KEY.
const EnvPrefix = "MINUTES_"

// FileSystem abstracts file lookups so loading is testable without
// touching the real working directory.
type FileSystem interface {
	Exists(path string) bool
	LoadEnv(path string) error
	UserHomeDir() (string, error)
}

// RealFileSystem implements FileSystem using actual file operations.
type RealFileSystem struct{}

func (rfs *RealFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (rfs *RealFileSystem) LoadEnv(path string) error {
	return godotenv.Load(path)
}

func (rfs *RealFileSystem) UserHomeDir() (string, error) {
	return os.UserHomeDir()
}

// LoaderConfig holds dependencies and optional file overrides.
type LoaderConfig struct {
	FileSystem FileSystem
	ConfigFile string
	EnvFile    string
	Environ    []string
}

// LoaderOption is a functional option for LoadSettings.
type LoaderOption func(*LoaderConfig)

// WithFileSystem sets a custom filesystem for the loader.
func WithFileSystem(fs FileSystem) LoaderOption {
	return func(lc *LoaderConfig) { lc.FileSystem = fs }
}

// WithConfigFile sets an explicit config file path, skipping the search.
func WithConfigFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.ConfigFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// WithEnviron overrides the environment variables seen by the loader.
func WithEnviron(environ []string) LoaderOption {
	return func(lc *LoaderConfig) { lc.Environ = environ }
}

// LoadSettings resolves configuration files, binds the environment, and
// returns validated settings with defaults applied.
//
// Precedence, lowest to highest: built-in defaults, config file, .env
// file, process environment.
func LoadSettings(opts ...LoaderOption) (*Settings, error) {
	lc := LoaderConfig{}
	for _, opt := range opts {
		opt(&lc)
	}
	if lc.FileSystem == nil {
		lc.FileSystem = &RealFileSystem{}
	}
	if lc.ConfigFile == "" {
		lc.ConfigFile = findConfigFile(lc.FileSystem)
	}
	if lc.EnvFile == "" {
		lc.EnvFile = findEnvFile(lc.FileSystem)
	}

	v := viper.New()
	v.SetDefault("prompt_for_metadata", true)

	if lc.ConfigFile != "" && lc.FileSystem.Exists(lc.ConfigFile) {
		v.SetConfigFile(lc.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Configuration(fmt.Sprintf("failed to read config file %s", lc.ConfigFile)).WithCause(err)
		}
	}

	if lc.EnvFile != "" && lc.FileSystem.Exists(lc.EnvFile) {
		if err := lc.FileSystem.LoadEnv(lc.EnvFile); err != nil {
			return nil, errors.Configuration(fmt.Sprintf("failed to load env file %s", lc.EnvFile)).WithCause(err)
		}
	}

	environ := lc.Environ
	if environ == nil {
		environ = os.Environ()
	}
	bindEnviron(v, environ)

	settings := &Settings{}
	if err := v.Unmarshal(settings); err != nil {
		return nil, errors.Configuration("failed to unmarshal settings").WithCause(err)
	}

	settings.ApplyDefaults()
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// findConfigFile searches standard locations for a minutes config file.
func findConfigFile(fs FileSystem) string {
	searchPaths := []string{
		"./minutes.yml",
		"./minutes.yaml",
		"./config/minutes.yml",
	}
	if home, err := fs.UserHomeDir(); err == nil {
		searchPaths = append(searchPaths,
			filepath.Join(home, ".config", "minutes", "config.yml"),
			filepath.Join(home, ".config", "minutes", "config.yaml"),
		)
	}
	for _, path := range searchPaths {
		if fs.Exists(path) {
			return path
		}
	}
	return ""
}

// findEnvFile searches standard locations for a .env file.
func findEnvFile(fs FileSystem) string {
	searchPaths := []string{".env.minutes", ".env"}
	for _, path := range searchPaths {
		if fs.Exists(path) {
			return path
		}
	}
	return ""
}

// bindEnviron maps environment variables into viper keys.
//
// MINUTES_-prefixed variables are stripped and lowercased, with dotted
// variants generated so nested keys resolve, e.g.
// MINUTES_LOGGING_LEVEL -> logging.level. OPENAI_API_KEY is honored as a
// fallback for api_key.
func bindEnviron(v *viper.Viper, environ []string) {
	for _, env := range environ {
		pair := strings.SplitN(env, "=", 2)
		if len(pair) != 2 {
			continue
		}
		key, value := pair[0], pair[1]

		if key == "OPENAI_API_KEY" && !v.IsSet("api_key") {
			v.Set("api_key", value)
			continue
		}
		if !strings.HasPrefix(key, EnvPrefix) {
			continue
		}
		for _, variant := range envKeyVariants(strings.TrimPrefix(key, EnvPrefix)) {
			v.Set(variant, value)
		}
	}
}

// envKeyVariants generates possible nested key spellings for an
// environment variable name.
//
//	LOGGING_LEVEL -> [logging_level, logging.level]
//	PARAGRAPH_BREAK_THRESHOLD -> [paragraph_break_threshold, paragraph.break.threshold, paragraph.break_threshold]
func envKeyVariants(key string) []string {
	lower := strings.ToLower(key)
	parts := strings.Split(lower, "_")
	if len(parts) <= 1 {
		return []string{lower}
	}

	variants := []string{
		lower,
		strings.ReplaceAll(lower, "_", "."),
	}
	for i := 1; i < len(parts); i++ {
		variants = append(variants, strings.Join(parts[:i], ".")+"."+strings.Join(parts[i:], "_"))
	}

	seen := make(map[string]bool, len(variants))
	unique := variants[:0]
	for _, variant := range variants {
		if !seen[variant] {
			seen[variant] = true
			unique = append(unique, variant)
		}
	}
	return unique
}
