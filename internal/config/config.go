package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"github.com/SayCV/subspy/internal/filename"
)

//go:embed sample_config.toml
var sampleConfig string

// Rename contains configuration for the episode rename command.
type Rename struct {
	Template    string   `toml:"template"`
	NamePattern string   `toml:"name_pattern"`
	SubsDir     string   `toml:"subs_dir"`
	Recursive   bool     `toml:"recursive"`
	Exclude     []string `toml:"exclude"`
}

// Translate contains configuration for machine translation of dialogue lines.
type Translate struct {
	Engine         string `toml:"engine"`
	From           string `toml:"from"`
	To             string `toml:"to"`
	CharLimit      int    `toml:"char_limit"`
	Concurrency    int    `toml:"concurrency"`
	RequestDelayMS int    `toml:"request_delay_ms"`
	GoogleBaseURL  string `toml:"google_base_url"`
}

// LLM contains the chat-completion settings used by the llm translation engine.
type LLM struct {
	APIKey         string `toml:"api_key"`
	BaseURL        string `toml:"base_url"`
	Model          string `toml:"model"`
	Referer        string `toml:"referer"`
	Title          string `toml:"title"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// Convert contains defaults for subtitle container conversion.
type Convert struct {
	ASSStyle     string `toml:"ass_style"`
	ASSStyleMode string `toml:"ass_style_mode"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format     string `toml:"format"`
	Level      string `toml:"level"`
	File       string `toml:"file"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
}

// Config encapsulates all configuration values for subspy.
//
// Configuration sections by command:
//   - Rename: naming template, filename pattern, subtitle directory
//   - Translate: engine selection and request chunking
//   - LLM: chat-completion endpoint for the llm engine
//   - Convert: ASS style import defaults
//   - Logging: log format, level and optional file
type Config struct {
	Rename    Rename    `toml:"rename"`
	Translate Translate `toml:"translate"`
	LLM       LLM       `toml:"llm"`
	Convert   Convert   `toml:"convert"`
	Logging   Logging   `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/subspy/config.toml")
}

// Load reads an optional .env file, locates and parses the configuration
// file, then normalizes and validates the result. A missing file yields the
// defaults.
func Load(path string) (*Config, string, bool, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, "", false, err
	}

	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

// loadDotEnv exports variables from path without overriding ones already set.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("subspy.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// FilenamePattern resolves the filename pattern. TVS_FILENAME_PATTERN wins
// over flagValue, which wins over the config file and the built-in default.
func (c *Config) FilenamePattern(flagValue string) string {
	env, _ := os.LookupEnv(filename.PatternEnv)
	return filename.ResolvePattern(env, flagValue, c.Rename.NamePattern)
}

// SubsDir resolves the subtitle directory for inDir. An explicit value is used
// as given; otherwise <inDir>/<rename.subs_dir> is used when it exists and
// inDir itself when it does not.
func (c *Config) SubsDir(inDir, explicit string) string {
	if explicit = strings.TrimSpace(explicit); explicit != "" {
		return explicit
	}
	candidate := c.Rename.SubsDir
	if !filepath.IsAbs(candidate) {
		candidate = filepath.Join(inDir, candidate)
	}
	if info, err := os.Stat(candidate); err == nil && info.IsDir() {
		return candidate
	}
	return inDir
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
