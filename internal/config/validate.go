package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/SayCV/subspy/internal/filename"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateRename(); err != nil {
		return err
	}
	if err := c.validateTranslate(); err != nil {
		return err
	}
	if err := c.validateConvert(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateRename() error {
	if !strings.Contains(c.Rename.Template, filename.PlaceholderEpisode) {
		return fmt.Errorf("rename.template: must contain %s", filename.PlaceholderEpisode)
	}
	if c.Rename.NamePattern != "" {
		if _, err := filename.Compile(c.Rename.NamePattern); err != nil {
			return fmt.Errorf("rename.name_pattern: %w", err)
		}
	}
	for _, pattern := range c.Rename.Exclude {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return fmt.Errorf("rename.exclude: pattern %q: %w", pattern, err)
		}
	}
	return nil
}

func (c *Config) validateTranslate() error {
	switch c.Translate.Engine {
	case "google", "llm":
	default:
		return fmt.Errorf("translate.engine: unsupported value %q (expected google or llm)", c.Translate.Engine)
	}
	if c.Translate.CharLimit < 0 {
		return errors.New("translate.char_limit must be positive")
	}
	if c.Translate.Concurrency < 0 {
		return errors.New("translate.concurrency must be positive")
	}
	if c.Translate.RequestDelayMS < 0 {
		return errors.New("translate.request_delay_ms must not be negative")
	}
	return nil
}

func (c *Config) validateConvert() error {
	switch c.Convert.ASSStyleMode {
	case "replace", "merge":
		return nil
	default:
		return fmt.Errorf("convert.ass_style_mode: unsupported value %q (expected replace or merge)", c.Convert.ASSStyleMode)
	}
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q (expected console or json)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	if c.Logging.MaxSizeMB < 0 || c.Logging.MaxBackups < 0 {
		return errors.New("logging.max_size_mb and logging.max_backups must not be negative")
	}
	return nil
}
