package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeRename(); err != nil {
		return err
	}
	c.normalizeTranslate()
	c.normalizeLLM()
	if err := c.normalizeConvert(); err != nil {
		return err
	}
	if err := c.normalizeLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) normalizeRename() error {
	if strings.TrimSpace(c.Rename.Template) == "" {
		c.Rename.Template = Default().Rename.Template
	}
	c.Rename.SubsDir = strings.TrimSpace(c.Rename.SubsDir)
	if c.Rename.SubsDir == "" {
		c.Rename.SubsDir = defaultSubsDir
	}
	if strings.HasPrefix(c.Rename.SubsDir, "~") {
		expanded, err := expandPath(c.Rename.SubsDir)
		if err != nil {
			return fmt.Errorf("rename.subs_dir: %w", err)
		}
		c.Rename.SubsDir = expanded
	}
	exclude := c.Rename.Exclude[:0]
	for _, pattern := range c.Rename.Exclude {
		if pattern = strings.TrimSpace(pattern); pattern != "" {
			exclude = append(exclude, pattern)
		}
	}
	c.Rename.Exclude = exclude
	return nil
}

func (c *Config) normalizeTranslate() {
	c.Translate.Engine = strings.ToLower(strings.TrimSpace(c.Translate.Engine))
	if c.Translate.Engine == "" {
		c.Translate.Engine = defaultTranslateEngine
	}
	c.Translate.From = strings.TrimSpace(c.Translate.From)
	if c.Translate.From == "" {
		c.Translate.From = defaultTranslateFrom
	}
	c.Translate.To = strings.TrimSpace(c.Translate.To)
	if c.Translate.To == "" {
		c.Translate.To = defaultTranslateTo
	}
	if c.Translate.CharLimit == 0 {
		c.Translate.CharLimit = defaultCharLimit
	}
	if c.Translate.Concurrency == 0 {
		c.Translate.Concurrency = defaultConcurrency
	}
	c.Translate.GoogleBaseURL = strings.TrimSpace(c.Translate.GoogleBaseURL)
	if c.Translate.GoogleBaseURL == "" {
		c.Translate.GoogleBaseURL = defaultGoogleBaseURL
	}
}

func (c *Config) normalizeLLM() {
	c.LLM.BaseURL = strings.TrimSpace(c.LLM.BaseURL)
	if c.LLM.BaseURL == "" {
		c.LLM.BaseURL = defaultLLMBaseURL
	}
	c.LLM.Model = strings.TrimSpace(c.LLM.Model)
	if c.LLM.Model == "" {
		c.LLM.Model = defaultLLMModel
	}
	c.LLM.Referer = strings.TrimSpace(c.LLM.Referer)
	c.LLM.Title = strings.TrimSpace(c.LLM.Title)
	if c.LLM.TimeoutSeconds <= 0 {
		c.LLM.TimeoutSeconds = defaultLLMTimeoutSeconds
	}
	c.LLM.APIKey = strings.TrimSpace(c.LLM.APIKey)
	if c.LLM.APIKey == "" {
		if value, ok := os.LookupEnv("SUBSPY_LLM_API_KEY"); ok {
			c.LLM.APIKey = strings.TrimSpace(value)
		} else if value, ok := os.LookupEnv("OPENROUTER_API_KEY"); ok {
			c.LLM.APIKey = strings.TrimSpace(value)
		}
	}
}

func (c *Config) normalizeConvert() error {
	c.Convert.ASSStyleMode = strings.ToLower(strings.TrimSpace(c.Convert.ASSStyleMode))
	if c.Convert.ASSStyleMode == "" {
		c.Convert.ASSStyleMode = defaultASSStyleMode
	}
	if c.Convert.ASSStyle = strings.TrimSpace(c.Convert.ASSStyle); c.Convert.ASSStyle != "" {
		expanded, err := expandPath(c.Convert.ASSStyle)
		if err != nil {
			return fmt.Errorf("convert.ass_style: %w", err)
		}
		c.Convert.ASSStyle = expanded
	}
	return nil
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	if value, ok := os.LookupEnv("SUBSPY_LOG_LEVEL"); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Logging.File = strings.TrimSpace(c.Logging.File); c.Logging.File != "" {
		expanded, err := expandPath(c.Logging.File)
		if err != nil {
			return fmt.Errorf("logging.file: %w", err)
		}
		c.Logging.File = expanded
	}
	return nil
}
