package config

import "github.com/SayCV/subspy/internal/filename"

const (
	defaultSubsDir           = "subs"
	defaultTranslateEngine   = "google"
	defaultTranslateFrom     = "auto"
	defaultTranslateTo       = "chs"
	defaultCharLimit         = 5000
	defaultConcurrency       = 2
	defaultRequestDelayMS    = 1000
	defaultGoogleBaseURL     = "https://translate.googleapis.com/translate_a/single"
	defaultLLMBaseURL        = "https://openrouter.ai/api/v1/chat/completions"
	defaultLLMModel          = "google/gemini-3-flash-preview"
	defaultLLMReferer        = "https://github.com/SayCV/subspy"
	defaultLLMTitle          = "subspy"
	defaultLLMTimeoutSeconds = 60
	defaultASSStyleMode      = "replace"
	defaultLogFormat         = "console"
	defaultLogLevel          = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Rename: Rename{
			Template: filename.DefaultTemplate,
			SubsDir:  defaultSubsDir,
		},
		Translate: Translate{
			Engine:         defaultTranslateEngine,
			From:           defaultTranslateFrom,
			To:             defaultTranslateTo,
			CharLimit:      defaultCharLimit,
			Concurrency:    defaultConcurrency,
			RequestDelayMS: defaultRequestDelayMS,
			GoogleBaseURL:  defaultGoogleBaseURL,
		},
		LLM: LLM{
			BaseURL:        defaultLLMBaseURL,
			Model:          defaultLLMModel,
			Referer:        defaultLLMReferer,
			Title:          defaultLLMTitle,
			TimeoutSeconds: defaultLLMTimeoutSeconds,
		},
		Convert: Convert{
			ASSStyleMode: defaultASSStyleMode,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
