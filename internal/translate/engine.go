package translate

import (
	"fmt"
	"time"

	"github.com/SayCV/subspy/internal/config"
	"github.com/SayCV/subspy/internal/services"
	"github.com/SayCV/subspy/internal/services/llm"
)

// NewEngine builds the engine named by name, falling back to the configured
// engine when name is empty.
func NewEngine(cfg *config.Config, name string) (Engine, error) {
	if name == "" {
		name = cfg.Translate.Engine
	}
	switch name {
	case "google":
		return NewGoogle(cfg.Translate.GoogleBaseURL, time.Duration(cfg.LLM.TimeoutSeconds)*time.Second), nil
	case "llm":
		if cfg.LLM.APIKey == "" {
			return nil, services.Wrap(services.ErrConfiguration, "trans", "llm",
				"api key missing; set llm.api_key or SUBSPY_LLM_API_KEY", nil)
		}
		return NewLLM(llm.NewClient(llm.Config{
			APIKey:         cfg.LLM.APIKey,
			BaseURL:        cfg.LLM.BaseURL,
			Model:          cfg.LLM.Model,
			Referer:        cfg.LLM.Referer,
			Title:          cfg.LLM.Title,
			TimeoutSeconds: cfg.LLM.TimeoutSeconds,
		})), nil
	default:
		return nil, services.Wrap(services.ErrValidation, "trans", "engine",
			fmt.Sprintf("unsupported engine %q (expected google or llm)", name), nil)
	}
}

// OptionsFromConfig returns the request shaping configured under [translate].
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		CharLimit:    cfg.Translate.CharLimit,
		Concurrency:  cfg.Translate.Concurrency,
		RequestDelay: time.Duration(cfg.Translate.RequestDelayMS) * time.Millisecond,
	}
}
