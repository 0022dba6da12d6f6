// Package config loads, normalizes, and validates subspy configuration.
//
// Settings come from a TOML file (--config, ~/.config/subspy/config.toml or
// ./subspy.toml), with a .env file in the working directory loaded first so
// API keys can live outside the config. Environment fallbacks such as
// SUBSPY_LLM_API_KEY fill empty keys, and TVS_FILENAME_PATTERN overrides the
// filename pattern at resolution time.
//
// Always obtain settings through this package so commands receive canonical
// values and clear validation errors naming the offending key.
package config
