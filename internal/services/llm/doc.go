// Package llm provides an OpenAI-compatible chat client used to translate
// subtitle dialogue.
//
// # Entry Points
//
// NewClient: construct client from Config.
// Client.CompleteJSON: send system/user prompts, receive a JSON response.
// Client.TranslateLines: translate a batch of dialogue lines, one output per input.
//
// # Retry Behaviour
//
// The client retries on HTTP 408/429/5xx errors, empty completions and
// network timeouts with exponential backoff (base 1s, max 10s, up to 5
// attempts by default). Retry-After headers are honored up to the max delay.
// Context cancellation aborts retries immediately.
package llm
