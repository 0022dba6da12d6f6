package translate

import (
	"context"
	"strings"

	"github.com/SayCV/subspy/internal/language"
	"github.com/SayCV/subspy/internal/services/llm"
)

const llmCharLimit = 3000

// LLM translates with a chat model.
type LLM struct {
	client *llm.Client
}

// NewLLM wraps client as an Engine.
func NewLLM(client *llm.Client) *LLM {
	return &LLM{client: client}
}

func (e *LLM) Name() string { return "llm" }

func (e *LLM) CharLimit() int { return llmCharLimit }

// Translate names the languages for the prompt. An "auto" source is guessed
// from the text itself and left to the model when the guess is empty.
func (e *LLM) Translate(ctx context.Context, lines []string, from, to string) ([]string, error) {
	source := ""
	if code := strings.ToLower(strings.TrimSpace(from)); code != "" && code != "auto" {
		source = language.DisplayName(from)
	} else if detected := language.DetectText(strings.Join(lines, " ")); detected != "" {
		source = language.DisplayName(detected)
	}
	return e.client.TranslateLines(ctx, lines, source, language.DisplayName(to))
}
