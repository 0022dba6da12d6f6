package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

const translationPrompt = `You translate subtitle dialogue.
Translate every entry of the "lines" array from %s to %s.
Keep the order and the number of entries. Keep inline markup such as <i>, {\an8} and line breaks.
Do not merge, split, explain or skip entries.
Respond with JSON only: {"translations": ["...", "..."]}`

type translationRequest struct {
	Lines []string `json:"lines"`
}

type translationResponse struct {
	Translations []string `json:"translations"`
}

// TranslateLines translates lines from one language to another. from and to
// are display names or codes the model understands; an empty from asks the
// model to detect the source language. The result has one entry per input line.
func (c *Client) TranslateLines(ctx context.Context, lines []string, from, to string) ([]string, error) {
	if len(lines) == 0 {
		return nil, nil
	}
	if strings.TrimSpace(to) == "" {
		return nil, errors.New("llm translate: target language required")
	}
	if strings.TrimSpace(from) == "" {
		from = "the detected source language"
	}
	user, err := json.Marshal(translationRequest{Lines: lines})
	if err != nil {
		return nil, fmt.Errorf("llm translate: encode lines: %w", err)
	}
	content, err := c.CompleteJSON(ctx, fmt.Sprintf(translationPrompt, from, to), string(user))
	if err != nil {
		return nil, err
	}
	var parsed translationResponse
	if err := DecodeLLMJSON(content, &parsed); err != nil {
		return nil, fmt.Errorf("llm translate: parse payload: %w", err)
	}
	if len(parsed.Translations) != len(lines) {
		return nil, fmt.Errorf("llm translate: got %d translations for %d lines", len(parsed.Translations), len(lines))
	}
	return parsed.Translations, nil
}
