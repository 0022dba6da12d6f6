package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/SayCV/subspy/internal/language"
	"github.com/SayCV/subspy/internal/services"
)

const (
	// DefaultGoogleURL is the keyless web endpoint.
	DefaultGoogleURL = "https://translate.googleapis.com/translate_a/single"
	googleCharLimit  = 5000
)

// Google translates through the translate_a/single endpoint. Lines are sent
// newline-joined in one form field; when the reply does not split back into
// the same number of lines each line is retried on its own.
type Google struct {
	baseURL string
	client  *resty.Client
}

// NewGoogle returns a Google engine for baseURL, or DefaultGoogleURL when empty.
func NewGoogle(baseURL string, timeout time.Duration) *Google {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultGoogleURL
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("User-Agent", "Mozilla/5.0 (X11; Linux x86_64) subspy")
	return &Google{baseURL: baseURL, client: client}
}

func (g *Google) Name() string { return "google" }

func (g *Google) CharLimit() int { return googleCharLimit }

func (g *Google) Translate(ctx context.Context, lines []string, from, to string) ([]string, error) {
	joined, err := g.request(ctx, strings.Join(lines, "\n"), from, to)
	if err != nil {
		return nil, err
	}
	joined = strings.Trim(strings.ReplaceAll(joined, "\n\n", "\n"), "\n")
	out := strings.Split(joined, "\n")
	if len(out) == len(lines) {
		return out, nil
	}

	out = make([]string, len(lines))
	for i, line := range lines {
		translated, err := g.request(ctx, line, from, to)
		if err != nil {
			return nil, err
		}
		out[i] = strings.ReplaceAll(translated, "\n", " ")
	}
	return out, nil
}

func (g *Google) request(ctx context.Context, text, from, to string) (string, error) {
	resp, err := g.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"client": "gtx",
			"sl":     language.EngineCode(from),
			"tl":     language.EngineCode(to),
			"dt":     "t",
		}).
		SetFormData(map[string]string{"q": text}).
		Post(g.baseURL)
	if err != nil {
		return "", services.Wrap(services.ErrTransient, "trans", "google", "request failed", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return "", services.Wrap(services.ErrExternalTool, "trans", "google",
			fmt.Sprintf("http %d: %s", resp.StatusCode(), strings.TrimSpace(string(resp.Body()))), nil)
	}
	return parseGoogleResponse(resp.Body())
}

// parseGoogleResponse concatenates the translated parts of a reply shaped like
// [[["translated","original",...],...],...].
func parseGoogleResponse(body []byte) (string, error) {
	var payload []any
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", services.Wrap(services.ErrExternalTool, "trans", "google", "decode response", err)
	}
	if len(payload) == 0 {
		return "", services.Wrap(services.ErrExternalTool, "trans", "google", "empty response", nil)
	}
	parts, ok := payload[0].([]any)
	if !ok {
		return "", services.Wrap(services.ErrExternalTool, "trans", "google", "unexpected response shape", nil)
	}
	var b strings.Builder
	for _, part := range parts {
		fields, ok := part.([]any)
		if !ok || len(fields) == 0 {
			continue
		}
		if text, ok := fields[0].(string); ok {
			b.WriteString(text)
		}
	}
	return b.String(), nil
}
