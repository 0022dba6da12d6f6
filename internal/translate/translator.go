package translate

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/SayCV/subspy/internal/logging"
)

// DefaultCharLimit is the per-request character budget when the engine and
// caller set none.
const DefaultCharLimit = 5000

// Engine translates a batch of single-line segments.
type Engine interface {
	Name() string
	// CharLimit is the largest request the engine accepts, 0 for no opinion.
	CharLimit() int
	Translate(ctx context.Context, lines []string, from, to string) ([]string, error)
}

// Options tunes request shaping.
type Options struct {
	CharLimit    int
	Concurrency  int
	RequestDelay time.Duration
}

// Translator drives an Engine over arbitrarily long input.
type Translator struct {
	engine Engine
	opts   Options
	logger *slog.Logger
	pace   *pacer
}

// New returns a Translator. The effective character budget is the smaller of
// opts.CharLimit and the engine's own limit.
func New(engine Engine, opts Options, logger *slog.Logger) *Translator {
	limit := opts.CharLimit
	if engineLimit := engine.CharLimit(); engineLimit > 0 && (limit <= 0 || engineLimit < limit) {
		limit = engineLimit
	}
	if limit <= 0 {
		limit = DefaultCharLimit
	}
	opts.CharLimit = limit
	if opts.Concurrency <= 0 {
		opts.Concurrency = 1
	}
	return &Translator{
		engine: engine,
		opts:   opts,
		logger: logging.NewComponentLogger(logger, "translate"),
		pace:   &pacer{interval: opts.RequestDelay},
	}
}

// Translate returns one translated text per entry of texts. Multi-line texts
// are translated line by line and rejoined with "\n"; blank lines stay blank.
func (t *Translator) Translate(ctx context.Context, texts []string, from, to string) ([]string, error) {
	logger := logging.WithContext(ctx, t.logger)

	type ref struct{ text, line int }
	var (
		segments []string
		refs     []ref
		shapes   = make([][]string, len(texts))
	)
	for i, text := range texts {
		lines := strings.Split(text, "\n")
		shapes[i] = make([]string, len(lines))
		for j, line := range lines {
			if strings.TrimSpace(line) == "" {
				continue
			}
			segments = append(segments, strings.TrimSpace(line))
			refs = append(refs, ref{text: i, line: j})
		}
	}
	if len(segments) == 0 {
		return append([]string(nil), texts...), nil
	}

	chunks := Chunk(segments, t.opts.CharLimit)
	logger.Info("translating",
		logging.String("engine", t.engine.Name()),
		logging.String("from", from),
		logging.String("to", to),
		logging.Int("segments", len(segments)),
		logging.Int("chunks", len(chunks)),
	)

	results := make([][]string, len(chunks))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(t.opts.Concurrency)
	for i, chunk := range chunks {
		g.Go(func() error {
			if err := t.pace.wait(gctx); err != nil {
				return err
			}
			out, err := t.engine.Translate(gctx, chunk, from, to)
			if err != nil {
				return fmt.Errorf("%s chunk %d/%d: %w", t.engine.Name(), i+1, len(chunks), err)
			}
			if len(out) != len(chunk) {
				return fmt.Errorf("%s chunk %d/%d: got %d lines for %d", t.engine.Name(), i+1, len(chunks), len(out), len(chunk))
			}
			for j := range out {
				out[j] = PostProcess(out[j])
			}
			results[i] = out
			logger.Debug("chunk translated", logging.Int("chunk", i+1), logging.Int("lines", len(out)))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	k := 0
	for _, out := range results {
		for _, line := range out {
			r := refs[k]
			shapes[r.text][r.line] = line
			k++
		}
	}
	translated := make([]string, len(texts))
	for i, lines := range shapes {
		translated[i] = strings.Join(lines, "\n")
	}
	return translated, nil
}

// Chunk groups lines so that each chunk's lines plus one separator per line
// stay within limit characters. A line longer than limit gets its own chunk.
func Chunk(lines []string, limit int) [][]string {
	var (
		chunks  [][]string
		current []string
		size    int
	)
	for _, line := range lines {
		n := len([]rune(line)) + 1
		if len(current) > 0 && size+n > limit {
			chunks = append(chunks, current)
			current, size = nil, 0
		}
		current = append(current, line)
		size += n
	}
	if len(current) > 0 {
		chunks = append(chunks, current)
	}
	return chunks
}

var postReplacer = strings.NewReplacer(
	"……", "…",
	"——", "-",
	"♬", "♪",
	"< / i >", "</i>",
	"< /i>", "</i>",
	"<我>", "<i>",
	"</我>", "</i>",
)

// PostProcess repairs punctuation and italic tags mangled by translation
// engines and trims surrounding whitespace.
func PostProcess(text string) string {
	return strings.TrimSpace(postReplacer.Replace(text))
}

// pacer spaces request starts by at least interval.
type pacer struct {
	mu       sync.Mutex
	next     time.Time
	interval time.Duration
}

func (p *pacer) wait(ctx context.Context) error {
	if p.interval <= 0 {
		return ctx.Err()
	}
	p.mu.Lock()
	now := time.Now()
	start := p.next
	if start.Before(now) {
		start = now
	}
	p.next = start.Add(p.interval)
	p.mu.Unlock()

	delay := time.Until(start)
	if delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
