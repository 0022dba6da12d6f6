package logging

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"
)

// consoleHandler writes one human-readable line per record:
//
//	2026-01-02T15:04:05+08:00 INFO  rename/renamer: renamed from=a.mkv to=b.mkv
//
// Nested component attributes are joined with "/". The run id and source
// location are only printed at debug level.
type consoleHandler struct {
	out     *consoleOutput
	level   *slog.LevelVar
	verbose bool
	attrs   []slog.Attr
	groups  []string
}

type consoleOutput struct {
	mu sync.Mutex
	w  io.Writer
}

func newConsoleHandler(w io.Writer, lvl *slog.LevelVar, verbose bool) slog.Handler {
	return &consoleHandler{out: &consoleOutput{w: w}, level: lvl, verbose: verbose}
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.attrs = append(append([]slog.Attr(nil), h.attrs...), qualify(h.groups, attrs)...)
	return &next
}

func (h *consoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	next.groups = append(append([]string(nil), h.groups...), name)
	return &next
}

func (h *consoleHandler) Handle(_ context.Context, record slog.Record) error {
	attrs := make([]slog.Attr, 0, len(h.attrs)+record.NumAttrs())
	attrs = append(attrs, h.attrs...)
	record.Attrs(func(attr slog.Attr) bool {
		attrs = append(attrs, qualify(h.groups, []slog.Attr{attr})...)
		return true
	})

	var (
		components []string
		fields     []slog.Attr
	)
	for _, attr := range attrs {
		switch attr.Key {
		case FieldComponent:
			name := attr.Value.String()
			if n := len(components); name != "" && (n == 0 || components[n-1] != name) {
				components = append(components, name)
			}
		case FieldRunID:
			if h.verbose {
				fields = append(fields, attr)
			}
		default:
			fields = append(fields, attr)
		}
	}

	ts := record.Time
	if ts.IsZero() {
		ts = time.Now()
	}
	var buf bytes.Buffer
	buf.WriteString(ts.Local().Format(time.RFC3339))
	fmt.Fprintf(&buf, " %-5s ", levelLabel(record.Level))
	if len(components) > 0 {
		buf.WriteString(strings.Join(components, "/"))
		buf.WriteString(": ")
	}
	buf.WriteString(strings.TrimSpace(record.Message))
	for _, attr := range fields {
		buf.WriteByte(' ')
		buf.WriteString(attr.Key)
		buf.WriteByte('=')
		buf.WriteString(formatValue(attr.Value))
	}
	if h.verbose && record.PC != 0 {
		if src := record.Source(); src != nil {
			fmt.Fprintf(&buf, " [%s:%d]", filepath.Base(src.File), src.Line)
		}
	}
	buf.WriteByte('\n')

	h.out.mu.Lock()
	defer h.out.mu.Unlock()
	_, err := h.out.w.Write(buf.Bytes())
	return err
}

// qualify flattens group values and prefixes keys with the open groups.
func qualify(groups []string, attrs []slog.Attr) []slog.Attr {
	var out []slog.Attr
	for _, attr := range attrs {
		attr.Value = attr.Value.Resolve()
		if attr.Equal(slog.Attr{}) {
			continue
		}
		if attr.Value.Kind() == slog.KindGroup {
			inner := groups
			if attr.Key != "" {
				inner = append(append([]string(nil), groups...), attr.Key)
			}
			out = append(out, qualify(inner, attr.Value.Group())...)
			continue
		}
		if len(groups) > 0 && attr.Key != FieldComponent && attr.Key != FieldRunID {
			attr.Key = strings.Join(append(append([]string(nil), groups...), attr.Key), ".")
		}
		out = append(out, attr)
	}
	return out
}

func formatValue(v slog.Value) string {
	var s string
	switch v.Kind() {
	case slog.KindTime:
		s = v.Time().UTC().Format(time.RFC3339)
	case slog.KindFloat64:
		s = strconv.FormatFloat(v.Float64(), 'f', -1, 64)
	case slog.KindAny:
		if err, ok := v.Any().(error); ok {
			s = err.Error()
		} else {
			s = fmt.Sprint(v.Any())
		}
	default:
		s = v.String()
	}
	if needsQuotes(s) {
		return strconv.Quote(s)
	}
	return s
}

func needsQuotes(s string) bool {
	if s == "" {
		return true
	}
	return strings.ContainsFunc(s, func(r rune) bool {
		return r <= ' ' || r == '=' || r == '"'
	})
}

func levelLabel(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return "ERROR"
	case level >= slog.LevelWarn:
		return "WARN"
	case level >= slog.LevelInfo:
		return "INFO"
	default:
		return "DEBUG"
	}
}
