package logging_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/SayCV/subspy/internal/logging"
	"github.com/SayCV/subspy/internal/services"
	"github.com/SayCV/subspy/internal/testsupport"
)

func newLogFile(t *testing.T) (string, func() string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "subspy.log")
	return path, func() string {
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read log file: %v", err)
		}
		return string(data)
	}
}

func TestConsoleLoggerOmitsSourceForInfo(t *testing.T) {
	path, read := newLogFile(t)
	logger, err := logging.New(logging.Options{Format: "console", Level: "info", OutputPaths: []string{path}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger = logging.NewComponentLogger(logger, "rename")
	logger.Info("renamed", logging.String("from", "a b.mkv"), logging.Int("count", 2))
	logger.Debug("hidden")

	content := read()
	if strings.Contains(content, ".go:") {
		t.Fatalf("expected no source information in info logs, got %q", content)
	}
	if !strings.Contains(content, "INFO  rename: renamed") {
		t.Fatalf("expected component prefix, got %q", content)
	}
	if !strings.Contains(content, `from="a b.mkv"`) || !strings.Contains(content, "count=2") {
		t.Fatalf("expected formatted attributes, got %q", content)
	}
	if strings.Contains(content, "hidden") {
		t.Fatalf("debug line should be filtered at info level: %q", content)
	}
}

func TestConsoleLoggerIncludesSourceForDebug(t *testing.T) {
	path, read := newLogFile(t)
	logger, err := logging.New(logging.Options{Format: "console", Level: "debug", OutputPaths: []string{path}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Debug("with source")
	if content := read(); !strings.Contains(content, "logger_test.go:") {
		t.Fatalf("expected source location in debug logs, got %q", content)
	}
}

func TestJSONLoggerWithContext(t *testing.T) {
	path, read := newLogFile(t)
	logger, err := logging.New(logging.Options{Format: "json", Level: "info", OutputPaths: []string{path}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	ctx := services.WithRunID(context.Background(), "run-1")
	ctx = services.WithCommand(ctx, "rename")
	logging.WithContext(ctx, logger).Info("hello")

	var payload map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(read())), &payload); err != nil {
		t.Fatalf("decode json log: %v", err)
	}
	if payload["msg"] != "hello" || payload["level"] != "info" {
		t.Fatalf("unexpected payload %v", payload)
	}
	if payload[logging.FieldRunID] != "run-1" || payload[logging.FieldComponent] != "rename" {
		t.Fatalf("expected context fields, got %v", payload)
	}
}

func TestWarnWithContextInjectsDefaults(t *testing.T) {
	path, read := newLogFile(t)
	logger, err := logging.New(logging.Options{Format: "json", OutputPaths: []string{path}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logging.WarnWithContext(logger, "conflict", "metadata_conflict", logging.String(logging.FieldImpact, "kept first value"))

	var payload map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(read())), &payload); err != nil {
		t.Fatalf("decode json log: %v", err)
	}
	if payload[logging.FieldEventType] != "metadata_conflict" {
		t.Fatalf("event_type = %v", payload[logging.FieldEventType])
	}
	if payload[logging.FieldImpact] != "kept first value" {
		t.Fatalf("impact = %v", payload[logging.FieldImpact])
	}
	if payload[logging.FieldErrorHint] == nil {
		t.Fatal("expected default error_hint")
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestWriterReplacesStderr(t *testing.T) {
	path, read := newLogFile(t)
	var buf strings.Builder
	logger, err := logging.New(logging.Options{Format: "json", Level: "info", Writer: &buf, OutputPaths: []string{path}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("scanned", logging.Int("videos", 3))

	if !strings.Contains(buf.String(), `"videos":3`) {
		t.Fatalf("expected writer to receive the record, got %q", buf.String())
	}
	if !strings.Contains(read(), `"msg":"scanned"`) {
		t.Fatalf("expected log file to receive the record")
	}
}

func TestConsoleLoggerJoinsNestedComponents(t *testing.T) {
	path, read := newLogFile(t)
	logger, err := logging.New(logging.Options{Format: "console", Level: "info", OutputPaths: []string{path}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	ctx := services.WithRunID(context.Background(), "run-7")
	ctx = services.WithCommand(ctx, "rename")
	logger = logging.NewComponentLogger(logging.WithContext(ctx, logger), "renamer")
	logger.WithGroup("plan").Info("ready", logging.Int("renames", 2))

	content := read()
	if !strings.Contains(content, "rename/renamer: ready plan.renames=2") {
		t.Fatalf("expected joined components and grouped key, got %q", content)
	}
	if strings.Contains(content, "run-7") {
		t.Fatalf("run id should only appear at debug level, got %q", content)
	}
}

func TestNewFromConfigWritesLogFile(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithLogFile())
	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		t.Fatalf("NewFromConfig: %v", err)
	}
	logger.Info("configured", logging.String("format", cfg.Logging.Format))

	data, err := os.ReadFile(cfg.Logging.File)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "configured format=console") {
		t.Fatalf("unexpected log file content %q", data)
	}
}
