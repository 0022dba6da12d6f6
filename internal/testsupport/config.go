package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/SayCV/subspy/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a default config whose paths live under a per-test temp
// directory, then applies opts.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Logging.Level = "debug"
	cfgVal.Translate.RequestDelayMS = 0

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithTemplate overrides the rename template.
func WithTemplate(template string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Rename.Template = template
	}
}

// WithGoogleEndpoint points the google translation engine at url.
func WithGoogleEndpoint(url string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Translate.Engine = "google"
		b.cfg.Translate.GoogleBaseURL = url
	}
}

// WithLLMEndpoint points the llm translation engine at url with a test key.
func WithLLMEndpoint(url string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Translate.Engine = "llm"
		b.cfg.LLM.BaseURL = url
		b.cfg.LLM.APIKey = "test"
	}
}

// WithLogFile sends logs to a file inside the temp directory.
func WithLogFile() ConfigOption {
	return func(b *configBuilder) {
		dir := filepath.Join(b.baseDir, "logs")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			b.t.Fatalf("mkdir log dir: %v", err)
		}
		b.cfg.Logging.File = filepath.Join(dir, "subspy.log")
	}
}

// WriteConfig writes TOML content to a temp config file and returns its path.
func WriteConfig(t testing.TB, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}
