package testsupport

import (
	"path/filepath"
	"testing"

	"workoutgen/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config whose output lands in a unique temp directory.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Output.Path = filepath.Join(base, "workouts.json")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	if err := builder.cfg.Validate(); err != nil {
		t.Fatalf("test config invalid: %v", err)
	}
	return builder.cfg
}

// WithWeeks overrides the generated week count.
func WithWeeks(n int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Program.Weeks = n
	}
}

// WithFormat switches the output format and file extension.
func WithFormat(format string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Output.Format = format
		b.cfg.Output.Path = filepath.Join(b.baseDir, "workouts."+format)
	}
}

// WithOutputName places the output under the test's temp dir with name.
func WithOutputName(name string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Output.Path = filepath.Join(b.baseDir, name)
	}
}

// WithContent writes a content catalog with body and points the config at it.
func WithContent(body string) ConfigOption {
	return func(b *configBuilder) {
		path := filepath.Join(b.baseDir, "content.yaml")
		WriteFile(b.t, path, []byte(body))
		b.cfg.Program.ContentPath = path
	}
}

// WithoutLock disables the output lock.
func WithoutLock() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Output.Lock = false
	}
}
