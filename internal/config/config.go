// Package config loads wireweave.toml project settings.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"wireweave/internal/diag"
	"wireweave/internal/diagfmt"
	"wireweave/internal/lint"
	"wireweave/internal/registry"
)

// ErrInvalid wraps every validation failure of a configuration file.
var ErrInvalid = errors.New("invalid configuration")

const (
	DefaultMaxDiagnostics = 100
	DefaultDebounceMS     = 300
)

// Config mirrors wireweave.toml.
type Config struct {
	Path string `toml:"-"` // откуда загружен, пусто для значений по умолчанию

	Lint   LintConfig   `toml:"lint"`
	LSP    LSPConfig    `toml:"lsp"`
	Output OutputConfig `toml:"output"`
}

type LintConfig struct {
	Root           string   `toml:"root"`
	Comment        string   `toml:"comment"`
	MaxDiagnostics int      `toml:"max_diagnostics"`
	Disable        []string `toml:"disable"`
}

type LSPConfig struct {
	DebounceMS int `toml:"debounce_ms"`
}

type OutputConfig struct {
	Format string `toml:"format"`
	Color  string `toml:"color"`
}

// Default returns the configuration used without wireweave.toml.
func Default() *Config {
	return &Config{
		Lint: LintConfig{
			Root:           registry.DefaultRoot,
			Comment:        lint.DefaultCommentMarker,
			MaxDiagnostics: DefaultMaxDiagnostics,
			Disable:        []string{},
		},
		LSP: LSPConfig{DebounceMS: DefaultDebounceMS},
		Output: OutputConfig{
			Format: string(diagfmt.FormatPretty),
			Color:  "auto",
		},
	}
}

// Load parses a wireweave.toml. Missing keys keep their defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%s: %w: unknown keys %s", path, ErrInvalid, strings.Join(keys, ", "))
	}
	cfg.Path = path
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks check names, formats and numeric ranges.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Lint.Root) == "" {
		errs = append(errs, errors.New("[lint].root must not be empty"))
	}
	if strings.TrimSpace(c.Lint.Comment) == "" {
		errs = append(errs, errors.New("[lint].comment must not be empty"))
	}
	if c.Lint.MaxDiagnostics < 0 {
		errs = append(errs, fmt.Errorf("[lint].max_diagnostics must be >= 0, got %d", c.Lint.MaxDiagnostics))
	}
	for _, name := range c.Lint.Disable {
		if _, ok := diag.CodeBySlug(name); !ok {
			errs = append(errs, fmt.Errorf("[lint].disable: unknown check %q (known: %s)", name, strings.Join(diag.CheckSlugs(), ", ")))
		}
	}
	if c.LSP.DebounceMS < 0 {
		errs = append(errs, fmt.Errorf("[lsp].debounce_ms must be >= 0, got %d", c.LSP.DebounceMS))
	}
	if _, err := diagfmt.ParseFormat(c.Output.Format); err != nil {
		errs = append(errs, fmt.Errorf("[output].format: %w", err))
	}
	if !slices.Contains([]string{"auto", "on", "off"}, c.Output.Color) {
		errs = append(errs, fmt.Errorf("[output].color must be auto|on|off, got %q", c.Output.Color))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
}

// DisabledCodes resolves [lint].disable into diagnostic codes; unknown names are skipped.
func (c *Config) DisabledCodes() []diag.Code {
	return ResolveChecks(c.Lint.Disable)
}

// ResolveChecks maps check names to codes, skipping unknown names.
func ResolveChecks(names []string) []diag.Code {
	codes := make([]diag.Code, 0, len(names))
	for _, name := range names {
		if code, ok := diag.CodeBySlug(name); ok {
			codes = append(codes, code)
		}
	}
	return codes
}

// LintOptions builds validator options from the [lint] section.
func (c *Config) LintOptions() lint.Options {
	return lint.Options{
		RootComponent: c.Lint.Root,
		CommentMarker: c.Lint.Comment,
		Disabled:      c.DisabledCodes(),
	}
}

// Debounce returns the LSP re-validation delay.
func (c *Config) Debounce() time.Duration {
	return time.Duration(c.LSP.DebounceMS) * time.Millisecond
}

// Encode renders the configuration as TOML.
func (c *Config) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteDefault writes a default wireweave.toml to path, refusing to overwrite.
func WriteDefault(path string) error {
	data, err := Default().Encode()
	if err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
