package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"wireweave/internal/config"
	"wireweave/internal/diag"
	"wireweave/internal/diagfmt"
	"wireweave/internal/driver"
	"wireweave/internal/lintcache"
	"wireweave/internal/observ"
	"wireweave/internal/registry"
	"wireweave/internal/source"
	"wireweave/internal/ui"
	"wireweave/internal/version"
)

var lintCmd = &cobra.Command{
	Use:   "lint [flags] <file.ww|directory>",
	Short: "Validate wireframe documents",
	Long: `Validate a document or every .ww/.wf document under a directory.
Exit status is 1 when any error is reported.`,
	Args: cobra.ExactArgs(1),
	RunE: runLint,
}

func init() {
	lintCmd.Flags().String("format", "", "output format (pretty|short|json|sarif|offsets|markers); default from wireweave.toml")
	lintCmd.Flags().Int("jobs", 0, "max parallel workers for directories (0=auto)")
	lintCmd.Flags().Bool("no-warnings", false, "report errors only")
	lintCmd.Flags().Bool("warnings-as-errors", false, "treat warnings as errors")
	lintCmd.Flags().Bool("cache", false, "reuse results for unchanged documents")
	lintCmd.Flags().Bool("clear-cache", false, "drop cached results before linting")
	lintCmd.Flags().String("ui", "off", "progress UI mode (auto|on|off)")
	lintCmd.Flags().Bool("fullpath", false, "print absolute paths")
	lintCmd.Flags().String("root", "", "root component that must appear once (overrides config)")
	lintCmd.Flags().String("comment", "", "line comment marker (overrides config)")
	lintCmd.Flags().StringSlice("disable", nil, "checks to disable, e.g. missing-root,unknown-attribute")
	lintCmd.Flags().Bool("with-notes", false, "include related notes")
	lintCmd.Flags().Bool("timings", false, "print phase timings to stderr")
	lintCmd.MarkFlagsMutuallyExclusive("no-warnings", "warnings-as-errors")
}

// lintFlags собирает флаги lint в одном месте
type lintFlags struct {
	format           string
	jobs             int
	noWarnings       bool
	warningsAsErrors bool
	cache            bool
	clearCache       bool
	ui               string
	fullPath         bool
	root             string
	comment          string
	disable          []string
	withNotes        bool
	timings          bool
	color            string
	quiet            bool
	maxDiagnostics   int
}

func readLintFlags(cmd *cobra.Command) (lintFlags, error) {
	var (
		f   lintFlags
		err error
	)
	if f.format, err = cmd.Flags().GetString("format"); err != nil {
		return f, fmt.Errorf("failed to get format flag: %w", err)
	}
	if f.jobs, err = cmd.Flags().GetInt("jobs"); err != nil {
		return f, fmt.Errorf("failed to get jobs flag: %w", err)
	}
	if f.noWarnings, err = cmd.Flags().GetBool("no-warnings"); err != nil {
		return f, fmt.Errorf("failed to get no-warnings flag: %w", err)
	}
	if f.warningsAsErrors, err = cmd.Flags().GetBool("warnings-as-errors"); err != nil {
		return f, fmt.Errorf("failed to get warnings-as-errors flag: %w", err)
	}
	if f.cache, err = cmd.Flags().GetBool("cache"); err != nil {
		return f, fmt.Errorf("failed to get cache flag: %w", err)
	}
	if f.clearCache, err = cmd.Flags().GetBool("clear-cache"); err != nil {
		return f, fmt.Errorf("failed to get clear-cache flag: %w", err)
	}
	if f.ui, err = cmd.Flags().GetString("ui"); err != nil {
		return f, fmt.Errorf("failed to get ui flag: %w", err)
	}
	if f.fullPath, err = cmd.Flags().GetBool("fullpath"); err != nil {
		return f, fmt.Errorf("failed to get fullpath flag: %w", err)
	}
	if f.root, err = cmd.Flags().GetString("root"); err != nil {
		return f, fmt.Errorf("failed to get root flag: %w", err)
	}
	if f.comment, err = cmd.Flags().GetString("comment"); err != nil {
		return f, fmt.Errorf("failed to get comment flag: %w", err)
	}
	if f.disable, err = cmd.Flags().GetStringSlice("disable"); err != nil {
		return f, fmt.Errorf("failed to get disable flag: %w", err)
	}
	if f.withNotes, err = cmd.Flags().GetBool("with-notes"); err != nil {
		return f, fmt.Errorf("failed to get with-notes flag: %w", err)
	}
	if f.timings, err = cmd.Flags().GetBool("timings"); err != nil {
		return f, fmt.Errorf("failed to get timings flag: %w", err)
	}
	if f.color, err = cmd.Flags().GetString("color"); err != nil {
		return f, fmt.Errorf("failed to get color flag: %w", err)
	}
	if f.quiet, err = cmd.Flags().GetBool("quiet"); err != nil {
		return f, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if f.maxDiagnostics, err = cmd.Flags().GetInt("max-diagnostics"); err != nil {
		return f, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	return f, nil
}

func runLint(cmd *cobra.Command, args []string) error {
	target := args[0]
	flags, err := readLintFlags(cmd)
	if err != nil {
		return err
	}
	log, err := newLogger(cmd)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	stopProfiling, err := setupProfiling(cmd, log)
	if err != nil {
		return err
	}
	defer stopProfiling()

	cfg, err := loadConfig(cmd, configStartDir(target))
	if err != nil {
		return err
	}
	if cfg.Path != "" {
		log.Debug("using config", zap.String("path", cfg.Path))
	}

	// Флаги командной строки перекрывают wireweave.toml
	if flags.format == "" {
		flags.format = cfg.Output.Format
	}
	format, err := diagfmt.ParseFormat(flags.format)
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("color") {
		flags.color = cfg.Output.Color
	}
	useColor, err := resolveColor(flags.color, os.Stdout)
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("max-diagnostics") {
		flags.maxDiagnostics = cfg.Lint.MaxDiagnostics
	}
	mode, err := readUIMode(flags.ui)
	if err != nil {
		return err
	}

	lintOpts := cfg.LintOptions()
	if flags.root != "" {
		lintOpts.RootComponent = flags.root
	}
	if flags.comment != "" {
		lintOpts.CommentMarker = flags.comment
	}
	if len(flags.disable) > 0 {
		for _, name := range flags.disable {
			if _, ok := diag.CodeBySlug(name); !ok {
				return fmt.Errorf("unknown check %q", name)
			}
		}
		lintOpts.Disabled = append(lintOpts.Disabled, config.ResolveChecks(flags.disable)...)
	}

	var timer *observ.Timer
	if flags.timings {
		timer = observ.NewTimer()
	}
	opts := driver.Options{
		Lint:           lintOpts,
		Registry:       registry.Default(),
		MaxDiagnostics: flags.maxDiagnostics,
		Jobs:           flags.jobs,
		Logger:         log,
		Timer:          timer,
	}

	if flags.cache || flags.clearCache {
		cache, cacheErr := lintcache.Open("wireweave")
		if cacheErr != nil {
			log.Warn("lint cache disabled", zap.Error(cacheErr))
		} else {
			if flags.clearCache {
				if err := cache.DropAll(); err != nil {
					log.Warn("failed to clear lint cache", zap.Error(err))
				}
			}
			if flags.cache {
				opts.Cache = cache
			}
		}
	}

	result, err := lintWithProgress(cmd.Context(), cmd.ErrOrStderr(), target, opts, shouldUseTUI(mode))
	if err != nil {
		return err
	}

	bag := result.Bag()
	applySeverityPolicy(bag, flags.noWarnings, flags.warningsAsErrors)

	pathMode := diagfmt.PathModeAuto
	if flags.fullPath {
		pathMode = diagfmt.PathModeAbsolute
	}
	out := cmd.OutOrStdout()
	if err := writeDiagnostics(out, format, bag, result.FileSet, writeOptions{
		color:     useColor,
		pathMode:  pathMode,
		withNotes: flags.withNotes,
		args:      os.Args[1:],
	}); err != nil {
		return err
	}

	if format == diagfmt.FormatPretty && !flags.quiet {
		printSummary(cmd.ErrOrStderr(), bag, len(result.Files))
	}
	if timer != nil {
		printTimings(cmd.ErrOrStderr(), timer, format == diagfmt.FormatJSON)
	}

	if bag.HasErrors() {
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return errors.New("")
	}
	return nil
}

// lintWithProgress запускает driver.Lint, при необходимости под TUI
func lintWithProgress(ctx context.Context, progressOut io.Writer, target string, opts driver.Options, useTUI bool) (*driver.Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if !useTUI {
		return driver.Lint(ctx, target, opts)
	}
	files := []string{target}
	if info, err := os.Stat(target); err == nil && info.IsDir() {
		listed, err := driver.ListFiles(target)
		if err != nil {
			return nil, err
		}
		files = listed
	}
	var result *driver.Result
	err := ui.RunLint(ctx, progressOut, "wireweave lint", files, func(sink driver.ProgressSink) error {
		opts.Progress = sink
		res, lintErr := driver.Lint(ctx, target, opts)
		result = res
		return lintErr
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// applySeverityPolicy applies --no-warnings and --warnings-as-errors.
func applySeverityPolicy(bag *diag.Bag, noWarnings, warningsAsErrors bool) {
	switch {
	case noWarnings:
		bag.Filter(func(d diag.Diagnostic) bool {
			return d.Severity >= diag.SevError
		})
	case warningsAsErrors:
		bag.Transform(func(d diag.Diagnostic) diag.Diagnostic {
			if d.Severity == diag.SevWarning {
				d.Severity = diag.SevError
			}
			return d
		})
	}
}

type writeOptions struct {
	color     bool
	pathMode  diagfmt.PathMode
	withNotes bool
	args      []string
}

func writeDiagnostics(w io.Writer, format diagfmt.Format, bag *diag.Bag, fs *source.FileSet, opts writeOptions) error {
	switch format {
	case diagfmt.FormatPretty:
		diagfmt.Pretty(w, bag, fs, diagfmt.PrettyOpts{
			Color:     opts.color,
			Context:   1,
			PathMode:  opts.pathMode,
			ShowNotes: opts.withNotes,
		})
		return nil
	case diagfmt.FormatShort:
		diagfmt.Short(w, bag, fs, opts.pathMode)
		return nil
	case diagfmt.FormatJSON:
		return diagfmt.JSON(w, bag, fs, diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         opts.pathMode,
			IncludeNotes:     opts.withNotes,
		})
	case diagfmt.FormatSarif:
		return diagfmt.Sarif(w, bag, fs, diagfmt.SarifRunMeta{
			ToolName:       "wireweave",
			ToolVersion:    version.Version,
			InvocationArgs: opts.args,
		})
	case diagfmt.FormatOffsets:
		return diagfmt.Offsets(w, bag, fs, opts.pathMode)
	case diagfmt.FormatMarkers:
		return diagfmt.Markers(w, bag, fs, opts.pathMode)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

func printSummary(w io.Writer, bag *diag.Bag, files int) {
	var errs, warns, other int
	for _, d := range bag.Items() {
		switch {
		case d.Severity >= diag.SevError:
			errs++
		case d.Severity == diag.SevWarning:
			warns++
		default:
			other++
		}
	}
	fmt.Fprintf(w, "%d file(s): %d error(s), %d warning(s), %d note(s)\n", files, errs, warns, other)
	if dropped := bag.Dropped(); dropped > 0 {
		fmt.Fprintf(w, "%d diagnostic(s) omitted by --max-diagnostics\n", dropped)
	}
}
