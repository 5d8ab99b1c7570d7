package driver

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"wireweave/internal/diag"
	"wireweave/internal/lint"
	"wireweave/internal/lintcache"
	"wireweave/internal/observ"
	"wireweave/internal/registry"
	"wireweave/internal/source"
)

// Options configures a lint run.
type Options struct {
	Lint           lint.Options
	Registry       *registry.Registry // nil - registry.Default()
	MaxDiagnostics int                // на файл, 0 - без ограничения
	Jobs           int                // 0 - GOMAXPROCS
	Cache          *lintcache.Cache   // nil - без кеша
	Logger         *zap.Logger        // nil - без логов
	Progress       ProgressSink
	Timer          *observ.Timer
}

func (o *Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

// FileResult holds diagnostics of one document.
type FileResult struct {
	Path   string
	FileID source.FileID
	Bag    *diag.Bag
	Cached bool
}

// Result is the outcome of linting a file or directory.
type Result struct {
	FileSet *source.FileSet
	Files   []FileResult // в порядке отсортированных путей
}

// Bag merges per-file diagnostics in file order.
func (r *Result) Bag() *diag.Bag {
	merged := diag.NewBag(0)
	for _, f := range r.Files {
		merged.Merge(f.Bag)
	}
	return merged
}

// Counts returns the number of diagnostics per severity.
func (r *Result) Counts() map[diag.Severity]int {
	counts := make(map[diag.Severity]int)
	for _, f := range r.Files {
		for _, d := range f.Bag.Items() {
			counts[d.Severity]++
		}
	}
	return counts
}

// Lint dispatches to LintFile or LintDir depending on target.
func Lint(ctx context.Context, target string, opts Options) (*Result, error) {
	info, err := os.Stat(target)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return LintDir(ctx, target, opts)
	}
	return LintFile(ctx, target, opts)
}

// LintFile validates a single document. Load failures are returned as errors.
func LintFile(ctx context.Context, path string, opts Options) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	fs := source.NewFileSet()
	stop := opts.Timer.Track(string(StageLoad))
	fileID, err := fs.Load(path)
	stop()
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	res := lintOne(fs.Get(fileID), path, opts)
	return &Result{FileSet: fs, Files: []FileResult{res}}, nil
}

// lintOne валидирует загруженный файл, используя кеш если он задан
func lintOne(file *source.File, path string, opts Options) FileResult {
	log := opts.logger()
	bag := diag.NewBag(opts.MaxDiagnostics)
	res := FileResult{Path: path, FileID: file.ID, Bag: bag}

	var key uint64
	if opts.Cache != nil {
		emit(opts.Progress, Event{File: path, Stage: StageCache, Status: StatusWorking})
		stop := opts.Timer.Track(string(StageCache))
		key = lintcache.Key(file.Content, opts.Lint)
		var payload lintcache.Payload
		ok, err := opts.Cache.Get(key, &payload)
		stop()
		if err != nil {
			log.Warn("lint cache read failed", zap.String("path", path), zap.Error(err))
		}
		if ok {
			for _, d := range payload.Diagnostics(file.ID) {
				bag.Add(d)
			}
			res.Cached = true
			log.Debug("lint cache hit", zap.String("path", path), zap.Int("diagnostics", bag.Len()))
			emit(opts.Progress, Event{File: path, Stage: StageCache, Status: StatusDone, Diagnostics: bag.Len()})
			return res
		}
	}

	emit(opts.Progress, Event{File: path, Stage: StageValidate, Status: StatusWorking})
	stop := opts.Timer.Track(string(StageValidate))
	diags := lint.Validate(file, opts.Registry, opts.Lint)
	stop()
	for _, d := range diags {
		bag.Add(d)
	}
	log.Debug("validated", zap.String("path", path), zap.Int("diagnostics", len(diags)))

	if opts.Cache != nil {
		if err := opts.Cache.Put(key, lintcache.FromDiagnostics(path, diags)); err != nil {
			log.Warn("lint cache write failed", zap.String("path", path), zap.Error(err))
		}
	}
	emit(opts.Progress, Event{File: path, Stage: StageValidate, Status: StatusDone, Diagnostics: bag.Len()})
	return res
}
