package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"slices"
	"sort"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"wireweave/internal/diag"
	"wireweave/internal/source"
)

// Extensions lists file suffixes picked up by directory linting.
var Extensions = []string{".ww", ".wf"}

// IsDocument reports whether path has a Wireweave document extension.
func IsDocument(path string) bool {
	return slices.Contains(Extensions, strings.ToLower(filepath.Ext(path)))
}

// ListFiles возвращает отсортированный список всех документов в директории.
// Скрытые каталоги (".git" и т.п.) пропускаются.
func ListFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if IsDocument(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// LintDir валидирует все документы в директории параллельно.
// Ошибки загрузки отдельных файлов становятся диагностиками IO4001.
func LintDir(ctx context.Context, dir string, opts Options) (*Result, error) {
	log := opts.logger()

	stop := opts.Timer.Track("discover")
	files, err := ListFiles(dir)
	stop()
	if err != nil {
		return nil, err
	}

	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		return &Result{FileSet: fileSet}, nil
	}
	log.Debug("linting directory", zap.String("dir", dir), zap.Int("files", len(files)))

	for _, path := range files {
		emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusQueued})
	}

	// Предзагружаем все файлы последовательно: FileSet не потокобезопасен
	fileIDs := make([]source.FileID, len(files))
	loadErrors := make(map[int]error)
	stop = opts.Timer.Track(string(StageLoad))
	for i, path := range files {
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrors[i] = err
			fileID = fileSet.AddVirtual(path, nil)
		}
		fileIDs[i] = fileID
	}
	stop()

	// Настраиваем параллелизм
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Результаты (индексы уникальны для каждой горутины, мьютекс не нужен)
	results := make([]FileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			// Проверка отмены
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			file := fileSet.Get(fileIDs[i])
			if loadErr, failed := loadErrors[i]; failed {
				bag := diag.NewBag(opts.MaxDiagnostics)
				bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{File: file.ID}, "failed to load file: "+loadErr.Error()))
				results[i] = FileResult{Path: path, FileID: file.ID, Bag: bag}
				log.Warn("failed to load file", zap.String("path", path), zap.Error(loadErr))
				emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusError, Err: loadErr})
				return nil
			}

			results[i] = lintOne(file, path, opts)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &Result{FileSet: fileSet, Files: results}, nil
}
