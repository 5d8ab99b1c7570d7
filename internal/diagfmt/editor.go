package diagfmt

import (
	"io"

	"wireweave/internal/diag"
	"wireweave/internal/editor"
	"wireweave/internal/source"
)

// groupByFile раскладывает диагностики по файлам, сохраняя порядок внутри файла
func groupByFile(bag *diag.Bag, fs *source.FileSet) ([]*source.File, map[source.FileID][]diag.Diagnostic) {
	var files []*source.File
	groups := make(map[source.FileID][]diag.Diagnostic)
	for _, d := range bag.Items() {
		f := fileOf(fs, d.Primary)
		if f == nil {
			continue
		}
		if _, seen := groups[f.ID]; !seen {
			files = append(files, f)
		}
		groups[f.ID] = append(groups[f.ID], d)
	}
	return files, groups
}

// Offsets пишет JSON-объект path -> []OffsetDiagnostic с offsets в UTF-16 code units.
func Offsets(w io.Writer, bag *diag.Bag, fs *source.FileSet, mode PathMode) error {
	files, groups := groupByFile(bag, fs)
	out := make(map[string][]editor.OffsetDiagnostic, len(files))
	for _, f := range files {
		out[displayPath(f, fs, mode)] = editor.ToUTF16Offsets(f, groups[f.ID])
	}
	return writeJSON(w, out)
}

// Markers пишет JSON-объект path -> []Marker.
func Markers(w io.Writer, bag *diag.Bag, fs *source.FileSet, mode PathMode) error {
	files, groups := groupByFile(bag, fs)
	out := make(map[string][]editor.Marker, len(files))
	for _, f := range files {
		out[displayPath(f, fs, mode)] = editor.ToMarkers(f, groups[f.ID])
	}
	return writeJSON(w, out)
}
