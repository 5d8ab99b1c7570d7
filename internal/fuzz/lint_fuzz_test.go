package fuzztests

import (
	"testing"

	"wireweave/internal/diag"
	"wireweave/internal/editor"
	"wireweave/internal/lint"
	"wireweave/internal/registry"
	"wireweave/internal/source"
	"wireweave/internal/testkit"
)

func FuzzValidate(f *testing.F) {
	addCorpusSeeds(f)
	reg := registry.Default()
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		fs := source.NewFileSet()
		fileID := fs.AddVirtual("fuzz.ww", input)
		file := fs.Get(fileID)

		diags := lint.Validate(file, reg, lint.DefaultOptions())
		if err := testkit.CheckDiagnosticSpans(diags, file); err != nil {
			t.Fatalf("lint diagnostics: %v", err)
		}

		roots := 0
		for _, d := range diags {
			if d.Code == diag.LntMissingRoot {
				roots++
			}
		}
		if roots > 1 {
			t.Fatalf("missing-root reported %d times", roots)
		}

		// адаптеры редактора принимают любой результат валидатора
		markers := editor.ToMarkers(file, diags)
		if len(markers) != len(diags) {
			t.Fatalf("markers: got %d, want %d", len(markers), len(diags))
		}
	})
}
