package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"wireweave/internal/driver"
	"wireweave/internal/registry"
)

const (
	maxSeedBytes = 64 << 10 // ограничение для тестового корпуса
)

var handSeeds = []string{
	"",
	"page {\n}\n",
	"page title=\"Home\" {\n  row gap=4 {\n    col span=6 { text \"hi\" }\n  }\n}\n",
	"page {\n  button \"Save\" primary disabled\n}\n",
	"page { page { } }\n",
	"}\n{\n\"unclosed\n",
	"page {\n  // comment line\n  /* block\n  comment */\n  foo bar=1\n}\n",
	"page {\n  text \"caf\u00e9 \U0001F642\" align=center\n}\n",
	"\uFEFFpage {\r\n  card {\r\n  }\r\n}\r\n",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range handSeeds {
		f.Add([]byte(s))
	}
	addRegistrySeeds(f)
	addTestdataSeeds(f)
}

// addRegistrySeeds добавляет примеры из документации реестра
func addRegistrySeeds(f *testing.F) {
	reg := registry.Default()
	for _, c := range reg.Components() {
		if c.Example != "" {
			f.Add([]byte(c.Example))
		}
	}
	for _, a := range reg.Attributes() {
		if a.Example != "" {
			f.Add([]byte("page {\n  box " + a.Example + "\n}\n"))
		}
	}
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || !driver.IsDocument(path) {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
	if err != nil {
		return
	}
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
