// Package lintcache stores validator results on disk keyed by content and options.
package lintcache

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/vmihailenco/msgpack/v5"

	"wireweave/internal/diag"
	"wireweave/internal/lint"
	"wireweave/internal/registry"
	"wireweave/internal/source"
)

// Current schema version - increment when Payload format changes
const schemaVersion uint16 = 1

// Cache хранит результаты валидации по ключу содержимого на диске.
// Thread-safe for concurrent access.
type Cache struct {
	mu  sync.RWMutex
	dir string
}

// Note is a cached secondary span, always in the same file as its diagnostic.
type Note struct {
	Start uint32 `msgpack:"s"`
	End   uint32 `msgpack:"e"`
	Msg   string `msgpack:"m"`
}

// Entry is a cached diagnostic without its file id.
type Entry struct {
	Severity uint8  `msgpack:"sev"`
	Code     uint16 `msgpack:"code"`
	Message  string `msgpack:"msg"`
	Start    uint32 `msgpack:"s"`
	End      uint32 `msgpack:"e"`
	Notes    []Note `msgpack:"notes,omitempty"`
}

// Payload is the on-disk record for one document.
type Payload struct {
	// Schema version for safe invalidation when format changes
	Schema uint16 `msgpack:"schema"`
	Path   string `msgpack:"path"`
	// Entries in emission order
	Entries []Entry `msgpack:"entries"`
}

// Open initializes a cache under $XDG_CACHE_HOME/<app> (or ~/.cache/<app>).
func Open(app string) (*Cache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return OpenDir(filepath.Join(base, app))
}

// OpenDir initializes a cache rooted at dir.
func OpenDir(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir}, nil
}

// Dir returns the cache root.
func (c *Cache) Dir() string {
	return c.dir
}

// Key fingerprints document content together with everything that changes
// the validator output for it.
func Key(content []byte, opts lint.Options) uint64 {
	h := xxhash.New()
	_, _ = h.WriteString("v" + strconv.Itoa(int(schemaVersion)) + "\x00")
	_, _ = h.WriteString(registrySalt())
	_, _ = h.WriteString(opts.RootComponent + "\x00" + opts.CommentMarker + "\x00")
	for _, code := range opts.Disabled {
		_, _ = h.WriteString(strconv.Itoa(int(code)) + ",")
	}
	_, _ = h.WriteString("\x00")
	_, _ = h.Write(content)
	return h.Sum64()
}

// registrySalt меняется вместе с таблицами компонентов и атрибутов.
var registrySalt = sync.OnceValue(func() string {
	reg := registry.Default()
	h := xxhash.New()
	for _, name := range reg.ComponentNames() {
		_, _ = h.WriteString(name + ",")
	}
	for _, name := range reg.AttributeNames() {
		_, _ = h.WriteString(name + ",")
	}
	return strconv.FormatUint(h.Sum64(), 16) + "\x00"
})

func (c *Cache) pathFor(key uint64) string {
	// Подкаталог "lint" упрощает очистку.
	return filepath.Join(c.dir, "lint", fmt.Sprintf("%016x.mp", key))
}

// Put serializes and writes a payload to the disk cache.
func (c *Cache) Put(key uint64, payload *Payload) (err error) {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err = os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(f.Name())
		}
	}()

	payload.Schema = schemaVersion
	if err = msgpack.NewEncoder(f).Encode(payload); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), p)
}

// Get reads and deserializes a payload. Records of another schema are misses.
func (c *Cache) Get(key uint64, out *Payload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	if out.Schema != schemaVersion {
		return false, nil
	}
	return true, nil
}

// DropAll invalidates the cache, useful after format changes.
func (c *Cache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	// тривиально: переименуем каталог и удалим
	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := os.RemoveAll(old); err != nil {
		return err
	}
	return os.MkdirAll(c.dir, 0o755)
}

// FromDiagnostics converts validator output into a payload.
func FromDiagnostics(path string, diags []diag.Diagnostic) *Payload {
	p := &Payload{Schema: schemaVersion, Path: path, Entries: make([]Entry, 0, len(diags))}
	for _, d := range diags {
		e := Entry{
			Severity: uint8(d.Severity),
			Code:     uint16(d.Code),
			Message:  d.Message,
			Start:    d.Primary.Start,
			End:      d.Primary.End,
		}
		for _, n := range d.Notes {
			e.Notes = append(e.Notes, Note{Start: n.Span.Start, End: n.Span.End, Msg: n.Msg})
		}
		p.Entries = append(p.Entries, e)
	}
	return p
}

// Diagnostics restores diagnostics for file from a payload.
func (p *Payload) Diagnostics(file source.FileID) []diag.Diagnostic {
	out := make([]diag.Diagnostic, 0, len(p.Entries))
	for _, e := range p.Entries {
		d := diag.New(diag.Severity(e.Severity), diag.Code(e.Code), source.Span{File: file, Start: e.Start, End: e.End}, e.Message)
		for _, n := range e.Notes {
			d = d.WithNote(source.Span{File: file, Start: n.Start, End: n.End}, n.Msg)
		}
		out = append(out, d)
	}
	return out
}
