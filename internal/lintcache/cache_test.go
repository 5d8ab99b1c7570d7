package lintcache

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"wireweave/internal/diag"
	"wireweave/internal/lint"
	"wireweave/internal/source"
)

func TestPutGetRoundTrip(t *testing.T) {
	c, err := OpenDir(t.TempDir())
	require.NoError(t, err)

	content := []byte("page {}\npage {}\n")
	opts := lint.DefaultOptions()
	file := source.NewFile("home.wf", content)
	diags := lint.Validate(file, nil, opts)
	require.NotEmpty(t, diags)

	key := Key(content, opts)
	require.NoError(t, c.Put(key, FromDiagnostics("home.wf", diags)))

	var got Payload
	ok, err := c.Get(key, &got)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "home.wf", got.Path)

	if diff := cmp.Diff(diags, got.Diagnostics(file.ID)); diff != "" {
		t.Errorf("restored diagnostics (-want +got):\n%s", diff)
	}
}

func TestGetMiss(t *testing.T) {
	c, err := OpenDir(t.TempDir())
	require.NoError(t, err)
	var p Payload
	ok, err := c.Get(42, &p)
	require.NoError(t, err)
	require.False(t, ok)

	var nilCache *Cache
	ok, err = nilCache.Get(42, &p)
	require.NoError(t, err)
	require.False(t, ok)
	require.NoError(t, nilCache.Put(42, &Payload{}))
}

func TestKeyDependsOnOptions(t *testing.T) {
	content := []byte("card {}")
	base := lint.DefaultOptions()

	custom := base
	custom.RootComponent = "screen"

	disabled := base
	disabled.Disabled = []diag.Code{diag.LntMissingRoot}

	keys := map[uint64]string{}
	for name, k := range map[string]uint64{
		"base":     Key(content, base),
		"root":     Key(content, custom),
		"disabled": Key(content, disabled),
		"content":  Key([]byte("card { }"), base),
	} {
		if other, dup := keys[k]; dup {
			t.Fatalf("key collision between %s and %s", name, other)
		}
		keys[k] = name
	}
	require.Equal(t, Key(content, base), Key(content, lint.DefaultOptions()))
}

func TestSchemaMismatchIsMiss(t *testing.T) {
	c, err := OpenDir(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, c.Put(7, &Payload{Path: "a.wf"}))

	// подменяем запись с чужой схемой
	var p Payload
	ok, err := c.Get(7, &p)
	require.NoError(t, err)
	require.True(t, ok)

	p.Schema = schemaVersion + 1
	f, err := os.Create(c.pathFor(7))
	require.NoError(t, err)
	require.NoError(t, encodeRaw(f, &p))
	require.NoError(t, f.Close())

	ok, err = c.Get(7, &p)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestDropAll(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cache")
	c, err := OpenDir(dir)
	require.NoError(t, err)
	require.NoError(t, c.Put(1, &Payload{Path: "x.wf"}))
	require.NoError(t, c.DropAll())

	var p Payload
	ok, err := c.Get(1, &p)
	require.NoError(t, err)
	require.False(t, ok)
	_, err = os.Stat(dir)
	require.NoError(t, err, "cache dir must be recreated")
}
