package tables_test

import (
	"bytes"
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chime/internal/cin"
	"chime/internal/tables"
)

func writeGtab(t *testing.T, dir, filename, cname string, entries string) {
	t.Helper()
	src, err := cin.Parse(strings.NewReader(
		"%cname " + cname + "\n%keyname begin\na 日\nb 月\n%keyname end\n%chardef begin\n" +
			entries + "%chardef end\n"))
	require.NoError(t, err)
	img, err := cin.Compile(src)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, filename), img, 0o644))
}

func TestBuiltinLookup(t *testing.T) {
	in, ok := tables.ByID(tables.TableCJ)
	require.True(t, ok)
	assert.Equal(t, "倉頡", in.Name)
	assert.Equal(t, "cj.gtab", in.Filename)

	_, ok = tables.ByID(12345)
	assert.False(t, ok)

	assert.NotEmpty(t, tables.Builtin())
}

func TestSearch(t *testing.T) {
	hits := tables.Search("行列")
	require.Len(t, hits, 3)
	for _, h := range hits {
		assert.Contains(t, h.Name, "行列")
	}

	// Filename matching is case-insensitive.
	hits = tables.Search("CJ")
	assert.NotEmpty(t, hits)

	// A match at the start of the name outranks a later one.
	hits = tables.Search("倉頡")
	require.Len(t, hits, 3)
	assert.Equal(t, "倉頡", hits[0].Name)
	assert.Equal(t, "標點倉頡", hits[1].Name)
	assert.Equal(t, "五四三倉頡", hits[2].Name)

	assert.Empty(t, tables.Search("nothing-like-this"))
}

func TestRegistryLoadGtab(t *testing.T) {
	dir := t.TempDir()
	writeGtab(t, dir, "mini.gtab", "迷你", "a 一\nb 二\n")

	r := tables.NewRegistry(dir, nil)
	tab, err := r.LoadGtab("mini.gtab")
	require.NoError(t, err)
	assert.Equal(t, "迷你", tab.Name)

	// Second load returns the cached table.
	again, err := r.LoadGtab("mini.gtab")
	require.NoError(t, err)
	assert.Same(t, tab, again)

	cached, ok := r.Gtab("mini.gtab")
	require.True(t, ok)
	assert.Same(t, tab, cached)

	assert.Equal(t, []string{"mini.gtab"}, r.Loaded())
}

func TestRegistryLoadErrors(t *testing.T) {
	r := tables.NewRegistry(t.TempDir(), nil)

	_, err := r.LoadGtab("absent.gtab")
	assert.Error(t, err)

	_, err = r.LoadGtabByID(9999)
	assert.Error(t, err)

	assert.Error(t, r.LoadPhonetic("absent.tab2"))
	assert.Nil(t, r.Phonetic())

	_, ok := r.Gtab("absent.gtab")
	assert.False(t, ok)
}

func TestRegistryWatchReloads(t *testing.T) {
	dir := t.TempDir()
	writeGtab(t, dir, "live.gtab", "舊", "a 一\n")

	r := tables.NewRegistry(dir, nil)
	_, err := r.LoadGtab("live.gtab")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, r.Watch(ctx))

	writeGtab(t, dir, "live.gtab", "新", "a 一\nab 二\n")

	assert.Eventually(t, func() bool {
		tab, ok := r.Gtab("live.gtab")
		return ok && tab.Name == "新"
	}, 3*time.Second, 20*time.Millisecond)
}

// writePhodict assembles a one-syllable phonetic dictionary holding the
// given words.
func writePhodict(t *testing.T, dir string, words ...string) {
	t.Helper()

	var idx, items bytes.Buffer
	binary.Write(&idx, binary.LittleEndian, uint16(1545))
	binary.Write(&idx, binary.LittleEndian, uint16(0))
	for _, w := range words {
		var rec [4]byte
		copy(rec[:], w)
		items.Write(rec[:])
	}

	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, uint16(1))
	binary.Write(&buf, binary.LittleEndian, uint16(1))
	binary.Write(&buf, binary.LittleEndian, int32(len(words)))
	binary.Write(&buf, binary.LittleEndian, int32(0))
	buf.Write(idx.Bytes())
	buf.Write(items.Bytes())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "pho.tab2"), buf.Bytes(), 0o644))
}

func TestRegistryWatchReloadsPhonetic(t *testing.T) {
	dir := t.TempDir()
	writePhodict(t, dir, "媽")

	r := tables.NewRegistry(dir, nil)
	require.NoError(t, r.LoadPhonetic("pho.tab2"))
	require.Equal(t, 1, r.Phonetic().Items())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, r.Watch(ctx))

	writePhodict(t, dir, "媽", "嗎")

	assert.Eventually(t, func() bool {
		return r.Phonetic().Items() == 2
	}, 3*time.Second, 20*time.Millisecond)
}

func TestRegistryWatchIgnoresUncachedFiles(t *testing.T) {
	dir := t.TempDir()
	r := tables.NewRegistry(dir, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, r.Watch(ctx))

	writeGtab(t, dir, "other.gtab", "旁", "a 一\n")
	// Past the reload debounce window.
	time.Sleep(300 * time.Millisecond)
	_, ok := r.Gtab("other.gtab")
	assert.False(t, ok)
}
