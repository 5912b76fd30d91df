package photab

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chime/internal/phonetic"
)

// buildTable assembles a dictionary image in the on-disk layout. Items are
// grouped per key in the order given; keys must be ascending.
func buildTable(t *testing.T, entries []struct {
	key   uint16
	items [][]byte
}, phrases []byte) []byte {
	t.Helper()

	var items [][]byte
	var idx bytes.Buffer
	for _, e := range entries {
		require.NoError(t, binary.Write(&idx, binary.LittleEndian, e.key))
		require.NoError(t, binary.Write(&idx, binary.LittleEndian, uint16(len(items))))
		items = append(items, e.items...)
	}

	var buf bytes.Buffer
	count := uint16(len(entries))
	binary.Write(&buf, binary.LittleEndian, count)
	binary.Write(&buf, binary.LittleEndian, count)
	binary.Write(&buf, binary.LittleEndian, int32(len(items)))
	binary.Write(&buf, binary.LittleEndian, int32(len(phrases)))
	buf.Write(idx.Bytes())
	for _, it := range items {
		require.LessOrEqual(t, len(it), itemSize)
		var rec [itemSize]byte
		copy(rec[:], it)
		buf.Write(rec[:])
	}
	buf.Write(phrases)
	return buf.Bytes()
}

func inline(s string) []byte { return []byte(s) }

func escaped(off int) []byte {
	return []byte{phraseEscape, byte(off), byte(off >> 8), byte(off >> 16)}
}

func TestLookupInlineItems(t *testing.T) {
	// Key 1545 is ㄇㄚ with first tone under the standard layout.
	ma := phonetic.EncodeKey(phonetic.Components{3, 0, 1, 1})
	require.Equal(t, phonetic.Key(1545), ma)

	img := buildTable(t, []struct {
		key   uint16
		items [][]byte
	}{
		{key: 512, items: [][]byte{inline("ㄅ")}},
		{key: 1545, items: [][]byte{inline("媽"), inline("嗎")}},
	}, nil)

	tab, err := Decode(bytes.NewReader(img))
	require.NoError(t, err)
	assert.Equal(t, 2, tab.Keys())
	assert.Equal(t, 3, tab.Items())
	assert.Equal(t, []string{"媽", "嗎"}, tab.Lookup(ma))
	assert.Equal(t, []string{"ㄅ"}, tab.Lookup(512))
}

func TestLookupPhraseEscape(t *testing.T) {
	phrases := append([]byte("你好\x00"), []byte("世界\x00")...)
	img := buildTable(t, []struct {
		key   uint16
		items [][]byte
	}{
		{key: 100, items: [][]byte{escaped(0), escaped(7)}},
	}, phrases)

	tab, err := Decode(bytes.NewReader(img))
	require.NoError(t, err)
	assert.Equal(t, []string{"你好", "世界"}, tab.Lookup(100))
}

func TestLookupUnknownKey(t *testing.T) {
	img := buildTable(t, []struct {
		key   uint16
		items [][]byte
	}{
		{key: 200, items: [][]byte{inline("字")}},
	}, nil)

	tab, err := Decode(bytes.NewReader(img))
	require.NoError(t, err)
	assert.Empty(t, tab.Lookup(199))
	assert.Empty(t, tab.Lookup(201))
	assert.Empty(t, tab.Lookup(0xFFFE))
}

func TestLookupLastRangeUsesSentinel(t *testing.T) {
	img := buildTable(t, []struct {
		key   uint16
		items [][]byte
	}{
		{key: 10, items: [][]byte{inline("一")}},
		{key: 20, items: [][]byte{inline("二"), inline("三")}},
	}, nil)

	tab, err := Decode(bytes.NewReader(img))
	require.NoError(t, err)
	assert.Equal(t, []string{"二", "三"}, tab.Lookup(20))
}

func TestDecodeTruncated(t *testing.T) {
	img := buildTable(t, []struct {
		key   uint16
		items [][]byte
	}{
		{key: 5, items: [][]byte{inline("x")}},
	}, nil)

	for cut := 1; cut < len(img); cut += 3 {
		_, err := Decode(bytes.NewReader(img[:cut]))
		assert.Error(t, err, "truncated at %d bytes", cut)
	}
}

func TestDecodeUnsortedIndex(t *testing.T) {
	img := buildTable(t, []struct {
		key   uint16
		items [][]byte
	}{
		{key: 30, items: [][]byte{inline("a")}},
		{key: 10, items: [][]byte{inline("b")}},
	}, nil)

	_, err := Decode(bytes.NewReader(img))
	assert.ErrorIs(t, err, ErrFormat)
}

func TestNilTableAnswersEmpty(t *testing.T) {
	var tab *Table
	assert.Nil(t, tab.Lookup(1545))
	assert.Zero(t, tab.Items())
	assert.Zero(t, tab.Keys())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(t.TempDir() + "/absent.tab2")
	assert.Error(t, err)
}
