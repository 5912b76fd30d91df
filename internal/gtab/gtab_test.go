package gtab

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type v2Spec struct {
	name       string
	selKeys    string
	spaceStyle int
	keyChars   string
	keyNames   []string
	maxPress   int
	keyBits    int
	items      []Item
}

// buildV2 lays out a compact table image byte by byte, independent of the
// compiler, so decoding is checked against the format itself.
func buildV2(t *testing.T, s v2Spec) []byte {
	t.Helper()

	key64 := s.maxPress*s.keyBits > 32
	keyWidth := 4
	if key64 {
		keyWidth = 8
	}

	keymapOff := headerSizeV2
	keynameOff := keymapOff + len(s.keyChars)
	itemsOff := keynameOff + len(s.keyChars)*CharSize

	img := make([]byte, itemsOff+len(s.items)*(keyWidth+CharSize))
	binary.LittleEndian.PutUint32(img[0:], MagicV2)
	binary.LittleEndian.PutUint16(img[4:], VersionV2)
	copy(img[8:40], s.name)
	copy(img[40:52], s.selKeys)
	img[52] = byte(s.spaceStyle)
	img[53] = byte(len(s.keyChars))
	img[54] = byte(s.maxPress)
	img[55] = byte(s.keyBits)
	binary.LittleEndian.PutUint32(img[56:], uint32(len(s.items)))
	binary.LittleEndian.PutUint32(img[60:], uint32(keymapOff))
	binary.LittleEndian.PutUint32(img[64:], uint32(keynameOff))
	binary.LittleEndian.PutUint32(img[68:], uint32(itemsOff))

	copy(img[keymapOff:], s.keyChars)
	for i, n := range s.keyNames {
		copy(img[keynameOff+i*CharSize:], n)
	}
	for i, it := range s.items {
		rec := img[itemsOff+i*(keyWidth+CharSize):]
		for j := keyWidth - 1; j >= 0; j-- {
			rec[j] = byte(it.Key)
			it.Key >>= 8
		}
		require.LessOrEqual(t, len(it.Text), CharSize)
		copy(rec[keyWidth:], it.Text)
	}
	return img
}

// miniTable is a three-key table with maxPress 3 and keyBits 2; key
// packing is small enough to verify by hand.
func miniTable(t *testing.T) *Table {
	t.Helper()
	tab, err := Decode(buildV2(t, v2Spec{
		name:     "迷你",
		selKeys:  "1234567890",
		keyChars: "abc",
		keyNames: []string{"日", "月", "金"},
		maxPress: 3,
		keyBits:  2,
		items: []Item{
			// a     → 0b00_00_00 shifted: index 0 left-aligned is 0
			{Key: PackKeys([]int{0}, 2, 3), Text: "一"},
			{Key: PackKeys([]int{0, 1}, 2, 3), Text: "二"},
			{Key: PackKeys([]int{0, 1, 2}, 2, 3), Text: "三"},
			{Key: PackKeys([]int{1}, 2, 3), Text: "四"},
			{Key: PackKeys([]int{2, 2, 2}, 2, 3), Text: "五"},
		},
	}))
	require.NoError(t, err)
	return tab
}

func TestPackKeysLeftAligned(t *testing.T) {
	assert.Equal(t, uint64(0b01_10_00), PackKeys([]int{1, 2}, 2, 3))
	assert.Equal(t, uint64(0b01_10_11), PackKeys([]int{1, 2, 3}, 2, 3))
	assert.Equal(t, uint64(0b01_00_00), PackKeys([]int{1}, 2, 3))
	// Over-long sequences pack the first maxPress keys.
	assert.Equal(t, uint64(0b01_10_11), PackKeys([]int{1, 2, 3, 1}, 2, 3))
}

func TestDecodeV2Header(t *testing.T) {
	tab := miniTable(t)
	assert.Equal(t, "迷你", tab.Name)
	assert.Equal(t, "1234567890", tab.SelKeys)
	assert.Equal(t, 3, tab.KeyCount)
	assert.Equal(t, 3, tab.MaxPress)
	assert.Equal(t, 2, tab.KeyBits)
	assert.False(t, tab.Key64)
	assert.Equal(t, 5, tab.Items())
}

func TestLookupPrefix(t *testing.T) {
	tab := miniTable(t)

	// Depth 1 under key "a" matches everything starting with index 0.
	assert.Equal(t, []string{"一", "二", "三"}, tab.LookupPrefix([]int{0}))
	assert.Equal(t, []string{"二", "三"}, tab.LookupPrefix([]int{0, 1}))
	assert.Equal(t, []string{"三"}, tab.LookupPrefix([]int{0, 1, 2}))
	assert.Equal(t, []string{"五"}, tab.LookupPrefix([]int{2, 2, 2}))
	assert.Empty(t, tab.LookupPrefix([]int{2, 0}))
	assert.Empty(t, tab.LookupPrefix(nil))
	assert.Empty(t, tab.LookupPrefix([]int{0, 1, 2, 0}))
}

func TestLookupPrefixCandidateCap(t *testing.T) {
	items := make([]Item, 0, MaxCandidates+20)
	for i := 0; i < MaxCandidates+20; i++ {
		// All share the depth-1 prefix {1}; vary the tail.
		items = append(items, Item{
			Key:  PackKeys([]int{1, i % 8, i / 8 % 8}, 3, 3),
			Text: "字",
		})
	}
	tab, err := Decode(buildV2(t, v2Spec{
		name:     "大",
		selKeys:  "123456789",
		keyChars: "abcdefgh",
		keyNames: []string{"a", "b", "c", "d", "e", "f", "g", "h"},
		maxPress: 3,
		keyBits:  3,
		items:    items,
	}))
	require.NoError(t, err)
	assert.Len(t, tab.LookupPrefix([]int{1}), MaxCandidates)
}

func TestDecode64BitKeys(t *testing.T) {
	// 10 presses × 6 bits = 60 bits forces the wide item layout.
	keys := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	tab, err := Decode(buildV2(t, v2Spec{
		name:     "長碼",
		selKeys:  "123456789",
		keyChars: "abcdefghijklmnopqrstuvwxyz",
		keyNames: make([]string, 26),
		maxPress: 10,
		keyBits:  6,
		items: []Item{
			{Key: PackKeys(keys, 6, 10), Text: "深"},
			{Key: PackKeys(keys[:3], 6, 10), Text: "淺"},
		},
	}))
	require.NoError(t, err)
	assert.True(t, tab.Key64)
	// The shorter entry pads with zeros and sorts first; the full-depth
	// entry shares its prefix.
	assert.Equal(t, []string{"淺", "深"}, tab.LookupPrefix(keys[:3]))
	assert.Equal(t, []string{"深"}, tab.LookupPrefix(keys))
	assert.Contains(t, tab.LookupPrefix(keys[:1]), "深")
}

func TestDecodeUnsortedItemsAreSorted(t *testing.T) {
	tab, err := Decode(buildV2(t, v2Spec{
		name:     "亂",
		selKeys:  "123",
		keyChars: "ab",
		keyNames: []string{"a", "b"},
		maxPress: 2,
		keyBits:  2,
		items: []Item{
			{Key: PackKeys([]int{1, 1}, 2, 2), Text: "後"},
			{Key: PackKeys([]int{0, 0}, 2, 2), Text: "前"},
		},
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"前"}, tab.LookupPrefix([]int{0, 0}))
	assert.Equal(t, []string{"後"}, tab.LookupPrefix([]int{1, 1}))
}

func TestKeyIndexAndNames(t *testing.T) {
	tab := miniTable(t)

	idx, ok := tab.KeyIndex('b')
	require.True(t, ok)
	assert.Equal(t, 1, idx)
	_, ok = tab.KeyIndex('z')
	assert.False(t, ok)

	assert.Equal(t, "月", tab.KeyName(1))
	assert.Equal(t, byte('c'), tab.KeyChar(2))
	assert.Equal(t, "日月金", tab.KeyDisplay([]int{0, 1, 2}))
}

func TestDecodeRejectsCorruptImages(t *testing.T) {
	img := buildV2(t, v2Spec{
		name:     "破",
		selKeys:  "123",
		keyChars: "ab",
		keyNames: []string{"a", "b"},
		maxPress: 2,
		keyBits:  2,
		items:    []Item{{Key: 0, Text: "x"}},
	})

	t.Run("truncated items", func(t *testing.T) {
		_, err := Decode(img[:len(img)-3])
		assert.ErrorIs(t, err, ErrFormat)
	})
	t.Run("bad version", func(t *testing.T) {
		bad := append([]byte(nil), img...)
		binary.LittleEndian.PutUint16(bad[4:], 9)
		_, err := Decode(bad)
		assert.ErrorIs(t, err, ErrFormat)
	})
	t.Run("zero keybits", func(t *testing.T) {
		bad := append([]byte(nil), img...)
		bad[55] = 0
		_, err := Decode(bad)
		assert.ErrorIs(t, err, ErrFormat)
	})
}

func TestDecodeLegacyLayout(t *testing.T) {
	// Legacy: 584-byte header, 128-byte keymap, 64×u32 bucket index,
	// then 8-byte item records (keyBits fixed at 6, maxPress 4 here).
	itemCount := 2
	img := make([]byte, headerSizeLegacy+legacyKeymapSize+legacyIndexSize+itemCount*8)
	binary.LittleEndian.PutUint32(img[0:], 1) // version
	copy(img[8:40], "傳統")
	copy(img[40:52], "123456789")
	binary.LittleEndian.PutUint32(img[52:], 0)                  // space_style
	binary.LittleEndian.PutUint32(img[56:], 3)                  // key_count
	binary.LittleEndian.PutUint32(img[60:], 4)                  // max_press
	binary.LittleEndian.PutUint32(img[64:], 1)                  // dup_sel
	binary.LittleEndian.PutUint32(img[68:], uint32(itemCount))  // def_chars
	copy(img[headerSizeLegacy:], "xyz")

	itemsOff := headerSizeLegacy + legacyKeymapSize + legacyIndexSize
	writeItem := func(i int, key uint32, text string) {
		rec := img[itemsOff+i*8:]
		binary.BigEndian.PutUint32(rec, key)
		copy(rec[4:], text)
	}
	writeItem(0, uint32(PackKeys([]int{1}, legacyKeyBits, 4)), "甲")
	writeItem(1, uint32(PackKeys([]int{1, 2}, legacyKeyBits, 4)), "乙")

	tab, err := Decode(img)
	require.NoError(t, err)
	assert.Equal(t, "傳統", tab.Name)
	assert.Equal(t, 3, tab.KeyCount)
	assert.Equal(t, 4, tab.MaxPress)
	assert.Equal(t, legacyKeyBits, tab.KeyBits)
	assert.False(t, tab.Key64)

	idx, ok := tab.KeyIndex('y')
	require.True(t, ok)
	assert.Equal(t, 1, idx)
	// No radical names in the legacy layout: display falls back to ASCII.
	assert.Equal(t, "y", tab.KeyName(1))

	assert.Equal(t, []string{"甲", "乙"}, tab.LookupPrefix([]int{1}))
	assert.Equal(t, []string{"乙"}, tab.LookupPrefix([]int{1, 2}))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(t.TempDir() + "/absent.gtab")
	assert.Error(t, err)
}
