// Package gtab loads table-based input method dictionaries (.gtab files,
// as used by Cangjie, Array, Boshiamy and similar methods) and answers
// prefix lookups over the entered key sequence.
//
// Two file layouts are supported. The compact v2 layout starts with the
// magic 0x48475432 and a 72-byte header followed by keymap, keyname and
// item sections at recorded offsets. The legacy layout has a 584-byte
// header, a 128-byte keymap, a 64-entry bucket index (read and discarded)
// and the item records. Item keys are packed big-endian on disk in both
// layouts; in memory every key is a uint64 regardless of the on-disk
// width, so lookup code never branches on table size.
package gtab

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
)

// MagicV2 identifies the compact table layout.
const MagicV2 = 0x48475432

// VersionV2 is the only compact layout version in circulation.
const VersionV2 = 0x0002

// CharSize is the width of an item's inline UTF-8 text field.
const CharSize = 4

// MaxCandidates caps the candidate list returned by a prefix lookup.
const MaxCandidates = 100

const (
	headerSizeV2     = 72
	headerSizeLegacy = 584
	legacyKeymapSize = 128
	legacyKeyBits    = 6
	legacyIndexSize  = (1 << legacyKeyBits) * 4
)

// ErrFormat reports a structurally invalid table file.
var ErrFormat = errors.New("gtab: malformed table")

// Item is one dictionary entry: the packed key sequence and the text it
// produces. Keys are left-aligned within the low MaxPress×KeyBits bits so
// that a prefix comparison is a single shift.
type Item struct {
	Key  uint64
	Text string
}

// Table is a loaded dictionary. It is immutable after load and safe for
// concurrent lookups.
type Table struct {
	Name       string
	SelKeys    string
	SpaceStyle int
	KeyCount   int
	MaxPress   int
	KeyBits    int
	Key64      bool

	keyChars []byte   // key index → ASCII keystroke
	keyNames []string // key index → radical display, may be empty (legacy)
	items    []Item   // sorted ascending by Key
}

// Load reads a table file, detecting the layout from the magic bytes.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("gtab: read %s: %w", path, err)
	}
	t, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("gtab: load %s: %w", path, err)
	}
	return t, nil
}

// Decode parses a table image from memory.
func Decode(data []byte) (*Table, error) {
	if len(data) >= 4 && binary.LittleEndian.Uint32(data) == MagicV2 {
		return decodeV2(data)
	}
	return decodeLegacy(data)
}

func decodeV2(data []byte) (*Table, error) {
	if len(data) < headerSizeV2 {
		return nil, fmt.Errorf("%w: short v2 header", ErrFormat)
	}
	if v := binary.LittleEndian.Uint16(data[4:]); v != VersionV2 {
		return nil, fmt.Errorf("%w: unsupported version %#x", ErrFormat, v)
	}

	t := &Table{
		Name:       cString(data[8:40]),
		SelKeys:    cString(data[40:52]),
		SpaceStyle: int(data[52]),
		KeyCount:   int(data[53]),
		MaxPress:   int(data[54]),
		KeyBits:    int(data[55]),
	}
	itemCount := int(binary.LittleEndian.Uint32(data[56:]))
	keymapOff := int(binary.LittleEndian.Uint32(data[60:]))
	keynameOff := int(binary.LittleEndian.Uint32(data[64:]))
	itemsOff := int(binary.LittleEndian.Uint32(data[68:]))

	if t.KeyBits < 1 || t.MaxPress < 1 {
		return nil, fmt.Errorf("%w: key geometry %d bits × %d presses", ErrFormat, t.KeyBits, t.MaxPress)
	}
	t.Key64 = t.MaxPress*t.KeyBits > 32

	if keymapOff+t.KeyCount > len(data) || keynameOff+t.KeyCount*CharSize > len(data) {
		return nil, fmt.Errorf("%w: key sections exceed file size", ErrFormat)
	}
	t.keyChars = append([]byte(nil), data[keymapOff:keymapOff+t.KeyCount]...)
	t.keyNames = make([]string, t.KeyCount)
	for i := 0; i < t.KeyCount; i++ {
		off := keynameOff + i*CharSize
		t.keyNames[i] = cString(data[off : off+CharSize])
	}

	keyWidth := 4
	if t.Key64 {
		keyWidth = 8
	}
	recSize := keyWidth + CharSize
	if itemsOff+itemCount*recSize > len(data) {
		return nil, fmt.Errorf("%w: %d items exceed file size", ErrFormat, itemCount)
	}
	t.items = make([]Item, itemCount)
	for i := range t.items {
		rec := data[itemsOff+i*recSize:]
		var key uint64
		for _, b := range rec[:keyWidth] {
			key = key<<8 | uint64(b)
		}
		t.items[i] = Item{Key: key, Text: cString(rec[keyWidth:recSize])}
	}
	t.ensureSorted()
	return t, nil
}

func decodeLegacy(data []byte) (*Table, error) {
	if len(data) < headerSizeLegacy+legacyKeymapSize+legacyIndexSize {
		return nil, fmt.Errorf("%w: short legacy header", ErrFormat)
	}

	t := &Table{
		Name:       cString(data[8:40]),
		SelKeys:    cString(data[40:52]),
		SpaceStyle: int(int32(binary.LittleEndian.Uint32(data[52:]))),
		KeyCount:   int(int32(binary.LittleEndian.Uint32(data[56:]))),
		MaxPress:   int(int32(binary.LittleEndian.Uint32(data[60:]))),
		KeyBits:    legacyKeyBits,
	}
	itemCount := int(int32(binary.LittleEndian.Uint32(data[68:])))
	if t.KeyCount < 0 || t.KeyCount > legacyKeymapSize || t.MaxPress < 1 || itemCount < 0 {
		return nil, fmt.Errorf("%w: implausible legacy header", ErrFormat)
	}
	t.Key64 = t.MaxPress > 5

	keymap := data[headerSizeLegacy : headerSizeLegacy+legacyKeymapSize]
	n := bytes.IndexByte(keymap, 0)
	if n < 0 {
		n = legacyKeymapSize
	}
	t.keyChars = append([]byte(nil), keymap[:n]...)

	// The bucket index block is a lookup accelerator for the original
	// reader; items are re-sorted here so it carries no information.
	itemsOff := headerSizeLegacy + legacyKeymapSize + legacyIndexSize

	keyWidth := 4
	if t.Key64 {
		keyWidth = 8
	}
	recSize := keyWidth + CharSize
	if itemsOff+itemCount*recSize > len(data) {
		return nil, fmt.Errorf("%w: %d items exceed file size", ErrFormat, itemCount)
	}
	t.items = make([]Item, itemCount)
	for i := range t.items {
		rec := data[itemsOff+i*recSize:]
		var key uint64
		for _, b := range rec[:keyWidth] {
			key = key<<8 | uint64(b)
		}
		t.items[i] = Item{Key: key, Text: cString(rec[keyWidth:recSize])}
	}
	t.ensureSorted()
	return t, nil
}

// ensureSorted sorts items ascending by key. Stable so that entries
// sharing a key keep the table author's ranking.
func (t *Table) ensureSorted() {
	if !sort.SliceIsSorted(t.items, func(i, j int) bool { return t.items[i].Key < t.items[j].Key }) {
		sort.SliceStable(t.items, func(i, j int) bool { return t.items[i].Key < t.items[j].Key })
	}
}

// KeyIndex maps an ASCII keystroke to its key index, or ok=false when the
// character is not part of this table's alphabet.
func (t *Table) KeyIndex(c byte) (int, bool) {
	for i, k := range t.keyChars {
		if k == c {
			return i, true
		}
	}
	return 0, false
}

// KeyChar returns the ASCII keystroke for a key index.
func (t *Table) KeyChar(idx int) byte {
	if idx < 0 || idx >= len(t.keyChars) {
		return 0
	}
	return t.keyChars[idx]
}

// KeyName returns the radical display for a key index, falling back to
// the ASCII keystroke when the table carries no radical names.
func (t *Table) KeyName(idx int) string {
	if idx >= 0 && idx < len(t.keyNames) && t.keyNames[idx] != "" {
		return t.keyNames[idx]
	}
	if c := t.KeyChar(idx); c != 0 {
		return string(c)
	}
	return ""
}

// KeyDisplay renders an entered key sequence for the preedit area.
func (t *Table) KeyDisplay(keys []int) string {
	var b strings.Builder
	for _, k := range keys {
		b.WriteString(t.KeyName(k))
	}
	return b.String()
}

// PackKeys packs key indices left-aligned within maxPress×keyBits low
// bits. A sequence longer than maxPress packs its first maxPress keys.
func PackKeys(keys []int, keyBits, maxPress int) uint64 {
	if len(keys) > maxPress {
		keys = keys[:maxPress]
	}
	var val uint64
	for _, k := range keys {
		val = val<<uint(keyBits) | uint64(k)
	}
	return val << (uint(maxPress-len(keys)) * uint(keyBits))
}

// LookupPrefix returns the texts of every item whose key sequence starts
// with the entered keys, in key order, capped at MaxCandidates. An empty
// or over-long sequence yields no candidates.
func (t *Table) LookupPrefix(keys []int) []string {
	if t == nil || len(keys) == 0 || len(keys) > t.MaxPress {
		return nil
	}
	var prefix uint64
	for _, k := range keys {
		prefix = prefix<<uint(t.KeyBits) | uint64(k)
	}
	shift := uint(t.MaxPress-len(keys)) * uint(t.KeyBits)

	i := sort.Search(len(t.items), func(i int) bool { return t.items[i].Key>>shift >= prefix })
	var out []string
	for ; i < len(t.items) && len(out) < MaxCandidates; i++ {
		if t.items[i].Key>>shift != prefix {
			break
		}
		out = append(out, t.items[i].Text)
	}
	return out
}

// Items returns the number of dictionary entries.
func (t *Table) Items() int {
	if t == nil {
		return 0
	}
	return len(t.items)
}

// ItemAt exposes a single entry for inspection tooling.
func (t *Table) ItemAt(i int) Item {
	return t.items[i]
}

// cString trims a fixed-width, NUL-padded byte field.
func cString(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}
