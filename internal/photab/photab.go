// Package photab decodes the precompiled phonetic dictionary and answers
// key lookups over it.
//
// The on-disk layout is little-endian and fixed:
//
//	u16 index count (stored twice; the second value is authoritative)
//	i32 item count
//	i32 phrase blob size
//	index entries: (u16 key, u16 start) × count, sorted ascending by key
//	items: 4 bytes each — inline UTF-8, or 0x1B followed by a 3-byte
//	       little-endian offset into the phrase blob
//	phrase blob
//
// The duplicated count is a historical quirk of the format and is read as
// written; existing dictionary files are never regenerated.
package photab

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"chime/internal/phonetic"
)

// phraseEscape marks an item whose text lives in the phrase blob.
const phraseEscape = 0x1B

// itemSize is the fixed width of an item record in bytes.
const itemSize = 4

// ErrFormat reports a structurally invalid dictionary file.
var ErrFormat = errors.New("photab: malformed dictionary")

type indexEntry struct {
	key   uint16
	start uint16
}

// Table is a loaded phonetic dictionary. It is immutable after Load and
// safe for concurrent lookups. The zero value and a nil *Table answer
// every lookup with no candidates.
type Table struct {
	idx     []indexEntry // includes the 0xFFFF sentinel
	items   [][itemSize]byte
	phrases []byte
}

// Load reads a dictionary file. On any error the returned table is nil and
// callers should treat the method as having no dictionary.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("photab: open %s: %w", path, err)
	}
	defer f.Close()

	t, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("photab: load %s: %w", path, err)
	}
	return t, nil
}

// Decode reads the dictionary layout from r.
func Decode(r io.Reader) (*Table, error) {
	var idxCount uint16
	// The count is stored twice; read both, keep the second.
	for i := 0; i < 2; i++ {
		if err := binary.Read(r, binary.LittleEndian, &idxCount); err != nil {
			return nil, fmt.Errorf("index count: %w", err)
		}
	}

	var itemCount, phraseSize int32
	if err := binary.Read(r, binary.LittleEndian, &itemCount); err != nil {
		return nil, fmt.Errorf("item count: %w", err)
	}
	if err := binary.Read(r, binary.LittleEndian, &phraseSize); err != nil {
		return nil, fmt.Errorf("phrase size: %w", err)
	}
	if itemCount < 0 || phraseSize < 0 {
		return nil, fmt.Errorf("%w: negative section size", ErrFormat)
	}

	raw := make([]byte, int(idxCount)*4)
	if _, err := io.ReadFull(r, raw); err != nil {
		return nil, fmt.Errorf("index entries: %w", err)
	}

	t := &Table{
		idx:   make([]indexEntry, idxCount, int(idxCount)+1),
		items: make([][itemSize]byte, itemCount),
	}
	for i := range t.idx {
		t.idx[i].key = binary.LittleEndian.Uint16(raw[i*4:])
		t.idx[i].start = binary.LittleEndian.Uint16(raw[i*4+2:])
		if i > 0 && t.idx[i].key < t.idx[i-1].key {
			return nil, fmt.Errorf("%w: index not sorted at entry %d", ErrFormat, i)
		}
	}
	// Sentinel makes every range expressible as [start[i], start[i+1]).
	t.idx = append(t.idx, indexEntry{key: 0xFFFF, start: uint16(itemCount)})

	itemBytes := make([]byte, int(itemCount)*itemSize)
	if _, err := io.ReadFull(r, itemBytes); err != nil {
		return nil, fmt.Errorf("items: %w", err)
	}
	for i := range t.items {
		copy(t.items[i][:], itemBytes[i*itemSize:])
	}

	if phraseSize > 0 {
		t.phrases = make([]byte, phraseSize)
		if _, err := io.ReadFull(r, t.phrases); err != nil {
			return nil, fmt.Errorf("phrase blob: %w", err)
		}
	}

	return t, nil
}

// Lookup returns the candidates for a syllable key in the order the table
// stores them (the table author's ranking). An unknown key yields an empty
// slice, never an error.
func (t *Table) Lookup(key phonetic.Key) []string {
	if t == nil || len(t.idx) == 0 {
		return nil
	}

	// The slice excluding the sentinel is sorted ascending by key.
	n := len(t.idx) - 1
	i := sort.Search(n, func(i int) bool { return t.idx[i].key >= uint16(key) })
	if i >= n || t.idx[i].key != uint16(key) {
		return nil
	}

	start, end := int(t.idx[i].start), int(t.idx[i+1].start)
	if start > end || end > len(t.items) {
		return nil
	}

	out := make([]string, 0, end-start)
	for j := start; j < end; j++ {
		if s := t.itemText(j); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// itemText resolves one item record, following the phrase escape when the
// text is out of line.
func (t *Table) itemText(i int) string {
	if i < 0 || i >= len(t.items) {
		return ""
	}
	item := t.items[i]
	if item[0] == phraseEscape && len(t.phrases) > 0 {
		off := int(item[1]) | int(item[2])<<8 | int(item[3])<<16
		if off >= len(t.phrases) {
			return ""
		}
		end := off
		for end < len(t.phrases) && t.phrases[end] != 0 {
			end++
		}
		return string(t.phrases[off:end])
	}
	end := 0
	for end < itemSize && item[end] != 0 {
		end++
	}
	return string(item[:end])
}

// Items returns the number of item records.
func (t *Table) Items() int {
	if t == nil {
		return 0
	}
	return len(t.items)
}

// Keys returns the number of distinct syllable keys.
func (t *Table) Keys() int {
	if t == nil || len(t.idx) == 0 {
		return 0
	}
	return len(t.idx) - 1
}
