// Package cin parses .cin table source files and compiles them into the
// compact binary layout loaded by package gtab.
//
// A .cin file is line-oriented: '#' starts a comment, %cname/%selkey/
// %space_style set scalar fields, a %keyname begin/end block declares the
// key alphabet with radical names, and a %chardef begin/end block lists
// key-sequence-to-character entries. Malformed lines are skipped and
// reported as diagnostics rather than failing the whole file.
package cin

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"chime/internal/gtab"
)

const maxKeySeq = 15

// ErrEmpty reports a source with no usable character definitions.
var ErrEmpty = errors.New("cin: no character definitions")

// Entry is one %chardef line: the ASCII key sequence and the text it
// produces.
type Entry struct {
	Keys string
	Text string
}

// Source is a parsed .cin file, before compilation.
type Source struct {
	Name       string
	SelKeys    string
	SpaceStyle int
	KeyChars   []byte   // key index → ASCII keystroke
	KeyNames   []string // key index → radical display
	Entries    []Entry

	// Diagnostics lists skipped lines, one message per line, with
	// 1-based line numbers.
	Diagnostics []string
}

// ParseFile reads and parses a .cin file.
func ParseFile(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cin: open %s: %w", path, err)
	}
	defer f.Close()
	src, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("cin: parse %s: %w", path, err)
	}
	return src, nil
}

// Parse reads .cin source from r. Parse never fails on malformed content
// lines; those are skipped with a diagnostic. Only read errors are
// returned.
func Parse(r io.Reader) (*Source, error) {
	src := &Source{SelKeys: "1234567890"}
	keyIdx := make(map[byte]bool)

	var inKeyname, inChardef bool
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 64*1024)
	lineno := 0
	for sc.Scan() {
		lineno++
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" || line[0] == '#' {
			continue
		}

		if line[0] == '%' {
			switch {
			case strings.HasPrefix(line, "%cname "):
				src.Name = strings.TrimSpace(line[7:])
			case strings.HasPrefix(line, "%selkey "):
				src.SelKeys = strings.TrimSpace(line[8:])
			case strings.HasPrefix(line, "%space_style "):
				n, err := strconv.Atoi(strings.TrimSpace(line[13:]))
				if err != nil {
					src.skip(lineno, "space_style is not a number")
					continue
				}
				src.SpaceStyle = n
			case line == "%keyname begin":
				inKeyname = true
			case line == "%keyname end":
				inKeyname = false
			case line == "%chardef begin":
				inChardef = true
			case line == "%chardef end":
				inChardef = false
			}
			// Unrecognized directives are ignored, matching the wide
			// variety of %-headers in circulating tables.
			continue
		}

		switch {
		case inKeyname:
			key, name, ok := splitKeyLine(line)
			if !ok || key < '!' || key > '~' {
				src.skip(lineno, "bad keyname line")
				continue
			}
			if keyIdx[key] {
				src.skip(lineno, fmt.Sprintf("duplicate key %q", key))
				continue
			}
			keyIdx[key] = true
			src.KeyChars = append(src.KeyChars, key)
			src.KeyNames = append(src.KeyNames, truncate(name, gtab.CharSize))

		case inChardef:
			fields := strings.Fields(line)
			if len(fields) < 2 {
				src.skip(lineno, "chardef line needs a key sequence and a character")
				continue
			}
			keys := fields[0]
			if len(keys) > maxKeySeq {
				src.skip(lineno, "key sequence too long")
				continue
			}
			src.Entries = append(src.Entries, Entry{
				Keys: keys,
				Text: truncate(fields[1], gtab.CharSize),
			})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("cin: read: %w", err)
	}
	return src, nil
}

func (s *Source) skip(lineno int, msg string) {
	s.Diagnostics = append(s.Diagnostics, fmt.Sprintf("line %d: %s", lineno, msg))
}

func splitKeyLine(line string) (byte, string, bool) {
	key := line[0]
	rest := strings.TrimLeft(line[1:], " \t")
	if rest == "" {
		return 0, "", false
	}
	return key, rest, true
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

// MaxPress returns the longest key sequence among the entries.
func (s *Source) MaxPress() int {
	max := 0
	for _, e := range s.Entries {
		if len(e.Keys) > max {
			max = len(e.Keys)
		}
	}
	return max
}

// KeyBits returns the bit width needed to number the key alphabet,
// leaving value zero shared with the first key as the original layout
// does.
func (s *Source) KeyBits() int {
	n := len(s.KeyChars) + 1
	bits := 1
	for 1<<bits < n {
		bits++
	}
	return bits
}

// Compile packs and sorts the entries into a compact table image that
// gtab.Decode accepts.
func Compile(src *Source) ([]byte, error) {
	if len(src.Entries) == 0 {
		return nil, ErrEmpty
	}
	if len(src.KeyChars) == 0 {
		return nil, errors.New("cin: no %keyname block")
	}

	keyBits := src.KeyBits()
	maxPress := src.MaxPress()
	key64 := maxPress*keyBits > 32
	if maxPress*keyBits > 64 {
		return nil, fmt.Errorf("cin: key sequences too long to pack (%d presses × %d bits)", maxPress, keyBits)
	}
	keyWidth := 4
	if key64 {
		keyWidth = 8
	}

	charToIdx := make(map[byte]int, len(src.KeyChars))
	for i, c := range src.KeyChars {
		charToIdx[c] = i
	}

	items := make([]gtab.Item, 0, len(src.Entries))
	for _, e := range src.Entries {
		keys := make([]int, len(e.Keys))
		for i := 0; i < len(e.Keys); i++ {
			// Unknown keystrokes fold to index 0, as the original
			// converter does.
			keys[i] = charToIdx[e.Keys[i]]
		}
		items = append(items, gtab.Item{
			Key:  gtab.PackKeys(keys, keyBits, maxPress),
			Text: e.Text,
		})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Key < items[j].Key })

	keymapOff := 72
	keynameOff := keymapOff + len(src.KeyChars)
	itemsOff := keynameOff + len(src.KeyChars)*gtab.CharSize

	img := make([]byte, itemsOff+len(items)*(keyWidth+gtab.CharSize))
	binary.LittleEndian.PutUint32(img[0:], gtab.MagicV2)
	binary.LittleEndian.PutUint16(img[4:], gtab.VersionV2)
	if key64 {
		binary.LittleEndian.PutUint16(img[6:], 1)
	}
	copy(img[8:40], truncate(src.Name, 31))
	copy(img[40:52], truncate(src.SelKeys, 11))
	img[52] = byte(src.SpaceStyle)
	img[53] = byte(len(src.KeyChars))
	img[54] = byte(maxPress)
	img[55] = byte(keyBits)
	binary.LittleEndian.PutUint32(img[56:], uint32(len(items)))
	binary.LittleEndian.PutUint32(img[60:], uint32(keymapOff))
	binary.LittleEndian.PutUint32(img[64:], uint32(keynameOff))
	binary.LittleEndian.PutUint32(img[68:], uint32(itemsOff))

	copy(img[keymapOff:], src.KeyChars)
	for i, n := range src.KeyNames {
		copy(img[keynameOff+i*gtab.CharSize:], n)
	}
	for i, it := range items {
		rec := img[itemsOff+i*(keyWidth+gtab.CharSize):]
		key := it.Key
		for j := keyWidth - 1; j >= 0; j-- {
			rec[j] = byte(key)
			key >>= 8
		}
		copy(rec[keyWidth:], it.Text)
	}
	return img, nil
}

// CompileFile parses a .cin source and writes the compiled table. The
// parse diagnostics are returned so callers can report skipped lines.
func CompileFile(inPath, outPath string) ([]string, error) {
	src, err := ParseFile(inPath)
	if err != nil {
		return nil, err
	}
	img, err := Compile(src)
	if err != nil {
		return src.Diagnostics, fmt.Errorf("cin: compile %s: %w", inPath, err)
	}
	if err := os.WriteFile(outPath, img, 0o644); err != nil {
		return src.Diagnostics, fmt.Errorf("cin: write %s: %w", outPath, err)
	}
	return src.Diagnostics, nil
}
