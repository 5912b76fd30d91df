package phonetic

import "strings"

// Layout identifies a built-in phonetic keyboard layout.
type Layout int

const (
	LayoutStandard Layout = iota // 大千/standard Zhuyin
	LayoutHsu                    // 許氏
	LayoutEten                   // 倚天
	LayoutEten26                 // 倚天 26 key
	LayoutIBM
	LayoutPinyin // Hanyu Pinyin
	LayoutDvorak // Dvorak-based Zhuyin

	layoutCount
)

var layoutNames = [layoutCount]string{
	"standard", "hsu", "eten", "eten26", "ibm", "pinyin", "dvorak",
}

func (l Layout) String() string {
	if l < 0 || l >= layoutCount {
		return "standard"
	}
	return layoutNames[l]
}

// Valid reports whether l names a built-in layout.
func (l Layout) Valid() bool { return l >= 0 && l < layoutCount }

// layoutAliases maps accepted layout names, including the short historical
// aliases, to layouts.
var layoutAliases = map[string]Layout{
	"standard": LayoutStandard,
	"zo":       LayoutStandard,
	"hsu":      LayoutHsu,
	"eten":     LayoutEten,
	"et":       LayoutEten,
	"eten26":   LayoutEten26,
	"et26":     LayoutEten26,
	"ibm":      LayoutIBM,
	"pinyin":   LayoutPinyin,
	"hanyu":    LayoutPinyin,
	"dvorak":   LayoutDvorak,
}

// LayoutByName resolves a layout name or alias, case-insensitively.
func LayoutByName(name string) (Layout, bool) {
	l, ok := layoutAliases[strings.ToLower(name)]
	return l, ok
}

// mapEntry binds one physical key to a component slot and value. Several
// layouts intentionally bind the same key to more than one component; the
// first entry in table order wins when resolving a keystroke.
type mapEntry struct {
	key byte
	num int
	typ int
}

// Standard Zhuyin keyboard layout (大千/標準注音).
var keymapStandard = []mapEntry{
	// Initials ㄅㄆㄇㄈㄉㄊㄋㄌㄍㄎㄏㄐㄑㄒㄓㄔㄕㄖㄗㄘㄙ
	{'1', 1, Initial}, {'q', 2, Initial}, {'a', 3, Initial}, {'z', 4, Initial},
	{'2', 5, Initial}, {'w', 6, Initial}, {'s', 7, Initial}, {'x', 8, Initial},
	{'e', 9, Initial}, {'d', 10, Initial}, {'c', 11, Initial}, {'r', 12, Initial},
	{'f', 13, Initial}, {'v', 14, Initial}, {'5', 15, Initial}, {'t', 16, Initial},
	{'g', 17, Initial}, {'b', 18, Initial}, {'y', 19, Initial}, {'h', 20, Initial},
	{'n', 21, Initial},
	// Medials ㄧㄨㄩ
	{'u', 1, Medial}, {'j', 2, Medial}, {'m', 3, Medial},
	// Finals ㄚㄛㄜㄝㄞㄟㄠㄡㄢㄣㄤㄥㄦ
	{'8', 1, Final}, {'i', 2, Final}, {'k', 3, Final}, {',', 4, Final},
	{'9', 5, Final}, {'o', 6, Final}, {'l', 7, Final}, {'.', 8, Final},
	{'0', 9, Final}, {'p', 10, Final}, {';', 11, Final}, {'/', 12, Final},
	{'-', 13, Final},
	// Tones
	{'3', 2, Tone}, {'4', 3, Tone}, {'6', 4, Tone}, {'7', 5, Tone},
	{' ', 1, Tone},
}

// HSU keyboard layout (許氏鍵盤). Keys j/v/c double as the retroflex
// initials and s/d/f/j double as tone keys; position decides.
var keymapHsu = []mapEntry{
	{'b', 1, Initial}, {'p', 2, Initial}, {'m', 3, Initial}, {'f', 4, Initial},
	{'d', 5, Initial}, {'t', 6, Initial}, {'n', 7, Initial}, {'l', 8, Initial},
	{'g', 9, Initial}, {'k', 10, Initial}, {'h', 11, Initial}, {'j', 12, Initial},
	{'v', 13, Initial}, {'c', 14, Initial},
	{'j', 15, Initial}, {'v', 16, Initial}, {'c', 17, Initial}, // ㄓㄔㄕ shared
	{'r', 18, Initial}, {'z', 19, Initial}, {'a', 20, Initial}, {'s', 21, Initial},
	{'e', 1, Medial}, {'x', 2, Medial}, {'u', 3, Medial},
	{'a', 1, Final}, {'o', 2, Final}, {'r', 3, Final}, {'w', 4, Final},
	{'i', 5, Final}, {'q', 6, Final}, {'z', 7, Final}, {'p', 8, Final},
	{'m', 9, Final}, {'n', 10, Final}, {'k', 11, Final}, {'g', 12, Final},
	{'l', 13, Final},
	{'s', 2, Tone}, {'d', 3, Tone}, {'f', 4, Tone}, {'j', 5, Tone},
	{' ', 1, Tone},
}

// ETen keyboard layout (倚天鍵盤).
var keymapEten = []mapEntry{
	{'b', 1, Initial}, {'p', 2, Initial}, {'m', 3, Initial}, {'f', 4, Initial},
	{'d', 5, Initial}, {'t', 6, Initial}, {'n', 7, Initial}, {'l', 8, Initial},
	{'v', 9, Initial}, {'k', 10, Initial}, {'h', 11, Initial}, {'g', 12, Initial},
	{'7', 13, Initial}, {'c', 14, Initial}, {';', 15, Initial}, {'\'', 16, Initial},
	{'s', 17, Initial}, {'j', 18, Initial}, {'r', 19, Initial}, {'z', 20, Initial},
	{'y', 21, Initial},
	{'u', 1, Medial}, {'i', 2, Medial}, {'x', 3, Medial},
	{'a', 1, Final}, {'o', 2, Final}, {'w', 3, Final}, {',', 4, Final},
	{'e', 5, Final}, {'q', 6, Final}, {'1', 7, Final}, {'.', 8, Final},
	{'2', 9, Final}, {'/', 10, Final}, {'3', 11, Final}, {'4', 12, Final},
	{'-', 13, Final},
	{'6', 2, Tone}, {'9', 3, Tone}, {'0', 4, Tone}, {'8', 5, Tone},
	{' ', 1, Tone},
}

// ETen 26-key layout (倚天26鍵). Several finals share keys with other
// components; the aliasing is part of the layout.
var keymapEten26 = []mapEntry{
	{'b', 1, Initial}, {'p', 2, Initial}, {'m', 3, Initial}, {'f', 4, Initial},
	{'d', 5, Initial}, {'t', 6, Initial}, {'n', 7, Initial}, {'l', 8, Initial},
	{'v', 9, Initial}, {'k', 10, Initial}, {'h', 11, Initial}, {'g', 12, Initial},
	{'c', 13, Initial}, {'y', 14, Initial}, {'j', 15, Initial}, {'q', 16, Initial},
	{'w', 17, Initial}, {'s', 18, Initial}, {'r', 19, Initial}, {'z', 20, Initial},
	{'x', 21, Initial},
	{'u', 1, Medial}, {'i', 2, Medial}, {'o', 3, Medial},
	{'a', 1, Final}, {'o', 2, Final}, {'e', 3, Final}, {'e', 4, Final},
	{'i', 5, Final}, {'a', 6, Final}, {'u', 7, Final}, {'o', 8, Final},
	{'n', 9, Final}, {'n', 10, Final}, {'k', 11, Final}, {'g', 12, Final},
	{'l', 13, Final},
	{'d', 2, Tone}, {'f', 3, Tone}, {'j', 4, Tone}, {'s', 5, Tone},
	{' ', 1, Tone},
}

// IBM keyboard layout.
var keymapIBM = []mapEntry{
	{'1', 1, Initial}, {'2', 2, Initial}, {'3', 3, Initial}, {'4', 4, Initial},
	{'5', 5, Initial}, {'6', 6, Initial}, {'7', 7, Initial}, {'8', 8, Initial},
	{'9', 9, Initial}, {'0', 10, Initial}, {'-', 11, Initial}, {'q', 12, Initial},
	{'w', 13, Initial}, {'e', 14, Initial}, {'r', 15, Initial}, {'t', 16, Initial},
	{'y', 17, Initial}, {'u', 18, Initial}, {'a', 19, Initial}, {'s', 20, Initial},
	{'d', 21, Initial},
	{'i', 1, Medial}, {'o', 2, Medial}, {'p', 3, Medial},
	{'z', 1, Final}, {'x', 2, Final}, {'c', 3, Final}, {'v', 4, Final},
	{'b', 5, Final}, {'n', 6, Final}, {'m', 7, Final}, {',', 8, Final},
	{'.', 9, Final}, {'/', 10, Final}, {'f', 11, Final}, {'g', 12, Final},
	{'h', 13, Final},
	{'j', 2, Tone}, {'k', 3, Tone}, {'l', 4, Tone}, {';', 5, Tone},
	{' ', 1, Tone},
}

// Hanyu Pinyin layout. Pinyin collapses several Bopomofo components onto
// the same Latin letter (s, c, i, o, n, g, r); the aliasing is inherent to
// the romanization and resolved by typing position.
var keymapPinyin = []mapEntry{
	{'b', 1, Initial}, {'p', 2, Initial}, {'m', 3, Initial}, {'f', 4, Initial},
	{'d', 5, Initial}, {'t', 6, Initial}, {'n', 7, Initial}, {'l', 8, Initial},
	{'g', 9, Initial}, {'k', 10, Initial}, {'h', 11, Initial}, {'j', 12, Initial},
	{'q', 13, Initial}, {'x', 14, Initial}, {'v', 15, Initial}, {'c', 16, Initial},
	{'s', 17, Initial}, {'r', 18, Initial}, {'z', 19, Initial}, {'c', 20, Initial},
	{'s', 21, Initial},
	{'i', 1, Medial}, {'u', 2, Medial}, {'y', 3, Medial},
	{'a', 1, Final}, {'o', 2, Final}, {'e', 3, Final}, {'e', 4, Final},
	{'i', 5, Final}, {'i', 6, Final}, {'o', 7, Final}, {'u', 8, Final},
	{'n', 9, Final}, {'n', 10, Final}, {'g', 11, Final}, {'g', 12, Final},
	{'r', 13, Final},
	{'2', 2, Tone}, {'3', 3, Tone}, {'4', 4, Tone}, {'5', 5, Tone},
	{' ', 1, Tone}, {'1', 1, Tone},
}

// Dvorak-based Zhuyin layout, remapped from the standard layout.
var keymapDvorak = []mapEntry{
	{'1', 1, Initial}, {'\'', 2, Initial}, {'a', 3, Initial}, {';', 4, Initial},
	{'2', 5, Initial}, {',', 6, Initial}, {'o', 7, Initial}, {'q', 8, Initial},
	{'.', 9, Initial}, {'e', 10, Initial}, {'j', 11, Initial}, {'p', 12, Initial},
	{'u', 13, Initial}, {'k', 14, Initial}, {'5', 15, Initial}, {'y', 16, Initial},
	{'i', 17, Initial}, {'x', 18, Initial}, {'f', 19, Initial}, {'d', 20, Initial},
	{'b', 21, Initial},
	{'g', 1, Medial}, {'h', 2, Medial}, {'m', 3, Medial},
	{'8', 1, Final}, {'c', 2, Final}, {'t', 3, Final}, {'w', 4, Final},
	{'9', 5, Final}, {'r', 6, Final}, {'n', 7, Final}, {'v', 8, Final},
	{'0', 9, Final}, {'l', 10, Final}, {'s', 11, Final}, {'z', 12, Final},
	{'[', 13, Final},
	{'3', 2, Tone}, {'4', 3, Tone}, {'6', 4, Tone}, {'7', 5, Tone},
	{' ', 1, Tone},
}

var layoutMaps = [layoutCount][]mapEntry{
	keymapStandard, keymapHsu, keymapEten, keymapEten26,
	keymapIBM, keymapPinyin, keymapDvorak,
}

// Lookup resolves a physical key to a component slot and value, first match
// in table order. ok is false when the key has no binding in this layout.
func (l Layout) Lookup(key byte) (typ, num int, ok bool) {
	if !l.Valid() {
		l = LayoutStandard
	}
	for _, e := range layoutMaps[l] {
		if e.key == key {
			return e.typ, e.num, true
		}
	}
	return 0, 0, false
}
