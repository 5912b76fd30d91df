// Package phonetic implements the Bopomofo syllable key codec and the
// built-in phonetic keyboard layouts.
//
// A syllable is described by four components — initial, medial, final and
// tone — packed into a single 14-bit key. The packed layout and the symbol
// prefix irregularity are a hard compatibility contract with the precompiled
// dictionary files and must not change.
package phonetic

// Component slots of a syllable.
const (
	Initial = iota
	Medial
	Final
	Tone
)

// componentBits is the packed width of each component slot.
var componentBits = [4]uint{5, 2, 4, 3}

// SymbolPrefix is the reserved initial value for the symbol syllable class.
// Keys in this class carry only the medial field; final and tone are lost.
const SymbolPrefix = 24

// Components holds the four component indices of a syllable. A zero value
// in a slot means the slot is empty.
type Components [4]int

// Empty reports whether no component has been entered.
func (c Components) Empty() bool {
	return c[Initial] == 0 && c[Medial] == 0 && c[Final] == 0 && c[Tone] == 0
}

// Valid reports whether every component fits its packed bit width.
func (c Components) Valid() bool {
	for i, v := range c {
		if v < 0 || v >= 1<<componentBits[i] {
			return false
		}
	}
	return true
}

// Key is a packed 14-bit syllable key as stored in the phonetic dictionary.
type Key uint16

// EncodeKey packs the four components into a dictionary key.
//
// The symbol prefix class is handled first: when the initial equals
// SymbolPrefix the key is (prefix<<9)|medial and the final/tone fields are
// discarded. All other syllables fold the components most-significant first.
func EncodeKey(c Components) Key {
	key := Key(c[Initial])
	if key == SymbolPrefix {
		return SymbolPrefix<<9 | Key(c[Medial])
	}
	for i := 1; i < 4; i++ {
		key = Key(c[i]) | key<<componentBits[i]
	}
	return key
}

// Decode unpacks a key into its components by successive shift and mask in
// tone, final, medial, initial order. For symbol prefix keys the final and
// tone read back as zero.
func (k Key) Decode() Components {
	var c Components
	c[Tone] = int(k & 7)
	k >>= 3
	c[Final] = int(k & 0xF)
	k >>= 4
	c[Medial] = int(k & 3)
	k >>= 2
	c[Initial] = int(k)
	return c
}
