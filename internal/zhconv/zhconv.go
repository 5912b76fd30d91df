// Package zhconv converts between simplified and traditional Chinese
// characters using a per-character table. Multi-character idiom mapping
// is out of scope; characters without a table entry pass through.
package zhconv

// Variant selects which script committed text is converted to.
type Variant int

const (
	Traditional Variant = iota
	Simplified
)

func (v Variant) String() string {
	if v == Simplified {
		return "simplified"
	}
	return "traditional"
}

var t2s = make(map[rune]rune, len(s2t))

func init() {
	for s, t := range s2t {
		// First mapping wins where several simplified characters
		// merged into one traditional form.
		if _, ok := t2s[t]; !ok {
			t2s[t] = s
		}
	}
}

// ToTraditional converts simplified characters in s to traditional.
func ToTraditional(s string) string {
	return convert(s, s2t)
}

// ToSimplified converts traditional characters in s to simplified.
func ToSimplified(s string) string {
	return convert(s, t2s)
}

// Convert rewrites s into the requested variant. Table candidates are
// traditional, so Traditional is the identity direction here; the
// simplified direction applies the reverse table.
func Convert(s string, v Variant) string {
	if v == Simplified {
		return ToSimplified(s)
	}
	return ToTraditional(s)
}

func convert(s string, table map[rune]rune) string {
	out := make([]rune, 0, len(s)/3+1)
	changed := false
	for _, r := range s {
		if c, ok := table[r]; ok {
			out = append(out, c)
			changed = true
		} else {
			out = append(out, r)
		}
	}
	if !changed {
		return s
	}
	return string(out)
}
