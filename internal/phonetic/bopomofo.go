package phonetic

// Display glyphs for each component slot, indexed by component value.
// Index 0 is the empty slot. The trailing initial entries are the symbol
// class lead-in characters.
var (
	bopomofoInitials = []string{
		"", "ㄅ", "ㄆ", "ㄇ", "ㄈ", "ㄉ", "ㄊ", "ㄋ", "ㄌ",
		"ㄍ", "ㄎ", "ㄏ", "ㄐ", "ㄑ", "ㄒ", "ㄓ", "ㄔ",
		"ㄕ", "ㄖ", "ㄗ", "ㄘ", "ㄙ", "[", "]", "`",
	}

	bopomofoMedials = []string{"", "ㄧ", "ㄨ", "ㄩ"}

	bopomofoFinals = []string{
		"", "ㄚ", "ㄛ", "ㄜ", "ㄝ", "ㄞ", "ㄟ", "ㄠ", "ㄡ",
		"ㄢ", "ㄣ", "ㄤ", "ㄥ", "ㄦ",
	}

	// Tone 1 has no mark.
	bopomofoTones = []string{"", "", "ˊ", "ˇ", "ˋ", "˙"}
)

// Display renders the components as a Bopomofo string for the preedit area.
func (c Components) Display() string {
	var s string
	if v := c[Initial]; v > 0 && v < len(bopomofoInitials) {
		s += bopomofoInitials[v]
	}
	if v := c[Medial]; v > 0 && v < len(bopomofoMedials) {
		s += bopomofoMedials[v]
	}
	if v := c[Final]; v > 0 && v < len(bopomofoFinals) {
		s += bopomofoFinals[v]
	}
	if v := c[Tone]; v > 0 && v < len(bopomofoTones) {
		s += bopomofoTones[v]
	}
	return s
}
