// Package phrase implements phrase-mode composition: characters chosen
// through the phonetic composer accumulate in a buffer and commit as one
// string.
package phrase

import "unicode/utf8"

// CharComposer is the per-character engine a phrase session delegates
// keystrokes to. The phonetic composer implements it; the phrase layer
// itself never performs candidate lookups.
type CharComposer interface {
	// Pending reports whether a character composition is in progress.
	Pending() bool
	// Backspace removes the most recent component of the pending
	// composition and reports whether anything was removed.
	Backspace() bool
}

// Composer accumulates selected characters into a phrase buffer.
type Composer struct {
	chars CharComposer
	buf   []byte
}

// New returns a phrase composer that routes in-progress-character edits
// to chars. A nil delegate is allowed; backspace then only edits the
// phrase buffer.
func New(chars CharComposer) *Composer {
	return &Composer{chars: chars}
}

// Append adds a selected character (or characters) to the buffer.
func (c *Composer) Append(s string) {
	c.buf = append(c.buf, s...)
}

// String returns the current buffer contents.
func (c *Composer) String() string { return string(c.buf) }

// Empty reports whether both the buffer and any delegated composition
// are empty.
func (c *Composer) Empty() bool {
	if c.chars != nil && c.chars.Pending() {
		return false
	}
	return len(c.buf) == 0
}

// Runes returns the buffer length in code points.
func (c *Composer) Runes() int {
	return utf8.RuneCount(c.buf)
}

// Backspace removes the pending phonetic component if a character is
// mid-composition, otherwise exactly one trailing code point from the
// buffer. It reports false when there was nothing to remove.
func (c *Composer) Backspace() bool {
	if c.chars != nil && c.chars.Pending() {
		return c.chars.Backspace()
	}
	if len(c.buf) == 0 {
		return false
	}
	_, n := utf8.DecodeLastRune(c.buf)
	c.buf = c.buf[:len(c.buf)-n]
	return true
}

// Commit returns the buffer and clears it. An empty buffer commits as
// the empty string.
func (c *Composer) Commit() string {
	if len(c.buf) == 0 {
		return ""
	}
	out := string(c.buf)
	c.buf = c.buf[:0]
	return out
}

// Reset discards the buffer without committing.
func (c *Composer) Reset() {
	c.buf = c.buf[:0]
}
