// Package codepoint implements direct character entry by hexadecimal
// code, either as a Unicode scalar value or as a Big5 code.
package codepoint

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/traditionalchinese"
)

// Mode selects how an entered hex code is interpreted.
type Mode int

const (
	ModeUnicode Mode = iota
	ModeBig5
)

func (m Mode) String() string {
	if m == ModeBig5 {
		return "big5"
	}
	return "unicode"
}

// MaxDigits is how many hex digits a code in this mode can have. Big5
// codes are two bytes; Unicode scalars fit in six digits.
func (m Mode) MaxDigits() int {
	if m == ModeBig5 {
		return 4
	}
	return 6
}

// ErrInvalidCode reports a hex string that does not name a character.
var ErrInvalidCode = errors.New("codepoint: invalid code")

// Status describes what a keystroke did to the composer.
type Status int

const (
	Ignored Status = iota
	Absorbed
	Preedit
	Committed
)

// Composer accumulates hex digits and produces the named character.
// The zero value is a Unicode-mode composer with an empty buffer.
type Composer struct {
	mode   Mode
	exact  bool
	digits []byte
}

// SetMode switches interpretation and clears the buffer.
func (c *Composer) SetMode(m Mode) {
	c.mode = m
	c.digits = c.digits[:0]
}

// Mode returns the current interpretation.
func (c *Composer) Mode() Mode { return c.mode }

// SetExact switches Big5 handling from the level-1 approximation to real
// charset decoding.
func (c *Composer) SetExact(exact bool) { c.exact = exact }

// Len returns the number of buffered digits.
func (c *Composer) Len() int { return len(c.digits) }

// Reset discards the buffered digits.
func (c *Composer) Reset() { c.digits = c.digits[:0] }

// Preedit renders the buffered digits, or "" when the buffer is empty.
func (c *Composer) Preedit() string {
	if len(c.digits) == 0 {
		return ""
	}
	return "U+" + string(c.digits)
}

// Push feeds one keystroke. Hex digits accumulate (stored uppercase) and
// the code auto-commits when it reaches the mode's digit limit; anything
// else is ignored so the caller can treat it as ordinary input.
func (c *Composer) Push(key byte) (string, Status) {
	switch {
	case key >= '0' && key <= '9', key >= 'A' && key <= 'F':
	case key >= 'a' && key <= 'f':
		key -= 'a' - 'A'
	default:
		return "", Ignored
	}

	max := c.mode.MaxDigits()
	if len(c.digits) >= max {
		return "", Absorbed
	}
	c.digits = append(c.digits, key)
	if len(c.digits) < max {
		return "", Preedit
	}
	text, err := Convert(c.mode, c.exact, string(c.digits))
	if err != nil {
		// Full-width but unconvertible; leave the buffer for the user
		// to correct.
		return "", Preedit
	}
	c.digits = c.digits[:0]
	return text, Committed
}

// Backspace drops the last digit. It reports false when the buffer was
// already empty.
func (c *Composer) Backspace() bool {
	if len(c.digits) == 0 {
		return false
	}
	c.digits = c.digits[:len(c.digits)-1]
	return true
}

// Flush converts whatever is buffered, as Enter does. ok is false when
// the buffer is empty or does not name a character; the buffer is
// cleared only on success.
func (c *Composer) Flush() (string, bool) {
	if len(c.digits) == 0 {
		return "", false
	}
	text, err := Convert(c.mode, c.exact, string(c.digits))
	if err != nil {
		return "", false
	}
	c.digits = c.digits[:0]
	return text, true
}

// Convert turns a hex code into the character it names. In Big5 mode the
// default is an approximate mapping of the level-1 block onto the CJK
// range starting at U+4E00; exact mode decodes through the real charset
// table instead.
func Convert(mode Mode, exact bool, hex string) (string, error) {
	if hex == "" || len(hex) > mode.MaxDigits() {
		return "", fmt.Errorf("%w: %q", ErrInvalidCode, hex)
	}
	code, err := strconv.ParseUint(hex, 16, 32)
	if err != nil || code == 0 {
		return "", fmt.Errorf("%w: %q", ErrInvalidCode, hex)
	}

	var r rune
	switch {
	case mode == ModeBig5 && exact:
		return convertBig5Exact(uint16(code))
	case mode == ModeBig5:
		r = approxBig5(uint16(code))
	default:
		r = rune(code)
	}
	if !utf8.ValidRune(r) {
		return "", fmt.Errorf("%w: %q", ErrInvalidCode, hex)
	}
	return string(r), nil
}

// approxBig5 maps the Big5 level-1 block onto consecutive CJK
// codepoints; codes outside the block pass through numerically.
func approxBig5(code uint16) rune {
	if code >= 0xA440 && code <= 0xC67E {
		return 0x4E00 + rune(code-0xA440)
	}
	return rune(code)
}

func convertBig5Exact(code uint16) (string, error) {
	raw := []byte{byte(code >> 8), byte(code)}
	out, err := traditionalchinese.Big5.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("%w: big5 %04X", ErrInvalidCode, code)
	}
	s := string(out)
	if s == "" || strings.ContainsRune(s, utf8.RuneError) {
		return "", fmt.Errorf("%w: big5 %04X", ErrInvalidCode, code)
	}
	return s, nil
}
