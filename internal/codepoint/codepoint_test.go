package codepoint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertUnicode(t *testing.T) {
	got, err := Convert(ModeUnicode, false, "4E2D")
	require.NoError(t, err)
	assert.Equal(t, "中", got)

	got, err = Convert(ModeUnicode, false, "1f600")
	require.NoError(t, err)
	assert.Equal(t, "😀", got)
}

func TestConvertRejectsBadCodes(t *testing.T) {
	for _, hex := range []string{"", "xyz", "0", "0000", "1234567", "D800"} {
		_, err := Convert(ModeUnicode, false, hex)
		assert.ErrorIs(t, err, ErrInvalidCode, "hex %q", hex)
	}
}

func TestConvertBig5Approximate(t *testing.T) {
	// First code of the level-1 block lands on U+4E00.
	got, err := Convert(ModeBig5, false, "A440")
	require.NoError(t, err)
	assert.Equal(t, "一", got)

	got, err = Convert(ModeBig5, false, "A441")
	require.NoError(t, err)
	assert.Equal(t, string(rune(0x4E01)), got)

	// Outside the block the code passes through numerically.
	got, err = Convert(ModeBig5, false, "4E2D")
	require.NoError(t, err)
	assert.Equal(t, "中", got)
}

func TestConvertBig5Exact(t *testing.T) {
	// 0xA440 really is 一 in Big5; the approximation happens to agree
	// at the block start but diverges later.
	got, err := Convert(ModeBig5, true, "A440")
	require.NoError(t, err)
	assert.Equal(t, "一", got)

	_, err = Convert(ModeBig5, true, "A1FF")
	assert.ErrorIs(t, err, ErrInvalidCode)
}

func TestComposerAutoCommit(t *testing.T) {
	var c Composer

	for i, key := range []byte{'0', '1', 'f', '6', '0'} {
		text, st := c.Push(key)
		assert.Equal(t, Preedit, st, "digit %d", i)
		assert.Empty(t, text)
	}
	assert.Equal(t, "U+01F60", c.Preedit())

	// Unicode mode commits at six digits.
	text, st := c.Push('0')
	assert.Equal(t, Committed, st)
	assert.Equal(t, "😀", text)
	assert.Zero(t, c.Len())
	assert.Empty(t, c.Preedit())
}

func TestComposerBig5CommitsAtFourDigits(t *testing.T) {
	var c Composer
	c.SetMode(ModeBig5)

	for _, key := range []byte{'a', '4', '4'} {
		_, st := c.Push(key)
		require.Equal(t, Preedit, st)
	}
	text, st := c.Push('0')
	assert.Equal(t, Committed, st)
	assert.Equal(t, "一", text)
}

func TestComposerDigitsStoredUppercase(t *testing.T) {
	var c Composer
	c.Push('a')
	c.Push('B')
	assert.Equal(t, "U+AB", c.Preedit())
}

func TestComposerIgnoresNonHex(t *testing.T) {
	var c Composer
	_, st := c.Push('g')
	assert.Equal(t, Ignored, st)
	_, st = c.Push(' ')
	assert.Equal(t, Ignored, st)
	assert.Zero(t, c.Len())
}

func TestComposerInvalidAtLimitStaysPreedit(t *testing.T) {
	var c Composer
	c.SetMode(ModeBig5)
	// 0000 parses but names nothing; the buffer stays for correction.
	for _, key := range []byte("000") {
		c.Push(key)
	}
	text, st := c.Push('0')
	assert.Equal(t, Preedit, st)
	assert.Empty(t, text)
	assert.Equal(t, 4, c.Len())

	// Full buffer absorbs further digits.
	_, st = c.Push('1')
	assert.Equal(t, Absorbed, st)
}

func TestComposerBackspace(t *testing.T) {
	var c Composer
	assert.False(t, c.Backspace())
	c.Push('4')
	c.Push('e')
	require.True(t, c.Backspace())
	assert.Equal(t, "U+4", c.Preedit())
	require.True(t, c.Backspace())
	assert.Empty(t, c.Preedit())
	assert.False(t, c.Backspace())
}

func TestComposerFlush(t *testing.T) {
	var c Composer
	_, ok := c.Flush()
	assert.False(t, ok)

	c.Push('4')
	c.Push('e')
	c.Push('2')
	c.Push('d')
	text, ok := c.Flush()
	require.True(t, ok)
	assert.Equal(t, "中", text)
	assert.Zero(t, c.Len())
}

func TestSetModeClearsBuffer(t *testing.T) {
	var c Composer
	c.Push('4')
	c.SetMode(ModeBig5)
	assert.Zero(t, c.Len())
	assert.Equal(t, ModeBig5, c.Mode())
}
