package zhconv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToTraditional(t *testing.T) {
	assert.Equal(t, "繁體中文", ToTraditional("繁体中文"))
	assert.Equal(t, "東西", ToTraditional("东西"))
	// Characters outside the table pass through untouched.
	assert.Equal(t, "hello 東", ToTraditional("hello 东"))
}

func TestToSimplified(t *testing.T) {
	assert.Equal(t, "东西", ToSimplified("東西"))
	assert.Equal(t, "学习", ToSimplified("學習"))
}

func TestRoundTrip(t *testing.T) {
	in := "汉字转换"
	assert.Equal(t, in, ToSimplified(ToTraditional(in)))
}

func TestConvertVariant(t *testing.T) {
	assert.Equal(t, "東", Convert("东", Traditional))
	assert.Equal(t, "东", Convert("東", Simplified))
	assert.Equal(t, "traditional", Traditional.String())
	assert.Equal(t, "simplified", Simplified.String())
}

func TestUnmappedStringsReturnedAsIs(t *testing.T) {
	in := "plain ascii"
	assert.Equal(t, in, ToTraditional(in))
	assert.Equal(t, in, ToSimplified(in))
}
