package hgvs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsThreeLetterSeq(t *testing.T) {
	assert.True(t, IsThreeLetterSeq("Arg"))
	assert.True(t, IsThreeLetterSeq("ARG"))
	assert.True(t, IsThreeLetterSeq("arg"))
	assert.True(t, IsThreeLetterSeq("GlySerPro"))
	assert.True(t, IsThreeLetterSeq("Ter"))

	assert.False(t, IsThreeLetterSeq(""))
	assert.False(t, IsThreeLetterSeq("R"))
	assert.False(t, IsThreeLetterSeq("Ar"))
	assert.False(t, IsThreeLetterSeq("Zzz"))
	assert.False(t, IsThreeLetterSeq("-"))
	assert.False(t, IsThreeLetterSeq("GSP")) // single-letter run, not a 3-letter code
}

func TestToSingleLetter(t *testing.T) {
	assert.Equal(t, "R", ToSingleLetter("Arg"))
	assert.Equal(t, "C", ToSingleLetter("CYS"))
	assert.Equal(t, "GSP", ToSingleLetter("GlySerPro"))
	assert.Equal(t, "*", ToSingleLetter("Ter"))

	// Non-three-letter input passes through unchanged.
	assert.Equal(t, "R", ToSingleLetter("R"))
	assert.Equal(t, "-", ToSingleLetter("-"))
}
