package scs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVocabularyPartitionsByGroup(t *testing.T) {
	v := NewVocabulary([]string{"123", "1.2.3", "abc", `"x`, " ", ""})

	numeric := v.Filtered(Numeric)
	assert.Contains(t, numeric, 0)
	assert.Contains(t, numeric, 1, "Numeric checks only the character class; a second period is InvalidFloat's concern")

	invalidFloat := v.Filtered(InvalidFloat)
	assert.Contains(t, invalidFloat, 1)

	nonNumeric := v.Filtered(NonNumeric)
	assert.Contains(t, nonNumeric, 2)
	assert.NotContains(t, nonNumeric, 0)

	noQuote := v.Filtered(NoQuoteChar)
	assert.Contains(t, noQuote, 2)
	assert.NotContains(t, noQuote, 3)

	all := v.Filtered(All)
	assert.Len(t, all, v.Len())
}

func TestVocabularyTokenAndLen(t *testing.T) {
	v := NewVocabulary([]string{"a", "b", "c"})
	assert.Equal(t, 3, v.Len())
	assert.Equal(t, "b", v.Token(1))
}

func TestVocabularyEmptyTokenGroup(t *testing.T) {
	v := NewVocabulary([]string{"x", "", "y"})
	assert.Empty(t, v.Filtered(Empty), "Empty's filter never matches anything")
}
