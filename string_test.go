package scs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringParserRoundTrip(t *testing.T) {
	p := NewStringParser()
	done, err := FeedAll(p, Chars(`hello"`))
	require.NoError(t, err)
	assert.True(t, done)
	assert.Equal(t, `"hello"`, p.ParsedText())
}

func TestStringParserHandlesEscapes(t *testing.T) {
	p := NewStringParser()
	done, err := FeedAll(p, Chars(`a\"b"`))
	require.NoError(t, err)
	assert.True(t, done)
	assert.Equal(t, `"a"b"`, p.ParsedText(), "an escaped quote is appended bare, without its backslash")
}

func TestStringParserRejectsEOSMidString(t *testing.T) {
	p := NewStringParser()
	_, err := FeedAll(p, Chars("abc"))
	require.NoError(t, err)
	_, err = p.Feed(Char{eos: true})
	require.ErrorIs(t, err, ErrUnexpectedEOS)
}

func TestStringParserRejectsFeedAfterDone(t *testing.T) {
	p := NewStringParser()
	done, err := FeedAll(p, Chars(`x"`))
	require.NoError(t, err)
	require.True(t, done)
	_, err = p.Feed(R('y'))
	require.ErrorIs(t, err, ErrAlreadyDone)
}

func TestStringParserCopyIsIndependent(t *testing.T) {
	p := NewStringParser()
	_, err := FeedAll(p, Chars("ab"))
	require.NoError(t, err)

	clone := p.Copy().(*StringParser)
	_, err = clone.Feed(R('"'))
	require.NoError(t, err)

	assert.Equal(t, `"ab`, p.ParsedText())
	assert.Equal(t, `"ab"`, clone.ParsedText())
}
