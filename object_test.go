package scs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectParserRoundTripSimple(t *testing.T) {
	p := NewObjectParser(JSONOptions{})
	done, err := FeedAll(p, Chars(`"name":"John"}`))
	require.NoError(t, err)
	assert.True(t, done)
	assert.Equal(t, `{"name":"John"}`, p.ParsedText())
}

func TestObjectParserRoundTripMultipleKeys(t *testing.T) {
	p := NewObjectParser(JSONOptions{})
	done, err := FeedAll(p, Chars(`"a":1,"b":2}`))
	require.NoError(t, err)
	assert.True(t, done)
	assert.Equal(t, `{"a":1,"b":2}`, p.ParsedText())
}

func TestObjectParserRejectsEmptyByDefault(t *testing.T) {
	p := NewObjectParser(JSONOptions{})
	_, err := p.Feed(R('}'))
	require.ErrorIs(t, err, ErrEmptyContainer)
}

func TestObjectParserAllowsEmptyWhenOptedIn(t *testing.T) {
	p := NewObjectParser(JSONOptions{AllowEmpty: true})
	done, err := p.Feed(R('}'))
	require.NoError(t, err)
	assert.True(t, done)
	assert.Equal(t, "{}", p.ParsedText())
}

func TestObjectParserRejectsWhitespaceByDefault(t *testing.T) {
	p := NewObjectParser(JSONOptions{})
	_, err := p.Feed(R(' '))
	require.ErrorIs(t, err, ErrWhitespace)
}

func TestObjectParserAllowsWhitespaceWhenOptedIn(t *testing.T) {
	p := NewObjectParser(JSONOptions{AllowWhitespaceFormatting: true})
	done, err := FeedAll(p, Chars(` "k" : 1 }`))
	require.NoError(t, err)
	assert.True(t, done)
}

func TestObjectParserNumberCloseIsSpecialCased(t *testing.T) {
	p := NewObjectParser(JSONOptions{})
	done, err := FeedAll(p, Chars(`"n":42}`))
	require.NoError(t, err)
	assert.True(t, done)
	assert.Equal(t, `{"n":42}`, p.ParsedText())
}

func TestObjectParserRejectsFeedAfterDone(t *testing.T) {
	p := NewObjectParser(JSONOptions{})
	done, err := FeedAll(p, Chars(`"a":1}`))
	require.NoError(t, err)
	require.True(t, done)
	_, err = p.Feed(R('x'))
	require.ErrorIs(t, err, ErrAlreadyDone)
}

func TestObjectParserCopyIsIndependent(t *testing.T) {
	p := NewObjectParser(JSONOptions{})
	_, err := FeedAll(p, Chars(`"a":1`))
	require.NoError(t, err)

	clone := p.Copy().(*ObjectParser)
	done, err := clone.Feed(R('}'))
	require.NoError(t, err)
	assert.True(t, done)

	_, err = p.Feed(R(','))
	require.NoError(t, err, "original must still be live and independently progressable")
}

func TestObjectParserNestedValue(t *testing.T) {
	p := NewObjectParser(JSONOptions{})
	done, err := FeedAll(p, Chars(`"outer":{"inner":"v"}}`))
	require.NoError(t, err)
	assert.True(t, done)
	assert.Equal(t, `{"outer":{"inner":"v"}}`, p.ParsedText())
}
