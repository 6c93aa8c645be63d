package scs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberParserAcceptsPlainInteger(t *testing.T) {
	p := NewNumberParser()
	done, err := FeedAll(p, Chars("42"))
	require.NoError(t, err)
	assert.False(t, done, "a bare digit run never terminates on its own")
	assert.Equal(t, "42", p.ParsedText())

	done, err = p.Feed(R(','))
	require.NoError(t, err, "',' is a legal terminator once a value has been seen")
	assert.True(t, done)
	assert.Equal(t, Char{r: ','}, p.ClosingChar())
}

func TestNumberParserAcceptsDecimal(t *testing.T) {
	p := NewNumberParser()
	_, err := FeedAll(p, Chars("3.14"))
	require.NoError(t, err)
	done, err := p.Feed(R('}'))
	require.NoError(t, err)
	assert.True(t, done)
}

func TestNumberParserRejectsLeadingZero(t *testing.T) {
	p := NewNumberParser()
	_, err := FeedAll(p, Chars("0"))
	require.NoError(t, err)
	_, err = p.Feed(R('1'))
	require.ErrorIs(t, err, ErrLeadingZero)
}

func TestNumberParserAllowsZeroPointSomething(t *testing.T) {
	p := NewNumberParser()
	_, err := FeedAll(p, Chars("0.5"))
	require.NoError(t, err)
	done, err := p.Feed(R(']'))
	require.NoError(t, err)
	assert.True(t, done)
}

func TestNumberParserRejectsDoublePeriod(t *testing.T) {
	p := NewNumberParser()
	_, err := FeedAll(p, Chars("1.2"))
	require.NoError(t, err)
	_, err = p.Feed(R('.'))
	require.ErrorIs(t, err, ErrMisplacedPeriod)
}

func TestNumberParserRejectsTrailingPeriod(t *testing.T) {
	p := NewNumberParser()
	_, err := FeedAll(p, Chars("1."))
	require.NoError(t, err)
	_, err = p.Feed(R(','))
	require.ErrorIs(t, err, ErrIncompleteNumber)
}

func TestNumberParserRejectsEOS(t *testing.T) {
	p := NewNumberParser()
	_, err := FeedAll(p, Chars("7"))
	require.NoError(t, err)
	_, err = p.Feed(Char{eos: true})
	require.ErrorIs(t, err, ErrUnexpectedEOS, "a number has no container to hand it a terminator at EOS")
}

func TestNumberParserCopyIsIndependent(t *testing.T) {
	p := NewNumberParser()
	_, err := FeedAll(p, Chars("1"))
	require.NoError(t, err)

	clone := p.Copy().(*NumberParser)
	_, err = clone.Feed(R('2'))
	require.NoError(t, err)

	assert.Equal(t, "1", p.ParsedText(), "feeding the clone must not affect the original")
	assert.Equal(t, "12", clone.ParsedText())
}

func TestNumberParserRejectsNonDigitFirstChar(t *testing.T) {
	p := NewNumberParser()
	_, err := p.Feed(R('a'))
	var pf *ParseFailure
	require.ErrorAs(t, err, &pf)
	assert.Equal(t, "number_bad_first_char", pf.Code)
}
