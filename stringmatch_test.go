package scs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringMatchParserExactMatch(t *testing.T) {
	p := NewStringMatchParser("true", false)
	done, err := FeedAll(p, WithEOS("true"))
	require.NoError(t, err)
	assert.True(t, done)
}

func TestStringMatchParserRejectsMismatch(t *testing.T) {
	p := NewStringMatchParser("true", false)
	_, err := FeedAll(p, Chars("tru"))
	require.NoError(t, err)
	_, err = p.Feed(R('x'))
	require.ErrorIs(t, err, ErrUnexpectedChar)
}

func TestStringMatchParserCaseInsensitive(t *testing.T) {
	p := NewStringMatchParser("string", true)
	done, err := FeedAll(p, WithEOS("STRING"))
	require.NoError(t, err)
	assert.True(t, done)
}

func TestStringMatchParserRejectsFeedAfterDone(t *testing.T) {
	p := NewStringMatchParser("no", false)
	done, err := FeedAll(p, Chars("no"))
	require.NoError(t, err)
	require.True(t, done)
	_, err = p.Feed(R('x'))
	require.ErrorIs(t, err, ErrAlreadyDone)
}

func TestStringMatchParserEOSToleratedAfterDone(t *testing.T) {
	p := NewStringMatchParser("no", false)
	done, err := FeedAll(p, Chars("no"))
	require.NoError(t, err)
	require.True(t, done)

	// A caller that always appends EOS to a completed candidate must not
	// be penalized for not knowing exactly when the literal finished.
	done, err = p.Feed(Char{eos: true})
	require.NoError(t, err)
	assert.True(t, done)
}

func TestStringMatchParserEOSBeforeDoneFails(t *testing.T) {
	p := NewStringMatchParser("maybe", false)
	_, err := FeedAll(p, Chars("may"))
	require.NoError(t, err)
	_, err = p.Feed(Char{eos: true})
	require.ErrorIs(t, err, ErrUnexpectedEOS)
}

func TestMultiStringMatchParserPrunesAndCompletes(t *testing.T) {
	p := NewMultiStringMatchParser([]string{"yes", "no", "maybe"}, false)
	done, err := FeedAll(p, Chars("y"))
	require.NoError(t, err)
	assert.False(t, done)

	done, err = FeedAll(p, WithEOS("es"))
	require.NoError(t, err)
	assert.True(t, done)
	assert.Equal(t, "yes", p.Matched())
}

func TestMultiStringMatchParserSharedPrefixKeepsBothRunning(t *testing.T) {
	p := NewMultiStringMatchParser([]string{"may", "maybe"}, false)
	done, err := FeedAll(p, Chars("may"))
	require.NoError(t, err)
	// "may" has already completed, but "maybe" is still a live candidate —
	// done must report true (a legal stop point) without killing "maybe".
	assert.True(t, done)
	assert.Equal(t, "may", p.Matched())

	done, err = FeedAll(p, WithEOS("be"))
	require.NoError(t, err)
	assert.True(t, done)
	assert.Equal(t, "maybe", p.Matched())
}

func TestMultiStringMatchParserExhaustion(t *testing.T) {
	p := NewMultiStringMatchParser([]string{"yes", "no"}, false)
	_, err := p.Feed(R('x'))
	require.ErrorIs(t, err, ErrNoCandidatesLeft)
}

func TestMultiStringMatchParserCopyIsIndependent(t *testing.T) {
	p := NewMultiStringMatchParser([]string{"yes", "no"}, false)
	_, err := FeedAll(p, Chars("y"))
	require.NoError(t, err)

	clone := p.Copy().(*MultiStringMatchParser)
	_, err = FeedAll(clone, WithEOS("es"))
	require.NoError(t, err)
	assert.True(t, clone.done)
	assert.False(t, p.done, "feeding the clone must not affect the original")
}
