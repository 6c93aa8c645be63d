package scs

// SyntaxConstraint is the façade every caller drives: it
// owns exactly one outermost parser and exposes the two operations a
// decoding loop needs — committing accepted output with Advance, and
// probing candidate continuations with WouldAccept without disturbing the
// committed state.
type SyntaxConstraint struct {
	parser  IncrementalParser
	poisoned bool
}

// NewSyntaxConstraint wraps parser as a constraint's sole owned parser.
func NewSyntaxConstraint(parser IncrementalParser) *SyntaxConstraint {
	return &SyntaxConstraint{parser: parser}
}

// Advance feeds seq into the owned parser. A failure poisons the
// constraint: every subsequent Advance fails and every WouldAccept
// reports false until the caller discards it.
func (c *SyntaxConstraint) Advance(seq []Char) (bool, error) {
	if c.poisoned {
		return false, NewParseFailure(ErrTrailingInput, "constraint_poisoned", "constraint already failed and cannot accept more input")
	}
	done, err := FeedAll(c.parser, seq)
	if err != nil {
		c.poisoned = true
		return false, err
	}
	return done, nil
}

// WouldAccept clones the owned parser and speculatively feeds seq into the
// clone, reporting whether every character was accepted. An empty
// sequence is never an accepted extension.
func (c *SyntaxConstraint) WouldAccept(seq []Char) bool {
	if c.poisoned || len(seq) == 0 {
		return false
	}
	clone := c.parser.Copy()
	_, err := FeedAll(clone, seq)
	return err == nil
}

// WouldAcceptString is the common-case convenience over WouldAccept,
// feeding a candidate token's characters without EOS.
func (c *SyntaxConstraint) WouldAcceptString(s string) bool {
	return c.WouldAccept(Chars(s))
}

// ParsedText returns the committed parser's accumulated text.
func (c *SyntaxConstraint) ParsedText() string { return c.parser.ParsedText() }

// InvalidTokenGroup and ValidTokenGroup delegate to the owned parser.
func (c *SyntaxConstraint) InvalidTokenGroup() TokenGroup { return c.parser.InvalidTokenGroup() }
func (c *SyntaxConstraint) ValidTokenGroup() TokenGroup   { return c.parser.ValidTokenGroup() }

// Poisoned reports whether a prior Advance has already failed.
func (c *SyntaxConstraint) Poisoned() bool { return c.poisoned }
