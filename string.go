package scs

// StringParser parses a JSON-style double-quoted string one character at a
// time. Its parsed text is seeded with the opening quote
// the parent already consumed to open it.
type StringParser struct {
	baseParser
	escapeNext bool
	done       bool
}

// NewStringParser starts a StringParser whose opening `"` has already been
// seen by the caller.
func NewStringParser() *StringParser {
	return &StringParser{baseParser: baseParser{parsed: `"`}}
}

func (p *StringParser) Feed(ch Char) (bool, error) {
	if p.done {
		return false, NewParseFailure(ErrAlreadyDone, "string_already_done", "string parser already reported done")
	}
	if ch.IsEOS() {
		return false, NewParseFailure(ErrUnexpectedEOS, "string_unexpected_eos", "unexpected end of stream inside string")
	}
	r := ch.Rune()

	if p.escapeNext {
		p.parsed += string(r)
		p.escapeNext = false
		return false, nil
	}
	if r == '"' {
		p.parsed += `"`
		p.done = true
		return true, nil
	}
	if r == '\\' {
		// The backslash itself is not appended; only the escaped character is.
		p.escapeNext = true
		return false, nil
	}
	p.parsed += string(r)
	return false, nil
}

func (p *StringParser) Copy() IncrementalParser {
	cp := *p
	return &cp
}

func (p *StringParser) InvalidTokenGroup() TokenGroup { return Empty }

func (p *StringParser) ValidTokenGroup() TokenGroup { return Empty }
