package scs

// ObjectParser parses an unschematized JSON object: any well-formed
// `"key": value` sequence, with no constraint on which keys appear or how
// many times.
type ObjectParser struct {
	baseParser
	opts    JSONOptions
	status  containerStatus
	sub     IncrementalParser
	inKey   bool
	curKey  string
	done    bool
}

// NewObjectParser starts a parser positioned just after the opening `{`.
func NewObjectParser(opts JSONOptions) *ObjectParser {
	return &ObjectParser{baseParser: baseParser{parsed: "{"}, opts: opts, status: stOpened}
}

func (p *ObjectParser) Feed(ch Char) (bool, error) {
	if p.done {
		return false, NewParseFailure(ErrAlreadyDone, "object_already_done", "object parser already reported done")
	}
	if ch.IsEOS() {
		return false, NewParseFailure(ErrUnexpectedEOS, "object_unexpected_eos", "unexpected end of stream inside object")
	}
	r := ch.Rune()

	switch p.status {
	case stOpened:
		if isASCIISpace(r) {
			return p.consumeWhitespace(ch)
		}
		if r == '}' {
			if !p.opts.AllowEmpty {
				return false, NewParseFailure(ErrEmptyContainer, "object_empty_not_allowed", "empty object not permitted here")
			}
			p.parsed += "}"
			p.done = true
			return true, nil
		}
		if r == '"' {
			p.sub = NewStringParser()
			p.inKey = true
			p.status = stInKeySubparser
			return false, nil
		}
		return false, unexpectedChar("object_bad_open", `'}' or '"'`, ch)

	case stAwaitingKey:
		if isASCIISpace(r) {
			return p.consumeWhitespace(ch)
		}
		if r == '"' {
			p.sub = NewStringParser()
			p.inKey = true
			p.status = stInKeySubparser
			return false, nil
		}
		return false, unexpectedChar("object_bad_key_start", `'"'`, ch)

	case stInKeySubparser:
		d, err := p.sub.Feed(ch)
		if err != nil {
			return false, err
		}
		if d {
			p.curKey = p.sub.ParsedText()
			p.parsed += p.curKey
			p.sub = nil
			p.status = stFinishedKey
		}
		return false, nil

	case stFinishedKey:
		if isASCIISpace(r) {
			return p.consumeWhitespace(ch)
		}
		if r == ':' {
			p.parsed += ":"
			p.status = stAwaitingValue
			return false, nil
		}
		return false, unexpectedChar("object_bad_after_key", `':'`, ch)

	case stAwaitingValue:
		if isASCIISpace(r) {
			return p.consumeWhitespace(ch)
		}
		sub, err := openValueParser(ch, p.opts)
		if err != nil {
			return false, err
		}
		p.sub = sub
		p.inKey = false
		p.status = stInValueSubparser
		return false, nil

	case stInValueSubparser:
		d, err := p.sub.Feed(ch)
		if err != nil {
			return false, err
		}
		if d {
			return p.closeValue()
		}
		return false, nil

	case stFinishedValue:
		if isASCIISpace(r) {
			return p.consumeWhitespace(ch)
		}
		if r == ',' {
			p.parsed += ","
			p.status = stAwaitingKey
			return false, nil
		}
		if r == '}' {
			p.parsed += "}"
			p.status = stParseComplete
			p.done = true
			return true, nil
		}
		return false, unexpectedChar("object_bad_after_value", `',' or '}'`, ch)

	default:
		return false, NewParseFailure(ErrTrailingInput, "object_trailing_input", "object already complete")
	}
}

func (p *ObjectParser) consumeWhitespace(ch Char) (bool, error) {
	if !p.opts.AllowWhitespaceFormatting {
		return false, NewParseFailure(ErrWhitespace, "object_whitespace_not_allowed", "whitespace not permitted here")
	}
	p.parsed += string(ch.Rune())
	return false, nil
}

// closeValue applies the number-close special case, falling back to the
// generic FINISHED_KEY/FINISHED_VALUE transition otherwise.
func (p *ObjectParser) closeValue() (bool, error) {
	wasKey := p.inKey
	sub := p.sub
	p.sub = nil
	p.inKey = false

	next, appended, ok, err := numberClose(sub, false)
	if err != nil {
		return false, err
	}
	if ok {
		p.parsed += sub.ParsedText() + appended
		p.status = next
		if next == stParseComplete {
			p.done = true
			return true, nil
		}
		return false, nil
	}

	p.parsed += sub.ParsedText()
	if np, isNumber := sub.(*NumberParser); isNumber {
		// The number ended on whitespace, which belongs to this object.
		if _, err := p.consumeWhitespace(np.ClosingChar()); err != nil {
			return false, err
		}
	}
	if wasKey {
		p.status = stFinishedKey
	} else {
		p.status = stFinishedValue
	}
	return false, nil
}

func (p *ObjectParser) Copy() IncrementalParser {
	cp := *p
	if p.sub != nil {
		cp.sub = p.sub.Copy()
	}
	return &cp
}

func (p *ObjectParser) InvalidTokenGroup() TokenGroup {
	if p.status == stInValueSubparser || p.status == stInKeySubparser {
		if p.sub != nil {
			return p.sub.InvalidTokenGroup()
		}
	}
	return Empty
}

func (p *ObjectParser) ValidTokenGroup() TokenGroup { return Empty }
