package scs

// ArrayParser parses an unschematized JSON array: any comma-separated
// sequence of values, homogeneity not required. It shares
// ObjectParser's state machine minus the key states, with `[`/`]` in place
// of `{`/`}`.
type ArrayParser struct {
	baseParser
	opts   JSONOptions
	status containerStatus
	sub    IncrementalParser
	done   bool
}

// NewArrayParser starts a parser positioned just after the opening `[`.
func NewArrayParser(opts JSONOptions) *ArrayParser {
	return &ArrayParser{baseParser: baseParser{parsed: "["}, opts: opts, status: stOpened}
}

func (p *ArrayParser) Feed(ch Char) (bool, error) {
	if p.done {
		return false, NewParseFailure(ErrAlreadyDone, "array_already_done", "array parser already reported done")
	}
	if ch.IsEOS() {
		return false, NewParseFailure(ErrUnexpectedEOS, "array_unexpected_eos", "unexpected end of stream inside array")
	}
	r := ch.Rune()

	switch p.status {
	case stOpened:
		if isASCIISpace(r) {
			return p.consumeWhitespace(ch)
		}
		if r == ']' {
			if !p.opts.AllowEmpty {
				return false, NewParseFailure(ErrEmptyContainer, "array_empty_not_allowed", "empty array not permitted here")
			}
			p.parsed += "]"
			p.done = true
			return true, nil
		}
		sub, err := openValueParser(ch, p.opts)
		if err != nil {
			return false, err
		}
		p.sub = sub
		p.status = stInValueSubparser
		return false, nil

	case stAwaitingValue:
		if isASCIISpace(r) {
			return p.consumeWhitespace(ch)
		}
		sub, err := openValueParser(ch, p.opts)
		if err != nil {
			return false, err
		}
		p.sub = sub
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
			p.status = stAwaitingValue
			return false, nil
		}
		if r == ']' {
			p.parsed += "]"
			p.status = stParseComplete
			p.done = true
			return true, nil
		}
		return false, unexpectedChar("array_bad_after_value", `',' or ']'`, ch)

	default:
		return false, NewParseFailure(ErrTrailingInput, "array_trailing_input", "array already complete")
	}
}

func (p *ArrayParser) consumeWhitespace(ch Char) (bool, error) {
	if !p.opts.AllowWhitespaceFormatting {
		return false, NewParseFailure(ErrWhitespace, "array_whitespace_not_allowed", "whitespace not permitted here")
	}
	p.parsed += string(ch.Rune())
	return false, nil
}

func (p *ArrayParser) closeValue() (bool, error) {
	sub := p.sub
	p.sub = nil

	next, appended, ok, err := numberClose(sub, true)
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
		// The number ended on whitespace, which belongs to this array.
		if _, err := p.consumeWhitespace(np.ClosingChar()); err != nil {
			return false, err
		}
	}
	p.status = stFinishedValue
	return false, nil
}

func (p *ArrayParser) Copy() IncrementalParser {
	cp := *p
	if p.sub != nil {
		cp.sub = p.sub.Copy()
	}
	return &cp
}

func (p *ArrayParser) InvalidTokenGroup() TokenGroup {
	if p.status == stInValueSubparser && p.sub != nil {
		return p.sub.InvalidTokenGroup()
	}
	return Empty
}

func (p *ArrayParser) ValidTokenGroup() TokenGroup { return Empty }
