package scs

// JSONParser is the outermost unschematized parser: it accepts a single
// JSON value — an object always, an array when AllowOuterList is set — and
// then only EOS.
type JSONParser struct {
	baseParser
	opts     JSONOptions
	sub      IncrementalParser
	complete bool
	done     bool
}

// NewJSONParser builds a parser ready to accept its opening character.
func NewJSONParser(opts JSONOptions) *JSONParser {
	return &JSONParser{opts: opts}
}

func (p *JSONParser) Feed(ch Char) (bool, error) {
	if p.done {
		return false, NewParseFailure(ErrAlreadyDone, "json_already_done", "outer parser already reported done")
	}
	if p.complete {
		if ch.IsEOS() {
			p.done = true
			return true, nil
		}
		return false, NewParseFailure(ErrTrailingInput, "json_trailing_input", "trailing input after complete value")
	}

	if p.sub == nil {
		if ch.IsEOS() {
			return false, NewParseFailure(ErrUnexpectedEOS, "json_empty_input", "unexpected end of stream before any value")
		}
		switch r := ch.Rune(); {
		case r == '{':
			p.sub = NewObjectParser(p.opts)
		case r == '[' && p.opts.AllowOuterList:
			p.sub = NewArrayParser(p.opts)
		default:
			return false, unexpectedChar("json_bad_open", "'{'", ch)
		}
		return false, nil
	}

	d, err := p.sub.Feed(ch)
	if err != nil {
		return false, err
	}
	if d {
		p.complete = true
	}
	return false, nil
}

func (p *JSONParser) Copy() IncrementalParser {
	cp := *p
	if p.sub != nil {
		cp.sub = p.sub.Copy()
	}
	return &cp
}

func (p *JSONParser) ParsedText() string {
	if p.sub != nil {
		return p.sub.ParsedText()
	}
	return ""
}

func (p *JSONParser) InvalidTokenGroup() TokenGroup {
	if p.sub != nil && !p.complete {
		return p.sub.InvalidTokenGroup()
	}
	return Empty
}

func (p *JSONParser) ValidTokenGroup() TokenGroup { return Empty }
