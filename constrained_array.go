package scs

// ConstrainedArrayParser parses a homogeneous JSON array whose elements all
// conform to one element schema. elementSchema is the
// schema with IsList stripped off — the array wrapper itself is what made
// the parent dispatch here.
type ConstrainedArrayParser struct {
	baseParser
	elementSchema JSONSchema
	status        containerStatus
	sub           IncrementalParser
	done          bool
}

// elementSchemaOf strips the list-ness off a schema to describe one
// element, since the array wrapper is represented structurally, not
// recursively, in this tree.
func elementSchemaOf(s JSONSchema) JSONSchema {
	switch v := s.(type) {
	case *BaseTypeSchema:
		return &BaseTypeSchema{Type: v.Type}
	case *ObjectSchema:
		return &ObjectSchema{Children: v.Children}
	}
	return s
}

// NewConstrainedArrayParser starts a parser positioned just after the
// opening `[`, bound to schema (a list-typed JSONSchema).
func NewConstrainedArrayParser(schema JSONSchema) *ConstrainedArrayParser {
	return &ConstrainedArrayParser{baseParser: baseParser{parsed: "["}, elementSchema: elementSchemaOf(schema), status: stOpened}
}

func (p *ConstrainedArrayParser) openElement(ch Char) (IncrementalParser, error) {
	if ch.IsEOS() {
		return nil, NewParseFailure(ErrUnexpectedEOS, "carray_value_eos", "unexpected end of stream awaiting an element")
	}
	r := ch.Rune()
	switch s := p.elementSchema.(type) {
	case *ObjectSchema:
		if r != '{' {
			return nil, unexpectedChar("carray_expected_object", "'{'", ch)
		}
		return NewConstrainedObjectParser(s), nil
	case *BaseTypeSchema:
		switch s.Type {
		case StringType:
			if r != '"' {
				return nil, unexpectedChar("carray_expected_string", `'"'`, ch)
			}
			return NewStringParser(), nil
		case NumberType:
			if !isDigit(r) {
				return nil, unexpectedChar("carray_expected_number", "a digit", ch)
			}
			np := NewNumberParser()
			if _, err := np.Feed(ch); err != nil {
				return nil, err
			}
			return np, nil
		}
	}
	return nil, NewParseFailure(ErrSchemaTypeMismatch, "carray_bad_schema_kind", "value does not match schema type")
}

func (p *ConstrainedArrayParser) Feed(ch Char) (bool, error) {
	if p.done {
		return false, NewParseFailure(ErrAlreadyDone, "carray_already_done", "constrained array parser already reported done")
	}
	if ch.IsEOS() {
		return false, NewParseFailure(ErrUnexpectedEOS, "carray_unexpected_eos", "unexpected end of stream inside array")
	}
	r := ch.Rune()

	switch p.status {
	case stOpened:
		if r == ']' {
			p.parsed += "]"
			p.status = stParseComplete
			p.done = true
			return true, nil
		}
		sub, err := p.openElement(ch)
		if err != nil {
			return false, err
		}
		p.sub = sub
		p.status = stInValueSubparser
		return false, nil

	case stAwaitingValue:
		sub, err := p.openElement(ch)
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
		return false, unexpectedChar("carray_bad_after_value", "',' or ']'", ch)

	default:
		return false, NewParseFailure(ErrTrailingInput, "carray_trailing_input", "array already complete")
	}
}

func (p *ConstrainedArrayParser) closeValue() (bool, error) {
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
	p.status = stFinishedValue
	return false, nil
}

func (p *ConstrainedArrayParser) Copy() IncrementalParser {
	cp := *p
	if p.sub != nil {
		cp.sub = p.sub.Copy()
	}
	return &cp
}

func (p *ConstrainedArrayParser) InvalidTokenGroup() TokenGroup {
	if p.status == stInValueSubparser && p.sub != nil {
		return p.sub.InvalidTokenGroup()
	}
	return Empty
}

func (p *ConstrainedArrayParser) ValidTokenGroup() TokenGroup { return Empty }
