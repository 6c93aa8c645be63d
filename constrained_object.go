package scs

// ConstrainedObjectParser parses a JSON object whose keys, value types, and
// required/optional status are all fixed by an ObjectSchema. Key text is recognized with a MultiStringMatchParser seeded from
// every key this object still owes, which both validates that a key is
// legal and that it hasn't already been consumed once.
type ConstrainedObjectParser struct {
	baseParser
	schema            *ObjectSchema
	remainingRequired stringSet
	remainingOptional stringSet
	currentKey        string
	status            containerStatus
	sub               IncrementalParser
	done              bool
}

// NewConstrainedObjectParser starts a parser positioned just after the
// opening `{`, bound to schema.
func NewConstrainedObjectParser(schema *ObjectSchema) *ConstrainedObjectParser {
	return &ConstrainedObjectParser{
		baseParser:        baseParser{parsed: "{"},
		schema:            schema,
		remainingRequired: newStringSet(schema.RequiredKeys()),
		remainingOptional: newStringSet(schema.OptionalKeys()),
		status:            stOpened,
	}
}

func (p *ConstrainedObjectParser) remainingKeys() []string {
	out := append([]string{}, p.remainingRequired.toSlice()...)
	out = append(out, p.remainingOptional.toSlice()...)
	return out
}

func (p *ConstrainedObjectParser) Feed(ch Char) (bool, error) {
	if p.done {
		return false, NewParseFailure(ErrAlreadyDone, "cobject_already_done", "constrained object parser already reported done")
	}
	if ch.IsEOS() {
		return false, NewParseFailure(ErrUnexpectedEOS, "cobject_unexpected_eos", "unexpected end of stream inside object")
	}
	r := ch.Rune()

	switch p.status {
	case stOpened:
		if r == '}' {
			if len(p.remainingRequired) != 0 {
				return false, missingRequiredError(p.remainingRequired)
			}
			p.parsed += "}"
			p.status = stParseComplete
			p.done = true
			return true, nil
		}
		if r == '"' {
			p.parsed += `"`
			p.sub = NewMultiStringMatchParser(p.remainingKeys(), false)
			p.status = stInKeySubparser
			return false, nil
		}
		return false, unexpectedChar("cobject_bad_open", `'}' or '"'`, ch)

	case stAwaitingKey:
		if r == '"' {
			p.parsed += `"`
			p.sub = NewMultiStringMatchParser(p.remainingKeys(), false)
			p.status = stInKeySubparser
			return false, nil
		}
		return false, unexpectedChar("cobject_bad_key_start", `'"'`, ch)

	case stInKeySubparser:
		d, err := p.sub.Feed(ch)
		if err != nil {
			return false, NewParseFailure(ErrUnknownKey, "cobject_unknown_key", "key not declared by schema, or already seen")
		}
		if d {
			p.currentKey = p.sub.(*MultiStringMatchParser).Matched()
			p.parsed += p.currentKey
			p.sub = nil
			p.status = stAwaitingKeyClose
		}
		return false, nil

	case stAwaitingKeyClose:
		if r == '"' {
			p.parsed += `"`
			p.status = stFinishedKey
			return false, nil
		}
		return false, unexpectedChar("cobject_bad_key_close", `'"'`, ch)

	case stFinishedKey:
		if r == ':' {
			p.parsed += ":"
			p.status = stAwaitingValue
			return false, nil
		}
		return false, unexpectedChar("cobject_bad_after_key", `':'`, ch)

	case stAwaitingValue:
		sub, err := p.openValue(ch)
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
			if len(p.remainingRequired)+len(p.remainingOptional) == 0 {
				return false, unexpectedChar("cobject_no_keys_remain", "'}'", ch)
			}
			p.parsed += ","
			p.status = stAwaitingKey
			return false, nil
		}
		if r == '}' {
			if len(p.remainingRequired) != 0 {
				return false, missingRequiredError(p.remainingRequired)
			}
			p.parsed += "}"
			p.status = stParseComplete
			p.done = true
			return true, nil
		}
		return false, unexpectedChar("cobject_bad_after_value", `',' or '}'`, ch)

	default:
		return false, NewParseFailure(ErrTrailingInput, "cobject_trailing_input", "object already complete")
	}
}

// openValue dispatches the opening character of current_key's value
// according to its declared schema.
func (p *ConstrainedObjectParser) openValue(ch Char) (IncrementalParser, error) {
	childSchema := p.schema.ChildSchema(p.currentKey)
	if childSchema == nil {
		return nil, NewParseFailure(ErrSchemaTypeMismatch, "cobject_no_schema_for_key", "internal: no schema recorded for key")
	}
	if ch.IsEOS() {
		return nil, NewParseFailure(ErrUnexpectedEOS, "cobject_value_eos", "unexpected end of stream awaiting a value")
	}
	r := ch.Rune()

	if childSchema.IsList() {
		if r != '[' {
			return nil, unexpectedChar("cobject_expected_array", "'['", ch)
		}
		return NewConstrainedArrayParser(childSchema), nil
	}
	switch s := childSchema.(type) {
	case *ObjectSchema:
		if r != '{' {
			return nil, unexpectedChar("cobject_expected_object", "'{'", ch)
		}
		return NewConstrainedObjectParser(s), nil
	case *BaseTypeSchema:
		switch s.Type {
		case StringType:
			if r != '"' {
				return nil, unexpectedChar("cobject_expected_string", `'"'`, ch)
			}
			return NewStringParser(), nil
		case NumberType:
			if !isDigit(r) {
				return nil, unexpectedChar("cobject_expected_number", "a digit", ch)
			}
			np := NewNumberParser()
			if _, err := np.Feed(ch); err != nil {
				return nil, err
			}
			return np, nil
		}
	}
	return nil, NewParseFailure(ErrSchemaTypeMismatch, "cobject_bad_schema_kind", "value does not match schema type")
}

// closeValue removes current_key from the remaining-keys bookkeeping and
// applies the number-close special case.
func (p *ConstrainedObjectParser) closeValue() (bool, error) {
	sub := p.sub
	p.sub = nil

	if p.remainingRequired.has(p.currentKey) {
		p.remainingRequired.remove(p.currentKey)
	} else {
		p.remainingOptional.remove(p.currentKey)
	}

	next, appended, ok, err := numberClose(sub, false)
	if err != nil {
		return false, err
	}
	if ok && next == stParseComplete && len(p.remainingRequired) != 0 {
		return false, missingRequiredError(p.remainingRequired)
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

func (p *ConstrainedObjectParser) Copy() IncrementalParser {
	cp := *p
	cp.remainingRequired = p.remainingRequired.clone()
	cp.remainingOptional = p.remainingOptional.clone()
	if p.sub != nil {
		cp.sub = p.sub.Copy()
	}
	return &cp
}

func (p *ConstrainedObjectParser) InvalidTokenGroup() TokenGroup {
	if (p.status == stInValueSubparser || p.status == stInKeySubparser) && p.sub != nil {
		return p.sub.InvalidTokenGroup()
	}
	return Empty
}

func (p *ConstrainedObjectParser) ValidTokenGroup() TokenGroup { return Empty }
