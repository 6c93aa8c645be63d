package scs

// ConstrainedJSONParser is the outermost schema-constrained parser: it
// opens `[` when the top-level schema is list-typed, else `{`, and then
// delegates entirely to a ConstrainedArrayParser or
// ConstrainedObjectParser. Like the unschematized outer JSONParser, once
// its single value is complete it accepts only EOS.
type ConstrainedJSONParser struct {
	schema   JSONSchema
	sub      IncrementalParser
	complete bool
	done     bool
}

// NewConstrainedJSONParser builds a parser ready to accept its opening
// character, bound to schema.
func NewConstrainedJSONParser(schema JSONSchema) *ConstrainedJSONParser {
	return &ConstrainedJSONParser{schema: schema}
}

func (p *ConstrainedJSONParser) Feed(ch Char) (bool, error) {
	if p.done {
		return false, NewParseFailure(ErrAlreadyDone, "cjson_already_done", "outer parser already reported done")
	}
	if p.complete {
		if ch.IsEOS() {
			p.done = true
			return true, nil
		}
		return false, NewParseFailure(ErrTrailingInput, "cjson_trailing_input", "trailing input after complete value")
	}

	if p.sub == nil {
		if ch.IsEOS() {
			return false, NewParseFailure(ErrUnexpectedEOS, "cjson_empty_input", "unexpected end of stream before any value")
		}
		r := ch.Rune()
		if p.schema.IsList() {
			if r != '[' {
				return false, unexpectedChar("cjson_bad_open", "'['", ch)
			}
			p.sub = NewConstrainedArrayParser(p.schema)
			return false, nil
		}
		// A non-list top level must be an ObjectSchema: the grammar's outer
		// dispatch only frames `{`/`}` or `[`/`]`, and a bare scalar has no
		// terminating character of its own to close on at the top level
		// (NumberParser, unlike StringParser, never reports done on EOS).
		s, ok := p.schema.(*ObjectSchema)
		if !ok {
			return false, NewParseFailure(ErrSchemaTypeMismatch, "cjson_unsupported_root", "a non-list top-level schema must be an object")
		}
		if r != '{' {
			return false, unexpectedChar("cjson_bad_open", "'{'", ch)
		}
		p.sub = NewConstrainedObjectParser(s)
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

func (p *ConstrainedJSONParser) Copy() IncrementalParser {
	cp := *p
	if p.sub != nil {
		cp.sub = p.sub.Copy()
	}
	return &cp
}

func (p *ConstrainedJSONParser) ParsedText() string {
	if p.sub != nil {
		return p.sub.ParsedText()
	}
	return ""
}

func (p *ConstrainedJSONParser) InvalidTokenGroup() TokenGroup {
	if p.sub != nil && !p.complete {
		return p.sub.InvalidTokenGroup()
	}
	return Empty
}

func (p *ConstrainedJSONParser) ValidTokenGroup() TokenGroup { return Empty }
