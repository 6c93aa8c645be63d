package scs

// schemaDSLStatus drives ObjectSchemaParser. It carries two
// extra positions beyond the grammar's named states — one while a property
// name is mid-accumulation, one while whitespace separates a finished name
// from its `?`/`:` decision — needed because PropNameParser's "greedy
// consume, re-offer the terminator" behavior doesn't fit cleanly into a
// single IncrementalParser subparser.
type schemaDSLStatus int

const (
	sdOpened schemaDSLStatus = iota
	sdAwaitingKey
	sdInNameBuffer
	sdAfterName
	sdFinishedKey
	sdAwaitingValue
	sdAwaitingObject
	sdInArrayCtrlSeq
	sdInValueSubparser
	sdFinishedValue
	sdParseComplete
)

// ObjectSchemaParser parses one `{...}` schema-description object into an
// *ObjectSchema. It is itself an IncrementalParser so that a
// nested object-valued property can be parsed by recursively constructing
// one of these as a subparser.
type ObjectSchemaParser struct {
	baseParser
	status   schemaDSLStatus
	children []ObjectSchemaEntry

	nameBuf    string
	curKey     Key
	arraySet   bool
	pendType   BaseType
	sub        IncrementalParser
	done       bool
}

// NewObjectSchemaParser starts a parser positioned just after the opening
// `{`.
func NewObjectSchemaParser() *ObjectSchemaParser {
	return &ObjectSchemaParser{status: sdOpened}
}

// Schema returns the ObjectSchema built so far; valid once Feed has
// reported done.
func (p *ObjectSchemaParser) Schema() *ObjectSchema {
	return &ObjectSchema{Children: p.children}
}

func openBaseTypeDispatch(ch Char) (IncrementalParser, BaseType, error) {
	var (
		m  *StringMatchParser
		bt BaseType
	)
	switch ch.Rune() {
	case 's', 'S':
		m, bt = NewStringMatchParser("string", true), StringType
	case 'n', 'N':
		m, bt = NewStringMatchParser("number", true), NumberType
	default:
		return nil, 0, unexpectedChar("schema_bad_value_start", "'{', '[]', \"string\", or \"number\"", ch)
	}
	// The keyword's first letter selected the matcher; feed it so the
	// matcher continues from the second letter.
	if _, err := m.Feed(ch); err != nil {
		return nil, 0, err
	}
	return m, bt, nil
}

func (p *ObjectSchemaParser) Feed(ch Char) (bool, error) {
	if p.done {
		return false, NewParseFailure(ErrAlreadyDone, "schema_already_done", "schema parser already reported done")
	}
	if ch.IsEOS() {
		return false, NewParseFailure(ErrUnexpectedEOS, "schema_unexpected_eos", "unexpected end of stream inside schema source")
	}
	r := ch.Rune()

	switch p.status {
	case sdOpened:
		if isASCIISpace(r) {
			p.parsed += string(r)
			return false, nil
		}
		if r == '}' {
			p.parsed += "}"
			p.status = sdParseComplete
			p.done = true
			return true, nil
		}
		if isNameStart(r) {
			p.nameBuf = string(r)
			p.status = sdInNameBuffer
			return false, nil
		}
		return false, unexpectedChar("schema_bad_open", `'}' or a property name`, ch)

	case sdAwaitingKey:
		if isASCIISpace(r) {
			p.parsed += string(r)
			return false, nil
		}
		if isNameStart(r) {
			p.nameBuf = string(r)
			p.status = sdInNameBuffer
			return false, nil
		}
		return false, unexpectedChar("schema_bad_key_start", "a property name", ch)

	case sdInNameBuffer:
		if isNameChar(r) {
			p.nameBuf += string(r)
			return false, nil
		}
		p.curKey = Key{Name: p.nameBuf}
		p.parsed += p.nameBuf
		p.nameBuf = ""
		return p.afterName(ch)

	case sdAfterName:
		return p.afterName(ch)

	case sdFinishedKey:
		if isASCIISpace(r) {
			p.parsed += string(r)
			return false, nil
		}
		if r == ':' {
			p.parsed += ":"
			p.status = sdAwaitingValue
			return false, nil
		}
		return false, unexpectedChar("schema_expected_colon", "':'", ch)

	case sdAwaitingValue:
		if isASCIISpace(r) {
			p.parsed += string(r)
			return false, nil
		}
		switch r {
		case '{':
			p.parsed += "{"
			p.sub = NewObjectSchemaParser()
			p.status = sdInValueSubparser
			return false, nil
		case '[':
			p.parsed += "["
			p.sub = NewStringMatchParser("]", false)
			p.status = sdInArrayCtrlSeq
			return false, nil
		default:
			sub, bt, err := openBaseTypeDispatch(ch)
			if err != nil {
				return false, err
			}
			p.parsed += string(r)
			p.sub = sub
			p.pendType = bt
			p.status = sdInValueSubparser
			return false, nil
		}

	case sdInArrayCtrlSeq:
		d, err := p.sub.Feed(ch)
		if err != nil {
			return false, err
		}
		p.parsed += string(r)
		if d {
			p.arraySet = true
			p.sub = nil
			p.status = sdAwaitingObject
		}
		return false, nil

	case sdAwaitingObject:
		if isASCIISpace(r) {
			p.parsed += string(r)
			return false, nil
		}
		if r == '{' {
			p.parsed += "{"
			p.sub = NewObjectSchemaParser()
			p.status = sdInValueSubparser
			return false, nil
		}
		sub, bt, err := openBaseTypeDispatch(ch)
		if err != nil {
			return false, err
		}
		p.parsed += string(r)
		p.sub = sub
		p.pendType = bt
		p.status = sdInValueSubparser
		return false, nil

	case sdInValueSubparser:
		d, err := p.sub.Feed(ch)
		if err != nil {
			return false, err
		}
		p.parsed += string(r)
		if d {
			return p.closeValue()
		}
		return false, nil

	case sdFinishedValue:
		if isASCIISpace(r) {
			p.parsed += string(r)
			return false, nil
		}
		if r == ',' {
			p.parsed += ","
			p.status = sdAwaitingKey
			return false, nil
		}
		if r == '}' {
			p.parsed += "}"
			p.status = sdParseComplete
			p.done = true
			return true, nil
		}
		return false, unexpectedChar("schema_bad_after_value", "',' or '}'", ch)

	default:
		return false, NewParseFailure(ErrTrailingInput, "schema_trailing_input", "schema object already complete")
	}
}

func (p *ObjectSchemaParser) afterName(ch Char) (bool, error) {
	if ch.IsEOS() {
		return false, NewParseFailure(ErrUnexpectedEOS, "schema_unexpected_eos", "unexpected end of stream after property name")
	}
	r := ch.Rune()
	if isASCIISpace(r) {
		p.parsed += string(r)
		p.status = sdAfterName
		return false, nil
	}
	if r == '?' {
		p.parsed += "?"
		p.curKey.Optional = true
		p.status = sdFinishedKey
		return false, nil
	}
	if r == ':' {
		p.parsed += ":"
		p.curKey.Optional = false
		p.status = sdAwaitingValue
		return false, nil
	}
	return false, unexpectedChar("schema_expected_marker_or_colon", "'?' or ':'", ch)
}

func (p *ObjectSchemaParser) closeValue() (bool, error) {
	var def JSONSchema
	switch sub := p.sub.(type) {
	case *ObjectSchemaParser:
		s := sub.Schema()
		s.IsListField = p.arraySet
		def = s
	default:
		def = &BaseTypeSchema{Type: p.pendType, IsListField: p.arraySet}
	}
	p.children = append(p.children, ObjectSchemaEntry{Key: p.curKey, Value: Value{Definition: def}})
	p.curKey = Key{}
	p.arraySet = false
	p.sub = nil
	p.status = sdFinishedValue
	return false, nil
}

func (p *ObjectSchemaParser) Copy() IncrementalParser {
	cp := *p
	cp.children = append([]ObjectSchemaEntry(nil), p.children...)
	if p.sub != nil {
		cp.sub = p.sub.Copy()
	}
	return &cp
}

func (p *ObjectSchemaParser) InvalidTokenGroup() TokenGroup { return Empty }
func (p *ObjectSchemaParser) ValidTokenGroup() TokenGroup   { return Empty }

// JSONSchemaParser parses one top-level schema-description value — an
// object, a `'[]' object`, a bare `string`/`number`, or a `'[]'` base type —
// by wrapping an ObjectSchemaParser seeded directly in its AWAITING_VALUE
// state with an empty key. It completes as soon as that single value is
// parsed and then accepts only trailing whitespace and EOS.
type JSONSchemaParser struct {
	inner    *ObjectSchemaParser
	complete bool
	done     bool
	final    JSONSchema
}

// NewJSONSchemaParser starts a parser ready to accept the first character
// of a schema-description source.
func NewJSONSchemaParser() *JSONSchemaParser {
	inner := &ObjectSchemaParser{status: sdAwaitingValue}
	return &JSONSchemaParser{inner: inner}
}

func (p *JSONSchemaParser) Feed(ch Char) (bool, error) {
	if p.done {
		return false, NewParseFailure(ErrAlreadyDone, "schema_outer_already_done", "schema parser already reported done")
	}
	if p.complete {
		if ch.IsEOS() {
			p.done = true
			return true, nil
		}
		if isASCIISpace(ch.Rune()) {
			return false, nil
		}
		return false, NewParseFailure(ErrTrailingInput, "schema_outer_trailing_input", "trailing input after complete schema")
	}

	_, err := p.inner.Feed(ch)
	if err != nil {
		return false, err
	}
	if p.inner.status == sdFinishedValue && len(p.inner.children) == 1 {
		p.final = p.inner.children[0].Value.Definition
		p.complete = true
	}
	return false, nil
}

// Schema returns the parsed top-level schema; valid once Feed has reported
// done.
func (p *JSONSchemaParser) Schema() JSONSchema { return p.final }

func (p *JSONSchemaParser) Copy() IncrementalParser {
	cp := &JSONSchemaParser{complete: p.complete, done: p.done, final: p.final}
	cp.inner = p.inner.Copy().(*ObjectSchemaParser)
	return cp
}

func (p *JSONSchemaParser) ParsedText() string { return p.inner.ParsedText() }

func (p *JSONSchemaParser) InvalidTokenGroup() TokenGroup { return p.inner.InvalidTokenGroup() }
func (p *JSONSchemaParser) ValidTokenGroup() TokenGroup   { return p.inner.ValidTokenGroup() }
