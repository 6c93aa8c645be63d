package scs

// containerStatus is the shared state machine driving the unschematized
// ObjectParser and ArrayParser; arrays use the same set
// minus the key states.
type containerStatus int

const (
	stOpened containerStatus = iota
	stAwaitingKey
	stAwaitingValue
	stInKeySubparser
	stInValueSubparser
	stFinishedKey
	stFinishedValue
	stParseComplete
	// stAwaitingKeyClose is specific to the schema-constrained ObjectParser:
	// once its MultiStringMatchParser reports a completed key name, a
	// literal closing `"` is still required before FINISHED_KEY.
	stAwaitingKeyClose
)

// openValueParser dispatches the first character of a value position to a
// freshly constructed subparser, pre-feeding digit characters into a
// NumberParser as the grammar requires.
func openValueParser(ch Char, opts JSONOptions) (IncrementalParser, error) {
	if ch.IsEOS() {
		return nil, NewParseFailure(ErrUnexpectedEOS, "container_value_eos", "unexpected end of stream awaiting a value")
	}
	r := ch.Rune()
	switch {
	case r == '{':
		return NewObjectParser(childOptions(opts)), nil
	case r == '[':
		return NewArrayParser(childOptions(opts)), nil
	case r == '"':
		return NewStringParser(), nil
	case isDigit(r):
		np := NewNumberParser()
		if _, err := np.Feed(ch); err != nil {
			return nil, err
		}
		return np, nil
	default:
		return nil, unexpectedChar("container_bad_value_start", `'{', '[', '"', or a digit`, ch)
	}
}

// childOptions derives the JSONOptions a newly opened child container
// receives: its AllowEmpty comes from the parent's AllowEmptyChildren, and
// that permission (plus the whitespace flag) propagates further down.
func childOptions(opts JSONOptions) JSONOptions {
	return JSONOptions{
		AllowEmpty:                opts.AllowEmptyChildren,
		AllowEmptyChildren:        opts.AllowEmptyChildren,
		AllowWhitespaceFormatting: opts.AllowWhitespaceFormatting,
	}
}

// numberClose applies the "number close is special" rule: when the
// just-finished child was a NumberParser whose closing
// character was not whitespace, that character is appended directly to
// parsed and the container advances without passing through FINISHED_KEY/
// FINISHED_VALUE. ok is false when the generic close path should run
// instead (whitespace-terminated number, or any other subparser kind).
func numberClose(sub IncrementalParser, isArray bool) (next containerStatus, appended string, ok bool, err error) {
	np, isNumber := sub.(*NumberParser)
	if !isNumber {
		return 0, "", false, nil
	}
	cc := np.ClosingChar()
	if isASCIISpace(cc.Rune()) {
		return 0, "", false, nil
	}
	switch cc.Rune() {
	case ',':
		if isArray {
			return stAwaitingValue, ",", true, nil
		}
		return stAwaitingKey, ",", true, nil
	case '}':
		if isArray {
			return 0, "", false, unexpectedChar("container_number_close_mismatch", "']'", cc)
		}
		return stParseComplete, "}", true, nil
	case ']':
		if !isArray {
			return 0, "", false, unexpectedChar("container_number_close_mismatch", "'}'", cc)
		}
		return stParseComplete, "]", true, nil
	default:
		return 0, "", false, unexpectedChar("container_number_bad_close", "',', '}', or ']'", cc)
	}
}
