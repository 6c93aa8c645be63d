package scs

// NumberParser parses `digit+ ('.' digit+)?`, rejecting a leading '0' unless
// it is immediately followed by '.'. The terminating
// character — one of `,`, `]`, `}`, or whitespace — is never consumed into
// parsed; the parent ObjectParser/ArrayParser decides whether to append it
// and what state to transition to next.
type NumberParser struct {
	baseParser
	hasPeriod   bool
	leadingZero bool
	sawFirst    bool
	isValid     bool
	closingChar Char
	done        bool
}

// NewNumberParser starts a fresh NumberParser.
func NewNumberParser() *NumberParser {
	return &NumberParser{}
}

func isNumberTerminator(ch Char) bool {
	if ch.IsEOS() {
		return false
	}
	switch ch.Rune() {
	case ',', ']', '}':
		return true
	default:
		return isASCIISpace(ch.Rune())
	}
}

// ClosingChar reports the character that ended this number, valid only
// after Feed has returned done.
func (p *NumberParser) ClosingChar() Char { return p.closingChar }

func (p *NumberParser) Feed(ch Char) (bool, error) {
	if p.done {
		return false, NewParseFailure(ErrAlreadyDone, "number_already_done", "number parser already reported done")
	}
	if ch.IsEOS() {
		return false, NewParseFailure(ErrUnexpectedEOS, "number_unexpected_eos", "unexpected end of stream inside number")
	}
	r := ch.Rune()

	if p.leadingZero && !p.hasPeriod && r != '.' {
		return false, NewParseFailure(ErrLeadingZero, "number_leading_zero", "leading zero must be followed by '.'")
	}

	if isNumberTerminator(ch) {
		if !p.isValid {
			return false, NewParseFailure(ErrIncompleteNumber, "number_incomplete", "number ended in an invalid state")
		}
		p.closingChar = ch
		p.done = true
		return true, nil
	}

	if !p.sawFirst {
		p.sawFirst = true
		if r == '0' {
			p.leadingZero = true
			p.parsed += string(r)
			p.isValid = true
			return false, nil
		}
		if !isDigit(r) {
			return false, unexpectedChar("number_bad_first_char", "a digit", ch)
		}
		p.parsed += string(r)
		p.isValid = true
		return false, nil
	}

	if r == '.' {
		if p.hasPeriod {
			return false, NewParseFailure(ErrMisplacedPeriod, "number_double_period", "number already has a '.'")
		}
		p.hasPeriod = true
		p.parsed += "."
		p.isValid = false
		return false, nil
	}

	if isDigit(r) {
		if p.leadingZero && !p.hasPeriod {
			return false, NewParseFailure(ErrLeadingZero, "number_leading_zero", "leading zero must be followed by '.'")
		}
		p.parsed += string(r)
		p.isValid = true
		return false, nil
	}

	return false, unexpectedChar("number_bad_char", "a digit, '.', or a terminator", ch)
}

func (p *NumberParser) Copy() IncrementalParser {
	cp := *p
	return &cp
}

func (p *NumberParser) InvalidTokenGroup() TokenGroup { return Empty }

func (p *NumberParser) ValidTokenGroup() TokenGroup { return Empty }
