package scs

import (
	"errors"

	"github.com/kaptinlin/go-i18n"
)

// === Grammar violation errors (one per family of Invalid position) ===
var (
	// ErrUnexpectedChar is returned when a character is not a legal
	// continuation of the current parser state.
	ErrUnexpectedChar = errors.New("unexpected character")

	// ErrUnexpectedEOS is returned when EOS arrives at an inner parser, or
	// at the outer parser before it has finished.
	ErrUnexpectedEOS = errors.New("unexpected end of stream")

	// ErrTrailingInput is returned when characters follow EOS, or when
	// non-EOS input arrives at an already-complete outer parser.
	ErrTrailingInput = errors.New("trailing input after complete value")

	// ErrWhitespace is returned when whitespace appears somewhere the
	// active JSONOptions do not permit it.
	ErrWhitespace = errors.New("whitespace not permitted here")

	// ErrEmptyContainer is returned when an empty object/array is closed
	// but the active JSONOptions disallow it at this nesting depth.
	ErrEmptyContainer = errors.New("empty container not permitted here")
)

// === Number literal errors ===
var (
	// ErrLeadingZero is returned when a leading '0' is not immediately
	// followed by '.'.
	ErrLeadingZero = errors.New("leading zero must be followed by '.'")

	// ErrMisplacedPeriod is returned when '.' appears a second time in a
	// number. A '.' before any digit is reported as ErrUnexpectedChar.
	ErrMisplacedPeriod = errors.New("misplaced '.' in number")

	// ErrIncompleteNumber is returned when a number's terminating
	// character arrives while the number is not yet valid (e.g. right
	// after the lone '.').
	ErrIncompleteNumber = errors.New("number ended in an invalid state")
)

// === Schema-constrained parsing errors ===
var (
	// ErrUnknownKey is returned when an object key is not declared by the
	// active schema, or has already been consumed once.
	ErrUnknownKey = errors.New("key not declared by schema, or already seen")

	// ErrMissingRequiredKeys is returned when a schema-constrained object
	// is closed before all required keys have been seen.
	ErrMissingRequiredKeys = errors.New("required keys missing at close")

	// ErrSchemaTypeMismatch is returned when a value's opening character
	// does not match the type the schema requires at this position.
	ErrSchemaTypeMismatch = errors.New("value does not match schema type")
)

// === Schema DSL syntax errors ===
var (
	// ErrSchemaSyntax is returned for any malformed schema-description
	// source (bad property name, missing ':', unknown value keyword, ...).
	ErrSchemaSyntax = errors.New("malformed schema source")
)

// === Literal-match errors ===
var (
	// ErrNoCandidatesLeft is returned when every candidate literal in a
	// MultiStringMatchParser has already failed.
	ErrNoCandidatesLeft = errors.New("no candidate literal matches remaining input")
)

// === Programmer-misuse errors (share ErrTrailingInput's kind, but are
// distinguished here for clearer messages) ===
var (
	// ErrAlreadyDone is returned when Feed is called again on a parser
	// that has already reported done (excluding the outermost parser's
	// EOS acceptance).
	ErrAlreadyDone = errors.New("parser already reported done")
)

// ParseFailure is the single error kind raised by any grammar violation:
// a code, a templated message, and the params that fill the
// template. It is always raised by the innermost detecting parser and
// propagates up through Feed/FeedAll unmodified — there's no recovery and
// no accumulation of multiple failures, unlike a schema validator's result
// tree.
type ParseFailure struct {
	// Code names the failure for localization and programmatic matching,
	// e.g. "number_leading_zero" or "cobject_unknown_key".
	Code string
	// Kind is one of the sentinel errors above; errors.Is(err, kind) works
	// against it via Unwrap.
	Kind    error
	Message string
	Params  map[string]any
}

// NewParseFailure builds a ParseFailure. params is optional; pass nil or
// omit it when the message needs no substitution.
func NewParseFailure(kind error, code, message string, params ...map[string]any) *ParseFailure {
	pf := &ParseFailure{Kind: kind, Code: code, Message: message}
	if len(params) > 0 {
		pf.Params = params[0]
	}
	return pf
}

func (f *ParseFailure) Error() string {
	return replace(f.Message, f.Params)
}

func (f *ParseFailure) Unwrap() error { return f.Kind }

// Localize renders the failure's message through a *i18n.Localizer keyed by
// Code, falling back to Error() when localizer is nil.
func (f *ParseFailure) Localize(localizer *i18n.Localizer) string {
	if localizer != nil {
		return localizer.Get(f.Code, i18n.Vars(f.Params))
	}
	return f.Error()
}

func unexpectedChar(code string, want string, got Char) *ParseFailure {
	gotStr := "EOS"
	if !got.IsEOS() {
		gotStr = string(got.Rune())
	}
	return NewParseFailure(ErrUnexpectedChar, code, "expected {want}, got {got}", map[string]any{
		"want": want,
		"got":  gotStr,
	})
}
