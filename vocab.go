package scs

import "unicode"

// Vocabulary is a fixed, order-stable set of candidate token strings
// together with a pre-computed partition into every TokenGroup this
// package knows how to test. Partitioning happens once at construction so
// a per-query filter step is a slice lookup, not a scan.
type Vocabulary struct {
	tokens   []string
	filtered map[TokenGroup][]int
}

// groupFilter is the predicate a TokenGroup tag represents: whether a
// candidate token string is guaranteed to belong to that coarse subset.
func groupFilter(g TokenGroup) func(string) bool {
	switch g {
	case All:
		return func(string) bool { return true }
	case NonNumeric:
		return func(tok string) bool {
			for _, r := range tok {
				if !isDigit(r) && r != '.' {
					return true
				}
			}
			return false
		}
	case InvalidFloat:
		return func(tok string) bool {
			periods := 0
			for _, r := range tok {
				if r == '.' {
					periods++
				}
			}
			return periods > 1
		}
	case BeginWithNonJSONChar:
		return func(tok string) bool {
			if tok == "" {
				return false
			}
			r := []rune(tok)[0]
			switch r {
			case '{', '[', '"':
				return false
			default:
				return !isDigit(r)
			}
		}
	case NoQuoteChar:
		return func(tok string) bool {
			for _, r := range tok {
				if r == '"' {
					return false
				}
			}
			return true
		}
	case Numeric:
		return func(tok string) bool {
			if tok == "" {
				return false
			}
			for _, r := range tok {
				if !isDigit(r) && r != '.' {
					return false
				}
			}
			return true
		}
	case NonAlnum:
		return func(tok string) bool {
			for _, r := range tok {
				if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
					return true
				}
			}
			return false
		}
	default: // Empty, and any tag with no known filter: matches nothing.
		return func(string) bool { return false }
	}
}

// allTokenGroups lists every tag worth pre-partitioning; Empty is excluded
// since its filter never matches anything.
var allTokenGroups = []TokenGroup{
	All, NonNumeric, InvalidFloat, BeginWithNonJSONChar, NoQuoteChar, Numeric, NonAlnum,
}

// NewVocabulary partitions tokens once against every known TokenGroup tag.
func NewVocabulary(tokens []string) *Vocabulary {
	v := &Vocabulary{tokens: tokens, filtered: make(map[TokenGroup][]int, len(allTokenGroups))}
	for _, g := range allTokenGroups {
		f := groupFilter(g)
		var idx []int
		for i, tok := range tokens {
			if f(tok) {
				idx = append(idx, i)
			}
		}
		v.filtered[g] = idx
	}
	return v
}

// Len returns the vocabulary size.
func (v *Vocabulary) Len() int { return len(v.tokens) }

// Token returns the candidate string at index i.
func (v *Vocabulary) Token(i int) string { return v.tokens[i] }

// Filtered returns the indices known to belong to TokenGroup g.
func (v *Vocabulary) Filtered(g TokenGroup) []int { return v.filtered[g] }
