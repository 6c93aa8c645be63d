package scs

import "unicode"

// StringMatchParser accepts exactly one fixed literal, optionally
// case-insensitively. It underlies the schema DSL's
// keyword matching (`string`, `number`) and the `[]` array marker.
type StringMatchParser struct {
	baseParser
	target   []rune
	parseIdx int
	nocase   bool
	done     bool
}

// NewStringMatchParser builds a matcher for target; when nocase is true,
// comparisons fold case on both sides.
func NewStringMatchParser(target string, nocase bool) *StringMatchParser {
	return &StringMatchParser{target: []rune(target), nocase: nocase}
}

func foldIf(r rune, nocase bool) rune {
	if nocase {
		return unicode.ToLower(r)
	}
	return r
}

func (p *StringMatchParser) Feed(ch Char) (bool, error) {
	// EOS is tolerated even after done — the common case is an outer
	// caller appending EOS to every candidate regardless of when the
	// literal actually completed.
	if ch.IsEOS() {
		if p.parseIdx == len(p.target) {
			p.done = true
			return true, nil
		}
		return false, NewParseFailure(ErrUnexpectedEOS, "match_unexpected_eos", "unexpected end of stream inside literal match")
	}
	if p.done {
		return false, NewParseFailure(ErrAlreadyDone, "match_already_done", "string-match parser already reported done")
	}
	if p.parseIdx >= len(p.target) {
		return false, NewParseFailure(ErrTrailingInput, "match_trailing_input", "literal already fully matched")
	}
	r := ch.Rune()
	want := p.target[p.parseIdx]
	if foldIf(r, p.nocase) != foldIf(want, p.nocase) {
		return false, unexpectedChar("match_mismatch", string(want), ch)
	}
	p.parsed += string(r)
	p.parseIdx++
	if p.parseIdx == len(p.target) {
		p.done = true
		return true, nil
	}
	return false, nil
}

func (p *StringMatchParser) Copy() IncrementalParser {
	cp := *p
	cp.target = append([]rune(nil), p.target...)
	return &cp
}

// GetNext returns the remaining, not-yet-matched suffix of target — the
// only legal continuation from this state.
func (p *StringMatchParser) GetNext() []string {
	return []string{string(p.target[p.parseIdx:])}
}

func (p *StringMatchParser) InvalidTokenGroup() TokenGroup { return Empty }
func (p *StringMatchParser) ValidTokenGroup() TokenGroup   { return Empty }

// MultiStringMatchParser runs a set of candidate literals in parallel,
// pruning any that mismatch a fed character, and reports done as soon as
// any surviving candidate completes. It is not "sticky" after
// the first done: when the completed literal is a strict prefix of a longer
// candidate, that longer candidate keeps accepting further characters, and
// done is reported again only when it completes (decided open question,
// see DESIGN.md).
type MultiStringMatchParser struct {
	baseParser
	candidates []string
	running    []*StringMatchParser
	done       bool
	matched    string
}

// NewMultiStringMatchParser seeds a matcher with every candidate literal,
// each optionally matched case-insensitively.
func NewMultiStringMatchParser(candidates []string, nocase bool) *MultiStringMatchParser {
	running := make([]*StringMatchParser, 0, len(candidates))
	for _, c := range candidates {
		running = append(running, NewStringMatchParser(c, nocase))
	}
	return &MultiStringMatchParser{candidates: candidates, running: running}
}

func (p *MultiStringMatchParser) Feed(ch Char) (bool, error) {
	if len(p.running) == 0 {
		return false, NewParseFailure(ErrNoCandidatesLeft, "multi_match_exhausted", "no candidate literal matches remaining input")
	}
	next := p.running[:0:0]
	anyDone := false
	var matchedText string
	for _, m := range p.running {
		d, err := m.Feed(ch)
		if err != nil {
			continue
		}
		next = append(next, m)
		if d {
			anyDone = true
			matchedText = m.ParsedText()
		}
	}
	p.running = next
	if len(p.running) == 0 {
		return false, NewParseFailure(ErrNoCandidatesLeft, "multi_match_exhausted", "no candidate literal matches remaining input")
	}
	if !ch.IsEOS() {
		p.parsed += string(ch.Rune())
	}
	p.done = anyDone
	if anyDone {
		p.matched = matchedText
		return true, nil
	}
	return false, nil
}

// Matched returns the literal that completed this parser, valid only after
// Feed has reported done.
func (p *MultiStringMatchParser) Matched() string { return p.matched }

func (p *MultiStringMatchParser) Copy() IncrementalParser {
	cp := &MultiStringMatchParser{
		baseParser: p.baseParser,
		candidates: p.candidates,
		done:       p.done,
		matched:    p.matched,
	}
	cp.running = make([]*StringMatchParser, len(p.running))
	for i, m := range p.running {
		cp.running[i] = m.Copy().(*StringMatchParser)
	}
	return cp
}

// GetNext concatenates every running candidate's residual suffix.
func (p *MultiStringMatchParser) GetNext() []string {
	out := make([]string, 0, len(p.running))
	for _, m := range p.running {
		out = append(out, m.GetNext()...)
	}
	return out
}

func (p *MultiStringMatchParser) InvalidTokenGroup() TokenGroup { return NonAlnum }
func (p *MultiStringMatchParser) ValidTokenGroup() TokenGroup   { return Empty }
