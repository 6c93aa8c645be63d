package scs

import "github.com/kaptinlin/go-i18n"

// InvalidToken names one vocabulary entry a Harness query rejected: its
// index and, for readability in reports, the candidate text itself.
type InvalidToken struct {
	Index int
	Text  string
}

// CheckReport summarizes one Harness.InvalidNextTokens call for logging
// and CLI display. It is single-failure-kind rather than a multi-error
// result tree, since a constraint check never accumulates more than the
// one outcome that matters per query: which tokens survive.
type CheckReport struct {
	CheckIdx      int
	VocabSize     int
	Invalid       []InvalidToken
	FailureReason string // set only when the constraint itself is poisoned
}

// NewCheckReport builds an empty report for the given check index and
// vocabulary size, ready for its fluent setters.
func NewCheckReport(checkIdx, vocabSize int) *CheckReport {
	return &CheckReport{CheckIdx: checkIdx, VocabSize: vocabSize}
}

// AddInvalid appends one rejected token and returns the report for
// chaining.
func (r *CheckReport) AddInvalid(tok InvalidToken) *CheckReport {
	r.Invalid = append(r.Invalid, tok)
	return r
}

// SetFailureReason records that the owning constraint is poisoned, in
// addition to (or instead of) a per-token breakdown.
func (r *CheckReport) SetFailureReason(reason string) *CheckReport {
	r.FailureReason = reason
	return r
}

// ValidCount returns how many vocabulary entries this report did not
// reject.
func (r *CheckReport) ValidCount() int {
	return r.VocabSize - len(r.Invalid)
}

// ReportFromQuery builds a CheckReport from one InvalidNextTokens result,
// resolving each index back to its candidate text for display.
func ReportFromQuery(vocab *Vocabulary, pairs []InvalidPair) *CheckReport {
	checkIdx := 0
	if len(pairs) > 0 {
		checkIdx = pairs[0].CheckIdx
	}
	r := NewCheckReport(checkIdx, vocab.Len())
	for _, p := range pairs {
		r.AddInvalid(InvalidToken{Index: p.TokenIdx, Text: vocab.Token(p.TokenIdx)})
	}
	return r
}

// Localize renders a human-readable summary of the report, localizing the
// failure reason (if any) through localizer — nil falls back to the
// unlocalized text, mirroring ParseFailure.Localize.
func (r *CheckReport) Localize(localizer *i18n.Localizer) string {
	if r.FailureReason == "" {
		return replace("{valid}/{total} tokens remain valid", map[string]any{
			"valid": r.ValidCount(),
			"total": r.VocabSize,
		})
	}
	if localizer != nil {
		return localizer.Get("check_report_failure", i18n.Vars(map[string]any{"reason": r.FailureReason}))
	}
	return replace("constraint failed: {reason}", map[string]any{"reason": r.FailureReason})
}
