package scs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckReportValidCount(t *testing.T) {
	r := NewCheckReport(0, 10)
	r.AddInvalid(InvalidToken{Index: 1, Text: "x"})
	r.AddInvalid(InvalidToken{Index: 2, Text: "y"})
	assert.Equal(t, 8, r.ValidCount())
}

func TestReportFromQueryResolvesTokenText(t *testing.T) {
	vocab := NewVocabulary([]string{"a", "b", "c"})
	pairs := []InvalidPair{{CheckIdx: 3, TokenIdx: 1}}
	r := ReportFromQuery(vocab, pairs)
	assert.Equal(t, 3, r.CheckIdx)
	assert.Equal(t, 3, r.VocabSize)
	assert.Equal(t, "b", r.Invalid[0].Text)
	assert.Equal(t, 2, r.ValidCount())
}

func TestReportFromQueryEmptyPairsStillReportsVocabSize(t *testing.T) {
	vocab := NewVocabulary([]string{"a", "b"})
	r := ReportFromQuery(vocab, nil)
	assert.Equal(t, 0, r.CheckIdx)
	assert.Equal(t, 2, r.ValidCount())
}

func TestCheckReportLocalizeWithoutLocalizerFallback(t *testing.T) {
	r := NewCheckReport(0, 5).SetFailureReason("poisoned")
	assert.Equal(t, "constraint failed: poisoned", r.Localize(nil))
}

func TestCheckReportLocalizeSuccessPath(t *testing.T) {
	r := NewCheckReport(0, 5)
	r.AddInvalid(InvalidToken{Index: 0, Text: "x"})
	assert.Equal(t, "4/5 tokens remain valid", r.Localize(nil))
}
