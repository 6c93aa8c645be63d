package scs

import (
	"context"
	"runtime"
	"sync"
)

// CheckFactory builds a fresh SyntaxConstraint of the kind a Harness
// tracks. A Harness calls it to grow its active-check list when Update
// receives a batch larger than the number of checks it already holds.
type CheckFactory func() (*SyntaxConstraint, error)

// Harness answers, for its active constraints and a fixed Vocabulary,
// which candidate token indices would keep each constraint's parsed
// output a valid prefix. Filtering (InvalidNextTokens) is scoped to the
// first active constraint — single-beam decoding — but Update accepts a
// batch of sampled token ids and lazily grows the active-check list to
// match the batch size the first time it's called, one fresh constraint
// per extra batch element built from factory; that growth only allocates
// the additional constraints, it does not extend filtering or pruning
// across them. CheckIdx counts queries so callers can correlate
// (check_idx, token_idx) pairs across a decoding session.
type Harness struct {
	vocab       *Vocabulary
	factory     CheckFactory
	checks      []*SyntaxConstraint
	initialized bool
	// Workers bounds how many goroutines the per-token WouldAccept fallback
	// may run concurrently; zero means runtime.GOMAXPROCS(0).
	Workers int

	checkIdx int
}

// NewHarness builds a harness over vocab, starting with first as the
// sole active constraint. factory builds additional constraints of the
// same kind, used to grow the active-check list on the first batched
// Update call; it may be nil if the caller never drives Update with more
// than one token id at a time.
func NewHarness(vocab *Vocabulary, first *SyntaxConstraint, factory CheckFactory) *Harness {
	return &Harness{vocab: vocab, checks: []*SyntaxConstraint{first}, factory: factory}
}

// InvalidPair names one rejected token discovered during a harness check:
// the query it came from and the vocabulary index itself.
type InvalidPair struct {
	CheckIdx int
	TokenIdx int
}

// InvalidNextTokens runs one full query — a four-step filtering pass —
// and returns every index the current constraint state would
// reject, tagged with this query's CheckIdx. The constraint's own
// invalid/valid group hints prune most of the vocabulary for free; only
// the remainder pays for a per-token WouldAccept probe, run across a
// worker pool since each probe clones the parser and is independent of
// the others.
func (h *Harness) InvalidNextTokens(ctx context.Context) []InvalidPair {
	idx := h.checkIdx
	h.checkIdx++

	n := h.vocab.Len()
	toCheck := make([]bool, n)
	for i := range toCheck {
		toCheck[i] = true
	}

	var invalid []int

	invalidGroup := h.checks[0].InvalidTokenGroup()
	for _, i := range h.vocab.Filtered(invalidGroup) {
		if toCheck[i] {
			invalid = append(invalid, i)
			toCheck[i] = false
		}
	}

	validGroup := h.checks[0].ValidTokenGroup()
	for _, i := range h.vocab.Filtered(validGroup) {
		toCheck[i] = false
	}

	var remaining []int
	for i, check := range toCheck {
		if check {
			remaining = append(remaining, i)
		}
	}

	invalid = append(invalid, h.probe(ctx, remaining)...)

	out := make([]InvalidPair, len(invalid))
	for i, tokenIdx := range invalid {
		out[i] = InvalidPair{CheckIdx: idx, TokenIdx: tokenIdx}
	}
	return out
}

// probe runs WouldAccept for every index in indices across a bounded
// worker pool, returning the subset that failed. Each worker calls
// WouldAccept, which clones the parser internally — no constraint state is
// ever shared mutably across workers. Cancelling ctx stops
// dispatch of further indices; already-dispatched probes still complete.
func (h *Harness) probe(ctx context.Context, indices []int) []int {
	if len(indices) == 0 {
		return nil
	}
	workers := h.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(indices) {
		workers = len(indices)
	}

	jobs := make(chan int)
	var mu sync.Mutex
	var failed []int
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				if !h.checks[0].WouldAcceptString(h.vocab.Token(i)) {
					mu.Lock()
					failed = append(failed, i)
					mu.Unlock()
				}
			}
		}()
	}
dispatch:
	for _, i := range indices {
		select {
		case <-ctx.Done():
			break dispatch
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()
	return failed
}

// Update commits the sampler's chosen token ids to the harness's active
// checks, one id per check in order. On the first call it grows the
// active-check list to len(tokenIDs) by building one fresh constraint per
// extra batch element from factory; later calls never grow the list
// further. The returned slice reports each check's done status, in the
// same order as tokenIDs; it stops at the first Advance error, since a
// poisoned check invalidates the rest of the batch's bookkeeping too.
func (h *Harness) Update(tokenIDs []int) ([]bool, error) {
	if !h.initialized {
		for i := 1; i < len(tokenIDs); i++ {
			next, err := h.factory()
			if err != nil {
				return nil, err
			}
			h.checks = append(h.checks, next)
		}
		h.initialized = true
	}

	n := len(tokenIDs)
	if n > len(h.checks) {
		n = len(h.checks)
	}

	done := make([]bool, n)
	for i := 0; i < n; i++ {
		d, err := h.checks[i].Advance(Chars(h.vocab.Token(tokenIDs[i])))
		if err != nil {
			return done[:i], err
		}
		done[i] = d
	}
	return done, nil
}
