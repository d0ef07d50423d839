package sbrl

import "math/rand"

// moveKind enumerates the three edits a proposer can make to a RuleSet.
type moveKind int

const (
	moveAdd moveKind = iota
	moveDelete
	moveSwap
)

// regimeWeights holds the move probabilities and the unscaled
// Metropolis-Hastings jump ratios for one length regime. Swap's ratio
// never needs scaling; add and delete are scaled afterwards by the
// caller using the current length and candidate count.
type regimeWeights struct {
	pSwap, pAdd, pDel    float64
	rSwap, rAdd, rDel float64
}

// regimeFor selects the move-probability/jump-ratio row for a ruleset of
// length l out of r candidate rules (both counts include the default
// rule/slot). Regimes are checked in the order small lists, then the
// boundary near the top of the feasible range, so degenerate overlaps
// (small R) resolve toward the earlier, more specific row.
func regimeFor(l, r int) regimeWeights {
	switch {
	case l <= 2:
		return regimeWeights{pSwap: 0, pAdd: 1, pDel: 0, rSwap: 0, rAdd: 0.5, rDel: 0}
	case l == 3:
		return regimeWeights{pSwap: 0, pAdd: 0.5, pDel: 0.5, rSwap: 0, rAdd: 2.0 / 3, rDel: 2}
	case l == r-1:
		return regimeWeights{pSwap: 0.5, pAdd: 0, pDel: 0.5, rSwap: 1, rAdd: 0, rDel: 2.0 / 3}
	case l == r-2:
		return regimeWeights{pSwap: 1.0 / 3, pAdd: 1.0 / 3, pDel: 1.0 / 3, rSwap: 1, rAdd: 1.5, rDel: 1}
	default:
		return regimeWeights{pSwap: 1.0 / 3, pAdd: 1.0 / 3, pDel: 1.0 / 3, rSwap: 1, rAdd: 1, rDel: 1}
	}
}

// pickMove samples a move kind for the current list length l out of r
// candidate rules.
func pickMove(rng *rand.Rand, l, r int) moveKind {
	w := regimeFor(l, r)
	u := rng.Float64()
	switch {
	case u < w.pAdd:
		return moveAdd
	case u < w.pAdd+w.pDel:
		return moveDelete
	default:
		return moveSwap
	}
}

// jumpRatio returns the Metropolis-Hastings jump-ratio correction for a
// move of the given kind taken from a list of length lFrom out of r
// candidates. Add and delete ratios carry the extra combinatorial scale
// factor described for their index rules; swap is its own reverse at an
// unchanged list length and carries none.
func jumpRatio(move moveKind, lFrom, r int) float64 {
	w := regimeFor(lFrom, r)
	switch move {
	case moveAdd:
		return w.rAdd * float64(r-1-lFrom)
	case moveDelete:
		return w.rDel * (1.0 / float64(r-lFrom))
	default:
		return w.rSwap
	}
}

// maxPickTries bounds the random-probe phase of pickRandomRule before it
// falls back to a deterministic scan through the reachable id space.
const maxPickTries = 10

// pickRandomRule draws a candidate rule id uniformly from [1, r-2], the
// range the index rules for Add specify, retrying on collision with
// usedMask up to maxPickTries times and then bumping the candidate
// deterministically (modulo r-2) until an unused id is found or the
// reachable space is exhausted.
func pickRandomRule(rng *rand.Rand, usedMask []bool, r int) (int, error) {
	span := r - 2
	if span < 1 {
		return 0, ErrNoCandidateRule
	}

	id := 1 + rng.Intn(span)
	for try := 0; try < maxPickTries; try++ {
		if !usedMask[id] {
			return id, nil
		}
		id = 1 + rng.Intn(span)
	}
	for i := 0; i < span; i++ {
		if !usedMask[id] {
			return id, nil
		}
		id = 1 + (id % span)
	}

	return 0, ErrNoCandidateRule
}
