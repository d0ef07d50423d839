package sbrl

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/sbrl/bitvector"
	"github.com/katalvlaran/sbrl/ruleset"
)

// mcmcChain holds all state for one independent Metropolis-Hastings search
// over rule lists. We use a dedicated engine struct (instead of closures)
// to keep dependencies explicit and hot-path state predictable, the same
// shape the branch-and-bound search this package is grounded on uses.
type mcmcChain struct {
	evaluator   *posteriorEvaluator
	truthtables []*bitvector.BitVector // indexed by rule id; index 0 is the all-ones default
	r           int                    // total candidate rule count, including the default

	rng *rand.Rand

	rs               *ruleset.RuleSet
	curLogPosterior  float64
	bestLogPosterior float64
	bestIDs          []int
}

// newMCMCChain seeds a chain by walking the shared candidate-rule
// permutation starting at *cursor: it tries each permuted id as a
// single-rule starting list [id, 0], advancing the cursor each time,
// until one clears vStar (the default-only baseline's log posterior) or
// all r-1 non-default ids have been tried (slot 0 is skipped, not counted).
func newMCMCChain(
	evaluator *posteriorEvaluator,
	truthtables []*bitvector.BitVector,
	perm []int,
	cursor *int,
	vStar float64,
	rng *rand.Rand,
) (*mcmcChain, error) {
	r := len(truthtables)
	c := &mcmcChain{evaluator: evaluator, truthtables: truthtables, r: r, rng: rng}

	for tries := 0; tries < r-1; {
		id := perm[*cursor%len(perm)]
		*cursor++
		if id == 0 {
			continue
		}
		tries++
		candidate, err := ruleset.Init([]int{id, 0}, truthtables, evaluator.n)
		if err != nil {
			return nil, err
		}
		_, prefixBound, err := evaluator.Evaluate(candidate, 1)
		if err != nil {
			return nil, err
		}
		if prefixBound >= vStar {
			logPosterior, _, err := evaluator.Evaluate(candidate, candidate.Len())
			if err != nil {
				return nil, err
			}
			c.rs = candidate
			c.curLogPosterior = logPosterior
			c.bestLogPosterior = logPosterior
			c.bestIDs = candidate.Backup()

			return c, nil
		}
	}

	return nil, ErrNoInitialization
}

// usedMask returns a r-length mask of which rule ids currently occupy the
// chain's RuleSet (index 0, the default, is always considered used).
func (c *mcmcChain) usedMask() []bool {
	used := make([]bool, c.r)
	used[0] = true
	for k := 0; k < c.rs.Len(); k++ {
		used[c.rs.RuleID(k)] = true
	}

	return used
}

// step attempts one propose/evaluate/accept iteration, mutating c in
// place. It returns false only when the chosen move kind has no legal
// application in the current state (e.g. Delete with no real rule to
// remove); callers should simply try the next iteration.
func (c *mcmcChain) step() (bool, error) {
	l := c.rs.Len()
	move := pickMove(c.rng, l, c.r)

	candidate := c.rs.Copy()
	var lengthBound int

	switch move {
	case moveAdd:
		used := c.usedMask()
		ruleID, err := pickRandomRule(c.rng, used, c.r)
		if err != nil {
			return false, nil
		}
		pos := c.rng.Intn(candidate.Len())
		if err := candidate.Add(ruleID, pos, c.truthtables); err != nil {
			return false, err
		}
		lengthBound = pos + 1

	case moveDelete:
		if candidate.Len() <= 1 {
			return false, nil
		}
		pos := c.rng.Intn(candidate.Len() - 1)
		if err := candidate.Delete(pos, c.truthtables); err != nil {
			return false, err
		}
		lengthBound = pos

	default: // moveSwap
		if candidate.Len() <= 2 {
			return false, nil
		}
		i := c.rng.Intn(candidate.Len() - 1)
		j := i
		for j == i {
			j = c.rng.Intn(candidate.Len() - 1)
		}
		if err := candidate.SwapAny(i, j, c.truthtables); err != nil {
			return false, err
		}
		lengthBound = 1 + maxInt(i, j)
	}

	if lengthBound < 1 {
		lengthBound = 1
	}
	logPosterior, prefixBound, err := c.evaluator.Evaluate(candidate, lengthBound)
	if err != nil {
		return false, err
	}
	if prefixBound <= c.bestLogPosterior {
		return true, nil // pruned: cannot beat the incumbent, not worth the MH test
	}

	delta := logPosterior - c.curLogPosterior
	ratio := jumpRatio(move, l, c.r)
	if math.Log(c.rng.Float64()) < delta+math.Log(ratio) {
		c.rs = candidate
		c.curLogPosterior = logPosterior
		if logPosterior > c.bestLogPosterior {
			c.bestLogPosterior = logPosterior
			c.bestIDs = candidate.Backup()
		}
	}

	return true, nil
}

// run executes up to maxIters steps.
func (c *mcmcChain) run(maxIters int) error {
	for i := 0; i < maxIters; i++ {
		if _, err := c.step(); err != nil {
			return err
		}
	}

	return nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}
