package sbrl

import (
	"math"

	"github.com/katalvlaran/sbrl/bitvector"
	"github.com/katalvlaran/sbrl/ruleset"
)

// cardinalityEpsilon keeps log(card_count_local[c]+eps) finite once a
// cardinality bucket is fully depleted during one evaluation.
const cardinalityEpsilon = 1e-4

// posteriorEvaluator scores a RuleSet under a Dirichlet-multinomial
// likelihood and Poisson length/cardinality priors, and produces, in the
// same pass, an optimistic "prefix bound" the chain uses to reject
// unpromising proposals without a Metropolis-Hastings test.
//
// # What & Why
//
// Every table here is computed once, at setup, from quantities that never
// change during search (sample count, candidate cardinalities, class
// support totals, the prior hyperparameters): Poisson log-pmf values and
// the lgamma terms the Dirichlet-multinomial likelihood needs. Recomputing
// these per proposal would dominate the MCMC inner loop.
type posteriorEvaluator struct {
	n        int
	nClasses int
	labels   []*bitvector.BitVector

	alpha        []int
	alphaSum     int
	clampedLambda float64

	cardinality []int // cardinality[ruleID], 0 unused for the default rule
	cardCount   []int // cardCount[c] = candidate-rule count with cardinality c

	logLambdaPMF []float64 // index 0..R-1
	logEtaPMF    []float64 // index 0..MaxCardinality, [0] unused
	etaNorm      float64

	logGammas []float64 // index 0..maxGammaArg, [0] unused sentinel
	logGammaSum float64 // sum_j lgamma(alpha_j)

	totalSupport []int // totalSupport[j] = popcount(labels[j])

	scratch *bitvector.BitVector
}

// lgammaCached returns lgamma(n) for a nonnegative integer n, using the
// precomputed table when n is in range and falling back to math.Lgamma
// otherwise so out-of-table arguments never panic.
func (pe *posteriorEvaluator) lgammaCached(n int) float64 {
	if n >= 0 && n < len(pe.logGammas) {
		return pe.logGammas[n]
	}
	v, _ := math.Lgamma(float64(n))

	return v
}

// poissonLogPMF returns log P(X=k) for X ~ Poisson(mean).
func poissonLogPMF(k int, mean float64) float64 {
	lg, _ := math.Lgamma(float64(k) + 1)

	return float64(k)*math.Log(mean) - mean - lg
}

func clampIdx(i, maxIdx int) int {
	if i < 0 {
		return 0
	}
	if i > maxIdx {
		return maxIdx
	}

	return i
}

func minInt(a, b int) int {
	if a < b {
		return a
	}

	return b
}

func maxIntOf(a, b int) int {
	if a > b {
		return a
	}

	return b
}

// setupPosteriorEvaluator precomputes every table described in the package
// doc. cardinalities is indexed by rule id (cardinalities[0] is ignored;
// the default rule has no cardinality cost). lambda is clamped to
// min(lambda, R-1) where R = len(cardinalities); clamping is reported
// through sink when it occurs.
func setupPosteriorEvaluator(
	n int,
	labels []*bitvector.BitVector,
	cardinalities []int,
	lambda, eta float64,
	alpha []int,
	sink Sink,
) (*posteriorEvaluator, error) {
	if len(alpha) < 2 {
		return nil, ErrConfig
	}
	for _, a := range alpha {
		if a < 1 {
			return nil, ErrConfig
		}
	}
	if lambda <= 0 || eta <= 0 {
		return nil, ErrConfig
	}
	r := len(cardinalities)
	if r < 1 {
		return nil, ErrNoCandidates
	}

	clampedLambda := lambda
	if maxLambda := float64(r - 1); clampedLambda > maxLambda {
		clampedLambda = maxLambda
		if maxLambda < 1 {
			clampedLambda = 1
		}
		sinkOrDiscard(sink).Printf("sbrl: lambda %.4g clamped to %.4g (R-1)", lambda, clampedLambda)
	}

	pe := &posteriorEvaluator{
		n:             n,
		nClasses:      len(labels),
		labels:        labels,
		alpha:         append([]int(nil), alpha...),
		cardinality:   cardinalities,
		clampedLambda: clampedLambda,
	}
	for _, a := range pe.alpha {
		pe.alphaSum += a
	}

	pe.logLambdaPMF = make([]float64, r)
	for k := 0; k < r; k++ {
		pe.logLambdaPMF[k] = poissonLogPMF(k, clampedLambda)
	}

	pe.cardCount = make([]int, MaxCardinality+1)
	for _, c := range cardinalities {
		if c >= 1 && c <= MaxCardinality {
			pe.cardCount[c]++
		}
	}

	pe.logEtaPMF = make([]float64, MaxCardinality+1)
	for c := 1; c <= MaxCardinality; c++ {
		pe.logEtaPMF[c] = poissonLogPMF(c, eta)
		pe.etaNorm += math.Exp(pe.logEtaPMF[c])
	}

	maxGammaArg := n + 2*(1+pe.alphaSum)
	pe.logGammas = make([]float64, maxGammaArg+1)
	for k := 1; k <= maxGammaArg; k++ {
		v, _ := math.Lgamma(float64(k))
		pe.logGammas[k] = v
	}

	for _, a := range pe.alpha {
		pe.logGammaSum += pe.lgammaCached(a)
	}

	pe.totalSupport = make([]int, len(labels))
	for j, label := range labels {
		pe.totalSupport[j] = label.CountOnes()
	}

	scratch, err := bitvector.New(n)
	if err != nil {
		return nil, err
	}
	pe.scratch = scratch

	return pe, nil
}

// classCounts returns, for each class, the number of samples in captures
// belonging to that class.
func (pe *posteriorEvaluator) classCounts(captures *bitvector.BitVector) ([]int, error) {
	counts := make([]int, pe.nClasses)
	for j, label := range pe.labels {
		if err := bitvector.And(pe.scratch, captures, label); err != nil {
			return nil, err
		}
		counts[j] = pe.scratch.CountOnes()
	}

	return counts, nil
}

// Evaluate scores rs exactly (logPosterior) and computes a prefix bound
// that trusts positions [0, lengthBound) and substitutes an optimistic
// completion term for whatever support remains beyond them. lengthBound
// must be in [1, rs.Len()].
func (pe *posteriorEvaluator) Evaluate(rs *ruleset.RuleSet, lengthBound int) (logPosterior, prefixBound float64, err error) {
	l := rs.Len()
	if lengthBound < 1 || lengthBound > l {
		return 0, 0, ErrConfig
	}

	logPrior := pe.logLambdaPMF[clampIdx(l-1, len(pe.logLambdaPMF)-1)]
	boundIdx := clampIdx(maxIntOf(l-1, int(math.Floor(pe.clampedLambda))), len(pe.logLambdaPMF)-1)
	prefixPrior := pe.logLambdaPMF[boundIdx]

	cardCountLocal := append([]int(nil), pe.cardCount...)
	norm := pe.etaNorm
	priorBoundary := minInt(l-1, lengthBound)
	for i := 0; i < l-1; i++ {
		c := pe.cardinality[rs.RuleID(i)]
		term := pe.logEtaPMF[c] - math.Log(norm) - math.Log(float64(cardCountLocal[c])+cardinalityEpsilon)
		logPrior += term
		if i < priorBoundary {
			prefixPrior += term
		}
		cardCountLocal[c]--
		if cardCountLocal[c] <= 0 {
			norm -= math.Exp(pe.logEtaPMF[c])
		}
	}

	var logLikelihood, prefixLikelihood float64
	supportsRemaining := append([]int(nil), pe.totalSupport...)
	for k := 0; k < l; k++ {
		counts, cerr := pe.classCounts(rs.Captures(k))
		if cerr != nil {
			return 0, 0, cerr
		}
		total := 0
		for j, c := range counts {
			supportsRemaining[j] -= c
			total += c
		}
		term := -pe.lgammaCached(total + pe.alphaSum)
		for j, c := range counts {
			term += pe.lgammaCached(c + pe.alpha[j])
		}
		logLikelihood += term

		if k < lengthBound {
			prefixLikelihood += term
			if k == lengthBound-1 {
				for j := range pe.alpha {
					// A class with no support left would add a non-positive
					// term and could pull the bound below the exact value.
					if supportsRemaining[j] == 0 {
						continue
					}
					prefixLikelihood += pe.logGammaSum - pe.lgammaCached(pe.alpha[j]) +
						pe.lgammaCached(supportsRemaining[j]+pe.alpha[j]) -
						pe.lgammaCached(supportsRemaining[j]+pe.alphaSum)
				}
			}
		}
	}

	return logPrior + logLikelihood, prefixPrior + prefixLikelihood, nil
}
