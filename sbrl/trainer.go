package sbrl

import (
	"errors"

	"github.com/katalvlaran/sbrl/bitvector"
	"github.com/katalvlaran/sbrl/ruleset"
)

// Candidate describes one candidate rule available to the search. ID 0 is
// reserved for the synthetic default rule (an all-ones Truthtable) and is
// supplied by Train automatically; callers pass candidates starting at 1.
type Candidate struct {
	// Cardinality is the number of clauses the rule combines (1..MaxCardinality).
	Cardinality int

	// Truthtable has one bit per sample, set where the rule matches.
	Truthtable *bitvector.BitVector
}

// Train searches for the rule list maximizing the Bayesian posterior over
// n samples, nClasses label classes, and the given candidate rules, and
// computes the posterior-mean class distribution (theta) for the winning
// list. labels[j] is the indicator bitvector for class j; the labels must
// partition the n samples (every sample belongs to exactly one class).
func Train(n int, labels []*bitvector.BitVector, candidates []Candidate, opts Options) (Result, error) {
	if len(candidates) == 0 {
		return Result{}, ErrNoCandidates
	}

	defaultTT, err := bitvector.New(n)
	if err != nil {
		return Result{}, err
	}
	defaultTT.SetAll()

	truthtables := make([]*bitvector.BitVector, len(candidates)+1)
	cardinalities := make([]int, len(candidates)+1)
	truthtables[0] = defaultTT
	for i, c := range candidates {
		if c.Cardinality < 1 || c.Cardinality > MaxCardinality {
			return Result{}, ErrConfig
		}
		truthtables[i+1] = c.Truthtable
		cardinalities[i+1] = c.Cardinality
	}
	r := len(truthtables)

	var warnSink Sink
	if opts.Verbosity >= VerbosityWarn {
		warnSink = opts.Sink
	}
	evaluator, err := setupPosteriorEvaluator(n, labels, cardinalities, opts.Lambda, opts.Eta, opts.Alpha, warnSink)
	if err != nil {
		return Result{}, err
	}

	baseline, err := ruleset.Init([]int{0}, truthtables, n)
	if err != nil {
		return Result{}, err
	}
	vStar, _, err := evaluator.Evaluate(baseline, baseline.Len())
	if err != nil {
		return Result{}, err
	}

	processRNG := rngFromSeed(opts.Seed)
	perm := permRange(r, deriveRNG(processRNG, 0))
	cursor := 0

	var chainSink Sink
	if opts.Verbosity >= VerbosityChain {
		chainSink = opts.Sink
	}
	sink := sinkOrDiscard(chainSink)

	best := Result{RuleIDs: baseline.Backup(), LogPosterior: vStar}
	for i := 0; i < opts.NChains; i++ {
		chainRNG := deriveRNG(processRNG, uint64(i)+1)
		chain, err := newMCMCChain(evaluator, truthtables, perm, &cursor, vStar, chainRNG)
		if err != nil {
			if errors.Is(err, ErrNoInitialization) {
				continue
			}

			return Result{}, err
		}
		if err := chain.run(opts.MaxIterations); err != nil {
			return Result{}, err
		}
		sink.Printf("sbrl: chain %d finished, log posterior %.6f", i, chain.bestLogPosterior)
		if chain.bestLogPosterior > best.LogPosterior {
			best = Result{RuleIDs: chain.bestIDs, LogPosterior: chain.bestLogPosterior}
		}
	}

	finalRS, err := ruleset.Init(best.RuleIDs, truthtables, n)
	if err != nil {
		return Result{}, err
	}
	theta, err := computeTheta(finalRS, labels, evaluator.alpha, evaluator.alphaSum)
	if err != nil {
		return Result{}, err
	}
	best.Theta = theta

	return best, nil
}

// computeTheta returns, for each rule-list position, the posterior-mean
// class distribution theta[position][class] = (n[class]+alpha[class]) /
// (total+alphaSum).
func computeTheta(rs *ruleset.RuleSet, labels []*bitvector.BitVector, alpha []int, alphaSum int) ([][]float64, error) {
	scratch, err := bitvector.New(rs.N())
	if err != nil {
		return nil, err
	}

	theta := make([][]float64, rs.Len())
	for k := 0; k < rs.Len(); k++ {
		row := make([]float64, len(labels))
		total := 0
		counts := make([]int, len(labels))
		for j, label := range labels {
			if err := bitvector.And(scratch, rs.Captures(k), label); err != nil {
				return nil, err
			}
			counts[j] = scratch.CountOnes()
			total += counts[j]
		}
		denom := float64(total + alphaSum)
		for j := range row {
			row[j] = (float64(counts[j]) + float64(alpha[j])) / denom
		}
		theta[k] = row
	}

	return theta, nil
}
