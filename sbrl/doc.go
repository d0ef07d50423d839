// Package sbrl searches for a Bayesian rule list maximizing a Dirichlet-
// multinomial/Poisson posterior over candidate classification rules, via
// Metropolis-Hastings with best-incumbent pruning.
//
// # What & Why
//
// Given n samples, a set of class labels partitioning them, and a pool of
// candidate rules (each an indicator bit over the samples plus a clause
// count), Train searches for an ordered rule list: applied top to bottom,
// the first matching rule decides a sample's class distribution. The
// posterior trades off three things via Options.Lambda/Eta/Alpha:
//
//   - shorter lists (Poisson(Lambda) prior on list length)
//   - simpler rules (Poisson(Eta) prior on a rule's clause count)
//   - better class fit (Dirichlet(Alpha)-multinomial likelihood per entry)
//
// # Algorithm & Complexity
//
//	Train (multi-chain MCMC search)
//	  Setup:  O(n + R) to precompute Poisson/lgamma tables (posterior.go).
//	  Search: NChains independent chains, each up to MaxIterations
//	          propose/evaluate/accept steps (chain.go); a chain's proposal
//	          is rejected without the Metropolis-Hastings test whenever its
//	          prefix bound does not exceed the best log posterior this
//	          chain has found so far (not just its current state),
//	          which is what makes this a biased search for the best list
//	          rather than unbiased posterior sampling.
//	  Result: the best list found (or the default-only baseline, if no
//	          chain improves on it) plus its posterior-mean theta matrix.
//
// # Determinism & Stability
//
// Options.Seed seeds one process RNG; every chain and the shared
// candidate-rule permutation derive independent substreams from it via
// deriveRNG, so a fixed seed reproduces identical results. A negative seed
// falls back to wall-clock time for non-test runs.
//
// # Concurrency
//
// Training is single-threaded: a posteriorEvaluator owns a reusable
// scratch bit-vector it mutates on every evaluation, and chains run
// sequentially, one at a time, reusing the same shared permutation
// cursor. Do not call Train concurrently from multiple goroutines against
// shared Candidate/label slices without external synchronization.
//
// # Subpackages
//
//	bitvector — packed bit arrays with cached popcount and bulk logical ops
//	ruleset   — ordered rule lists maintaining a disjoint capture partition
//	ruledata  — the text file format loader (see ruledata.LoadRules, ruledata.LoadLabels)
//
// See cmd/sbrltrain for a thin CLI wrapper around Train.
package sbrl
