// Package sbrl (github.com/katalvlaran/sbrl) is a from-scratch trainer for
// Scalable Bayesian Rule Lists: an MCMC search over ordered decision-rule
// lists under a Bayesian posterior that trades off list length, per-rule
// cardinality, and class fit.
//
// # What & Why
//
// Given a fixed pool of candidate boolean rules evaluated over a training
// set, and the class label of each sample, the trainer searches for the
// ordered rule list maximizing:
//
//	log P(list) = log_prior(length, cardinalities) + log_likelihood(class fit)
//
// under a Poisson prior on list length, a Poisson prior on per-rule
// cardinality, and a Dirichlet-Multinomial likelihood over the classes
// captured by each rule. The search runs several independent chains, each
// doing Metropolis-Hastings over swap/add/delete edits with a prefix-bound
// used to prune weak proposals before they are fully scored.
//
// Under the hood, everything is organized under four subpackages:
//
//	bitvector/ — fixed-width packed bit arrays with a popcount cache
//	ruleset/   — ordered rule lists with disjoint per-entry capture vectors
//	sbrl/      — posterior evaluation, proposal, MCMC chain, multi-chain driver
//	ruledata/  — text-format loader for rule/label truth tables
//
// and a thin CLI entry point:
//
//	cmd/sbrltrain/ — binds flags to sbrl.Train and prints the learned rule list
//
// # Determinism & Stability
//
//   - No time-based randomness inside the search. Every chain's RNG stream
//     is derived from a single seed; seed==0 selects a fixed default stream.
//   - Two calls with identical inputs, seed, and options are bit-identical.
//
// # Concurrency
//
// Each call to sbrl.Train builds its own precomputed tables (log-PMFs,
// log-gammas, the candidate permutation) in values owned by that call;
// there is no package-level state. Train does fill the popcount cache of
// the label BitVectors it is given, so concurrent calls that share label
// vectors are not safe without external synchronization.
//
// See sbrl.Train for the public entry point and ruledata.LoadRules /
// ruledata.LoadLabels for the file format their loader accepts.
package sbrl
