// Package sbrl: sentinel error set.
package sbrl

import "errors"

var (
	// ErrConfig is returned when Options are structurally invalid: a
	// non-positive Lambda or Eta, an Alpha slice with fewer than two
	// entries or an entry below 1, or a candidate-rule cardinality outside
	// [1, MaxCardinality].
	ErrConfig = errors.New("sbrl: invalid configuration")

	// ErrNoCandidates is returned when Train is given zero candidate rules.
	ErrNoCandidates = errors.New("sbrl: no candidate rules supplied")

	// ErrNoInitialization is returned when a chain tries every non-default
	// id in the shared permutation without finding a single-rule starting list
	// whose prefix bound clears the default-only threshold.
	ErrNoInitialization = errors.New("sbrl: no initialization found")

	// ErrNoCandidateRule is returned when the proposer cannot find an
	// unused candidate rule id even after its deterministic fallback scan.
	ErrNoCandidateRule = errors.New("sbrl: no unused candidate rule available")
)
