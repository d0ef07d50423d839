// Package ruleset maintains an ordered list of candidate rule indices
// together with, for each position, the bit-vector of samples that entry
// "captures" — the samples matched by its rule that no earlier entry in
// the list already captured.
//
// # What & Why
//
// The capture vectors always partition the sample universe: their union is
// every sample, and they are pairwise disjoint. Init, Add, Delete, Swap and
// SwapAny each maintain that partition incrementally rather than
// recomputing it from scratch, which keeps the inner MCMC loop cheap. The
// last entry is always rule id 0, the synthetic "default" rule whose truth
// table is all-ones; because it matches everything, it necessarily captures
// whatever no earlier entry claimed, which is what makes the partition
// complete by construction.
//
// # Determinism & Stability
//
// Every operation is a deterministic function of its inputs; no randomness
// is used here (move selection lives in the sbrl package's proposer).
//
// # Failure
//
// Allocation failures are not modeled as recoverable errors (Go's
// allocator panics rather than returning one); the sentinel errors here
// signal either bad caller input (position out of range, unknown rule id,
// default rule not last) or a broken partition invariant, which is always
// a programming bug. Duplicate rule ids are not detected.
package ruleset

import "github.com/katalvlaran/sbrl/bitvector"

// Entry is one position in a RuleSet: the candidate rule occupying that
// position and the samples it captures.
type Entry struct {
	RuleID   int
	Captures *bitvector.BitVector
}

// RuleSet is an ordered, disjoint partition of N samples across a sequence
// of candidate rule ids. The zero value is not meaningful; use Init.
type RuleSet struct {
	entries []Entry
	n       int // sample universe size
}

// Len returns the number of entries (the rule-list length L).
func (rs *RuleSet) Len() int { return len(rs.entries) }

// N returns the sample universe size.
func (rs *RuleSet) N() int { return rs.n }

// RuleID returns the candidate rule id at position k.
func (rs *RuleSet) RuleID(k int) int { return rs.entries[k].RuleID }

// Captures returns the capture BitVector at position k. The returned
// vector is owned by the RuleSet and must not be mutated by callers.
func (rs *RuleSet) Captures(k int) *bitvector.BitVector { return rs.entries[k].Captures }

// lookupTruthtable resolves a rule id against the caller-supplied slice of
// candidate truth tables (indexed by rule id; id 0 is the default rule).
func lookupTruthtable(truthtables []*bitvector.BitVector, id int) (*bitvector.BitVector, error) {
	if id < 0 || id >= len(truthtables) || truthtables[id] == nil {
		return nil, ErrUnknownRuleID
	}

	return truthtables[id], nil
}

// Init builds a RuleSet of length len(ids) over n samples. Captures are
// computed by the incremental partition algorithm: maintaining a running
// "not yet captured" vector, each entry claims whatever its rule matches
// that is still unclaimed. ids[len(ids)-1] must be 0 (the default rule);
// since its truth table is all-ones, this guarantees the final
// "not captured" vector is empty, which Init verifies explicitly.
func Init(ids []int, truthtables []*bitvector.BitVector, n int) (*RuleSet, error) {
	if len(ids) < 1 {
		return nil, ErrInvalidLength
	}
	if ids[len(ids)-1] != 0 {
		return nil, ErrInvalidDefaultPosition
	}

	notCaptured, err := bitvector.New(n)
	if err != nil {
		return nil, err
	}
	notCaptured.SetAll()

	entries := make([]Entry, len(ids))
	for k, id := range ids {
		tt, err := lookupTruthtable(truthtables, id)
		if err != nil {
			return nil, err
		}
		capt, err := bitvector.New(n)
		if err != nil {
			return nil, err
		}
		if err := bitvector.And(capt, notCaptured, tt); err != nil {
			return nil, err
		}
		entries[k] = Entry{RuleID: id, Captures: capt}
		if err := notCaptured.AndEqNot(capt); err != nil {
			return nil, err
		}
	}
	if notCaptured.CountOnes() != 0 {
		return nil, ErrPartitionIncomplete
	}

	return &RuleSet{entries: entries, n: n}, nil
}

// Add inserts a new entry for ruleID at position (0 <= position < Len()),
// shifting entries at and after position one slot later, then rebuilds
// captures from position onward by the same incremental algorithm: the
// running "not captured" vector starts as the union of whatever those
// entries captured before the insert, since ruleID may claim some of it.
func (rs *RuleSet) Add(ruleID, position int, truthtables []*bitvector.BitVector) error {
	if position < 0 || position >= len(rs.entries) {
		return ErrPositionOutOfRange
	}
	tt, err := lookupTruthtable(truthtables, ruleID)
	if err != nil {
		return err
	}

	notCaptured, err := bitvector.New(rs.n)
	if err != nil {
		return err
	}
	for k := position; k < len(rs.entries); k++ {
		if err := notCaptured.OrEq(rs.entries[k].Captures); err != nil {
			return err
		}
	}

	newEntries := make([]Entry, len(rs.entries)+1)
	copy(newEntries[:position], rs.entries[:position])
	copy(newEntries[position+1:], rs.entries[position:])
	newCaptures, err := bitvector.New(rs.n)
	if err != nil {
		return err
	}
	newEntries[position] = Entry{RuleID: ruleID, Captures: newCaptures}

	for k := position; k < len(newEntries); k++ {
		ttk := tt
		if k != position {
			ttk, err = lookupTruthtable(truthtables, newEntries[k].RuleID)
			if err != nil {
				return err
			}
		}
		if err := bitvector.And(newEntries[k].Captures, notCaptured, ttk); err != nil {
			return err
		}
		if err := notCaptured.AndEqNot(newEntries[k].Captures); err != nil {
			return err
		}
	}
	if notCaptured.CountOnes() != 0 {
		return ErrPartitionIncomplete
	}

	rs.entries = newEntries

	return nil
}

// Delete removes the entry at position (never the last/default entry).
// Its captured samples are reassigned forward: each later entry j claims
// whatever it would now match of the reclaimed samples, in order, so the
// earliest surviving entry whose rule matches a reclaimed sample gets it.
func (rs *RuleSet) Delete(position int, truthtables []*bitvector.BitVector) error {
	if position < 0 || position >= len(rs.entries)-1 {
		return ErrPositionOutOfRange
	}

	oldCaptures := rs.entries[position].Captures.Clone()
	for j := position + 1; j < len(rs.entries); j++ {
		tt, err := lookupTruthtable(truthtables, rs.entries[j].RuleID)
		if err != nil {
			return err
		}
		if err := bitvector.OrEqAnd(rs.entries[j].Captures, tt, oldCaptures); err != nil {
			return err
		}
		if err := oldCaptures.AndEqNot(rs.entries[j].Captures); err != nil {
			return err
		}
	}
	if oldCaptures.CountOnes() != 0 {
		return ErrPartitionIncomplete
	}

	rs.entries = append(rs.entries[:position], rs.entries[position+1:]...)

	return nil
}

// Swap performs the adjacent-position optimization swapping positions i and
// i+1. i+1 must not be the last (default) position.
func (rs *RuleSet) Swap(i int, truthtables []*bitvector.BitVector) error {
	if i < 0 || i+1 >= len(rs.entries) {
		return ErrPositionOutOfRange
	}
	if i+1 == len(rs.entries)-1 {
		return ErrInvalidDefaultPosition
	}

	nextTT, err := lookupTruthtable(truthtables, rs.entries[i+1].RuleID)
	if err != nil {
		return err
	}
	if err := bitvector.OrEqAnd(rs.entries[i+1].Captures, rs.entries[i].Captures, nextTT); err != nil {
		return err
	}
	if err := rs.entries[i].Captures.AndEqNot(rs.entries[i+1].Captures); err != nil {
		return err
	}
	rs.entries[i], rs.entries[i+1] = rs.entries[i+1], rs.entries[i]

	return nil
}

// SwapAny performs a general swap of the rule ids at positions i and j
// (neither may be the last/default position), recomputing captures for
// every position in [min(i,j), max(i,j)] from the union of what they
// collectively captured before the swap.
func (rs *RuleSet) SwapAny(i, j int, truthtables []*bitvector.BitVector) error {
	last := len(rs.entries) - 1
	if i < 0 || i > last || j < 0 || j > last {
		return ErrPositionOutOfRange
	}
	if i == last || j == last {
		return ErrInvalidDefaultPosition
	}
	if i == j {
		return nil
	}

	lo, hi := i, j
	if lo > hi {
		lo, hi = hi, lo
	}

	caught, err := bitvector.New(rs.n)
	if err != nil {
		return err
	}
	for k := lo; k <= hi; k++ {
		if err := caught.OrEq(rs.entries[k].Captures); err != nil {
			return err
		}
	}
	before := caught.CountOnes()

	rs.entries[i].RuleID, rs.entries[j].RuleID = rs.entries[j].RuleID, rs.entries[i].RuleID

	after := 0
	for k := lo; k <= hi; k++ {
		tt, err := lookupTruthtable(truthtables, rs.entries[k].RuleID)
		if err != nil {
			return err
		}
		if err := bitvector.And(rs.entries[k].Captures, caught, tt); err != nil {
			return err
		}
		after += rs.entries[k].Captures.CountOnes()
		if err := caught.XorEq(rs.entries[k].Captures); err != nil {
			return err
		}
	}
	if caught.CountOnes() != 0 || after != before {
		return ErrPopcountMismatch
	}

	return nil
}

// Backup returns the rule ids in order, suitable for storing as the
// best-so-far list without keeping the (mutable) RuleSet itself alive.
func (rs *RuleSet) Backup() []int {
	ids := make([]int, len(rs.entries))
	for k, e := range rs.entries {
		ids[k] = e.RuleID
	}

	return ids
}

// Copy returns a deep clone: rule ids copied, capture vectors cloned.
func (rs *RuleSet) Copy() *RuleSet {
	entries := make([]Entry, len(rs.entries))
	for k, e := range rs.entries {
		entries[k] = Entry{RuleID: e.RuleID, Captures: e.Captures.Clone()}
	}

	return &RuleSet{entries: entries, n: rs.n}
}
