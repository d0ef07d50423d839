// Package ruleset: sentinel error set.
// Every exported operation returns these sentinels instead of ad-hoc
// fmt.Errorf so callers can match with errors.Is. Invariant violations
// (ErrPartitionIncomplete, ErrPopcountMismatch) signal a programming bug in
// the caller or in this package itself; they are not expected to occur in
// correct use and callers should treat them as fatal to the run.
package ruleset

import "errors"

var (
	// ErrInvalidLength is returned when Init is given zero rule ids.
	ErrInvalidLength = errors.New("ruleset: length must be at least 1")

	// ErrInvalidDefaultPosition is returned when the last id is not the
	// default rule (id 0), or when an operation would move the default
	// rule away from the final position.
	ErrInvalidDefaultPosition = errors.New("ruleset: default rule (id 0) must be the last entry")

	// ErrPositionOutOfRange is returned when a position argument falls
	// outside the valid range for the requested operation.
	ErrPositionOutOfRange = errors.New("ruleset: position out of range")

	// ErrUnknownRuleID is returned when a rule id has no corresponding
	// truth table in the slice passed to Init/Add/SwapAny.
	ErrUnknownRuleID = errors.New("ruleset: rule id out of range of truth table slice")

	// ErrPartitionIncomplete is returned when the incremental partition
	// algorithm finishes with samples still unaccounted for. Under correct
	// input (last id is the all-ones default rule) this cannot happen.
	ErrPartitionIncomplete = errors.New("ruleset: capture partition does not cover all samples")

	// ErrPopcountMismatch is returned when swap_any's bookkeeping ends with
	// a nonzero "still to place" residue, indicating total popcount was not
	// conserved across the swap.
	ErrPopcountMismatch = errors.New("ruleset: popcount not conserved across swap")
)
