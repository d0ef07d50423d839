// Package ruledata loads candidate rules and class labels from the plain
// text format described in the trainer's external interface: an
// "n_items:" header declaring the number of data lines, an "n_samples:"
// header declaring the sample count N, followed by one
// "name<sep>bitstring" line per entry, sep being a single space or tab.
package ruledata

import "errors"

var (
	// ErrIO is returned when the underlying file cannot be opened or read.
	ErrIO = errors.New("ruledata: I/O error")

	// ErrFormat is returned when a line does not parse: a missing header,
	// a missing separator, an empty bitstring, or a bitstring whose length
	// disagrees with the declared sample count.
	ErrFormat = errors.New("ruledata: malformed input")

	// ErrCardinalityTooLarge is returned when a rule's clause count (1 +
	// comma count in its feature string) exceeds sbrl.MaxCardinality.
	ErrCardinalityTooLarge = errors.New("ruledata: rule cardinality exceeds the supported maximum")
)
