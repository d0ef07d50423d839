package ruledata

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/sbrl/bitvector"
	"github.com/katalvlaran/sbrl/sbrl"
)

// entry is one parsed "name<sep>bitstring" line.
type entry struct {
	name string
	bits *bitvector.BitVector
}

// parseHeaderLine requires line to start with prefix and parses the
// nonnegative integer that follows.
func parseHeaderLine(line, prefix string) (int, error) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, prefix) {
		return 0, ErrFormat
	}
	v := strings.TrimSpace(strings.TrimPrefix(line, prefix))
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, ErrFormat
	}

	return n, nil
}

// splitEntryLine splits "name<sep>bitstring" on runs of spaces/tabs: the
// last field is the bitstring, and the fields before it, joined by single
// spaces, are the name.
func splitEntryLine(line string) (name, bits string, err error) {
	fields := strings.FieldsFunc(line, func(r rune) bool { return r == ' ' || r == '\t' })
	if len(fields) < 2 {
		return "", "", ErrFormat
	}
	name = strings.Join(fields[:len(fields)-1], " ")
	bits = fields[len(fields)-1]

	return name, bits, nil
}

// parseEntries reads the two required header lines — "n_items:" (the
// declared number of data lines, R/C) then "n_samples:" (N, the sample
// count every bitstring is validated against) — then one entry per
// remaining non-blank line. Both header lines are mandatory and must
// appear in this order, for both rules files and labels files alike.
func parseEntries(r io.Reader) (declaredItems, declaredN int, entries []entry, err error) {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		return 0, 0, nil, ErrFormat
	}
	declaredItems, err = parseHeaderLine(scanner.Text(), "n_items:")
	if err != nil {
		return 0, 0, nil, err
	}
	if !scanner.Scan() {
		return 0, 0, nil, ErrFormat
	}
	declaredN, err = parseHeaderLine(scanner.Text(), "n_samples:")
	if err != nil {
		return 0, 0, nil, err
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		name, bitsStr, err := splitEntryLine(line)
		if err != nil {
			return 0, 0, nil, err
		}
		if len(bitsStr) != declaredN {
			return 0, 0, nil, ErrFormat
		}
		bits, err := bitvector.FromString(bitsStr)
		if err != nil {
			return 0, 0, nil, err
		}
		entries = append(entries, entry{name: name, bits: bits})
	}
	if err := scanner.Err(); err != nil {
		return 0, 0, nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	if len(entries) != declaredItems {
		return 0, 0, nil, ErrFormat
	}

	return declaredItems, declaredN, entries, nil
}

// cardinalityOf returns 1 + the number of commas in name, the convention
// the rule-list search uses for a conjunctive rule's clause count.
func cardinalityOf(name string) int {
	return 1 + strings.Count(name, ",")
}

// LoadRules reads a candidate-rule file: an "n_items:" header declaring
// the candidate-rule count, an "n_samples:" header declaring the sample
// count N, then one "feature_string<sep>bitstring" line per candidate
// rule. The returned Candidates do not include the synthetic default rule
// (id 0); sbrl.Train adds that automatically. featureStrings[i]
// corresponds to candidates[i].
func LoadRules(path string) (n int, candidates []sbrl.Candidate, featureStrings []string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, nil, nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	defer f.Close()

	_, declaredN, entries, err := parseEntries(f)
	if err != nil {
		return 0, nil, nil, err
	}

	candidates = make([]sbrl.Candidate, len(entries))
	featureStrings = make([]string, len(entries))
	for i, e := range entries {
		card := cardinalityOf(e.name)
		if card > sbrl.MaxCardinality {
			return 0, nil, nil, ErrCardinalityTooLarge
		}
		candidates[i] = sbrl.Candidate{Cardinality: card, Truthtable: e.bits}
		featureStrings[i] = e.name
	}

	return declaredN, candidates, featureStrings, nil
}

// LoadLabels reads a label file: an "n_items:" header declaring the
// class count, an "n_samples:" header declaring the sample count N, then
// one "class_name<sep>bitstring" line per class, each bitstring an
// indicator over the N samples. The class indicators must partition the
// sample universe; neither this loader nor sbrl.Train checks that.
func LoadLabels(path string) (n int, labels []*bitvector.BitVector, classNames []string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, nil, nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	defer f.Close()

	_, declaredN, entries, err := parseEntries(f)
	if err != nil {
		return 0, nil, nil, err
	}

	labels = make([]*bitvector.BitVector, len(entries))
	classNames = make([]string, len(entries))
	for i, e := range entries {
		labels[i] = e.bits
		classNames[i] = e.name
	}

	return declaredN, labels, classNames, nil
}
