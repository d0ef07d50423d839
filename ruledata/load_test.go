package ruledata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLoadRulesParsesCardinalityAndBits(t *testing.T) {
	path := writeTemp(t, "rules.txt", "n_items: 2\n"+
		"n_samples: 4\n"+
		"age>30 1100\n"+
		"age>30,income>50k 1000\n")

	n, candidates, features, err := LoadRules(path)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	require.Len(t, candidates, 2)
	assert.Equal(t, 1, candidates[0].Cardinality)
	assert.Equal(t, 2, candidates[1].Cardinality)
	assert.Equal(t, "1100", candidates[0].Truthtable.String())
	assert.Equal(t, []string{"age>30", "age>30,income>50k"}, features)
}

func TestLoadLabelsParsesClasses(t *testing.T) {
	path := writeTemp(t, "labels.txt", "n_items: 2\n"+
		"n_samples: 4\n"+
		"class0 1100\n"+
		"class1 0011\n")

	n, labels, names, err := LoadLabels(path)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	require.Len(t, labels, 2)
	assert.Equal(t, "1100", labels[0].String())
	assert.Equal(t, []string{"class0", "class1"}, names)
}

// TestLoadAcceptsTwoLineHeaderInSpecifiedOrder pins down the exact §6
// grammar: both header lines present, n_items before n_samples, for both
// file kinds — the format cmd/sbrltrain's inputs must satisfy.
func TestLoadAcceptsTwoLineHeaderInSpecifiedOrder(t *testing.T) {
	rulesPath := writeTemp(t, "rules.txt", "n_items: 1\n"+
		"n_samples: 4\n"+
		"age>30 1100\n")
	n, candidates, features, err := LoadRules(rulesPath)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	require.Len(t, candidates, 1)
	assert.Equal(t, []string{"age>30"}, features)

	labelsPath := writeTemp(t, "labels.txt", "n_items: 2\n"+
		"n_samples: 4\n"+
		"class0 1100\n"+
		"class1 0011\n")
	n, labels, names, err := LoadLabels(labelsPath)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	require.Len(t, labels, 2)
	assert.Equal(t, []string{"class0", "class1"}, names)
}

func TestLoadRejectsBadHeader(t *testing.T) {
	path := writeTemp(t, "bad.txt", "not_a_header\nn_samples: 4\nfoo 1100\n")
	_, _, _, err := LoadRules(path)
	assert.ErrorIs(t, err, ErrFormat)
}

// TestLoadRejectsSingleLineHeader guards against regressing to accepting
// only one of the two mandatory header lines.
func TestLoadRejectsSingleLineHeader(t *testing.T) {
	path := writeTemp(t, "bad.txt", "n_items: 1\nfoo 1100\n")
	_, _, _, err := LoadRules(path)
	assert.ErrorIs(t, err, ErrFormat)
}

// TestLoadRejectsReversedHeaderOrder guards the fixed n_items-then-
// n_samples order the loader and the original tool both require.
func TestLoadRejectsReversedHeaderOrder(t *testing.T) {
	path := writeTemp(t, "bad.txt", "n_samples: 4\nn_items: 1\nfoo 1100\n")
	_, _, _, err := LoadRules(path)
	assert.ErrorIs(t, err, ErrFormat)
}

func TestLoadRejectsLengthMismatch(t *testing.T) {
	path := writeTemp(t, "bad.txt", "n_items: 1\nn_samples: 4\nfoo 110\n")
	_, _, _, err := LoadRules(path)
	assert.ErrorIs(t, err, ErrFormat)
}

func TestLoadRejectsMissingFile(t *testing.T) {
	_, _, _, err := LoadRules("/nonexistent/path.txt")
	assert.ErrorIs(t, err, ErrIO)
}

func TestLoadRejectsOversizedCardinality(t *testing.T) {
	name := "a,b,c,d,e,f,g,h,i,j,k"
	path := writeTemp(t, "rules.txt", "n_items: 1\nn_samples: 2\n"+name+" 10\n")
	_, _, _, err := LoadRules(path)
	assert.ErrorIs(t, err, ErrCardinalityTooLarge)
}
