// Command sbrltrain is a thin CLI wrapper around sbrl.Train: it parses
// flags, loads the rules/labels files via ruledata, runs the search, and
// prints the winning rule list and theta matrix.
//
// Ambient stack: flag and log are used here rather than a third-party CLI
// or structured-logging library (see DESIGN.md for why).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/katalvlaran/sbrl/ruledata"
	"github.com/katalvlaran/sbrl/sbrl"
)

// logSink adapts the standard logger to sbrl.Sink.
type logSink struct{ *log.Logger }

func (s logSink) Printf(format string, args ...any) { s.Logger.Printf(format, args...) }

func main() {
	var (
		rulesPath  = flag.String("rules", "", "path to the candidate-rules file")
		labelsPath = flag.String("labels", "", "path to the class-labels file")
		lambda     = flag.Float64("lambda", 8, "Poisson prior mean on rule-list length")
		eta        = flag.Float64("eta", 2, "Poisson prior mean on rule cardinality")
		maxIters   = flag.Int("max-iters", 10000, "MCMC iterations per chain")
		nChains    = flag.Int("chains", 10, "number of independent chains")
		seed       = flag.Int64("seed", 1, "RNG seed; negative means wall-clock")
		verbosity  = flag.Int("verbosity", sbrl.VerbositySilent, "0=silent, 1=warnings, 2=per-chain")
		alphaFlag  = flag.String("alpha", "", "comma-separated Dirichlet pseudo-counts, one per class (default: all 1)")
	)
	flag.Parse()

	if *rulesPath == "" || *labelsPath == "" {
		log.Fatal("sbrltrain: -rules and -labels are required")
	}

	n, candidates, features, err := ruledata.LoadRules(*rulesPath)
	if err != nil {
		log.Fatalf("sbrltrain: loading rules: %v", err)
	}
	labelsN, labels, classNames, err := ruledata.LoadLabels(*labelsPath)
	if err != nil {
		log.Fatalf("sbrltrain: loading labels: %v", err)
	}
	if labelsN != n {
		log.Fatalf("sbrltrain: rules declare %d samples, labels declare %d", n, labelsN)
	}

	alpha := make([]int, len(labels))
	for i := range alpha {
		alpha[i] = 1
	}
	if *alphaFlag != "" {
		if parsed, err := parseAlpha(*alphaFlag, len(labels)); err != nil {
			log.Fatalf("sbrltrain: -alpha: %v", err)
		} else {
			alpha = parsed
		}
	}

	opts := sbrl.DefaultOptions()
	opts.Lambda = *lambda
	opts.Eta = *eta
	opts.Alpha = alpha
	opts.MaxIterations = *maxIters
	opts.NChains = *nChains
	opts.Seed = *seed
	opts.Verbosity = *verbosity
	opts.Sink = logSink{log.New(os.Stderr, "", log.LstdFlags)}

	res, err := sbrl.Train(n, labels, candidates, opts)
	if err != nil {
		log.Fatalf("sbrltrain: training failed: %v", err)
	}

	printResult(res, features, classNames)
}

// parseAlpha parses a comma-separated list of positive integers.
func parseAlpha(s string, want int) ([]int, error) {
	var out []int
	var cur int
	started := false
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9':
			cur = cur*10 + int(c-'0')
			started = true
		case c == ',':
			if !started {
				return nil, fmt.Errorf("empty alpha entry")
			}
			out = append(out, cur)
			cur, started = 0, false
		default:
			return nil, fmt.Errorf("unexpected character %q", c)
		}
	}
	if started {
		out = append(out, cur)
	}
	if len(out) != want {
		return nil, fmt.Errorf("expected %d entries, got %d", want, len(out))
	}
	for _, v := range out {
		if v < 1 {
			return nil, fmt.Errorf("alpha entries must be >= 1")
		}
	}

	return out, nil
}

func printResult(res sbrl.Result, features, classNames []string) {
	fmt.Printf("log posterior: %.6f\n", res.LogPosterior)
	fmt.Println("rule list:")
	for pos, id := range res.RuleIDs {
		name := "default"
		if id > 0 {
			name = features[id-1]
		}
		fmt.Printf("  %d: %s  theta=%v\n", pos, name, formatTheta(res.Theta[pos], classNames))
	}
}

func formatTheta(row []float64, classNames []string) string {
	out := "{"
	for j, p := range row {
		if j > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%s=%.4f", classNames[j], p)
	}

	return out + "}"
}
