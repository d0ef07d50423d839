package sbrl

import "github.com/katalvlaran/sbrl/bitvector"

// Predict applies a trained rule list to new samples: for each rule-list
// position k in order, a sample is assigned theta[k] the first time a
// rule's truthtable (evaluated over the new samples) matches it and no
// earlier position already claimed it. ruleIDs and theta come from a
// Result returned by Train; truthtables is indexed by rule id the same
// way the training candidates were (id 0 is the all-ones default).
//
// Predict performs no posterior evaluation; it is a pure function of the
// learned list and the new rule-match vectors.
func Predict(n int, ruleIDs []int, theta [][]float64, truthtables []*bitvector.BitVector) ([][]float64, error) {
	notCaptured, err := bitvector.New(n)
	if err != nil {
		return nil, err
	}
	notCaptured.SetAll()

	scratch, err := bitvector.New(n)
	if err != nil {
		return nil, err
	}

	assignment := make([][]float64, n)
	for k, id := range ruleIDs {
		if err := bitvector.And(scratch, notCaptured, truthtables[id]); err != nil {
			return nil, err
		}
		for i := 0; i < n; i++ {
			set, err := scratch.Get(i)
			if err != nil {
				return nil, err
			}
			if set {
				assignment[i] = theta[k]
			}
		}
		if err := notCaptured.AndEqNot(truthtables[id]); err != nil {
			return nil, err
		}
	}

	return assignment, nil
}

// Accuracy scores predicted per-sample class distributions against known
// labels by taking, for each sample, the class with the highest predicted
// probability and comparing it to the label partition. It returns
// 1 - wrong/total, the fraction of samples classified correctly.
func Accuracy(n int, assignment [][]float64, labels []*bitvector.BitVector) float64 {
	wrong := 0
	for i := 0; i < n; i++ {
		row := assignment[i]
		best := 0
		for j := 1; j < len(row); j++ {
			if row[j] > row[best] {
				best = j
			}
		}
		inClass, err := labels[best].Get(i)
		if err != nil {
			continue
		}
		if !inClass {
			wrong++
		}
	}

	return 1 - float64(wrong)/float64(n)
}
