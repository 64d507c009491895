// Package validate provides the index-based splitters backing model
// validation: seeded holdout, k-fold and leave-one-out.
package validate

import "math/rand"

// TrainTestSplit splits n sample indices into train and test sets by ratio.
func TrainTestSplit(n int, testRatio float64, seed int64) (train, test []int) {
	rnd := rand.New(rand.NewSource(seed))
	indices := rnd.Perm(n)
	nTest := int(float64(n) * testRatio)
	for i, idx := range indices {
		if i < nTest {
			test = append(test, idx)
		} else {
			train = append(train, idx)
		}
	}
	return train, test
}

// KFold yields k shuffled folds of test indices covering 0..n-1.
func KFold(n, k int, seed int64) [][]int {
	rnd := rand.New(rand.NewSource(seed))
	indices := rnd.Perm(n)
	folds := make([][]int, k)
	for i, idx := range indices {
		folds[i%k] = append(folds[i%k], idx)
	}
	return folds
}

// LeaveOneOut yields n singleton test folds.
func LeaveOneOut(n int) [][]int {
	folds := make([][]int, n)
	for i := range folds {
		folds[i] = []int{i}
	}
	return folds
}

// Complement returns the indices in 0..n-1 not present in fold.
func Complement(n int, fold []int) []int {
	in := make([]bool, n)
	for _, idx := range fold {
		in[idx] = true
	}
	out := make([]int, 0, n-len(fold))
	for i := 0; i < n; i++ {
		if !in[i] {
			out = append(out, i)
		}
	}
	return out
}

// Take gathers the rows and targets at the given indices.
func Take(X [][]float64, y []float64, idx []int) ([][]float64, []float64) {
	Xs := make([][]float64, len(idx))
	ys := make([]float64, len(idx))
	for i, j := range idx {
		Xs[i] = X[j]
		ys[i] = y[j]
	}
	return Xs, ys
}
