package model

import (
	"errors"
	"sort"
	"sync"
)

// RegressionTree is a CART-style regression tree: numeric threshold splits
// chosen by variance reduction, mean targets at the leaves. It is the base
// learner for GradientBoost and is rarely used on its own.
type RegressionTree struct {
	MaxDepth        int // maximum depth (root depth = 0). 0 => no limit
	MinSamplesSplit int // minimum samples to attempt a split
	MinSamplesLeaf  int // minimum samples required in each leaf

	Root *treeNode
}

// treeNode holds a node in the tree. Fields are exported for gob.
type treeNode struct {
	Leaf      bool
	Feature   int
	Threshold float64 // x <= Threshold => left
	Left      *treeNode
	Right     *treeNode

	Value float64 // leaf prediction: mean target
	N     int
}

// TreeOption is functional config for RegressionTree.
type TreeOption func(*RegressionTree)

func WithTreeMaxDepth(d int) TreeOption { return func(t *RegressionTree) { t.MaxDepth = d } }
func WithTreeMinSamplesSplit(n int) TreeOption {
	return func(t *RegressionTree) { t.MinSamplesSplit = n }
}
func WithTreeMinSamplesLeaf(n int) TreeOption {
	return func(t *RegressionTree) { t.MinSamplesLeaf = n }
}

// NewRegressionTree returns a tree with sensible defaults.
func NewRegressionTree(opts ...TreeOption) *RegressionTree {
	t := &RegressionTree{
		MaxDepth:        0,
		MinSamplesSplit: 2,
		MinSamplesLeaf:  1,
	}
	for _, o := range opts {
		o(t)
	}
	return t
}

// Fit trains the tree on all rows and features of X.
func (t *RegressionTree) Fit(X [][]float64, y []float64) error {
	if len(X) == 0 {
		return errors.New("tree: empty X")
	}
	rows := make([]int, len(X))
	for i := range rows {
		rows[i] = i
	}
	feats := make([]int, len(X[0]))
	for j := range feats {
		feats[j] = j
	}
	return t.FitSubset(X, y, rows, feats)
}

// FitSubset trains on the given row indices, considering only the given
// feature indices for splits. GradientBoost uses this for row subsampling
// and per-tree column sampling.
func (t *RegressionTree) FitSubset(X [][]float64, y []float64, rows, feats []int) error {
	if len(X) == 0 || len(rows) == 0 {
		return errors.New("tree: empty training set")
	}
	if len(y) != len(X) {
		return errors.New("tree: X and y length mismatch")
	}
	t.Root = t.buildNode(X, y, rows, feats, 0)
	return nil
}

// Predict returns predictions for rows in X.
func (t *RegressionTree) Predict(X [][]float64) []float64 {
	out := make([]float64, len(X))
	for i, row := range X {
		out[i] = t.PredictOne(row)
	}
	return out
}

// PredictOne walks a single row down to a leaf.
func (t *RegressionTree) PredictOne(x []float64) float64 {
	node := t.Root
	if node == nil {
		return 0
	}
	for !node.Leaf {
		if x[node.Feature] <= node.Threshold {
			node = node.Left
		} else {
			node = node.Right
		}
	}
	return node.Value
}

type treeSplit struct {
	gain      float64
	feature   int
	threshold float64
	leftIdx   []int
	rightIdx  []int
}

func (t *RegressionTree) buildNode(X [][]float64, y []float64, idx, feats []int, depth int) *treeNode {
	node := &treeNode{N: len(idx)}

	sum, sumSq := 0.0, 0.0
	for _, ii := range idx {
		sum += y[ii]
		sumSq += y[ii] * y[ii]
	}
	mean := sum / float64(len(idx))
	parentSSE := sumSq - sum*sum/float64(len(idx))

	if len(idx) < t.MinSamplesSplit || parentSSE <= 0 {
		node.Leaf = true
		node.Value = mean
		return node
	}
	if t.MaxDepth > 0 && depth >= t.MaxDepth {
		node.Leaf = true
		node.Value = mean
		return node
	}

	// Search candidate features in parallel: one goroutine per feature,
	// best split wins.
	results := make(chan treeSplit, len(feats))
	var wg sync.WaitGroup
	for _, f := range feats {
		wg.Add(1)
		go func(f int) {
			defer wg.Done()
			results <- t.bestSplitForFeature(X, y, idx, f, parentSSE)
		}(f)
	}
	wg.Wait()
	close(results)

	best := treeSplit{feature: -1}
	for r := range results {
		if r.feature >= 0 && r.gain > best.gain {
			best = r
		}
	}

	if best.feature < 0 || best.gain <= 0 {
		node.Leaf = true
		node.Value = mean
		return node
	}

	node.Feature = best.feature
	node.Threshold = best.threshold
	node.Left = t.buildNode(X, y, best.leftIdx, feats, depth+1)
	node.Right = t.buildNode(X, y, best.rightIdx, feats, depth+1)
	return node
}

// bestSplitForFeature scans sorted thresholds for one feature, scoring
// candidates by the reduction in sum of squared errors.
func (t *RegressionTree) bestSplitForFeature(X [][]float64, y []float64, idx []int, f int, parentSSE float64) treeSplit {
	result := treeSplit{feature: -1}

	order := append([]int(nil), idx...)
	sort.Slice(order, func(a, b int) bool { return X[order[a]][f] < X[order[b]][f] })

	n := len(order)
	leftSum, leftSq := 0.0, 0.0
	totalSum, totalSq := 0.0, 0.0
	for _, ii := range order {
		totalSum += y[ii]
		totalSq += y[ii] * y[ii]
	}

	for s := 1; s < n; s++ {
		prev := order[s-1]
		leftSum += y[prev]
		leftSq += y[prev] * y[prev]

		if X[order[s]][f] == X[prev][f] {
			continue
		}
		if s < t.MinSamplesLeaf || n-s < t.MinSamplesLeaf {
			continue
		}

		rightSum := totalSum - leftSum
		rightSq := totalSq - leftSq
		leftSSE := leftSq - leftSum*leftSum/float64(s)
		rightSSE := rightSq - rightSum*rightSum/float64(n-s)
		gain := parentSSE - leftSSE - rightSSE
		if gain > result.gain {
			result = treeSplit{
				gain:      gain,
				feature:   f,
				threshold: (X[prev][f] + X[order[s]][f]) / 2,
				leftIdx:   append([]int(nil), order[:s]...),
				rightIdx:  append([]int(nil), order[s:]...),
			}
		}
	}
	return result
}
