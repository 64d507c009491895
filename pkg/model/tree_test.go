package model

import (
	"math"
	"testing"
)

func TestRegressionTree_PerfectSplit(t *testing.T) {
	// Feature 0 below 0.5 => 10, above => 20.
	X := [][]float64{{0}, {0}, {0}, {1}, {1}, {1}}
	y := []float64{10, 10, 10, 20, 20, 20}
	tree := NewRegressionTree(WithTreeMaxDepth(2))
	if err := tree.Fit(X, y); err != nil {
		t.Fatalf("unexpected fit error: %v", err)
	}
	if got := tree.PredictOne([]float64{0}); got != 10 {
		t.Errorf("expected 10, got %v", got)
	}
	if got := tree.PredictOne([]float64{1}); got != 20 {
		t.Errorf("expected 20, got %v", got)
	}
}

func TestRegressionTree_LeafIsMean(t *testing.T) {
	// Depth 0 cap is "no limit" so force a pure leaf via constant feature.
	X := [][]float64{{1}, {1}, {1}}
	y := []float64{10, 20, 30}
	tree := NewRegressionTree()
	if err := tree.Fit(X, y); err != nil {
		t.Fatalf("unexpected fit error: %v", err)
	}
	if got := tree.PredictOne([]float64{1}); math.Abs(got-20) > 1e-12 {
		t.Errorf("expected mean 20, got %v", got)
	}
}

func TestRegressionTree_MinSamplesLeaf(t *testing.T) {
	X := [][]float64{{0}, {1}, {2}, {3}}
	y := []float64{0, 0, 10, 10}
	tree := NewRegressionTree(WithTreeMinSamplesLeaf(2))
	if err := tree.Fit(X, y); err != nil {
		t.Fatalf("unexpected fit error: %v", err)
	}
	// The only admissible split is the middle one.
	if got := tree.PredictOne([]float64{0.5}); got != 0 {
		t.Errorf("expected 0, got %v", got)
	}
	if got := tree.PredictOne([]float64{2.5}); got != 10 {
		t.Errorf("expected 10, got %v", got)
	}
}

func TestRegressionTree_SubsetRespectsFeatures(t *testing.T) {
	// Feature 1 separates targets; restricting to feature 0 must not split.
	X := [][]float64{{1, 0}, {1, 1}, {1, 0}, {1, 1}}
	y := []float64{0, 10, 0, 10}
	tree := NewRegressionTree()
	if err := tree.FitSubset(X, y, []int{0, 1, 2, 3}, []int{0}); err != nil {
		t.Fatalf("unexpected fit error: %v", err)
	}
	if got := tree.PredictOne([]float64{1, 1}); got != 5 {
		t.Errorf("expected mean 5 with feature 1 excluded, got %v", got)
	}
}
