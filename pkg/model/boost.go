package model

import (
	"errors"
	"math"
	"math/rand"
	"time"

	"gonum.org/v1/gonum/stat"
)

// GradientBoost fits regression trees to the running residuals with
// shrinkage, row subsampling and per-tree column sampling. Deterministic
// under a fixed RandomState.
type GradientBoost struct {
	// Hyperparameters / options
	NEstimators     int
	MaxDepth        int
	LearningRate    float64
	Subsample       float64 // fraction of rows drawn (without replacement) per tree
	ColsampleByTree float64 // fraction of features considered per tree
	MinSamplesLeaf  int
	RandomState     int64

	// Fitted state
	Base  float64 // initial prediction: mean target
	Trees []*RegressionTree
}

// BoostOption is functional config for GradientBoost.
type BoostOption func(*GradientBoost)

func WithNEstimators(n int) BoostOption  { return func(g *GradientBoost) { g.NEstimators = n } }
func WithMaxDepth(d int) BoostOption     { return func(g *GradientBoost) { g.MaxDepth = d } }
func WithLearningRate(lr float64) BoostOption {
	return func(g *GradientBoost) { g.LearningRate = lr }
}
func WithSubsample(f float64) BoostOption { return func(g *GradientBoost) { g.Subsample = f } }
func WithColsampleByTree(f float64) BoostOption {
	return func(g *GradientBoost) { g.ColsampleByTree = f }
}
func WithMinSamplesLeaf(n int) BoostOption {
	return func(g *GradientBoost) { g.MinSamplesLeaf = n }
}
func WithRandomState(seed int64) BoostOption {
	return func(g *GradientBoost) { g.RandomState = seed }
}

// NewGradientBoost initializes the ensemble with sensible defaults.
func NewGradientBoost(opts ...BoostOption) *GradientBoost {
	g := &GradientBoost{
		NEstimators:     100,
		MaxDepth:        3,
		LearningRate:    0.1,
		Subsample:       1.0,
		ColsampleByTree: 1.0,
		MinSamplesLeaf:  1,
		RandomState:     time.Now().UnixNano(),
	}
	for _, o := range opts {
		o(g)
	}
	return g
}

// Fit trains the ensemble. Boosting is sequential: each tree fits the
// residual left by the sum of its predecessors.
func (g *GradientBoost) Fit(X [][]float64, y []float64) error {
	n := len(X)
	if n == 0 {
		return errors.New("boost: empty X")
	}
	if len(y) != n {
		return errors.New("boost: X and y length mismatch")
	}
	p := len(X[0])
	for i := range X {
		if len(X[i]) != p {
			return errors.New("boost: inconsistent number of features in X rows")
		}
	}

	rnd := rand.New(rand.NewSource(g.RandomState))

	g.Base = stat.Mean(y, nil)
	pred := make([]float64, n)
	for i := range pred {
		pred[i] = g.Base
	}

	nRows := int(math.Round(g.Subsample * float64(n)))
	if nRows < 1 {
		nRows = 1
	}
	nCols := int(math.Ceil(g.ColsampleByTree * float64(p)))
	if nCols < 1 {
		nCols = 1
	}

	residual := make([]float64, n)
	g.Trees = make([]*RegressionTree, 0, g.NEstimators)
	for e := 0; e < g.NEstimators; e++ {
		for i := range residual {
			residual[i] = y[i] - pred[i]
		}

		rows := rnd.Perm(n)[:nRows]
		feats := rnd.Perm(p)[:nCols]

		tree := NewRegressionTree(
			WithTreeMaxDepth(g.MaxDepth),
			WithTreeMinSamplesLeaf(g.MinSamplesLeaf),
		)
		if err := tree.FitSubset(X, residual, rows, feats); err != nil {
			return err
		}
		g.Trees = append(g.Trees, tree)

		for i := range pred {
			pred[i] += g.LearningRate * tree.PredictOne(X[i])
		}
	}
	return nil
}

// Predict returns ensemble predictions for rows in X.
func (g *GradientBoost) Predict(X [][]float64) []float64 {
	out := make([]float64, len(X))
	for i, row := range X {
		sum := g.Base
		for _, tree := range g.Trees {
			sum += g.LearningRate * tree.PredictOne(row)
		}
		out[i] = sum
	}
	return out
}
