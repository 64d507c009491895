// Package model implements the two regressors the trainer chooses
// between: an exact least-squares linear baseline and gradient-boosted
// regression trees.
package model

// Regressor is the supervised learning interface shared by both models.
type Regressor interface {
	Fit(X [][]float64, y []float64) error
	Predict(X [][]float64) []float64
}
