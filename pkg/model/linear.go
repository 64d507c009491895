package model

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// LinearRegression is the ordinary least-squares baseline used when there
// are too few samples to validate a boosted model. Fitting solves the
// normal equations with a tiny ridge term, which keeps the system solvable
// even when there are fewer rows than features.
type LinearRegression struct {
	Weights   []float64
	Intercept float64
}

const ridgeEps = 1e-8

// NewLinearRegression returns an unfitted model.
func NewLinearRegression() *LinearRegression { return &LinearRegression{} }

// Fit estimates the intercept and per-feature weights from X and y.
func (m *LinearRegression) Fit(X [][]float64, y []float64) error {
	n := len(X)
	if n == 0 {
		return errors.New("linear: empty X")
	}
	if len(y) != n {
		return errors.New("linear: X and y length mismatch")
	}
	p := len(X[0])

	// Design matrix with a leading ones column for the intercept.
	a := mat.NewDense(n, p+1, nil)
	for i, row := range X {
		if len(row) != p {
			return errors.New("linear: inconsistent number of features in X rows")
		}
		a.Set(i, 0, 1)
		for j, v := range row {
			a.Set(i, j+1, v)
		}
	}
	b := mat.NewVecDense(n, append([]float64(nil), y...))

	var ata mat.Dense
	ata.Mul(a.T(), a)
	for i := 0; i <= p; i++ {
		ata.Set(i, i, ata.At(i, i)+ridgeEps)
	}
	var atb mat.VecDense
	atb.MulVec(a.T(), b)

	var beta mat.VecDense
	if err := beta.SolveVec(&ata, &atb); err != nil {
		return fmt.Errorf("linear: solve normal equations: %w", err)
	}

	m.Intercept = beta.AtVec(0)
	m.Weights = make([]float64, p)
	for j := 0; j < p; j++ {
		m.Weights[j] = beta.AtVec(j + 1)
	}
	return nil
}

// Predict returns predictions for rows in X. Rows longer than the fitted
// weight vector are truncated, shorter ones treat missing columns as zero.
func (m *LinearRegression) Predict(X [][]float64) []float64 {
	pred := make([]float64, len(X))
	for i, row := range X {
		sum := m.Intercept
		for j, v := range row {
			if j >= len(m.Weights) {
				break
			}
			sum += m.Weights[j] * v
		}
		pred[i] = sum
	}
	return pred
}
