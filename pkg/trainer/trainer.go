// Package trainer selects a validation strategy from the usable sample
// count, fits the model, and produces the artifact metadata.
package trainer

import (
	"errors"
	"math"
	"time"

	"github.com/forwauzz/fitness-ai/pkg/artifact"
	"github.com/forwauzz/fitness-ai/pkg/model"
	"github.com/forwauzz/fitness-ai/pkg/validate"
)

// Seed fixes every random choice in a training run so results reproduce.
const Seed = 42

// Sample-count thresholds for the validation strategy.
const (
	minHoldout = 10 // n >= 10: 75/25 holdout split
	minKFold   = 6  // 6 <= n < 10: 3-fold CV
	minLOO     = 3  // 3 <= n < 6: leave-one-out CV
)

// Validation strategy notes recorded in metadata.
const (
	NoteHoldout  = "holdout 25%"
	NoteKFold    = "KFold CV"
	NoteLOO      = "LOO CV"
	NoteBaseline = "baseline (too few samples)"
)

// ErrNoUsableRows means the log had no meal rows with complete macros and
// a real or synthesizable calorie label.
var ErrNoUsableRows = errors.New("trainer: no usable rows, need macros (protein_g, carbs_g, fat_g) and/or calories_kcal")

// Result is a fitted model plus the metadata describing the run.
type Result struct {
	Model    model.Regressor
	Metadata artifact.Metadata
}

// Train fits a regressor on X and y, picking the strategy from the sample
// count, and fills in the metadata record. modelPath and schema are passed
// through into metadata; synthetic is the count of 4/4/9-filled labels.
func Train(X [][]float64, y []float64, synthetic int, schema []string, modelPath string) (Result, error) {
	n := len(y)
	if n == 0 {
		return Result{}, ErrNoUsableRows
	}

	var (
		m       model.Regressor
		note    string
		metrics = map[string]artifact.Metric{}
	)

	switch {
	case n >= minHoldout:
		trainIdx, testIdx := validate.TrainTestSplit(n, 0.25, Seed)
		XTrain, yTrain := validate.Take(X, y, trainIdx)
		XTest, yTest := validate.Take(X, y, testIdx)

		gb := holdoutModel()
		if err := gb.Fit(XTrain, yTrain); err != nil {
			return Result{}, err
		}
		yPred := gb.Predict(XTest)
		metrics["r2"] = artifact.Metric(model.R2(yTest, yPred))
		metrics["mae"] = artifact.Metric(model.MAE(yTest, yPred))
		m, note = gb, NoteHoldout

	case n >= minLOO:
		var folds [][]int
		if n >= minKFold {
			folds, note = validate.KFold(n, 3, Seed), NoteKFold
		} else {
			folds, note = validate.LeaveOneOut(n), NoteLOO
		}

		r2s := make([]float64, 0, len(folds))
		maes := make([]float64, 0, len(folds))
		for _, testIdx := range folds {
			trainIdx := validate.Complement(n, testIdx)
			XTrain, yTrain := validate.Take(X, y, trainIdx)
			XTest, yTest := validate.Take(X, y, testIdx)

			fold := cvModel()
			if err := fold.Fit(XTrain, yTrain); err != nil {
				return Result{}, err
			}
			yPred := fold.Predict(XTest)
			r2s = append(r2s, model.R2(yTest, yPred))
			maes = append(maes, model.MAE(yTest, yPred))
		}
		metrics["r2_mean"] = artifact.Metric(model.NaNMean(r2s))
		metrics["mae_mean"] = artifact.Metric(model.NaNMean(maes))

		// Final fit on all data.
		gb := cvModel()
		if err := gb.Fit(X, y); err != nil {
			return Result{}, err
		}
		m = gb

	default:
		// 1-2 samples: linear baseline, no validation.
		lin := model.NewLinearRegression()
		if err := lin.Fit(X, y); err != nil {
			return Result{}, err
		}
		metrics["r2"] = artifact.Metric(math.NaN())
		metrics["mae"] = artifact.Metric(math.NaN())
		m, note = lin, NoteBaseline
	}

	md := artifact.Metadata{
		SavedAt:         time.Now().Format(artifact.SavedAtFormat),
		ModelPath:       modelPath,
		NSamples:        n,
		SyntheticLabels: synthetic,
		CVNote:          note,
		Metrics:         metrics,
		Schema:          schema,
		Label:           "calories_kcal (real or synthetic via 4/4/9)",
	}
	return Result{Model: m, Metadata: md}, nil
}

func holdoutModel() *model.GradientBoost {
	return model.NewGradientBoost(
		model.WithNEstimators(300),
		model.WithMaxDepth(4),
		model.WithLearningRate(0.08),
		model.WithSubsample(0.9),
		model.WithColsampleByTree(0.9),
		model.WithRandomState(Seed),
	)
}

func cvModel() *model.GradientBoost {
	return model.NewGradientBoost(
		model.WithNEstimators(200),
		model.WithMaxDepth(3),
		model.WithLearningRate(0.1),
		model.WithSubsample(0.9),
		model.WithColsampleByTree(0.9),
		model.WithRandomState(Seed),
	)
}
