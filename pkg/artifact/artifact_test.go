package artifact

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/forwauzz/fitness-ai/pkg/model"
)

func fitted(t *testing.T) (*model.LinearRegression, [][]float64) {
	t.Helper()
	X := [][]float64{{35, 45, 15}, {1, 13, 1}, {18, 35, 12}, {42, 35, 18}}
	y := make([]float64, len(X))
	for i, row := range X {
		y[i] = 4*row[0] + 4*row[1] + 9*row[2]
	}
	m := model.NewLinearRegression()
	if err := m.Fit(X, y); err != nil {
		t.Fatal(err)
	}
	return m, X
}

func TestModelRoundTrip_Linear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.bin")
	m, X := fitted(t)
	if err := SaveModel(path, m); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}
	got, err := LoadModel(path)
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	want := m.Predict(X)
	have := got.Predict(X)
	for i := range want {
		if want[i] != have[i] {
			t.Errorf("prediction %d changed across round trip: %v vs %v", i, want[i], have[i])
		}
	}
}

func TestModelRoundTrip_Boost(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.bin")
	X := [][]float64{{0, 0, 0}, {10, 0, 0}, {0, 10, 0}, {0, 0, 10}, {10, 10, 10}}
	y := []float64{0, 40, 40, 90, 170}
	g := model.NewGradientBoost(model.WithNEstimators(20), model.WithRandomState(42))
	if err := g.Fit(X, y); err != nil {
		t.Fatal(err)
	}
	if err := SaveModel(path, g); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}
	got, err := LoadModel(path)
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if _, ok := got.(*model.GradientBoost); !ok {
		t.Fatalf("expected *model.GradientBoost, got %T", got)
	}
	want := g.Predict(X)
	have := got.Predict(X)
	for i := range want {
		if want[i] != have[i] {
			t.Errorf("prediction %d changed across round trip: %v vs %v", i, want[i], have[i])
		}
	}
}

func TestEnsureModel_Missing(t *testing.T) {
	err := EnsureModel(filepath.Join(t.TempDir(), "model.bin"))
	if err == nil {
		t.Fatal("expected error for missing model")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("expected not-found message, got %v", err)
	}
}

func TestEnsureModel_Undersized(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.bin")
	if err := os.WriteFile(path, []byte("tiny"), 0o644); err != nil {
		t.Fatal(err)
	}
	err := EnsureModel(path)
	if err == nil {
		t.Fatal("expected error for undersized model")
	}
	if !strings.Contains(err.Error(), "too small") {
		t.Errorf("expected too-small message, got %v", err)
	}
}

func TestEnsureModel_OK(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.bin")
	m, _ := fitted(t)
	if err := SaveModel(path, m); err != nil {
		t.Fatal(err)
	}
	if err := EnsureModel(path); err != nil {
		t.Errorf("unexpected error for valid model: %v", err)
	}
}

func TestMetadataRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metadata.json")
	md := Metadata{
		SavedAt:         "2025-09-03 10:00:00",
		ModelPath:       "models/model_gb.bin",
		NSamples:        5,
		SyntheticLabels: 1,
		CVNote:          "LOO CV",
		Metrics: map[string]Metric{
			"mae_mean": 12.5,
			"r2_mean":  Metric(math.NaN()),
		},
		Schema: []string{"protein_g", "carbs_g", "fat_g"},
		Label:  "calories_kcal (real or synthetic via 4/4/9)",
	}
	if err := md.Save(path); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}
	got, err := LoadMetadata(path)
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if got.CVNote != "LOO CV" {
		t.Errorf("expected cv_note LOO CV, got %q", got.CVNote)
	}
	if got.Metrics["mae_mean"] != 12.5 {
		t.Errorf("expected mae_mean 12.5, got %v", got.Metrics["mae_mean"])
	}
	if !math.IsNaN(float64(got.Metrics["r2_mean"])) {
		t.Errorf("expected r2_mean NaN after round trip, got %v", got.Metrics["r2_mean"])
	}
	for i, col := range md.Schema {
		if got.Schema[i] != col {
			t.Errorf("schema column %d changed: %q vs %q", i, col, got.Schema[i])
		}
	}
}

func TestMetricMarshalsNaNAsNull(t *testing.T) {
	data, err := Metric(math.NaN()).MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "null" {
		t.Errorf("expected null, got %s", data)
	}
}
