package mealdata

import (
	"math"
	"testing"
)

func mealRow(p, c, f, cal float64) Row {
	return Row{Date: "2025-09-02", EntryType: "meal", MealType: "dinner",
		ProteinG: p, CarbsG: c, FatG: f, CaloriesKcal: cal,
		DurationMin: math.NaN(), DistanceKm: math.NaN()}
}

func TestSynthesizeCalories(t *testing.T) {
	got := SynthesizeCalories(30, 60, 10)
	want := 4.0*30 + 4.0*60 + 9.0*10
	if got != want {
		t.Errorf("expected %v kcal, got %v", want, got)
	}
}

func TestBuild_SynthesizesMissingCalories(t *testing.T) {
	nan := math.NaN()
	rows := []Row{
		mealRow(35, 45, 15, nan),
		mealRow(12, 25, 15, 280),
	}
	ds := Build(rows)
	if len(ds.Y) != 2 {
		t.Fatalf("expected 2 usable rows, got %d", len(ds.Y))
	}
	want := 4.0*35 + 4.0*45 + 9.0*15
	if ds.Y[0] != want {
		t.Errorf("expected synthesized label %v, got %v", want, ds.Y[0])
	}
	if ds.Y[1] != 280 {
		t.Errorf("expected real label 280, got %v", ds.Y[1])
	}
	if ds.Synthetic != 1 {
		t.Errorf("expected 1 synthetic label, got %d", ds.Synthetic)
	}
}

func TestBuild_ExcludesRowsMissingMacros(t *testing.T) {
	nan := math.NaN()
	rows := []Row{
		mealRow(nan, 45, 15, 450), // calories present, protein missing
		mealRow(35, nan, 15, 450),
		mealRow(35, 45, nan, 450),
		mealRow(35, 45, 15, 450),
	}
	ds := Build(rows)
	if len(ds.Y) != 1 {
		t.Fatalf("expected 1 usable row, got %d", len(ds.Y))
	}
	if ds.Y[0] != 450 {
		t.Errorf("expected label 450, got %v", ds.Y[0])
	}
}

func TestBuild_IgnoresNonMealRows(t *testing.T) {
	rows := []Row{
		{Date: "2025-09-02", EntryType: "workout", WorkoutType: "run",
			ProteinG: 10, CarbsG: 10, FatG: 10, CaloriesKcal: 200,
			DurationMin: 30, DistanceKm: 5},
		mealRow(35, 45, 15, 450),
	}
	ds := Build(rows)
	if len(ds.Y) != 1 {
		t.Fatalf("expected 1 usable row, got %d", len(ds.Y))
	}
}

func TestBuild_FeatureOrder(t *testing.T) {
	ds := Build([]Row{mealRow(1, 2, 3, 100)})
	want := []float64{1, 2, 3}
	for i, v := range want {
		if ds.X[0][i] != v {
			t.Errorf("feature %d: expected %v, got %v", i, v, ds.X[0][i])
		}
	}
}

func TestSummarize(t *testing.T) {
	nan := math.NaN()
	rows := []Row{
		{EntryType: "workout"}, // not a meal
		mealRow(35, 45, 15, 450),
		mealRow(35, 45, 15, nan), // macros only
		mealRow(nan, 45, 15, 450),
	}
	s := Summarize(rows, 10)
	if s.Total != 4 {
		t.Errorf("expected 4 total rows, got %d", s.Total)
	}
	if s.Meals != 3 {
		t.Errorf("expected 3 meal rows, got %d", s.Meals)
	}
	if s.WithMacros != 2 {
		t.Errorf("expected 2 rows with macros, got %d", s.WithMacros)
	}
	if s.WithCalories != 2 {
		t.Errorf("expected 2 rows with calories, got %d", s.WithCalories)
	}
	if s.Usable != 1 {
		t.Errorf("expected 1 usable row, got %d", s.Usable)
	}
	if len(s.Problems) != 2 {
		t.Errorf("expected 2 problem rows, got %d", len(s.Problems))
	}
}

func TestSummarize_CapsProblemRows(t *testing.T) {
	nan := math.NaN()
	rows := make([]Row, 15)
	for i := range rows {
		rows[i] = mealRow(nan, 1, 1, 100)
	}
	s := Summarize(rows, 10)
	if len(s.Problems) != 10 {
		t.Errorf("expected problems capped at 10, got %d", len(s.Problems))
	}
}
