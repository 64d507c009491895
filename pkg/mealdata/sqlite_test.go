package mealdata

import (
	"math"
	"path/filepath"
	"testing"
)

func TestStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "meals.db")
	store, err := OpenStore(path)
	if err != nil {
		t.Fatalf("unexpected open error: %v", err)
	}
	defer store.Close()

	rows := SampleRows()
	rows[0].CaloriesKcal = math.NaN() // exercise NULL round trip
	if err := store.SaveRows(rows); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}

	got, err := store.LoadRows()
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if len(got) != len(rows) {
		t.Fatalf("expected %d rows, got %d", len(rows), len(got))
	}
	if !math.IsNaN(got[0].CaloriesKcal) {
		t.Errorf("expected NULL calories to come back as NaN, got %v", got[0].CaloriesKcal)
	}
	if got[1].CaloriesKcal != 68 {
		t.Errorf("expected calories 68, got %v", got[1].CaloriesKcal)
	}
	if got[0].Items != rows[0].Items {
		t.Errorf("expected items %q, got %q", rows[0].Items, got[0].Items)
	}
	if got[3].MealType != "lunch" {
		t.Errorf("expected meal_type lunch, got %q", got[3].MealType)
	}
}

func TestStoreAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "meals.db")
	store, err := OpenStore(path)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	if err := store.SaveRows(SampleRows()[:2]); err != nil {
		t.Fatal(err)
	}
	if err := store.SaveRows(SampleRows()[2:]); err != nil {
		t.Fatal(err)
	}
	got, err := store.LoadRows()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 5 {
		t.Errorf("expected 5 rows after two batches, got %d", len(got))
	}
}
