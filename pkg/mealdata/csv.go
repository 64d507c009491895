package mealdata

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"
)

// ReadCSV loads a meal log. Columns are located by header name so extra
// columns and reordered exports are tolerated; a missing column simply
// leaves every value in it missing.
func ReadCSV(path string) ([]Row, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mealdata: open %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("mealdata: read %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("mealdata: %s has no header row", path)
	}

	col := map[string]int{}
	for i, name := range records[0] {
		col[name] = i
	}

	field := func(rec []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return rec[i]
	}
	num := func(rec []string, name string) float64 {
		return parseCell(field(rec, name))
	}

	rows := make([]Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		rows = append(rows, Row{
			Date:         field(rec, ColDate),
			EntryType:    field(rec, ColEntryType),
			MealType:     field(rec, ColMealType),
			Items:        field(rec, ColItems),
			Quantities:   field(rec, ColQuantities),
			CaloriesKcal: num(rec, ColCalories),
			ProteinG:     num(rec, ColProtein),
			CarbsG:       num(rec, ColCarbs),
			FatG:         num(rec, ColFat),
			WorkoutType:  field(rec, ColWorkoutType),
			DurationMin:  num(rec, ColDurationMin),
			DistanceKm:   num(rec, ColDistanceKm),
			GoalType:     field(rec, ColGoalType),
			GoalValue:    field(rec, ColGoalValue),
			GoalNotes:    field(rec, ColGoalNotes),
			Notes:        field(rec, ColNotes),
		})
	}
	return rows, nil
}

// WriteCSV writes rows in the canonical Header order. Missing numeric
// values become empty cells.
func WriteCSV(path string, rows []Row) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("mealdata: create %s: %w", path, err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write(Header); err != nil {
		return fmt.Errorf("mealdata: write header: %w", err)
	}
	for _, r := range rows {
		rec := []string{
			r.Date, r.EntryType, r.MealType, r.Items, r.Quantities,
			formatCell(r.CaloriesKcal), formatCell(r.ProteinG),
			formatCell(r.CarbsG), formatCell(r.FatG),
			r.WorkoutType, formatCell(r.DurationMin), formatCell(r.DistanceKm),
			r.GoalType, r.GoalValue, r.GoalNotes, r.Notes,
		}
		if err := w.Write(rec); err != nil {
			return fmt.Errorf("mealdata: write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("mealdata: flush %s: %w", path, err)
	}
	return nil
}

func parseCell(s string) float64 {
	if s == "" || s == "NA" || s == "NaN" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

func formatCell(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
