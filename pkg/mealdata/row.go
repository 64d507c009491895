package mealdata

import "math"

// Column names of the meal log. The log is a loose export from the tracker:
// extra columns may appear, numeric cells are frequently empty, and the
// workout/goal columns are carried along but never used by the model.
const (
	ColDate        = "date"
	ColEntryType   = "entry_type"
	ColMealType    = "meal_type"
	ColItems       = "items"
	ColQuantities  = "quantities"
	ColCalories    = "calories_kcal"
	ColProtein     = "protein_g"
	ColCarbs       = "carbs_g"
	ColFat         = "fat_g"
	ColWorkoutType = "workout_type"
	ColDurationMin = "duration_min"
	ColDistanceKm  = "distance_km"
	ColGoalType    = "goal_type"
	ColGoalValue   = "goal_value"
	ColGoalNotes   = "goal_notes"
	ColNotes       = "notes"
)

// Header is the canonical column order used when writing a log.
var Header = []string{
	ColDate, ColEntryType, ColMealType, ColItems, ColQuantities,
	ColCalories, ColProtein, ColCarbs, ColFat,
	ColWorkoutType, ColDurationMin, ColDistanceKm,
	ColGoalType, ColGoalValue, ColGoalNotes, ColNotes,
}

// Row is a single meal log entry. Missing numeric values are NaN.
type Row struct {
	Date         string
	EntryType    string
	MealType     string
	Items        string
	Quantities   string
	CaloriesKcal float64
	ProteinG     float64
	CarbsG       float64
	FatG         float64
	WorkoutType  string
	DurationMin  float64
	DistanceKm   float64
	GoalType     string
	GoalValue    string
	GoalNotes    string
	Notes        string
}

// IsMeal reports whether the row is a meal entry. Meal entries carry a
// meal_type value such as "dinner" or "snack"; workout and goal entries
// leave it empty.
func (r Row) IsMeal() bool { return r.MealType != "" }

// HasMacros reports whether protein, carbs and fat are all present.
func (r Row) HasMacros() bool {
	return !math.IsNaN(r.ProteinG) && !math.IsNaN(r.CarbsG) && !math.IsNaN(r.FatG)
}

// HasCalories reports whether the calorie label is present.
func (r Row) HasCalories() bool { return !math.IsNaN(r.CaloriesKcal) }
