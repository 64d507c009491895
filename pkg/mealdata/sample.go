package mealdata

import "math"

// SampleRows returns a small hand-written meal log used to bootstrap a
// fresh install: five meals with complete macros and calories.
func SampleRows() []Row {
	nan := math.NaN()
	return []Row{
		{
			Date: "2025-09-02", EntryType: "meal", MealType: "dinner",
			Items:      "chicken breast; rice; olive oil",
			Quantities: "150 g; 100 g; 1 tbsp",
			CaloriesKcal: 450, ProteinG: 35, CarbsG: 45, FatG: 15,
			DurationMin: nan, DistanceKm: nan,
		},
		{
			Date: "2025-09-02", EntryType: "meal", MealType: "snack",
			Items:      "mini rice crispies",
			Quantities: "17 g",
			CaloriesKcal: 68, ProteinG: 1, CarbsG: 13, FatG: 1,
			DurationMin: nan, DistanceKm: nan,
		},
		{
			Date: "2025-09-03", EntryType: "meal", MealType: "dinner",
			Items:      "sweet potatoes; sausage",
			Quantities: "100 g; 1",
			CaloriesKcal: 320, ProteinG: 18, CarbsG: 35, FatG: 12,
			DurationMin: nan, DistanceKm: nan,
		},
		{
			Date: "2025-09-03", EntryType: "meal", MealType: "lunch",
			Items:      "steak; veggies; sweet potatoes",
			Quantities: "208 g; 203 g; 162 g",
			CaloriesKcal: 520, ProteinG: 42, CarbsG: 35, FatG: 18,
			DurationMin: nan, DistanceKm: nan,
		},
		{
			Date: "2025-09-03", EntryType: "meal", MealType: "snack",
			Items:      "yogurt; cashews",
			Quantities: "160 g; 20 g",
			CaloriesKcal: 280, ProteinG: 12, CarbsG: 25, FatG: 15,
			DurationMin: nan, DistanceKm: nan,
		},
	}
}
