// Command checkdata inspects the meal log: how many rows are usable for
// training and which meal rows are missing macros or calories.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/forwauzz/fitness-ai/pkg/config"
	"github.com/forwauzz/fitness-ai/pkg/mealdata"
)

func main() {
	configPath := flag.String("config", "fitness-ai.yaml", "Path to YAML config file")
	dataPath := flag.String("data", "", "CSV meal log (overrides config)")
	useDB := flag.Bool("db", false, "Read the SQLite meal log instead of CSV")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cfg.SetupLogger()
	if *dataPath != "" {
		cfg.DataPath = *dataPath
	}

	rows, err := mealdata.Load(cfg.DataPath, cfg.DBPath, *useDB)
	if err != nil {
		slog.Error("loading meal log", "err", err)
		os.Exit(1)
	}

	s := mealdata.Summarize(rows, 10)
	fmt.Printf("Total rows: %d\n", s.Total)
	fmt.Printf("Meal rows: %d\n", s.Meals)
	fmt.Printf("With all macros present: %d\n", s.WithMacros)
	fmt.Printf("With calories present: %d\n", s.WithCalories)
	fmt.Printf("Usable rows (macros + calories): %d\n", s.Usable)

	if len(s.Problems) == 0 {
		return
	}
	fmt.Printf("\nFirst %d problem rows missing any of macros/calories:\n", len(s.Problems))
	fmt.Printf("%-12s %-10s %-32s %-22s %9s %9s %9s %13s\n",
		"date", "meal_type", "items", "quantities",
		"protein_g", "carbs_g", "fat_g", "calories_kcal")
	for _, r := range s.Problems {
		fmt.Printf("%-12s %-10s %-32s %-22s %9s %9s %9s %13s\n",
			r.Date, r.MealType, truncate(r.Items, 32), truncate(r.Quantities, 22),
			cell(r.ProteinG), cell(r.CarbsG), cell(r.FatG), cell(r.CaloriesKcal))
	}
}

func cell(v float64) string {
	if v != v { // NaN
		return "-"
	}
	return fmt.Sprintf("%.1f", v)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
