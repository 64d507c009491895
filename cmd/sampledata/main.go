// Command sampledata writes a small hand-made meal log so the trainer has
// something to chew on right after install.
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
	outPath := flag.String("out", "", "Output CSV path (overrides config data_path)")
	seedDB := flag.Bool("db", false, "Also seed the SQLite meal log")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cfg.SetupLogger()
	if *outPath != "" {
		cfg.DataPath = *outPath
	}

	rows := mealdata.SampleRows()
	if err := mealdata.WriteCSV(cfg.DataPath, rows); err != nil {
		slog.Error("writing sample CSV", "err", err)
		os.Exit(1)
	}

	if *seedDB {
		store, err := mealdata.OpenStore(cfg.DBPath)
		if err != nil {
			slog.Error("opening meal log database", "err", err)
			os.Exit(1)
		}
		defer store.Close()
		if err := store.SaveRows(rows); err != nil {
			slog.Error("seeding meal log database", "err", err)
			os.Exit(1)
		}
	}

	complete := 0
	for _, r := range rows {
		if r.HasMacros() && r.HasCalories() {
			complete++
		}
	}
	fmt.Printf("Created sample data with %d meals\n", len(rows))
	fmt.Printf("Meals with complete macro/calorie data: %d\n", complete)
	first := rows[0]
	fmt.Printf("\nFirst meal:\n")
	fmt.Printf("  items:         %s\n", first.Items)
	fmt.Printf("  calories_kcal: %.0f\n", first.CaloriesKcal)
	fmt.Printf("  protein_g:     %.0f\n", first.ProteinG)
	fmt.Printf("  carbs_g:       %.0f\n", first.CarbsG)
	fmt.Printf("  fat_g:         %.0f\n", first.FatG)
}
