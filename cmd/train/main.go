// Command train builds the calorie model from the meal log: it assembles
// the training set (synthesizing missing labels with the 4/4/9 rule),
// picks a validation strategy from the sample count, fits, and writes the
// model artifact plus its metadata record.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/forwauzz/fitness-ai/pkg/artifact"
	"github.com/forwauzz/fitness-ai/pkg/config"
	"github.com/forwauzz/fitness-ai/pkg/mealdata"
	"github.com/forwauzz/fitness-ai/pkg/profile"
	"github.com/forwauzz/fitness-ai/pkg/report"
	"github.com/forwauzz/fitness-ai/pkg/trainer"
)

func main() {
	configPath := flag.String("config", "fitness-ai.yaml", "Path to YAML config file")
	dataPath := flag.String("data", "", "CSV meal log (overrides config)")
	useDB := flag.Bool("db", false, "Read the SQLite meal log instead of CSV")
	modelDir := flag.String("model-dir", "", "Artifact directory (overrides config)")
	profilePath := flag.String("profile", "", "User profile JSON (overrides config)")
	plotPath := flag.String("plot", "", "Write a predicted-vs-actual calibration plot PNG")
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
	if *modelDir != "" {
		cfg.ModelDir = *modelDir
	}
	if *profilePath != "" {
		cfg.ProfilePath = *profilePath
	}

	rows, err := mealdata.Load(cfg.DataPath, cfg.DBPath, *useDB)
	if err != nil {
		slog.Error("loading meal log", "err", err)
		os.Exit(1)
	}

	ds := mealdata.Build(rows)

	// A missing or broken profile just means macro-only features.
	prof := profile.Load(cfg.ProfilePath)
	if prof == nil {
		slog.Debug("no usable profile, training on macros only", "path", cfg.ProfilePath)
	} else {
		// Refresh the ratio features from this run's data before fitting,
		// so later predictions read ratios the model actually saw.
		prof.DerivePattern(ds)
	}
	schema := profile.Schema(prof)
	X := profile.TrainingMatrix(ds, prof)

	res, err := trainer.Train(X, ds.Y, ds.Synthetic, schema, cfg.ModelPath())
	if err != nil {
		if errors.Is(err, trainer.ErrNoUsableRows) {
			fmt.Fprintln(os.Stderr, "No usable rows. You need macros (protein_g, carbs_g, fat_g) and/or calories_kcal.")
		} else {
			slog.Error("training failed", "err", err)
		}
		os.Exit(1)
	}
	fmt.Printf("Using %d samples (synthetic labels: %d).\n", res.Metadata.NSamples, ds.Synthetic)

	if err := os.MkdirAll(cfg.ModelDir, 0o755); err != nil {
		slog.Error("creating model dir", "err", err)
		os.Exit(1)
	}
	if err := artifact.SaveModel(cfg.ModelPath(), res.Model); err != nil {
		slog.Error("saving model", "err", err)
		os.Exit(1)
	}
	if err := res.Metadata.Save(cfg.MetaPath()); err != nil {
		slog.Error("saving metadata", "err", err)
		os.Exit(1)
	}

	if prof != nil {
		if err := prof.Save(cfg.ProfilePath); err != nil {
			slog.Warn("updating profile", "err", err)
		}
	}

	if *plotPath != "" {
		if err := os.MkdirAll(filepath.Dir(*plotPath), 0o755); err == nil {
			if err := report.PredictedVsActual(ds.Y, res.Model.Predict(X), *plotPath); err != nil {
				slog.Warn("writing calibration plot", "err", err)
			} else {
				fmt.Printf("Calibration plot saved to: %s\n", *plotPath)
			}
		}
	}

	fmt.Printf("Model saved to: %s\n", cfg.ModelPath())
	fmt.Printf("Metadata saved to: %s\n", cfg.MetaPath())
	fmt.Printf("Metrics: %v (%s)\n", res.Metadata.Metrics, res.Metadata.CVNote)
}
