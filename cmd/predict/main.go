// Command predict estimates meal calories from three macro values and an
// optional free-text item list, using the trained artifact and the feature
// schema recorded in its metadata.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/forwauzz/fitness-ai/pkg/artifact"
	"github.com/forwauzz/fitness-ai/pkg/config"
	"github.com/forwauzz/fitness-ai/pkg/profile"
)

func main() {
	configPath := flag.String("config", "fitness-ai.yaml", "Path to YAML config file")
	modelDir := flag.String("model-dir", "", "Artifact directory (overrides config)")
	profilePath := flag.String("profile", "", "User profile JSON (overrides config)")
	protein := flag.Float64("protein", 30, "Protein grams")
	carbs := flag.Float64("carbs", 60, "Carb grams")
	fat := flag.Float64("fat", 10, "Fat grams")
	items := flag.String("items", "", "Optional free-text item list (semicolon separated)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cfg.SetupLogger()
	if *modelDir != "" {
		cfg.ModelDir = *modelDir
	}
	if *profilePath != "" {
		cfg.ProfilePath = *profilePath
	}

	if err := artifact.EnsureModel(cfg.ModelPath()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("Using model: %s\n", cfg.ModelPath())

	md, err := artifact.LoadMetadata(cfg.MetaPath())
	if err != nil {
		slog.Error("loading metadata", "err", err)
		os.Exit(1)
	}
	m, err := artifact.LoadModel(cfg.ModelPath())
	if err != nil {
		slog.Error("loading model", "err", err)
		os.Exit(1)
	}

	// Absent profile features are zero-padded up to the trained schema.
	prof := profile.Load(cfg.ProfilePath)
	vec := profile.FeatureVector(md.Schema, *protein, *carbs, *fat, *items, prof)

	yhat := m.Predict([][]float64{vec})
	fmt.Printf("Predicted calories: %.1f\n", yhat[0])
}
