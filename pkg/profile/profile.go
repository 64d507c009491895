// Package profile handles the optional user-preference file consumed as
// extra model features. Anything that goes wrong while loading it means
// "no profile": the model then falls back to macros alone.
package profile

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/forwauzz/fitness-ai/pkg/mealdata"
)

// Profile is the user-preference file: free-text preference lists plus
// dietary-pattern ratios derived from the meal log at training time.
type Profile struct {
	FavoriteFoods  []string       `json:"favorite_foods"`
	FavoriteSnacks []string       `json:"favorite_snacks"`
	GroceryItems   []string       `json:"grocery_items"`
	DietaryPattern DietaryPattern `json:"dietary_pattern"`
}

// DietaryPattern is the share of logged calories coming from each macro.
type DietaryPattern struct {
	ProteinRatio float64 `json:"protein_ratio"`
	CarbsRatio   float64 `json:"carbs_ratio"`
	FatRatio     float64 `json:"fat_ratio"`
}

// Load reads a profile from path. Any failure (missing file, bad JSON)
// returns nil: the caller treats that as "no profile".
func Load(path string) *Profile {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil
	}
	return &p
}

// Save writes the profile back to path with indentation.
func (p *Profile) Save(path string) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("profile: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("profile: write %s: %w", path, err)
	}
	return nil
}

// FeatureNames returns the profile feature columns, in the order Features
// emits them. Appended to the macro schema when a profile is available.
func FeatureNames() []string {
	return []string{
		"fav_food_hits", "fav_snack_hits", "grocery_hits",
		"protein_ratio", "carbs_ratio", "fat_ratio",
	}
}

// Features derives the profile feature values for one meal from its
// free-text items list: how many items match each preference list, plus
// the dietary-pattern ratios.
func (p *Profile) Features(items string) []float64 {
	return []float64{
		float64(countHits(items, p.FavoriteFoods)),
		float64(countHits(items, p.FavoriteSnacks)),
		float64(countHits(items, p.GroceryItems)),
		p.DietaryPattern.ProteinRatio,
		p.DietaryPattern.CarbsRatio,
		p.DietaryPattern.FatRatio,
	}
}

// countHits counts semicolon-separated items that contain (or are
// contained by) one of the preference entries, case-insensitively.
func countHits(items string, prefs []string) int {
	if items == "" || len(prefs) == 0 {
		return 0
	}
	hits := 0
	for _, raw := range strings.Split(items, ";") {
		item := strings.ToLower(strings.TrimSpace(raw))
		if item == "" {
			continue
		}
		for _, pref := range prefs {
			pl := strings.ToLower(strings.TrimSpace(pref))
			if pl == "" {
				continue
			}
			if strings.Contains(item, pl) || strings.Contains(pl, item) {
				hits++
				break
			}
		}
	}
	return hits
}

// DerivePattern recomputes the dietary-pattern ratios from the usable
// training rows, using the 4/4/9 energy contributions.
func (p *Profile) DerivePattern(ds mealdata.Dataset) {
	var protein, carbs, fat float64
	for _, r := range ds.Rows {
		protein += mealdata.KcalPerGramProtein * r.ProteinG
		carbs += mealdata.KcalPerGramCarbs * r.CarbsG
		fat += mealdata.KcalPerGramFat * r.FatG
	}
	total := protein + carbs + fat
	if total == 0 {
		return
	}
	p.DietaryPattern = DietaryPattern{
		ProteinRatio: protein / total,
		CarbsRatio:   carbs / total,
		FatRatio:     fat / total,
	}
}

// Schema returns the full feature column order for a training run: the
// macro columns, plus the profile columns when a profile is present.
func Schema(p *Profile) []string {
	schema := append([]string(nil), mealdata.BaseSchema...)
	if p != nil {
		schema = append(schema, FeatureNames()...)
	}
	return schema
}

// FeatureVector assembles a model input in schema order from three macro
// values, an optional items list and an optional profile. Columns the
// profile cannot fill are zero, so the vector is always padded to the
// schema length recorded in metadata.
func FeatureVector(schema []string, protein, carbs, fat float64, items string, p *Profile) []float64 {
	values := map[string]float64{
		mealdata.ColProtein: protein,
		mealdata.ColCarbs:   carbs,
		mealdata.ColFat:     fat,
	}
	if p != nil {
		feats := p.Features(items)
		for i, name := range FeatureNames() {
			values[name] = feats[i]
		}
	}
	vec := make([]float64, len(schema))
	for i, name := range schema {
		vec[i] = values[name] // zero when absent
	}
	return vec
}

// TrainingMatrix expands the dataset's macro features with per-row profile
// features, matching the order returned by Schema.
func TrainingMatrix(ds mealdata.Dataset, p *Profile) [][]float64 {
	if p == nil {
		return ds.X
	}
	X := make([][]float64, len(ds.Rows))
	for i, r := range ds.Rows {
		X[i] = append(append([]float64(nil), ds.X[i]...), p.Features(r.Items)...)
	}
	return X
}
