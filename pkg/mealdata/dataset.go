package mealdata

// Kcal per gram of each macronutrient (the 4/4/9 rule).
const (
	KcalPerGramProtein = 4.0
	KcalPerGramCarbs   = 4.0
	KcalPerGramFat     = 9.0
)

// BaseSchema is the macro feature order every model is trained with.
var BaseSchema = []string{ColProtein, ColCarbs, ColFat}

// SynthesizeCalories applies the 4/4/9 rule to a complete macro triple.
func SynthesizeCalories(protein, carbs, fat float64) float64 {
	return KcalPerGramProtein*protein + KcalPerGramCarbs*carbs + KcalPerGramFat*fat
}

// Dataset is the training view of a meal log: usable meal rows with the
// calorie label filled in, plus the macro feature matrix.
type Dataset struct {
	Rows      []Row
	X         [][]float64
	Y         []float64
	Synthetic int // labels back-filled via the 4/4/9 rule
}

// Build filters rows down to usable meal entries and assembles X and Y.
// A row is usable when it is a meal entry with all three macros present
// and a calorie label that is either real or synthesized from the macros.
// Rows missing any macro are excluded even when calories are present.
func Build(rows []Row) Dataset {
	var ds Dataset
	for _, r := range rows {
		if !r.IsMeal() || !r.HasMacros() {
			continue
		}
		if !r.HasCalories() {
			r.CaloriesKcal = SynthesizeCalories(r.ProteinG, r.CarbsG, r.FatG)
			ds.Synthetic++
		}
		ds.Rows = append(ds.Rows, r)
		ds.X = append(ds.X, []float64{r.ProteinG, r.CarbsG, r.FatG})
		ds.Y = append(ds.Y, r.CaloriesKcal)
	}
	return ds
}

// Summary holds the counts reported by the data inspection command.
type Summary struct {
	Total        int
	Meals        int
	WithMacros   int
	WithCalories int
	Usable       int
	Problems     []Row // first meal rows missing any of macros/calories
}

// Summarize inspects a raw log without synthesizing labels, collecting up
// to maxProblems meal rows that would be dropped from training.
func Summarize(rows []Row, maxProblems int) Summary {
	s := Summary{Total: len(rows)}
	for _, r := range rows {
		if !r.IsMeal() {
			continue
		}
		s.Meals++
		if r.HasMacros() {
			s.WithMacros++
		}
		if r.HasCalories() {
			s.WithCalories++
		}
		if r.HasMacros() && r.HasCalories() {
			s.Usable++
		} else if len(s.Problems) < maxProblems {
			s.Problems = append(s.Problems, r)
		}
	}
	return s
}
