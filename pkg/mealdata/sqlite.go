package mealdata

import (
	"database/sql"
	"fmt"
	"math"

	_ "modernc.org/sqlite"
)

// Store is a SQLite-backed meal log. It mirrors the CSV contract: the same
// loose column set, with NULL standing in for a missing numeric cell.
type Store struct {
	db *sql.DB
}

const createTableSQL = `
CREATE TABLE IF NOT EXISTS meals (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	date TEXT,
	entry_type TEXT,
	meal_type TEXT,
	items TEXT,
	quantities TEXT,
	calories_kcal REAL,
	protein_g REAL,
	carbs_g REAL,
	fat_g REAL,
	workout_type TEXT,
	duration_min REAL,
	distance_km REAL,
	goal_type TEXT,
	goal_value TEXT,
	goal_notes TEXT,
	notes TEXT
);
`

// OpenStore opens (creating if needed) the meal log database at path.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("mealdata: open database: %w", err)
	}
	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("mealdata: create schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error { return s.db.Close() }

// SaveRows appends rows to the meal log inside a single transaction.
func (s *Store) SaveRows(rows []Row) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("mealdata: begin: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT INTO meals
		(date, entry_type, meal_type, items, quantities,
		 calories_kcal, protein_g, carbs_g, fat_g,
		 workout_type, duration_min, distance_km,
		 goal_type, goal_value, goal_notes, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("mealdata: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range rows {
		_, err := stmt.Exec(
			r.Date, r.EntryType, r.MealType, r.Items, r.Quantities,
			nullable(r.CaloriesKcal), nullable(r.ProteinG),
			nullable(r.CarbsG), nullable(r.FatG),
			r.WorkoutType, nullable(r.DurationMin), nullable(r.DistanceKm),
			r.GoalType, r.GoalValue, r.GoalNotes, r.Notes,
		)
		if err != nil {
			return fmt.Errorf("mealdata: insert row: %w", err)
		}
	}
	return tx.Commit()
}

// LoadRows reads the whole meal log in insertion order.
func (s *Store) LoadRows() ([]Row, error) {
	rows, err := s.db.Query(`SELECT date, entry_type, meal_type, items, quantities,
		calories_kcal, protein_g, carbs_g, fat_g,
		workout_type, duration_min, distance_km,
		goal_type, goal_value, goal_notes, notes
		FROM meals ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("mealdata: query meals: %w", err)
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var r Row
		var cal, prot, carbs, fat, dur, dist sql.NullFloat64
		err := rows.Scan(
			&r.Date, &r.EntryType, &r.MealType, &r.Items, &r.Quantities,
			&cal, &prot, &carbs, &fat,
			&r.WorkoutType, &dur, &dist,
			&r.GoalType, &r.GoalValue, &r.GoalNotes, &r.Notes,
		)
		if err != nil {
			return nil, fmt.Errorf("mealdata: scan row: %w", err)
		}
		r.CaloriesKcal = fromNull(cal)
		r.ProteinG = fromNull(prot)
		r.CarbsG = fromNull(carbs)
		r.FatG = fromNull(fat)
		r.DurationMin = fromNull(dur)
		r.DistanceKm = fromNull(dist)
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("mealdata: iterate meals: %w", err)
	}
	return out, nil
}

func nullable(v float64) any {
	if math.IsNaN(v) {
		return nil
	}
	return v
}

func fromNull(v sql.NullFloat64) float64 {
	if !v.Valid {
		return math.NaN()
	}
	return v.Float64
}
