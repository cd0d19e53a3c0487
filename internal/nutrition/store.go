// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package nutrition

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pbolem/nutriguide/pkg/types"
)

// Store persists the canonical nutrition table in SQLite. The database is
// created and seeded on first open, so a fresh deployment works without a
// provisioning step.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates the nutrition database at path and seeds it
// with the builtin canonical and generic records when empty. Pass
// ":memory:" for an ephemeral store.
func NewStore(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening nutrition database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	if err := s.seed(); err != nil {
		db.Close()
		return nil, fmt.Errorf("seeding nutrition table: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS foods (
		name TEXT PRIMARY KEY,
		category TEXT NOT NULL,
		serving_grams REAL NOT NULL,
		calories REAL NOT NULL,
		protein_g REAL NOT NULL,
		carbs_g REAL NOT NULL,
		fat_g REAL NOT NULL,
		fiber_g REAL NOT NULL,
		sugar_g REAL NOT NULL,
		sodium_mg REAL NOT NULL,
		cholesterol_mg REAL NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// seed inserts the builtin records when the table is empty. Existing rows
// win, so operator edits survive restarts.
func (s *Store) seed() error {
	var count int
	if err := s.db.QueryRow(`SELECT count(*) FROM foods`).Scan(&count); err != nil {
		return fmt.Errorf("counting foods: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning seed transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT INTO foods
		(name, category, serving_grams, calories, protein_g, carbs_g, fat_g, fiber_g, sugar_g, sodium_mg, cholesterol_mg)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing seed statement: %w", err)
	}
	defer stmt.Close()

	for _, rec := range append(Records(), Generics()...) {
		if _, err := stmt.Exec(rec.Name, rec.Category, rec.ServingGrams, rec.Calories,
			rec.ProteinG, rec.CarbsG, rec.FatG, rec.FiberG, rec.SugarG,
			rec.SodiumMg, rec.CholesterolMg); err != nil {
			return fmt.Errorf("seeding %q: %w", rec.Name, err)
		}
	}
	return tx.Commit()
}

// Upsert inserts or replaces one record.
func (s *Store) Upsert(rec types.NutritionRecord) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO foods
		(name, category, serving_grams, calories, protein_g, carbs_g, fat_g, fiber_g, sugar_g, sodium_mg, cholesterol_mg)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		strings.ToLower(rec.Name), rec.Category, rec.ServingGrams, rec.Calories,
		rec.ProteinG, rec.CarbsG, rec.FatG, rec.FiberG, rec.SugarG,
		rec.SodiumMg, rec.CholesterolMg)
	if err != nil {
		return fmt.Errorf("upserting %q: %w", rec.Name, err)
	}
	return nil
}

// Lookup finds a record by exact name, then by substring match. The
// boolean reports whether anything was found.
func (s *Store) Lookup(name string) (types.NutritionRecord, bool, error) {
	name = strings.ToLower(strings.TrimSpace(name))

	rec, found, err := s.queryOne(`SELECT name, category, serving_grams, calories, protein_g, carbs_g, fat_g, fiber_g, sugar_g, sodium_mg, cholesterol_mg
		FROM foods WHERE name = ?`, name)
	if err != nil || found {
		return rec, found, err
	}

	return s.queryOne(`SELECT name, category, serving_grams, calories, protein_g, carbs_g, fat_g, fiber_g, sugar_g, sodium_mg, cholesterol_mg
		FROM foods WHERE name LIKE ? ORDER BY name LIMIT 1`, "%"+name+"%")
}

func (s *Store) queryOne(query string, args ...any) (types.NutritionRecord, bool, error) {
	var rec types.NutritionRecord
	err := s.db.QueryRow(query, args...).Scan(&rec.Name, &rec.Category, &rec.ServingGrams,
		&rec.Calories, &rec.ProteinG, &rec.CarbsG, &rec.FatG, &rec.FiberG,
		&rec.SugarG, &rec.SodiumMg, &rec.CholesterolMg)
	if err == sql.ErrNoRows {
		return types.NutritionRecord{}, false, nil
	}
	if err != nil {
		return types.NutritionRecord{}, false, fmt.Errorf("querying foods: %w", err)
	}
	return rec, true, nil
}

// All returns every record ordered by name.
func (s *Store) All() ([]types.NutritionRecord, error) {
	rows, err := s.db.Query(`SELECT name, category, serving_grams, calories, protein_g, carbs_g, fat_g, fiber_g, sugar_g, sodium_mg, cholesterol_mg
		FROM foods ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing foods: %w", err)
	}
	defer rows.Close()

	var records []types.NutritionRecord
	for rows.Next() {
		var rec types.NutritionRecord
		if err := rows.Scan(&rec.Name, &rec.Category, &rec.ServingGrams, &rec.Calories,
			&rec.ProteinG, &rec.CarbsG, &rec.FatG, &rec.FiberG, &rec.SugarG,
			&rec.SodiumMg, &rec.CholesterolMg); err != nil {
			return nil, fmt.Errorf("scanning food row: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
