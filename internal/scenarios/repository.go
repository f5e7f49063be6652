// Package scenarios stores the catalog of climate scenario labels offered in
// the form. Labels are passed to the forecasting service as-is.
package scenarios

import (
	"database/sql"
	"fmt"

	"github.com/ngmaloney/drought-terminal/internal/database"
	_ "modernc.org/sqlite"
)

// Defaults seeds an empty catalog
var Defaults = []string{"base", "seco", "lluvioso"}

// Repository handles persistence of the scenario catalog
type Repository struct {
	dbPath string
}

// NewRepository creates a repository over the database at dbPath
func NewRepository(dbPath string) *Repository {
	return &Repository{dbPath: dbPath}
}

func (r *Repository) open() (*sql.DB, error) {
	// Ensure schema exists (safe to call multiple times)
	if err := database.EnsureSchema(r.dbPath); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", r.dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return db, nil
}

// Save adds a label at the end of the catalog. Saving an existing label is a no-op.
func (r *Repository) Save(label string) error {
	db, err := r.open()
	if err != nil {
		return err
	}
	defer db.Close()

	_, err = db.Exec(`
		INSERT INTO scenarios (label, position)
		VALUES (?, (SELECT COALESCE(MAX(position), 0) + 1 FROM scenarios))
		ON CONFLICT(label) DO NOTHING
	`, label)
	if err != nil {
		return fmt.Errorf("saving scenario: %w", err)
	}
	return nil
}

// List returns all labels in catalog order
func (r *Repository) List() ([]string, error) {
	db, err := r.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.Query("SELECT label FROM scenarios ORDER BY position, id")
	if err != nil {
		return nil, fmt.Errorf("querying scenarios: %w", err)
	}
	defer rows.Close()

	var labels []string
	for rows.Next() {
		var label string
		if err := rows.Scan(&label); err != nil {
			return nil, fmt.Errorf("scanning scenario: %w", err)
		}
		labels = append(labels, label)
	}
	return labels, rows.Err()
}

// Delete removes a label from the catalog
func (r *Repository) Delete(label string) error {
	db, err := r.open()
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.Exec("DELETE FROM scenarios WHERE label = ?", label); err != nil {
		return fmt.Errorf("deleting scenario: %w", err)
	}
	return nil
}

// LoadOrSeed lists the catalog, seeding it with Defaults when empty
func (r *Repository) LoadOrSeed() ([]string, error) {
	labels, err := r.List()
	if err != nil {
		return nil, err
	}
	if len(labels) > 0 {
		return labels, nil
	}

	for _, label := range Defaults {
		if err := r.Save(label); err != nil {
			return nil, err
		}
	}
	return r.List()
}
