package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jengzang/attraction-heatmap/internal/database"
	"github.com/jengzang/attraction-heatmap/internal/models"
)

// AttractionRepository handles database operations for attractions
type AttractionRepository struct {
	db     *sql.DB
	driver string
}

// NewAttractionRepository creates a new attraction repository
func NewAttractionRepository(db *sql.DB, driver string) *AttractionRepository {
	return &AttractionRepository{db: db, driver: driver}
}

// List returns every attraction in insertion order (by id)
func (r *AttractionRepository) List(ctx context.Context) ([]models.Attraction, error) {
	query := `SELECT nombre, region, comuna, tipo, direccion, punto_x, punto_y
		FROM attractions
		ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query attractions: %w", err)
	}
	defer rows.Close()

	var attractions []models.Attraction
	for rows.Next() {
		var a models.Attraction
		var commune, address sql.NullString

		err := rows.Scan(&a.Name, &a.Region, &commune, &a.Type, &address, &a.Lat, &a.Lng)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attraction: %w", err)
		}

		// Handle nullable fields
		a.Commune = commune.String
		a.Address = address.String

		attractions = append(attractions, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attractions: %w", err)
	}

	return attractions, nil
}

// Count returns the number of stored attractions
func (r *AttractionRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM attractions").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count attractions: %w", err)
	}
	return count, nil
}

// ReplaceAll swaps the stored dataset for the given records in one transaction
func (r *AttractionRepository) ReplaceAll(ctx context.Context, attractions []models.Attraction) error {
	insert := database.Rebind(r.driver, `INSERT INTO attractions
		(nombre, region, comuna, tipo, direccion, punto_x, punto_y)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)

	return database.Transaction(r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM attractions"); err != nil {
			return fmt.Errorf("failed to clear attractions: %w", err)
		}

		stmt, err := tx.PrepareContext(ctx, insert)
		if err != nil {
			return fmt.Errorf("failed to prepare insert: %w", err)
		}
		defer stmt.Close()

		for i, a := range attractions {
			_, err := stmt.ExecContext(ctx, a.Name, a.Region, a.Commune, a.Type, a.Address, a.Lat, a.Lng)
			if err != nil {
				return fmt.Errorf("failed to insert attraction %d (%s): %w", i, a.Name, err)
			}
		}
		return nil
	})
}
