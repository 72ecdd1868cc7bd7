package dataset

import (
	"context"
	"fmt"

	"github.com/jengzang/attraction-heatmap/internal/models"
)

// Store is the write side of the attraction store
type Store interface {
	ReplaceAll(ctx context.Context, attractions []models.Attraction) error
}

// Import copies every record of src into store, replacing its contents
func Import(ctx context.Context, src Source, store Store) (int, error) {
	records, err := src.Load(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read %s: %w", src.Name(), err)
	}

	if err := store.ReplaceAll(ctx, records); err != nil {
		return 0, err
	}
	return len(records), nil
}
