package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jengzang/attraction-heatmap/internal/models"
	"github.com/jengzang/attraction-heatmap/internal/spatial"
)

var (
	// ErrMissingColumn means the dataset does not provide a required column
	ErrMissingColumn = errors.New("dataset: missing required column")
	// ErrInvalidCoordinate means a PUNTO_X/PUNTO_Y value is unparsable or out of range
	ErrInvalidCoordinate = errors.New("dataset: invalid coordinate")
)

// Source loads the full attraction dataset
type Source interface {
	Load(ctx context.Context) ([]models.Attraction, error)
	Name() string
}

// CSVSource reads attractions from a CSV file with the NOMBRE..PUNTO_Y header
type CSVSource struct {
	Path string
}

// NewCSVSource creates a CSV backed source
func NewCSVSource(path string) *CSVSource {
	return &CSVSource{Path: path}
}

func (s *CSVSource) Name() string { return "csv:" + s.Path }

// Load opens and parses the file
func (s *CSVSource) Load(ctx context.Context) ([]models.Attraction, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset %s: %w", s.Path, err)
	}
	defer f.Close()

	return ReadCSV(ctx, f)
}

// ReadCSV parses attractions from r. Extra columns are ignored, column order is free.
func ReadCSV(ctx context.Context, r io.Reader) ([]models.Attraction, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty file", ErrMissingColumn)
		}
		return nil, fmt.Errorf("failed to read dataset header: %w", err)
	}

	index, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	var attractions []models.Attraction
	line := 1
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("failed to read dataset line %d: %w", line, err)
		}

		a, err := parseRecord(record, index)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		attractions = append(attractions, a)
	}

	return attractions, nil
}

func columnIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimPrefix(name, "\ufeff")
		index[strings.ToUpper(strings.TrimSpace(name))] = i
	}

	var missing []string
	for _, col := range models.RequiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
	return index, nil
}

func parseRecord(record []string, index map[string]int) (models.Attraction, error) {
	field := func(col string) string {
		i := index[col]
		if i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	lat, err := strconv.ParseFloat(field(models.ColumnLat), 64)
	if err != nil {
		return models.Attraction{}, fmt.Errorf("%w: %s=%q", ErrInvalidCoordinate, models.ColumnLat, field(models.ColumnLat))
	}
	lng, err := strconv.ParseFloat(field(models.ColumnLng), 64)
	if err != nil {
		return models.Attraction{}, fmt.Errorf("%w: %s=%q", ErrInvalidCoordinate, models.ColumnLng, field(models.ColumnLng))
	}
	if !spatial.ValidCoordinate(lat, lng) {
		return models.Attraction{}, fmt.Errorf("%w: (%v, %v) out of range", ErrInvalidCoordinate, lat, lng)
	}

	return models.Attraction{
		Name:    field(models.ColumnName),
		Region:  field(models.ColumnRegion),
		Commune: field(models.ColumnCommune),
		Type:    field(models.ColumnType),
		Address: field(models.ColumnAddress),
		Lat:     lat,
		Lng:     lng,
	}, nil
}

// Lister is the read side of the attraction store
type Lister interface {
	List(ctx context.Context) ([]models.Attraction, error)
}

// Counter is implemented by sources that can report their stored row count
type Counter interface {
	Count(ctx context.Context) (int, error)
}

// SQLStore is the read side of the SQL attraction store
type SQLStore interface {
	Lister
	Counter
}

// SQLSource reads attractions from the database
type SQLSource struct {
	repo   SQLStore
	driver string
}

// NewSQLSource creates a database backed source
func NewSQLSource(repo SQLStore, driver string) *SQLSource {
	return &SQLSource{repo: repo, driver: driver}
}

func (s *SQLSource) Name() string { return "sql:" + s.driver }

func (s *SQLSource) Load(ctx context.Context) ([]models.Attraction, error) {
	return s.repo.List(ctx)
}

// Count returns the number of rows currently stored, which may differ from
// the cached snapshot until the next refresh
func (s *SQLSource) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
