package database

import (
	"database/sql"
	"fmt"
	"sort"
)

// Migration represents a database migration
type Migration struct {
	Version int
	Name    string
	SQL     string
	// DriverSQL overrides SQL for drivers whose dialect differs
	DriverSQL map[string]string
}

// SQLFor returns the statement to run on driver
func (m Migration) SQLFor(driver string) string {
	if q, ok := m.DriverSQL[driver]; ok {
		return q
	}
	return m.SQL
}

const attractionColumns = `
			nombre    VARCHAR(255) NOT NULL,
			region    VARCHAR(255) NOT NULL,
			comuna    VARCHAR(255) NOT NULL DEFAULT '',
			tipo      VARCHAR(255) NOT NULL,
			direccion VARCHAR(512) NOT NULL DEFAULT '',
			punto_x   DOUBLE PRECISION NOT NULL,
			punto_y   DOUBLE PRECISION NOT NULL
		)`

// Migrations is the schema history of the attraction store.
// The migrations table guarantees each version runs once, so DDL
// avoids IF NOT EXISTS forms that MySQL does not accept.
var Migrations = []Migration{
	{
		Version: 1,
		Name:    "create_attractions",
		SQL: `CREATE TABLE attractions (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,` + attractionColumns,
		DriverSQL: map[string]string{
			"postgres": `CREATE TABLE attractions (
			id        BIGSERIAL PRIMARY KEY,` + attractionColumns,
			"mysql": `CREATE TABLE attractions (
			id        BIGINT AUTO_INCREMENT PRIMARY KEY,` + attractionColumns,
		},
	},
	{
		Version: 2,
		Name:    "index_attractions_region_nombre",
		SQL:     `CREATE INDEX idx_attractions_region_nombre ON attractions (region, nombre)`,
	},
}

// MigrationManager manages database migrations
type MigrationManager struct {
	db         *sql.DB
	driver     string
	migrations []Migration
}

// NewMigrationManager creates a new migration manager
func NewMigrationManager(db *sql.DB, driver string, migrations []Migration) *MigrationManager {
	return &MigrationManager{
		db:         db,
		driver:     driver,
		migrations: migrations,
	}
}

// InitMigrationsTable creates the migrations tracking table
func (m *MigrationManager) InitMigrationsTable() error {
	query := `
		CREATE TABLE IF NOT EXISTS migrations (
			version INTEGER PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	_, err := m.db.Exec(query)
	if err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}
	return nil
}

// GetAppliedMigrations returns a list of applied migration versions
func (m *MigrationManager) GetAppliedMigrations() (map[int]bool, error) {
	rows, err := m.db.Query("SELECT version FROM migrations ORDER BY version")
	if err != nil {
		return nil, fmt.Errorf("failed to query migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return nil, fmt.Errorf("failed to scan migration version: %w", err)
		}
		applied[version] = true
	}

	return applied, rows.Err()
}

// Migrate applies every pending migration in version order and returns how many ran
func (m *MigrationManager) Migrate() (int, error) {
	if err := m.InitMigrationsTable(); err != nil {
		return 0, err
	}

	applied, err := m.GetAppliedMigrations()
	if err != nil {
		return 0, err
	}

	pending := make([]Migration, 0, len(m.migrations))
	for _, mig := range m.migrations {
		if !applied[mig.Version] {
			pending = append(pending, mig)
		}
	}
	sort.Slice(pending, func(i, j int) bool {
		return pending[i].Version < pending[j].Version
	})

	insert := Rebind(m.driver, "INSERT INTO migrations (version, name) VALUES (?, ?)")
	for _, mig := range pending {
		err := Transaction(m.db, func(tx *sql.Tx) error {
			if _, err := tx.Exec(mig.SQLFor(m.driver)); err != nil {
				return fmt.Errorf("failed to apply migration %d (%s): %w", mig.Version, mig.Name, err)
			}
			if _, err := tx.Exec(insert, mig.Version, mig.Name); err != nil {
				return fmt.Errorf("failed to record migration %d: %w", mig.Version, err)
			}
			return nil
		})
		if err != nil {
			return 0, err
		}
	}

	return len(pending), nil
}
