package database

import (
	"database/sql"
	"fmt"
)

// Migration represents a database migration
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// migrations are applied in version order and tracked in the migrations table.
// SQL is embedded rather than loaded from disk so the binary is self-contained.
var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_users",
		SQL: `
			CREATE TABLE IF NOT EXISTS users (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				username TEXT NOT NULL UNIQUE,
				email TEXT NOT NULL UNIQUE,
				password_hash TEXT NOT NULL,
				first_name TEXT NOT NULL DEFAULT '',
				last_name TEXT NOT NULL DEFAULT '',
				role TEXT NOT NULL DEFAULT 'MANAGER' CHECK (role IN ('ADMIN', 'MANAGER')),
				phone_number TEXT,
				created_at TEXT NOT NULL DEFAULT (datetime('now'))
			);
		`,
	},
	{
		Version: 2,
		Name:    "create_sensor_readings",
		SQL: `
			CREATE TABLE IF NOT EXISTS sensor_readings (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				timestamp TEXT NOT NULL,
				year INTEGER NOT NULL,
				month INTEGER NOT NULL,
				day_of_year INTEGER NOT NULL,
				hour INTEGER NOT NULL,
				shift TEXT NOT NULL DEFAULT '',
				sensor_id TEXT NOT NULL,
				latitude REAL NOT NULL DEFAULT 0,
				longitude REAL NOT NULL DEFAULT 0,
				elevation_ft REAL NOT NULL DEFAULT 0,
				weather_station_id TEXT NOT NULL DEFAULT '',
				sensor_status TEXT NOT NULL DEFAULT 'ACTIVE',
				data_quality_flag TEXT NOT NULL DEFAULT 'GOOD',
				temperature_f REAL NOT NULL DEFAULT 0,
				precipitation_in REAL NOT NULL DEFAULT 0,
				humidity_pct REAL NOT NULL DEFAULT 0,
				wind_speed_mph REAL NOT NULL DEFAULT 0,
				barometric_pressure_inhg REAL NOT NULL DEFAULT 0,
				slope_zone TEXT NOT NULL DEFAULT '',
				slope_angle_deg REAL NOT NULL DEFAULT 0,
				bench_height_ft REAL NOT NULL DEFAULT 0,
				rock_type TEXT NOT NULL DEFAULT '',
				rock_mass_rating INTEGER NOT NULL DEFAULT 0,
				joint_spacing_ft REAL NOT NULL DEFAULT 0,
				joint_orientation_deg REAL NOT NULL DEFAULT 0,
				depth_to_water_ft REAL NOT NULL DEFAULT 0,
				pore_pressure_psi REAL NOT NULL DEFAULT 0,
				blast_frequency_7days INTEGER NOT NULL DEFAULT 0,
				distance_to_blast_ft REAL NOT NULL DEFAULT 0,
				blast_magnitude_lbs REAL NOT NULL DEFAULT 0,
				equipment_passes_per_shift INTEGER NOT NULL DEFAULT 0,
				microseismic_events_daily INTEGER NOT NULL DEFAULT 0,
				max_seismic_magnitude REAL NOT NULL DEFAULT 0,
				displacement_rate_mm_per_day REAL NOT NULL DEFAULT 0,
				cumulative_displacement_mm REAL NOT NULL DEFAULT 0,
				tiltmeter_microradians REAL NOT NULL DEFAULT 0,
				strain_gauge_microstrain REAL NOT NULL DEFAULT 0,
				vibration_ppv_mm_per_s REAL NOT NULL DEFAULT 0,
				rockfall_risk_score REAL NOT NULL DEFAULT 0,
				rockfall_occurred INTEGER NOT NULL DEFAULT 0,
				rockfall_size_category TEXT NOT NULL DEFAULT 'NONE',
				created_at TEXT NOT NULL DEFAULT (datetime('now'))
			);
			CREATE INDEX IF NOT EXISTS idx_sensor_readings_timestamp ON sensor_readings(timestamp);
			CREATE INDEX IF NOT EXISTS idx_sensor_readings_sensor_id ON sensor_readings(sensor_id);
			CREATE INDEX IF NOT EXISTS idx_sensor_readings_slope_zone ON sensor_readings(slope_zone);
			CREATE INDEX IF NOT EXISTS idx_sensor_readings_rockfall ON sensor_readings(rockfall_occurred);
		`,
	},
	{
		Version: 3,
		Name:    "create_alerts",
		SQL: `
			CREATE TABLE IF NOT EXISTS alerts (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				alert_id TEXT NOT NULL UNIQUE,
				sensor_reading_id INTEGER NOT NULL REFERENCES sensor_readings(id) ON DELETE CASCADE,
				alert_type TEXT NOT NULL CHECK (alert_type IN ('CRITICAL', 'HIGH', 'MEDIUM', 'LOW')),
				status TEXT NOT NULL DEFAULT 'ACTIVE' CHECK (status IN ('ACTIVE', 'RESOLVED')),
				zone_name TEXT NOT NULL DEFAULT '',
				risk_score REAL NOT NULL DEFAULT 0,
				recommended_action TEXT NOT NULL DEFAULT '',
				created_at TEXT NOT NULL DEFAULT (datetime('now'))
			);
			CREATE INDEX IF NOT EXISTS idx_alerts_created_at ON alerts(created_at);
			CREATE INDEX IF NOT EXISTS idx_alerts_status ON alerts(status);
		`,
	},
}

// initMigrationsTable creates the migrations tracking table
func initMigrationsTable(conn *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := conn.Exec(query); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}
	return nil
}

// appliedMigrations returns the set of applied migration versions
func appliedMigrations(conn *sql.DB) (map[int]bool, error) {
	rows, err := conn.Query("SELECT version FROM migrations ORDER BY version")
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

// applyMigration applies a single migration inside a transaction
func applyMigration(conn *sql.DB, migration Migration) error {
	tx, err := conn.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	if _, err := tx.Exec(migration.SQL); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to execute migration %d: %w", migration.Version, err)
	}

	if _, err := tx.Exec("INSERT INTO migrations (version, name) VALUES (?, ?)", migration.Version, migration.Name); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to record migration %d: %w", migration.Version, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit migration %d: %w", migration.Version, err)
	}

	return nil
}

// RunMigrations applies all pending migrations
func RunMigrations(conn *sql.DB) error {
	if err := initMigrationsTable(conn); err != nil {
		return err
	}

	applied, err := appliedMigrations(conn)
	if err != nil {
		return err
	}

	for _, migration := range migrations {
		if applied[migration.Version] {
			continue
		}
		if err := applyMigration(conn, migration); err != nil {
			return err
		}
	}

	return nil
}
