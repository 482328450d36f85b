package repository

import (
	"database/sql"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/minesight/rockfall-backend-go/internal/database"
	"github.com/minesight/rockfall-backend-go/internal/models"
)

// setupTestDB opens an in-memory database with the full schema applied.
// A single connection is forced so every query sees the same memory store.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		t.Fatalf("failed to enable foreign keys: %v", err)
	}
	if err := database.RunMigrations(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() { db.Close() })
	return db
}

// newTestReading builds a reading with distinguishing fields set and the
// timestamp truncated to whole seconds so storage round-trips exactly.
func newTestReading(sensorID, zone string, ts time.Time, riskScore float64) *models.SensorReading {
	return &models.SensorReading{
		Timestamp:         ts.Truncate(time.Second),
		Year:              ts.Year(),
		Month:             int(ts.Month()),
		DayOfYear:         ts.YearDay(),
		Hour:              ts.Hour(),
		Shift:             "DAY",
		SensorID:          sensorID,
		Latitude:          46.51,
		Longitude:         -112.03,
		ElevationFt:       5280,
		WeatherStationID:  "WS-01",
		SensorStatus:      models.SensorStatusActive,
		DataQualityFlag:   models.DataQualityGood,
		SlopeZone:         zone,
		RockType:          "GRANITE",
		RockfallRiskScore: riskScore,
	}
}

func mustCreateReading(t *testing.T, repo *SensorRepository, reading *models.SensorReading) *models.SensorReading {
	t.Helper()
	if err := repo.Create(reading); err != nil {
		t.Fatalf("failed to create reading: %v", err)
	}
	return reading
}
