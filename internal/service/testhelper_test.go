package service

import (
	"database/sql"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/minesight/rockfall-backend-go/internal/database"
	"github.com/minesight/rockfall-backend-go/internal/models"
	"github.com/minesight/rockfall-backend-go/internal/repository"
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

func seedReading(t *testing.T, repo *repository.SensorRepository, sensorID, zone string, lat, lon, riskScore float64, ts time.Time) *models.SensorReading {
	t.Helper()

	reading := &models.SensorReading{
		Timestamp:         ts.Truncate(time.Second),
		Year:              ts.Year(),
		Month:             int(ts.Month()),
		DayOfYear:         ts.YearDay(),
		Hour:              ts.Hour(),
		Shift:             "DAY",
		SensorID:          sensorID,
		Latitude:          lat,
		Longitude:         lon,
		SensorStatus:      models.SensorStatusActive,
		DataQualityFlag:   models.DataQualityGood,
		SlopeZone:         zone,
		RockType:          "GRANITE",
		RockfallRiskScore: riskScore,
	}
	if err := repo.Create(reading); err != nil {
		t.Fatalf("failed to seed reading: %v", err)
	}
	return reading
}
