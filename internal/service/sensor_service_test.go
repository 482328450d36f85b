package service

import (
	"testing"
	"time"

	"github.com/minesight/rockfall-backend-go/internal/alerting"
	"github.com/minesight/rockfall-backend-go/internal/models"
	"github.com/minesight/rockfall-backend-go/internal/repository"
)

func newSensorFixture(t *testing.T) (*SensorService, *repository.SensorRepository, *repository.AlertRepository) {
	t.Helper()

	db := setupTestDB(t)
	sensorRepo := repository.NewSensorRepository(db)
	alertRepo := repository.NewAlertRepository(db)
	return NewSensorService(sensorRepo), sensorRepo, alertRepo
}

func TestSensorCreateAppliesDefaults(t *testing.T) {
	svc, repo, _ := newSensorFixture(t)

	reading := &models.SensorReading{
		Timestamp: time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC),
		SensorID:  "SENSOR-001",
	}
	if err := svc.Create(reading); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := repo.GetByID(reading.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.SensorStatus != models.SensorStatusActive {
		t.Errorf("SensorStatus = %q, want ACTIVE default", got.SensorStatus)
	}
	if got.DataQualityFlag != models.DataQualityGood {
		t.Errorf("DataQualityFlag = %q, want GOOD default", got.DataQualityFlag)
	}
	if got.RockfallSizeCategory != "NONE" {
		t.Errorf("RockfallSizeCategory = %q, want NONE default", got.RockfallSizeCategory)
	}
}

func TestSensorCreateNeverDerivesAlerts(t *testing.T) {
	svc, _, alertRepo := newSensorFixture(t)

	reading := &models.SensorReading{
		Timestamp:         time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC),
		SensorID:          "SENSOR-001",
		RockfallRiskScore: 95,
	}
	if err := svc.Create(reading); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	count, err := alertRepo.Count()
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 0 {
		t.Errorf("direct creation derived %d alerts, want 0", count)
	}
}

func TestSensorListPaginationMetadata(t *testing.T) {
	svc, repo, _ := newSensorFixture(t)

	base := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		seedReading(t, repo, "SENSOR-001", "North Wall", 46.5, -112, 10, base.Add(time.Duration(i)*time.Hour))
	}

	resp, err := svc.List(models.SensorReadingFilter{Page: 2, PageSize: 2})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if resp.Total != 5 {
		t.Errorf("Total = %d, want 5", resp.Total)
	}
	if resp.Page != 2 || resp.PageSize != 2 {
		t.Errorf("page metadata = %d/%d, want 2/2", resp.Page, resp.PageSize)
	}
	if resp.TotalPages != 3 {
		t.Errorf("TotalPages = %d, want 3", resp.TotalPages)
	}
	if len(resp.Data) != 2 {
		t.Errorf("Data has %d rows, want 2", len(resp.Data))
	}
}

func TestSensorClearAll(t *testing.T) {
	svc, sensorRepo, alertRepo := newSensorFixture(t)

	base := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		reading := seedReading(t, sensorRepo, "SENSOR-001", "North Wall", 46.5, -112, 90, base.Add(time.Duration(i)*time.Hour))
		if alert := alerting.Derive(reading); alert != nil {
			if err := alertRepo.Create(alert); err != nil {
				t.Fatalf("failed to seed alert: %v", err)
			}
		}
	}

	result, err := svc.ClearAll()
	if err != nil {
		t.Fatalf("ClearAll failed: %v", err)
	}
	if result.SensorsDeleted != 3 {
		t.Errorf("SensorsDeleted = %d, want 3", result.SensorsDeleted)
	}
	if result.AlertsDeleted != 3 {
		t.Errorf("AlertsDeleted = %d, want 3", result.AlertsDeleted)
	}

	sensorCount, _ := sensorRepo.Count()
	alertCount, _ := alertRepo.Count()
	if sensorCount != 0 || alertCount != 0 {
		t.Errorf("post-clear counts = %d/%d, want 0/0", sensorCount, alertCount)
	}
}

func TestSensorNearby(t *testing.T) {
	svc, repo, _ := newSensorFixture(t)

	base := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	// About 111 meters per 0.001 degrees of latitude
	seedReading(t, repo, "SENSOR-NEAR", "North Wall", 46.5000, -112.0000, 10, base)
	seedReading(t, repo, "SENSOR-MID", "North Wall", 46.5005, -112.0000, 10, base)
	seedReading(t, repo, "SENSOR-FAR", "North Wall", 46.6000, -112.0000, 10, base)
	// Older reading for the near sensor must not appear twice
	seedReading(t, repo, "SENSOR-NEAR", "North Wall", 46.5001, -112.0000, 10, base.Add(time.Hour))

	nearby, err := svc.Nearby(46.5, -112.0, 200)
	if err != nil {
		t.Fatalf("Nearby failed: %v", err)
	}
	if len(nearby) != 2 {
		t.Fatalf("Nearby returned %d sensors, want 2", len(nearby))
	}
	if nearby[0].SensorID != "SENSOR-NEAR" || nearby[1].SensorID != "SENSOR-MID" {
		t.Errorf("order = %s, %s; want SENSOR-NEAR then SENSOR-MID", nearby[0].SensorID, nearby[1].SensorID)
	}
	if nearby[0].DistanceMeters >= nearby[1].DistanceMeters {
		t.Errorf("distances not ascending: %v >= %v", nearby[0].DistanceMeters, nearby[1].DistanceMeters)
	}
}
