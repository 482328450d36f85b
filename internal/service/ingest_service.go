package service

import (
	"encoding/csv"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/minesight/rockfall-backend-go/internal/alerting"
	"github.com/minesight/rockfall-backend-go/internal/ingest"
	"github.com/minesight/rockfall-backend-go/internal/models"
	"github.com/minesight/rockfall-backend-go/internal/repository"
)

// maxErrorSamples caps how many per-row error messages are returned verbatim;
// the rest are only counted.
const maxErrorSamples = 10

// IngestService runs the CSV ingestion pipeline: parse rows defensively,
// persist each reading eagerly, derive alerts synchronously.
type IngestService struct {
	sensorRepo *repository.SensorRepository
	alertRepo  *repository.AlertRepository
	logger     *zap.Logger
}

// NewIngestService creates a new ingest service
func NewIngestService(sensorRepo *repository.SensorRepository, alertRepo *repository.AlertRepository, logger *zap.Logger) *IngestService {
	return &IngestService{
		sensorRepo: sensorRepo,
		alertRepo:  alertRepo,
		logger:     logger,
	}
}

// ProcessCSV consumes the whole file even if every row fails. Rows are
// independent: a failed row is recorded and skipped, and rows already created
// stay created. There is no batch transaction or rollback path.
func (s *IngestService) ProcessCSV(r io.Reader) (*models.UploadResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	result := &models.UploadResult{Message: "CSV processed"}

	// Header is row 1; the first data row is row 2
	rowNum := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		rowNum++
		if err != nil {
			s.recordError(result, rowNum, err)
			continue
		}

		row := ingest.NewRow(rowNum, header, record)
		if err := s.processRow(row); err != nil {
			s.recordError(result, rowNum, err)
			continue
		}
		result.Created++
	}

	result.TotalProcessed = result.Created + result.Errors
	return result, nil
}

// processRow coerces, persists and derives alerts for a single row
func (s *IngestService) processRow(row ingest.Row) error {
	reading, err := ingest.ParseRow(row)
	if err != nil {
		return err
	}

	if err := s.sensorRepo.Create(reading); err != nil {
		return err
	}

	alert := alerting.Derive(reading)
	if alert == nil {
		return nil
	}

	// A duplicate alert_id fails only this row; the reading itself has
	// already been persisted at this point.
	return s.alertRepo.Create(alert)
}

func (s *IngestService) recordError(result *models.UploadResult, rowNum int, err error) {
	result.Errors++
	message := fmt.Sprintf("Row %d: %s", rowNum, err)
	if len(result.ErrorSamples) < maxErrorSamples {
		result.ErrorSamples = append(result.ErrorSamples, message)
	}
	s.logger.Warn("csv row rejected", zap.Int("row", rowNum), zap.Error(err))
}
