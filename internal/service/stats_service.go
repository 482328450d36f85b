package service

import (
	"math"
	"sort"

	"github.com/minesight/rockfall-backend-go/internal/models"
	"github.com/minesight/rockfall-backend-go/internal/repository"
	"github.com/minesight/rockfall-backend-go/internal/stats"
)

// StatsService computes the dashboard and analytics aggregates
type StatsService struct {
	statsRepo *repository.StatsRepository
}

// NewStatsService creates a new stats service
func NewStatsService(statsRepo *repository.StatsRepository) *StatsService {
	return &StatsService{statsRepo: statsRepo}
}

// SensorStatistics returns the sensor dashboard counters
func (s *StatsService) SensorStatistics() (*models.SensorStatistics, error) {
	return s.statsRepo.SensorStatistics()
}

// DashboardStats returns the alert dashboard counters
func (s *StatsService) DashboardStats() (*models.DashboardStats, error) {
	return s.statsRepo.DashboardStats()
}

// ZoneSummaries aggregates risk scores per slope zone, sorted by zone name
func (s *StatsService) ZoneSummaries() ([]models.ZoneSummary, error) {
	scoresByZone, err := s.statsRepo.RiskScoresByZone()
	if err != nil {
		return nil, err
	}

	summaries := make([]models.ZoneSummary, 0, len(scoresByZone))
	for zone, scores := range scoresByZone {
		summaries = append(summaries, models.ZoneSummary{
			ZoneName:     zone,
			ReadingCount: int64(len(scores)),
			MeanRisk:     round2(stats.Mean(scores)),
			MaxRisk:      stats.Max(scores),
			P95Risk:      round2(stats.Percentile(scores, 95)),
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].ZoneName < summaries[j].ZoneName
	})

	return summaries, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
