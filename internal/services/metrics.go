package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/castellano-app/castellano-backend/internal/data/repos/practice"
	types "github.com/castellano-app/castellano-backend/internal/domain"
	"github.com/castellano-app/castellano-backend/internal/platform/logger"
)

type CoverageMetadata struct {
	TotalQuestions int               `json:"total_questions"`
	UniqueBins     int               `json:"unique_bins"`
	MoodFilter     []types.Mood      `json:"mood_filter,omitempty"`
	DateRange      map[string]string `json:"date_range,omitempty"`
}

type CoverageResult struct {
	Metadata CoverageMetadata       `json:"metadata"`
	Bins     []practice.CoverageBin `json:"bins"`
}

type MetricsService interface {
	// Coverage reports how practiced questions distribute across
	// (pronoun, tense, mood) bins, exposing gaps in coverage.
	Coverage(ctx context.Context, q practice.CoverageQuery) (*CoverageResult, error)
}

type metricsService struct {
	db        *gorm.DB
	log       *logger.Logger
	guessRepo practice.GuessRepo
}

func NewMetricsService(db *gorm.DB, baseLog *logger.Logger, guessRepo practice.GuessRepo) MetricsService {
	return &metricsService{db: db, log: baseLog.With("service", "MetricsService"), guessRepo: guessRepo}
}

func (s *metricsService) Coverage(ctx context.Context, q practice.CoverageQuery) (*CoverageResult, error) {
	bins, err := s.guessRepo.Coverage(ctx, nil, q)
	if err != nil {
		s.log.Warn("Coverage query failed", "error", err)
		return nil, err
	}

	total := 0
	for _, b := range bins {
		total += b.QuestionCount
	}

	meta := CoverageMetadata{
		TotalQuestions: total,
		UniqueBins:     len(bins),
	}
	if len(q.Moods) > 0 {
		meta.MoodFilter = q.Moods
	}
	if q.StartDate != nil || q.EndDate != nil {
		meta.DateRange = map[string]string{}
		if q.StartDate != nil {
			meta.DateRange["start_date"] = q.StartDate.Format(time.RFC3339)
		}
		if q.EndDate != nil {
			meta.DateRange["end_date"] = q.EndDate.Format(time.RFC3339)
		}
	}

	return &CoverageResult{Metadata: meta, Bins: bins}, nil
}
