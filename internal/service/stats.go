package service

import (
	"context"

	"github.com/vaultpass/passmeter/internal/model"
)

// StatsReader aggregates recorded assessments.
type StatsReader interface {
	Summary(ctx context.Context) (model.StatsSummary, error)
}

// StatsService exposes assessment statistics to operators.
type StatsService struct {
	reader StatsReader
}

// NewStatsService creates a new StatsService.
func NewStatsService(reader StatsReader) *StatsService {
	return &StatsService{reader: reader}
}

// Summary returns counts of recorded assessments by label.
func (s *StatsService) Summary(ctx context.Context) (model.StatsSummary, error) {
	summary, err := s.reader.Summary(ctx)
	if err != nil {
		return model.StatsSummary{}, err
	}
	if summary.ByLabel == nil {
		summary.ByLabel = map[string]int{}
	}
	return summary, nil
}
