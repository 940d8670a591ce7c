package repository

import (
	"context"
	"database/sql"

	"github.com/vaultpass/passmeter/internal/model"
)

// StatsRepository persists assessment outcomes. It stores the source, score
// and label only.
type StatsRepository struct {
	db *sql.DB
}

// NewStatsRepository creates a new StatsRepository.
func NewStatsRepository(db *sql.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// Record inserts one assessment event.
func (r *StatsRepository) Record(ctx context.Context, event model.StatsEvent) error {
	query := `INSERT INTO assessment_events (source, score, label) VALUES (?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query, event.Source, event.Score, event.Label)
	return err
}

// Summary counts recorded events by label.
func (r *StatsRepository) Summary(ctx context.Context) (model.StatsSummary, error) {
	query := `SELECT label, COUNT(*) FROM assessment_events GROUP BY label`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return model.StatsSummary{}, err
	}
	defer rows.Close()

	summary := model.StatsSummary{ByLabel: make(map[string]int)}
	for rows.Next() {
		var label string
		var count int
		if err := rows.Scan(&label, &count); err != nil {
			return model.StatsSummary{}, err
		}
		summary.ByLabel[label] = count
		summary.Total += count
	}

	return summary, rows.Err()
}
