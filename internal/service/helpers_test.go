package service

import (
	"context"
	"errors"

	"github.com/vaultpass/passmeter/internal/model"
	"github.com/vaultpass/passmeter/internal/strength"
)

func boolPtr(b bool) *bool { return &b }

// fixedEstimator returns the same estimate for every password.
type fixedEstimator struct {
	est strength.Estimate
	err error
}

func (f fixedEstimator) Estimate(string, []string) (strength.Estimate, error) {
	return f.est, f.err
}

type memoryRecorder struct {
	events []model.StatsEvent
	err    error
}

func (m *memoryRecorder) Record(_ context.Context, event model.StatsEvent) error {
	if m.err != nil {
		return m.err
	}
	m.events = append(m.events, event)
	return nil
}

type stubReader struct {
	summary model.StatsSummary
	err     error
}

func (s stubReader) Summary(context.Context) (model.StatsSummary, error) {
	return s.summary, s.err
}

var errStore = errors.New("store unavailable")

func newTestStrengthService(est strength.Estimator, recorder StatsRecorder) *StrengthService {
	return NewStrengthService(
		strength.NewScorer(est),
		strength.NewComposer(strength.DefaultComposerConfig()),
		64,
		recorder,
	)
}
