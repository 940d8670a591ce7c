package service

import (
	"context"
	"errors"
	"log/slog"
	"unicode/utf8"

	"github.com/vaultpass/passmeter/internal/model"
	"github.com/vaultpass/passmeter/internal/strength"
)

var ErrPasswordTooLong = errors.New("password is too long")

// StatsRecorder stores the outcome of an assessment.
type StatsRecorder interface {
	Record(ctx context.Context, event model.StatsEvent) error
}

// StrengthService scores passwords and composes user-facing feedback.
type StrengthService struct {
	scorer    *strength.Scorer
	composer  *strength.Composer
	maxLength int
	recorder  StatsRecorder
}

// NewStrengthService creates a new StrengthService. recorder may be nil.
func NewStrengthService(scorer *strength.Scorer, composer *strength.Composer, maxLength int, recorder StatsRecorder) *StrengthService {
	return &StrengthService{
		scorer:    scorer,
		composer:  composer,
		maxLength: maxLength,
		recorder:  recorder,
	}
}

// Evaluate assesses the password in req. An empty password is valid and
// yields the Empty label.
func (s *StrengthService) Evaluate(ctx context.Context, req model.EvaluateRequest) (model.AssessmentResponse, error) {
	if err := s.checkLength(req.Password); err != nil {
		return model.AssessmentResponse{}, err
	}
	return s.assess(ctx, model.SourceEvaluate, req.Password, req.Hints...), nil
}

func (s *StrengthService) checkLength(password string) error {
	if s.maxLength > 0 && utf8.RuneCountInString(password) > s.maxLength {
		return ErrPasswordTooLong
	}
	return nil
}

// assess runs the scorer and composer. Estimator failures degrade to the
// weakest tier instead of failing the request.
func (s *StrengthService) assess(ctx context.Context, source, password string, hints ...string) model.AssessmentResponse {
	result, err := s.scorer.Score(password, hints...)
	if err != nil {
		slog.WarnContext(ctx, "strength estimation failed, using fallback", "source", source, "error", err)
	}

	a := s.composer.Compose(result, password)

	if password != "" && s.recorder != nil {
		event := model.StatsEvent{Source: source, Score: result.Score, Label: string(a.Label)}
		if err := s.recorder.Record(ctx, event); err != nil {
			slog.WarnContext(ctx, "failed to record assessment", "source", source, "error", err)
		}
	}

	suggestions := a.Displayed()
	if suggestions == nil {
		suggestions = []string{}
	}

	return model.AssessmentResponse{
		Percentage:  a.Percentage,
		Label:       string(a.Label),
		Score:       result.Score,
		Suggestions: suggestions,
		Warning:     a.Warning,
		EntropyBits: strength.EntropyBits(password),
	}
}
