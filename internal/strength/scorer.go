package strength

import (
	"fmt"
)

// unavailableWarning is shown when the estimator could not rate the password.
const unavailableWarning = "Password strength could not be estimated; treat this password as weak"

// ScoreResult is the outcome of scoring a single password.
type ScoreResult struct {
	Score       int
	Warning     string
	Suggestions []string
}

// Scorer wraps an Estimator with the empty-input and failure policy.
type Scorer struct {
	estimator Estimator
}

// NewScorer creates a new Scorer backed by estimator.
func NewScorer(estimator Estimator) *Scorer {
	return &Scorer{estimator: estimator}
}

// Score rates password. An empty password scores 0 without consulting the
// estimator. If the estimator fails or panics, Score returns the lowest
// score with an advisory warning and an error wrapping ErrEstimationUnavailable;
// the returned result is usable either way.
func (s *Scorer) Score(password string, hints ...string) (result ScoreResult, err error) {
	if password == "" {
		return ScoreResult{}, nil
	}

	defer func() {
		if r := recover(); r != nil {
			result = unavailableResult()
			err = fmt.Errorf("%w: estimator panic: %v", ErrEstimationUnavailable, r)
		}
	}()

	est, err := s.estimator.Estimate(password, hints)
	if err != nil {
		return unavailableResult(), fmt.Errorf("%w: %v", ErrEstimationUnavailable, err)
	}

	return ScoreResult{
		Score:       clampScore(est.Score),
		Warning:     est.Warning,
		Suggestions: append([]string(nil), est.Suggestions...),
	}, nil
}

func unavailableResult() ScoreResult {
	return ScoreResult{Score: 0, Warning: unavailableWarning}
}

func clampScore(score int) int {
	return max(0, min(score, MaxScore))
}
