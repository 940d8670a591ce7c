// Package strength scores passwords against guessing attacks and turns the
// score into user-facing feedback.
package strength

import "errors"

// ErrEstimationUnavailable is returned when the estimator fails on an input.
var ErrEstimationUnavailable = errors.New("strength estimation unavailable")

// MaxScore is the highest score an estimator may report.
const MaxScore = 4

// Estimate is the raw output of an Estimator.
type Estimate struct {
	Score       int
	Warning     string
	Suggestions []string
}

// Estimator rates how guessable a password is on a 0-4 scale.
// Hints are caller-supplied words (user name, site name) that should count
// against the password when it contains them.
type Estimator interface {
	Estimate(password string, hints []string) (Estimate, error)
}
