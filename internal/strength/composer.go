package strength

import (
	"fmt"
)

// Label is the coarse strength tier shown to the user.
type Label string

const (
	LabelEmpty    Label = "Empty"
	LabelWeak     Label = "Weak"
	LabelModerate Label = "Moderate"
	LabelStrong   Label = "Strong"
)

// minScorerSuggestions is the count below which canned advice is appended.
const minScorerSuggestions = 2

// ComposerConfig holds the fixed advice used by a Composer.
type ComposerConfig struct {
	// CannedSuggestions are appended when the estimator offers too little advice.
	CannedSuggestions []string
	// IncludeEntropy appends an estimated-entropy line to the canned advice.
	IncludeEntropy bool
	// DisplayLimit caps the suggestions returned by Assessment.Displayed.
	DisplayLimit int
}

// DefaultComposerConfig returns the standard advice set.
func DefaultComposerConfig() ComposerConfig {
	return ComposerConfig{
		CannedSuggestions: []string{
			"Use a mix of characters (uppercase, lowercase, numbers, and special characters)",
			"Avoid common words or phrases",
			"Don't use personal information",
			"Make it at least 12 characters long for better security",
			"Use a unique password for every account",
			"Consider using a passphrase (a sequence of random words)",
		},
		IncludeEntropy: true,
		DisplayLimit:   5,
	}
}

// Assessment is the user-facing verdict for one password.
type Assessment struct {
	Percentage  int
	Label       Label
	Suggestions []string
	Warning     string

	displayLimit int
}

// Displayed returns the suggestions to render, capped at the display limit.
func (a Assessment) Displayed() []string {
	if a.displayLimit > 0 && len(a.Suggestions) > a.displayLimit {
		return a.Suggestions[:a.displayLimit]
	}
	return a.Suggestions
}

// Composer turns score results into assessments. It is safe for concurrent use.
type Composer struct {
	canned         []string
	includeEntropy bool
	displayLimit   int
}

// NewComposer creates a Composer from cfg. The config is copied.
func NewComposer(cfg ComposerConfig) *Composer {
	return &Composer{
		canned:         append([]string(nil), cfg.CannedSuggestions...),
		includeEntropy: cfg.IncludeEntropy,
		displayLimit:   cfg.DisplayLimit,
	}
}

// Compose builds the assessment for password from its score result.
// The output depends only on its inputs.
func (c *Composer) Compose(result ScoreResult, password string) Assessment {
	if password == "" {
		return Assessment{Label: LabelEmpty, displayLimit: c.displayLimit}
	}

	percentage, label := Tier(result.Score)

	suggestions := append([]string(nil), result.Suggestions...)
	if len(suggestions) < minScorerSuggestions {
		suggestions = append(suggestions, c.canned...)
		if c.includeEntropy {
			suggestions = append(suggestions, fmt.Sprintf("Estimated entropy: %.1f bits", EntropyBits(password)))
		}
	}
	suggestions = dedupe(suggestions)

	return Assessment{
		Percentage:   percentage,
		Label:        label,
		Suggestions:  suggestions,
		Warning:      result.Warning,
		displayLimit: c.displayLimit,
	}
}

// Tier maps a 0-4 score to its meter percentage and label.
func Tier(score int) (int, Label) {
	switch {
	case score <= 1:
		return 25, LabelWeak
	case score <= 3:
		return 65, LabelModerate
	default:
		return 100, LabelStrong
	}
}

// dedupe drops repeated entries, keeping the first occurrence of each.
func dedupe(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := items[:0]
	for _, s := range items {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
