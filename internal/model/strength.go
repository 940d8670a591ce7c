package model

// EvaluateRequest represents a password strength check.
type EvaluateRequest struct {
	Password string `json:"password"`
	// Hints are words tied to the user (name, email, site) that weaken a password containing them.
	Hints []string `json:"hints,omitempty"`
}

// AssessmentResponse is the rendered strength verdict for one password.
type AssessmentResponse struct {
	Percentage  int      `json:"percentage"`
	Label       string   `json:"label"`
	Score       int      `json:"score"`
	Suggestions []string `json:"suggestions"`
	Warning     string   `json:"warning,omitempty"`
	EntropyBits float64  `json:"entropy_bits"`
}
