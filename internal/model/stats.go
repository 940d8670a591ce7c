package model

// Assessment sources recorded in statistics.
const (
	SourceEvaluate = "evaluate"
	SourceGenerate = "generate"
	SourceEnhance  = "enhance"
)

// StatsEvent is one assessment outcome. It never carries the password.
type StatsEvent struct {
	Source string
	Score  int
	Label  string
}

// StatsSummary aggregates recorded assessments by label.
type StatsSummary struct {
	Total   int            `json:"total"`
	ByLabel map[string]int `json:"by_label"`
}
