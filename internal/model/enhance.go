package model

// EnhanceRequest represents a request to strengthen an existing password.
// Nil options default to true.
type EnhanceRequest struct {
	Password      string `json:"password"`
	Grow          *bool  `json:"grow"`
	AddComplexity *bool  `json:"add_complexity"`
	MixCase       *bool  `json:"mix_case"`
}

// EnhanceResponse represents the strengthened password and its assessment.
type EnhanceResponse struct {
	Password   string             `json:"password"`
	Length     int                `json:"length"`
	Assessment AssessmentResponse `json:"assessment"`
}
