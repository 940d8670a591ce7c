package service

import (
	"context"
	"unicode/utf8"

	"github.com/vaultpass/passmeter/internal/crypto"
	"github.com/vaultpass/passmeter/internal/model"
)

// EnhancerService strengthens user-supplied passwords.
type EnhancerService struct {
	strength *StrengthService
	source   crypto.RandomSource
}

// NewEnhancerService creates a new EnhancerService that assesses its output with svc.
func NewEnhancerService(svc *StrengthService) *EnhancerService {
	return &EnhancerService{strength: svc, source: crypto.SecureSource{}}
}

// Enhance applies the requested transformations and assesses the result.
func (s *EnhancerService) Enhance(ctx context.Context, req model.EnhanceRequest) (model.EnhanceResponse, error) {
	if err := s.strength.checkLength(req.Password); err != nil {
		return model.EnhanceResponse{}, err
	}

	opts := crypto.EnhanceOptions{
		Grow:          boolOrDefault(req.Grow, true),
		AddComplexity: boolOrDefault(req.AddComplexity, true),
		MixCase:       boolOrDefault(req.MixCase, true),
	}

	password, err := crypto.EnhanceWith(s.source, req.Password, opts)
	if err != nil {
		return model.EnhanceResponse{}, err
	}

	return model.EnhanceResponse{
		Password:   password,
		Length:     utf8.RuneCountInString(password),
		Assessment: s.strength.assess(ctx, model.SourceEnhance, password),
	}, nil
}
