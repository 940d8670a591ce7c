package service

import (
	"context"

	"github.com/vaultpass/passmeter/internal/crypto"
	"github.com/vaultpass/passmeter/internal/model"
)

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	strength *StrengthService
	source   crypto.RandomSource
}

// NewGeneratorService creates a new GeneratorService that assesses its output with svc.
func NewGeneratorService(svc *StrengthService) *GeneratorService {
	return &GeneratorService{strength: svc, source: crypto.SecureSource{}}
}

// Generate produces a password based on the given request.
func (s *GeneratorService) Generate(ctx context.Context, req model.GenerateRequest) (model.GenerateResponse, error) {
	opts := crypto.GeneratorOptions{
		Length:    req.Length,
		Uppercase: boolOrDefault(req.Uppercase, true),
		Lowercase: boolOrDefault(req.Lowercase, true),
		Numbers:   boolOrDefault(req.Numbers, true),
		Symbols:   boolOrDefault(req.Symbols, true),
	}

	if opts.Length == 0 {
		opts.Length = crypto.DefaultOptions().Length
	}

	password, err := crypto.GenerateWith(s.source, opts)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	return model.GenerateResponse{
		Password:   password,
		Length:     len(password),
		Assessment: s.strength.assess(ctx, model.SourceGenerate, password),
	}, nil
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
