package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/vaultpass/passmeter/internal/crypto"
	"github.com/vaultpass/passmeter/internal/model"
	"github.com/vaultpass/passmeter/internal/strength"
)

func newTestEnhancerService(recorder StatsRecorder) *EnhancerService {
	return NewEnhancerService(newTestStrengthService(fixedEstimator{est: strength.Estimate{Score: 2}}, recorder))
}

func TestEnhance_Defaults(t *testing.T) {
	rec := &memoryRecorder{}
	svc := newTestEnhancerService(rec)

	resp, err := svc.Enhance(context.Background(), model.EnhanceRequest{Password: "abc"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != crypto.GrowLength {
		t.Errorf("expected length %d, got %d", crypto.GrowLength, resp.Length)
	}
	if !strings.EqualFold(resp.Password[:3], "abc") {
		t.Errorf("expected prefix to be a case toggle of abc, got %q", resp.Password)
	}
	if resp.Assessment.Label != "Moderate" {
		t.Errorf("expected Moderate, got %s", resp.Assessment.Label)
	}
	if len(rec.events) != 1 || rec.events[0].Source != model.SourceEnhance {
		t.Errorf("unexpected recorded events %+v", rec.events)
	}
}

func TestEnhance_ExplicitlyDisabled(t *testing.T) {
	svc := newTestEnhancerService(nil)

	resp, err := svc.Enhance(context.Background(), model.EnhanceRequest{
		Password:      "abc",
		Grow:          boolPtr(false),
		AddComplexity: boolPtr(false),
		MixCase:       boolPtr(false),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Password != "abc" {
		t.Errorf("expected unchanged password, got %q", resp.Password)
	}
}

func TestEnhance_EmptyInput(t *testing.T) {
	svc := newTestEnhancerService(nil)

	_, err := svc.Enhance(context.Background(), model.EnhanceRequest{})
	if !errors.Is(err, crypto.ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
}

func TestEnhance_TooLong(t *testing.T) {
	svc := newTestEnhancerService(nil)

	_, err := svc.Enhance(context.Background(), model.EnhanceRequest{Password: strings.Repeat("y", 100)})
	if !errors.Is(err, ErrPasswordTooLong) {
		t.Fatalf("expected ErrPasswordTooLong, got %v", err)
	}
}
