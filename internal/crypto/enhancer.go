package crypto

import (
	"errors"
	"strings"
	"unicode"
)

// GrowLength is the length Enhance pads short passwords up to.
const GrowLength = 12

var ErrEmptyInput = errors.New("password is required")

// EnhanceOptions selects which transformations Enhance applies.
type EnhanceOptions struct {
	Grow          bool
	AddComplexity bool
	MixCase       bool
}

// DefaultEnhanceOptions enables every transformation.
func DefaultEnhanceOptions() EnhanceOptions {
	return EnhanceOptions{Grow: true, AddComplexity: true, MixCase: true}
}

// Enhance strengthens an existing password while keeping it recognizable.
func Enhance(password string, opts EnhanceOptions) (string, error) {
	return EnhanceWith(SecureSource{}, password, opts)
}

// EnhanceWith is Enhance drawing randomness from src.
//
// Steps run in a fixed order: case mixing, then class completion, then
// padding. Characters of the input are never removed or reordered.
func EnhanceWith(src RandomSource, password string, opts EnhanceOptions) (string, error) {
	if password == "" {
		return "", ErrEmptyInput
	}

	out := []rune(password)

	if opts.MixCase {
		for i, r := range out {
			if !unicode.IsLetter(r) {
				continue
			}
			flip, err := src.IntN(2)
			if err != nil {
				return "", err
			}
			if flip == 1 {
				out[i] = toggleCase(r)
			}
		}
	}

	if opts.AddComplexity {
		s := string(out)
		if !strings.ContainsAny(s, symbolChars) {
			ch, err := randChar(src, symbolChars)
			if err != nil {
				return "", err
			}
			out = append(out, rune(ch))
		}
		if !strings.ContainsAny(s, numberChars) {
			ch, err := randChar(src, numberChars)
			if err != nil {
				return "", err
			}
			out = append(out, rune(ch))
		}
	}

	if opts.Grow {
		pool := uppercaseChars + lowercaseChars + numberChars + symbolChars
		for len(out) < GrowLength {
			ch, err := randChar(src, pool)
			if err != nil {
				return "", err
			}
			out = append(out, rune(ch))
		}
	}

	return string(out), nil
}

func toggleCase(r rune) rune {
	switch {
	case unicode.IsUpper(r):
		return unicode.ToLower(r)
	case unicode.IsLower(r):
		return unicode.ToUpper(r)
	default:
		return r
	}
}
