package crypto

import (
	"errors"
)

const (
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	numberChars    = "0123456789"
	symbolChars    = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

	// MaxLength bounds generated passwords.
	MaxLength = 128
)

var (
	ErrNoClassSelected = errors.New("at least one character type must be selected")
	ErrLengthTooShort  = errors.New("password length must be at least equal to the number of selected character types")
	ErrLengthTooLong   = errors.New("password length must be at most 128")
)

// GeneratorOptions configures the password generator.
type GeneratorOptions struct {
	Length    int
	Uppercase bool
	Lowercase bool
	Numbers   bool
	Symbols   bool
}

// DefaultOptions returns sensible defaults: 16 characters with all types enabled.
func DefaultOptions() GeneratorOptions {
	return GeneratorOptions{
		Length:    16,
		Uppercase: true,
		Lowercase: true,
		Numbers:   true,
		Symbols:   true,
	}
}

// charsets returns the alphabet of every selected class, in a fixed order.
func (o GeneratorOptions) charsets() []string {
	var sets []string
	if o.Uppercase {
		sets = append(sets, uppercaseChars)
	}
	if o.Lowercase {
		sets = append(sets, lowercaseChars)
	}
	if o.Numbers {
		sets = append(sets, numberChars)
	}
	if o.Symbols {
		sets = append(sets, symbolChars)
	}
	return sets
}

// Generate creates a cryptographically secure random password based on the given options.
func Generate(opts GeneratorOptions) (string, error) {
	return GenerateWith(SecureSource{}, opts)
}

// GenerateWith is Generate drawing randomness from src.
//
// The class check runs before any length check, so an empty selection always
// reports ErrNoClassSelected.
func GenerateWith(src RandomSource, opts GeneratorOptions) (string, error) {
	requiredSets := opts.charsets()
	if len(requiredSets) == 0 {
		return "", ErrNoClassSelected
	}
	if opts.Length < len(requiredSets) {
		return "", ErrLengthTooShort
	}
	if opts.Length > MaxLength {
		return "", ErrLengthTooLong
	}

	var pool string
	for _, charset := range requiredSets {
		pool += charset
	}

	result := make([]byte, opts.Length)

	// Guarantee at least one character from each selected type.
	for i, charset := range requiredSets {
		ch, err := randChar(src, charset)
		if err != nil {
			return "", err
		}
		result[i] = ch
	}

	for i := len(requiredSets); i < opts.Length; i++ {
		ch, err := randChar(src, pool)
		if err != nil {
			return "", err
		}
		result[i] = ch
	}

	if err := shuffle(src, result); err != nil {
		return "", err
	}

	return string(result), nil
}
