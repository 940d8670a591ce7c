package strength

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// commonPasswords is a short list of frequently breached passwords.
var commonPasswords = map[string]struct{}{
	"password": {}, "123456": {}, "password123": {}, "admin": {}, "qwerty": {},
	"abc123": {}, "letmein": {}, "welcome": {}, "monkey": {}, "1234567890": {},
	"dragon": {}, "sunshine": {}, "iloveyou": {}, "princess": {}, "football": {},
	"password1": {}, "qwerty123": {}, "12345678": {}, "123456789": {}, "12345": {},
	"111111": {}, "000000": {}, "qwertyuiop": {}, "asdfghjkl": {}, "zxcvbnm": {},
	"trustno1": {}, "baseball": {}, "master": {}, "secret": {}, "shadow": {},
	"superman": {}, "batman": {}, "1q2w3e4r": {}, "1qaz2wsx": {}, "qazwsx": {},
	"654321": {}, "abcd1234": {}, "123qwe": {}, "passw0rd": {}, "p@ssw0rd": {},
}

// HeuristicEstimator is a dependency-free estimator based on length,
// character variety and a few obvious patterns. It is much weaker than
// ZxcvbnEstimator and meant as a fallback.
type HeuristicEstimator struct{}

// NewHeuristicEstimator creates a new HeuristicEstimator.
func NewHeuristicEstimator() *HeuristicEstimator {
	return &HeuristicEstimator{}
}

// Estimate scores password on the 0-4 scale.
func (e *HeuristicEstimator) Estimate(password string, hints []string) (Estimate, error) {
	lower := strings.ToLower(password)
	if _, ok := commonPasswords[lower]; ok {
		return Estimate{Score: 0, Warning: warnCommon, Suggestions: []string{suggestAddWord}}, nil
	}

	l := utf8.RuneCountInString(password)
	classes := classCount(password)

	var warning string
	var suggestions []string

	for _, h := range hints {
		h = strings.ToLower(strings.TrimSpace(h))
		if len(h) < 3 {
			continue
		}
		if strings.Contains(lower, h) && l < 16 {
			if classes > 1 {
				classes--
			}
			warning = "Avoid using personal information like names or email addresses"
			break
		}
	}

	var score int
	switch {
	case l >= 14 && classes >= 3:
		score = 4
	case l >= 12 && classes >= 3:
		score = 3
		suggestions = append(suggestions, "Consider a 3-4 word passphrase for even stronger security")
	case l >= 10 && classes >= 2:
		score = 2
		suggestions = append(suggestions, "Add more length and mix letters, numbers and symbols")
	case l >= 8:
		score = 1
		suggestions = append(suggestions, "Use at least 12 characters with mixed types")
	default:
		score = 0
		suggestions = append(suggestions, "Use 12+ characters with upper and lower case letters, numbers and symbols")
	}

	switch {
	case hasRun(password, 3):
		score = max(0, score-1)
		if warning == "" {
			warning = warnRepeatChar
		}
		suggestions = append(suggestions, suggestRepeats)
	case hasSequence(lower, 4):
		score = max(0, score-1)
		if warning == "" {
			warning = warnSequence
		}
		suggestions = append(suggestions, suggestSequences)
	}

	if score <= 1 && warning == "" {
		warning = "This password is short or predictable"
	}

	return Estimate{Score: score, Warning: warning, Suggestions: suggestions}, nil
}

func classCount(password string) int {
	var hasL, hasU, hasD, hasS bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasL = true
		case unicode.IsUpper(r):
			hasU = true
		case unicode.IsDigit(r):
			hasD = true
		default:
			hasS = true
		}
	}
	n := 0
	for _, ok := range []bool{hasL, hasU, hasD, hasS} {
		if ok {
			n++
		}
	}
	return n
}

// hasRun reports whether s contains n or more identical consecutive characters.
func hasRun(s string, n int) bool {
	var prev rune
	count := 0
	for _, r := range s {
		if r == prev {
			count++
		} else {
			prev, count = r, 1
		}
		if count >= n {
			return true
		}
	}
	return false
}

// hasSequence reports whether s contains n or more consecutive characters
// stepping by +1 or -1, like "abcd" or "4321".
func hasSequence(s string, n int) bool {
	runes := []rune(s)
	up, down := 1, 1
	for i := 1; i < len(runes); i++ {
		switch runes[i] - runes[i-1] {
		case 1:
			up, down = up+1, 1
		case -1:
			up, down = 1, down+1
		default:
			up, down = 1, 1
		}
		if up >= n || down >= n {
			return true
		}
	}
	return false
}
