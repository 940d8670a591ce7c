package strength

import (
	"math"
	"strings"
	"unicode/utf8"
)

// punctuation is the ASCII punctuation set counted as one 32-symbol pool.
const punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// EntropyBits estimates password entropy as log2(pool size) * length, where
// the pool is the sum of the ASCII classes that appear in the password.
//
// This is an upper bound that ignores structure: "aaaa" and "qzmx" score the
// same. Characters outside the four classes add nothing to the pool, so a
// password made only of them has 0 bits.
func EntropyBits(password string) float64 {
	pool := poolSize(password)
	if pool == 0 {
		return 0
	}
	return math.Log2(float64(pool)) * float64(utf8.RuneCountInString(password))
}

func poolSize(password string) int {
	var hasUpper, hasLower, hasDigit, hasPunct bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune(punctuation, r):
			hasPunct = true
		}
	}

	pool := 0
	if hasUpper {
		pool += 26
	}
	if hasLower {
		pool += 26
	}
	if hasDigit {
		pool += 10
	}
	if hasPunct {
		pool += len(punctuation)
	}
	return pool
}
