package crypto

import (
	"crypto/rand"
	"math/big"
	mrand "math/rand/v2"
)

// RandomSource yields uniform random integers in [0, n).
type RandomSource interface {
	IntN(n int) (int, error)
}

// SecureSource draws from crypto/rand. It is the default for Generate and Enhance.
type SecureSource struct{}

// IntN returns a uniform random int in [0, n) using crypto/rand.
func (SecureSource) IntN(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}

// SeededSource is a deterministic source for tests. Not safe for concurrent use.
type SeededSource struct {
	r *mrand.Rand
}

// NewSeededSource returns a SeededSource producing the same sequence for the same seed.
func NewSeededSource(seed uint64) *SeededSource {
	return &SeededSource{r: mrand.New(mrand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// IntN returns a pseudo-random int in [0, n).
func (s *SeededSource) IntN(n int) (int, error) {
	return s.r.IntN(n), nil
}

// randChar picks a random character from charset.
func randChar(src RandomSource, charset string) (byte, error) {
	i, err := src.IntN(len(charset))
	if err != nil {
		return 0, err
	}
	return charset[i], nil
}

// shuffle performs a Fisher-Yates shuffle.
func shuffle(src RandomSource, data []byte) error {
	for i := len(data) - 1; i > 0; i-- {
		j, err := src.IntN(i + 1)
		if err != nil {
			return err
		}
		data[i], data[j] = data[j], data[i]
	}
	return nil
}
