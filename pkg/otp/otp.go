package otp

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

// Generator produces numeric one-time codes.
type Generator interface {
	RandomCode(length int) (string, error)
}

// RandGenerator draws every code uniformly from [0, 10^length).
type RandGenerator struct {
	reader io.Reader
}

func NewRandGenerator() *RandGenerator {
	return &RandGenerator{reader: rand.Reader}
}

func (g *RandGenerator) RandomCode(length int) (string, error) {
	if length <= 0 || length > 18 {
		return "", fmt.Errorf("invalid code length %d", length)
	}

	upper := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(length)), nil)

	n, err := rand.Int(g.reader, upper)
	if err != nil {
		return "", fmt.Errorf("read random number failed: %w", err)
	}

	return fmt.Sprintf("%0*d", length, n.Int64()), nil
}
