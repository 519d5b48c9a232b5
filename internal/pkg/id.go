package pkg

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const maxMatchID = 99999999

// GenerateMatchID - generates a random numeric identifier for a match.
func GenerateMatchID() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(maxMatchID))
	if err != nil {
		return "", fmt.Errorf("failed to read random number: %w", err)
	}

	return n.String(), nil
}
