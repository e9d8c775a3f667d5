package utils

import (
	"crypto/rand"
	"math/big"
)

// RandomInt returns a uniformly distributed integer in [0, max) drawn from
// crypto/rand. It returns 0 when max is not positive.
func RandomInt(max int) int {
	if max <= 0 {
		return 0
	}

	n, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		panic("failed to generate random number: " + err.Error())
	}

	return int(n.Int64())
}
