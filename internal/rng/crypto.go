package rng

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Crypto draws from crypto/rand and is used for every real shuffle
type Crypto struct{}

// Intn returns a random number from 0 <= x < n
func (Crypto) Intn(n int) int {
	if n <= 0 {
		panic(fmt.Sprintf("rng: invalid argument to Intn: %d", n))
	}

	b, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(err)
	}

	return int(b.Int64())
}
