/*
Package randx provides cryptographically secure random numbers and unique identifiers.

It supplies the uniform draws used by chat commands (dice, canned responses) and the
UUID used to correlate the log lines of one connect attempt.
*/
package randx

import (
	"crypto/rand"
	"math/big"

	"github.com/google/uuid"
)

// Source draws uniform integers from crypto/rand.
type Source struct{}

// IntN returns a uniform integer in [0, n). It panics if n <= 0.
func (Source) IntN(n int) int {
	if n <= 0 {
		panic("randx: IntN called with non-positive n")
	}

	num, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand.Reader does not fail on supported platforms.
		panic("randx: failed to read random number: " + err.Error())
	}

	return int(num.Int64())
}

// SessionID generates a UUID v4 string identifying one connect attempt.
func SessionID() string {
	return uuid.New().String()
}
