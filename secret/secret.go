// SPDX-License-Identifier: MIT

// Package secret produces random key material for the OTP engines.
// The engines themselves never call it; they treat whatever byte sequence
// they are handed as an opaque key.
package secret

import (
	"crypto/rand"
	"math/big"

	"github.com/pkg/errors"

	"github.com/otpkit/otpkit/log"
)

// MustGenerate is Generate for callers that treat an unreadable random source as fatal.
func MustGenerate(length uint8, includeSymbols bool) string {
	generated, err := Generate(length, includeSymbols)
	log.Panic(err)

	return generated
}

// Generate returns a random string of the given length drawn from Alphanumerics,
// plus Symbols when includeSymbols is set. A zero length means DefaultLength.
func Generate(length uint8, includeSymbols bool) (string, error) {
	if length == 0 {
		length = DefaultLength
	}
	charset := Alphanumerics
	if includeSymbols {
		charset += Symbols
	}
	charsetSize := big.NewInt(int64(len(charset)))
	generated := make([]byte, 0, length)
	for i := 0; i < int(length); i++ {
		charIx, err := rand.Int(rand.Reader, charsetSize)
		if err != nil {
			return "", errors.Wrap(err, "failed to read from the crypto random source")
		}
		generated = append(generated, charset[charIx.Int64()])
	}

	return string(generated), nil
}
