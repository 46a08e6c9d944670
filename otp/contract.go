// SPDX-License-Identifier: MIT

package otp

import (
	"crypto/sha1" //nolint:gosec // RFC 4226 mandates HMAC-SHA1 support.
	"crypto/sha256"
	"crypto/sha512"
	"hash"

	"github.com/pkg/errors"
)

// Public API.

const (
	SHA1   Algorithm = "SHA1"
	SHA256 Algorithm = "SHA256"
	SHA512 Algorithm = "SHA512"
)

const (
	// DefaultDigits is the code length used by virtually every authenticator deployment.
	DefaultDigits = 6
)

var (
	ErrInvalidKey           = errors.New("invalid key")
	ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")
	ErrInvalidDigits        = errors.New("invalid digits")
	ErrZeroCode             = errors.New("truncation produced a zero code")
	ErrDigestTooShort       = errors.New("digest too short")
)

type (
	// Algorithm selects the keyed-hash primitive used to digest the counter.
	Algorithm string
)

// Private API.

const (
	counterSize = 8
	codeBitMask = 0x7fffffff
)

// .
var (
	//nolint:gochecknoglobals // Immutable lookup table.
	hashersPerAlgorithm = map[Algorithm]func() hash.Hash{
		SHA1:   sha1.New,
		SHA256: sha256.New,
		SHA512: sha512.New,
	}
)
