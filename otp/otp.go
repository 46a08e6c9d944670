// SPDX-License-Identifier: MIT

package otp

import (
	"crypto/hmac"
	"encoding/binary"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Digest computes the HMAC of the counter, serialized as 8 big-endian bytes, keyed by the secret.
// The counter is the low 64 bits of whatever the caller tracks; anything wider wraps around, it is not an error.
// It has no shared state, so it is safe to call concurrently with different secrets/counters.
func Digest(secret []byte, counter uint64, algorithm Algorithm) ([]byte, error) {
	newHasher, found := hashersPerAlgorithm[algorithm]
	if !found {
		return nil, errors.Wrapf(ErrUnsupportedAlgorithm, "algorithm %q is not one of %q,%q,%q", algorithm, SHA1, SHA256, SHA512)
	}
	if len(secret) == 0 {
		return nil, errors.Wrap(ErrInvalidKey, "secret must not be empty")
	}
	buffer := make([]byte, counterSize)
	binary.BigEndian.PutUint64(buffer, counter)
	mac := hmac.New(newHasher, secret)
	mac.Write(buffer) // Never fails, per the hash.Hash contract.

	return mac.Sum(nil), nil
}

// Truncate reduces a digest to a decimal code of exactly `digits` characters, per RFC 4226 §5.3 dynamic truncation.
// The low nibble of the last digest byte selects a 4 byte window, the top bit of which is masked off to kill sign ambiguity,
// and the resulting 31 bit integer is rendered as `code mod 10^digits`, zero-padded on the left.
func Truncate(digest []byte, digits uint8) (string, error) {
	if digits == 0 {
		return "", errors.Wrap(ErrInvalidDigits, "digits must be at least 1")
	}
	if len(digest) == 0 {
		return "", errors.Wrap(ErrDigestTooShort, "digest must not be empty")
	}
	offset := digest[len(digest)-1] & 0x0f
	if int(offset)+4 > len(digest) {
		return "", errors.Wrapf(ErrDigestTooShort, "truncation needs %v bytes, digest has %v", offset+4, len(digest))
	}
	code := binary.BigEndian.Uint32(digest[offset:offset+4]) & codeBitMask
	if code == 0 {
		// Reachable only with probability ~1/2^31; rejected instead of emitting an all-zero code.
		return "", errors.Wrap(ErrZeroCode, "failed to truncate digest")
	}
	rendered := strconv.FormatUint(uint64(code), 10)
	if pad := int(digits) - len(rendered); pad > 0 {
		rendered = strings.Repeat("0", pad) + rendered
	}

	return rendered[len(rendered)-int(digits):], nil
}
