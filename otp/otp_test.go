// SPDX-License-Identifier: MIT

package otp

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	rfc4226Secret = "12345678901234567890"
)

// Intermediate HMAC-SHA-1 values from RFC 4226, Appendix D.
//
//nolint:gochecknoglobals // Immutable test vectors.
var rfc4226Digests = []string{
	"cc93cf18508d94934c64b65d8ba7667fb7cde4b0",
	"75a48a19d4cbe100644e8ac1397eea747a2d33ab",
	"0bacb7fa082fef30782211938bc1c5e70416ff44",
	"66c28227d03a2d5529262ff016a1e6ef76557ece",
	"a904c900a64b35909874b33e61c5938a8e15ed1c",
	"a37e783d7b7233c083d4f62926c7a25f238d0316",
	"bc9cd28561042c83f219324d3c607256c03272ae",
	"a4fb960c0bc06e1eabb804e5b397cdc4b45596fa",
	"1b3c89f65e6c9e883012052823443f048b4332db",
	"1637409809a679dc698207310c8c7fc07290d9e5",
}

func TestDigestRFC4226Vectors(t *testing.T) {
	t.Parallel()
	for counter, expectedDigest := range rfc4226Digests {
		actualDigest, err := Digest([]byte(rfc4226Secret), uint64(counter), SHA1)
		require.NoError(t, err)
		assert.Equal(t, expectedDigest, hex.EncodeToString(actualDigest))
	}
}

func TestDigestIsDeterministic(t *testing.T) {
	t.Parallel()
	first, err := Digest([]byte("some super secret key"), 123456789, SHA256)
	require.NoError(t, err)
	second, err := Digest([]byte("some super secret key"), 123456789, SHA256)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDigestLengthsPerAlgorithm(t *testing.T) {
	t.Parallel()
	for algorithm, expectedLength := range map[Algorithm]int{SHA1: 20, SHA256: 32, SHA512: 64} {
		digest, err := Digest([]byte(rfc4226Secret), 0, algorithm)
		require.NoError(t, err)
		assert.Len(t, digest, expectedLength)
	}
}

func TestDigestRejectsEmptySecret(t *testing.T) {
	t.Parallel()
	digest, err := Digest(nil, 0, SHA1)
	require.ErrorIs(t, err, ErrInvalidKey)
	assert.Nil(t, digest)
}

func TestDigestRejectsUnsupportedAlgorithm(t *testing.T) {
	t.Parallel()
	digest, err := Digest([]byte(rfc4226Secret), 0, "MD5")
	require.ErrorIs(t, err, ErrUnsupportedAlgorithm)
	assert.Nil(t, digest)
}

func TestTruncateRFC4226Vectors(t *testing.T) {
	t.Parallel()
	expectedCodes := []string{"755224", "287082", "359152", "969429", "338314", "254676", "287922", "162583", "399871", "520489"}
	for counter, digestHex := range rfc4226Digests {
		digest, err := hex.DecodeString(digestHex)
		require.NoError(t, err)
		code, err := Truncate(digest, DefaultDigits)
		require.NoError(t, err)
		assert.Equal(t, expectedCodes[counter], code)
	}
}

func TestTruncateKeepsLowOrderDigits(t *testing.T) {
	t.Parallel()
	digest, err := hex.DecodeString(rfc4226Digests[0]) // Truncates to the 31 bit integer 1284755224.
	require.NoError(t, err)
	for digits, expectedCode := range map[uint8]string{
		1:  "4",
		2:  "24",
		6:  "755224",
		10: "1284755224",
		12: "001284755224",
	} {
		code, tErr := Truncate(digest, digits)
		require.NoError(t, tErr)
		assert.Equal(t, expectedCode, code)
		assert.Len(t, code, int(digits))
	}
}

func TestTruncateRejectsZeroDigits(t *testing.T) {
	t.Parallel()
	digest, err := hex.DecodeString(rfc4226Digests[0])
	require.NoError(t, err)
	code, err := Truncate(digest, 0)
	require.ErrorIs(t, err, ErrInvalidDigits)
	assert.Empty(t, code)
}

func TestTruncateRejectsZeroCode(t *testing.T) {
	t.Parallel()
	code, err := Truncate(make([]byte, 20), DefaultDigits)
	require.ErrorIs(t, err, ErrZeroCode)
	assert.Empty(t, code)
}

func TestTruncateRejectsTooShortDigest(t *testing.T) {
	t.Parallel()
	code, err := Truncate(nil, DefaultDigits)
	require.ErrorIs(t, err, ErrDigestTooShort)
	assert.Empty(t, code)

	shortDigest := []byte{0x12, 0x34, 0x56, 0x78, 0x0f} // Offset 15 needs 19 bytes.
	code, err = Truncate(shortDigest, DefaultDigits)
	require.ErrorIs(t, err, ErrDigestTooShort)
	assert.Empty(t, code)
}

func TestTruncateSignBitIsMasked(t *testing.T) {
	t.Parallel()
	digest := make([]byte, 20)
	digest[0], digest[1], digest[2], digest[3] = 0xff, 0xff, 0xff, 0xff // Offset 0, sign bit set.
	code, err := Truncate(digest, 10)
	require.NoError(t, err)
	assert.Equal(t, "2147483647", code)
}
