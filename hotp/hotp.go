// SPDX-License-Identifier: MIT

// Package hotp implements RFC 4226 counter-based one-time passwords.
// Counters are caller-managed; the engine never stores one.
package hotp

import (
	"crypto/subtle"

	"github.com/pkg/errors"

	appcfg "github.com/otpkit/otpkit/config"
	"github.com/otpkit/otpkit/otp"
	"github.com/otpkit/otpkit/terror"
)

func New(applicationYamlKey string) HOTP {
	var cfg config
	appcfg.MustLoadFromKey(applicationYamlKey, &cfg)

	return NewHOTP(&cfg.OTPKitHOTP)
}

func NewHOTP(cfg *Config) HOTP {
	defaulted := *cfg
	if defaulted.Digits == 0 {
		defaulted.Digits = otp.DefaultDigits
	}
	if defaulted.Window == 0 {
		defaulted.Window = defaultWindow
	}
	if defaulted.Algorithm == "" {
		defaulted.Algorithm = otp.SHA1
	}

	return &hotp{cfg: &defaulted}
}

func (h *hotp) Generate(secret []byte, counter uint64) (string, error) {
	digest, err := otp.Digest(secret, counter, h.cfg.Algorithm)
	if err != nil {
		return "", errors.Wrapf(err, "failed to digest counter %v", counter)
	}

	return h.GenerateWithDigest(secret, counter, digest)
}

// GenerateWithDigest truncates the supplied digest instead of computing one, which allows
// pre-shared test vectors or alternate MAC schemes. The digest is treated as authoritative;
// its provenance is the caller's problem.
func (h *hotp) GenerateWithDigest(_ []byte, counter uint64, digest []byte) (string, error) {
	code, err := otp.Truncate(digest, h.cfg.Digits)
	if err != nil {
		return "", errors.Wrapf(err, "failed to truncate digest for counter %v", counter)
	}

	return code, nil
}

// Verify searches `counter..counter+window`, inclusive. HOTP counters only ever move
// forward, so no negative offset is checked. A token of the wrong length fails closed
// before any digest is computed. Errors surface only when generating a candidate
// itself fails; a mere mismatch is a silent false.
func (h *hotp) Verify(token string, secret []byte, counter uint64) (bool, error) {
	if len(token) != int(h.cfg.Digits) {
		return false, nil
	}
	for offset := uint64(0); offset <= h.cfg.Window; offset++ {
		candidate, err := h.Generate(secret, counter+offset)
		if err != nil {
			return false, terror.New(errors.Wrap(err, "failed to generate candidate code"), map[string]any{"counter": counter + offset})
		}
		if subtle.ConstantTimeCompare([]byte(token), []byte(candidate)) == 1 {
			return true, nil
		}
	}

	return false, nil
}
