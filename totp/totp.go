// SPDX-License-Identifier: MIT

// Package totp implements RFC 6238 time-based one-time passwords by deriving a counter
// from an injected instant and delegating to the hotp engine. The clock is always
// supplied by the caller, never read ambiently, so everything stays deterministic.
package totp

import (
	"crypto/subtle"

	"github.com/pkg/errors"

	appcfg "github.com/otpkit/otpkit/config"
	"github.com/otpkit/otpkit/hotp"
	"github.com/otpkit/otpkit/otp"
	"github.com/otpkit/otpkit/terror"
	"github.com/otpkit/otpkit/time"
)

func New(applicationYamlKey string) TOTP {
	var cfg config
	appcfg.MustLoadFromKey(applicationYamlKey, &cfg)

	return NewTOTP(&cfg.OTPKitTOTP)
}

func NewTOTP(cfg *Config) TOTP {
	defaulted := *cfg
	if defaulted.Digits == 0 {
		defaulted.Digits = otp.DefaultDigits
	}
	if defaulted.Window == 0 {
		defaulted.Window = defaultWindow
	}
	if defaulted.StepSeconds == 0 {
		defaulted.StepSeconds = defaultStepSeconds
	}
	if defaulted.Algorithm == "" {
		defaulted.Algorithm = otp.SHA1
	}
	engine := hotp.NewHOTP(&hotp.Config{Algorithm: defaulted.Algorithm, Digits: defaulted.Digits})

	return &totp{engine: engine, cfg: &defaulted}
}

func (t *totp) Generate(now *time.Time, secret []byte) (string, error) {
	code, err := t.engine.Generate(secret, t.counter(now))
	if err != nil {
		return "", errors.Wrapf(err, "failed to generate code for %v", now)
	}

	return code, nil
}

// Verify searches the symmetric window `counter-window..counter+window`, unlike hotp's
// forward-only one, because clock skew drifts both ways. The lower bound clamps at 0.
func (t *totp) Verify(now *time.Time, token string, secret []byte) (bool, error) {
	if len(token) != int(t.cfg.Digits) {
		return false, nil
	}
	counter := t.counter(now)
	firstCounter := uint64(0)
	if counter > t.cfg.Window {
		firstCounter = counter - t.cfg.Window
	}
	for candidateCounter := firstCounter; candidateCounter <= counter+t.cfg.Window; candidateCounter++ {
		candidate, err := t.engine.Generate(secret, candidateCounter)
		if err != nil {
			return false, terror.New(errors.Wrap(err, "failed to generate candidate code"), map[string]any{"counter": candidateCounter})
		}
		if subtle.ConstantTimeCompare([]byte(token), []byte(candidate)) == 1 {
			return true, nil
		}
	}

	return false, nil
}

func (t *totp) counter(now *time.Time) uint64 {
	elapsedSeconds := now.Unix() - t.cfg.EpochOffsetSeconds
	if elapsedSeconds < 0 {
		elapsedSeconds = 0
	}

	return uint64(elapsedSeconds) / t.cfg.StepSeconds
}
