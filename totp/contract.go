// SPDX-License-Identifier: MIT

package totp

import (
	"github.com/otpkit/otpkit/hotp"
	"github.com/otpkit/otpkit/otp"
	"github.com/otpkit/otpkit/time"
)

// Public API.

type (
	TOTP interface {
		Generator
		Verifier
	}
	Generator interface {
		Generate(now *time.Time, secret []byte) (string, error)
	}
	Verifier interface {
		Verify(now *time.Time, token string, secret []byte) (bool, error)
	}
	Config struct {
		Algorithm          otp.Algorithm `yaml:"algorithm" mapstructure:"algorithm"`
		Digits             uint8         `yaml:"digits" mapstructure:"digits"`
		Window             uint64        `yaml:"window" mapstructure:"window"`
		StepSeconds        uint64        `yaml:"stepSeconds" mapstructure:"stepSeconds"`               //nolint:tagliatelle // .
		EpochOffsetSeconds int64         `yaml:"epochOffsetSeconds" mapstructure:"epochOffsetSeconds"` //nolint:tagliatelle // .
	}
)

// Private API.

const (
	defaultStepSeconds = 30
	defaultWindow      = 1
)

type (
	totp struct {
		engine hotp.Generator
		cfg    *Config
	}
	config struct {
		OTPKitTOTP Config `yaml:"otpkit/totp" mapstructure:"otpkit/totp"` //nolint:tagliatelle // .
	}
)
