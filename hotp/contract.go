// SPDX-License-Identifier: MIT

package hotp

import (
	"github.com/otpkit/otpkit/otp"
)

// Public API.

type (
	HOTP interface {
		Generator
		Verifier
	}
	Generator interface {
		Generate(secret []byte, counter uint64) (string, error)
		GenerateWithDigest(secret []byte, counter uint64, digest []byte) (string, error)
	}
	Verifier interface {
		Verify(token string, secret []byte, counter uint64) (bool, error)
	}
	Config struct {
		Algorithm otp.Algorithm `yaml:"algorithm" mapstructure:"algorithm"`
		Digits    uint8         `yaml:"digits" mapstructure:"digits"`
		Window    uint64        `yaml:"window" mapstructure:"window"`
	}
)

// Private API.

const (
	defaultWindow = 10
)

type (
	hotp struct {
		cfg *Config
	}
	config struct {
		OTPKitHOTP Config `yaml:"otpkit/hotp" mapstructure:"otpkit/hotp"` //nolint:tagliatelle // .
	}
)
