// SPDX-License-Identifier: MIT

package log

// Private API.

type (
	cfg struct {
		Encoder string `yaml:"encoder" mapstructure:"encoder"`
		Level   string `yaml:"level" mapstructure:"level"`
	}
)
