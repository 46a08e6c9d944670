// SPDX-License-Identifier: MIT

package secret

// Public API.

const (
	DefaultLength = 32

	// Alphanumerics is the base character set every generated secret draws from.
	Alphanumerics = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	// Symbols is appended to the character set when symbols are requested.
	Symbols = "!@#$%^&*()<>?/[]{},.:;"
)
