// SPDX-License-Identifier: MIT

package terror

// Public API.

type (
	// Err is an error enriched with structured data about the failure, e.g. the
	// counter a verification search was at when generation failed.
	Err struct {
		error
		Data map[string]any `json:"data"`
	}
)
