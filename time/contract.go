// SPDX-License-Identifier: MIT

package time

import (
	stdlibtime "time"

	"github.com/goccy/go-json"
	"github.com/vmihailenco/msgpack/v5"
)

// Public API.

type (
	// Time is a UTC-normalized instant, the unit every time-based engine in this
	// module is fed with instead of reading the wall clock ambiently.
	Time struct {
		*stdlibtime.Time
	}
)

// Private API.

// .
var (
	_ msgpack.CustomEncoder   = (*Time)(nil)
	_ msgpack.CustomDecoder   = (*Time)(nil)
	_ json.UnmarshalerContext = (*Time)(nil)
	_ json.MarshalerContext   = (*Time)(nil)
)
