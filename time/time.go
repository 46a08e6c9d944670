// SPDX-License-Identifier: MIT

package time

import (
	"context"
	stdlibtime "time"

	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"
)

func Now() *Time {
	now := stdlibtime.Now().UTC()

	return &Time{Time: &now}
}

func New(time stdlibtime.Time) *Time {
	utc := time.UTC()

	return &Time{Time: &utc}
}

func (t *Time) EncodeMsgpack(enc *msgpack.Encoder) error {
	return errors.Wrap(enc.EncodeUint64(uint64(t.UTC().UnixNano())), "failed to encode time as uint64")
}

func (t *Time) DecodeMsgpack(dec *msgpack.Decoder) error {
	nanos, err := dec.DecodeUint64()
	if err != nil {
		return errors.Wrap(err, "failed to decode time as uint64")
	}
	t.Time = new(stdlibtime.Time)
	*t.Time = stdlibtime.Unix(0, int64(nanos)).UTC()

	return nil
}

func (t *Time) MarshalJSON(_ context.Context) ([]byte, error) {
	if t.Time == nil || t.UnixNano() == 0 {
		return []byte("null"), nil
	}

	//nolint:wrapcheck // We're just proxying it.
	return t.UTC().MarshalJSON()
}

func (t *Time) UnmarshalJSON(_ context.Context, bytes []byte) error {
	data := string(bytes)
	if data == "null" || data == `""` || data == "" {
		return nil
	}
	parsed, err := stdlibtime.Parse(`"`+stdlibtime.RFC3339Nano+`"`, data)
	if err != nil {
		return errors.Wrapf(err, "invalid time format: %v", data)
	}
	t.Time = new(stdlibtime.Time)
	*t.Time = parsed.UTC()

	return nil
}
