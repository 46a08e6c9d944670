// SPDX-License-Identifier: MIT

// Package testing holds JSON assertion helpers shared by the module's tests.
package testing

import (
	"bytes"
	"context"
	"testing"

	"github.com/goccy/go-json"
	"github.com/goccy/go-reflect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func MustMarshal(tb testing.TB, val any) string {
	tb.Helper()
	valueBytes, err := json.MarshalContext(context.Background(), val)
	require.NoError(tb, err)

	return string(valueBytes)
}

func MustUnmarshal[T any](tb testing.TB, val string) *T {
	tb.Helper()
	target := new(T)
	require.NoError(tb, json.UnmarshalContext(context.Background(), []byte(val), target))

	return target
}

// AssertSymmetricMarshallingUnmarshalling checks that an object marshals to the expected
// JSON and that the expected JSON unmarshals back into the object, ignoring `json:"-"` fields.
func AssertSymmetricMarshallingUnmarshalling[OBJ any](tb testing.TB, expectedUnmarshalling *OBJ, expectedMarshalling string) {
	tb.Helper()
	compacted := new(bytes.Buffer)
	require.NoError(tb, json.Compact(compacted, []byte(expectedMarshalling)))
	assert.Equal(tb, compacted.String(), MustMarshal(tb, expectedUnmarshalling))
	zeroValueIgnoredFields(expectedUnmarshalling)
	assert.EqualValues(tb, expectedUnmarshalling, MustUnmarshal[OBJ](tb, expectedMarshalling))
}

func zeroValueIgnoredFields(val any) {
	vType := reflect.TypeOf(val).Elem()
	vValue := reflect.ValueOf(val).Elem()
	if vType.Kind() != reflect.Struct {
		return
	}
	for ix := 0; ix < vType.NumField(); ix++ {
		if vType.Field(ix).PkgPath != "" {
			continue
		}
		if jsonTag := vType.Field(ix).Tag.Get("json"); jsonTag == "-" {
			vValue.Field(ix).Set(reflect.Zero(vType.Field(ix).Type))
		}
		if vValue.Field(ix).Kind() == reflect.Struct {
			zeroValueIgnoredFields(vValue.Field(ix).Addr().Interface())
		}
	}
}
