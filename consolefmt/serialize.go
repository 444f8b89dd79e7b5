package consolefmt

import (
	"bytes"
	"encoding/json"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Unserialisable replaces values that cannot be encoded as JSON.
const Unserialisable = "[Unserialisable Object]"

// Stringify returns the printable form of v.
//
// Strings pass through unchanged and errors print their message. nil,
// booleans and numbers use their canonical text, including named types
// built on them. Floats print the way JSON and JavaScript print them, with
// Infinity, -Infinity and NaN for non-finite values. Anything else is
// encoded as JSON indented by spacer spaces; a value that fails to encode
// prints as Unserialisable. Stringify never panics.
func Stringify(v any, spacer int) string {
	switch val := v.(type) {
	case string:
		return val
	case nil:
		return "null"
	case error:
		if isNilPointer(val) {
			return "null"
		}
		return errorMessage(val)
	case json.Marshaler:
		return marshalOrFallback(v, spacer)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String()
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32:
		return formatFloat(rv.Float(), 32)
	case reflect.Float64:
		return formatFloat(rv.Float(), 64)
	}
	return marshalOrFallback(v, spacer)
}

func marshalOrFallback(v any, spacer int) string {
	s, err := marshalJSON(v, spacer)
	if err != nil {
		return Unserialisable
	}
	return s
}

// formatFloat matches encoding/json for finite values: plain notation
// unless the exponent is below -6 or at least 21, with a minimal exponent.
func formatFloat(f float64, bits int) string {
	switch {
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case math.IsNaN(f):
		return "NaN"
	}

	format := byte('f')
	if abs := math.Abs(f); abs != 0 {
		if bits == 64 && (abs < 1e-6 || abs >= 1e21) ||
			bits == 32 && (float32(abs) < 1e-6 || float32(abs) >= 1e21) {
			format = 'e'
		}
	}
	b := strconv.AppendFloat(nil, f, format, -1, bits)
	if format == 'e' {
		// 1e-07 becomes 1e-7
		if n := len(b); n >= 4 && b[n-4] == 'e' && b[n-3] == '-' && b[n-2] == '0' {
			b[n-2] = b[n-1]
			b = b[:n-1]
		}
	}
	return string(b)
}

// errorMessage calls Error, treating a panicking implementation as unserialisable.
func errorMessage(err error) (msg string) {
	defer func() {
		if r := recover(); r != nil {
			msg = Unserialisable
		}
	}()
	return err.Error()
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}

// marshalJSON encodes v without HTML escaping. A spacer of 0 yields compact output.
func marshalJSON(v any, spacer int) (s string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("json encoder panicked: %v", r)
		}
	}()

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if spacer = clampSpacer(spacer); spacer > 0 {
		enc.SetIndent("", strings.Repeat(" ", spacer))
	}
	if err := enc.Encode(v); err != nil {
		return "", errors.Wrapf(err, "encode %T", v)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
