package envflag

import (
	"errors"
	"strconv"
)

// Value is the closed set of target types the typed query path can resolve.
type Value interface {
	string | bool |
		int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

var errInvalidBool = errors.New("invalid boolean")

// parseValue converts a raw string into T. Dispatch is a static type switch
// over the closed [Value] set; no reflection is involved.
//
// Booleans accept only the canonical "true"/"false" spellings — callers are
// expected to run [NormalizeBool] first, so anything still non-canonical here
// must fail rather than be coerced.
func parseValue[T Value](s string) (T, error) {
	var out T
	var err error

	switch p := any(&out).(type) {
	case *string:
		*p = s
	case *bool:
		switch s {
		case "true":
			*p = true
		case "false":
			*p = false
		default:
			err = errInvalidBool
		}
	case *int:
		var v int64
		v, err = strconv.ParseInt(s, 10, 0)
		*p = int(v)
	case *int8:
		var v int64
		v, err = strconv.ParseInt(s, 10, 8)
		*p = int8(v)
	case *int16:
		var v int64
		v, err = strconv.ParseInt(s, 10, 16)
		*p = int16(v)
	case *int32:
		var v int64
		v, err = strconv.ParseInt(s, 10, 32)
		*p = int32(v)
	case *int64:
		*p, err = strconv.ParseInt(s, 10, 64)
	case *uint:
		var v uint64
		v, err = strconv.ParseUint(s, 10, 0)
		*p = uint(v)
	case *uint8:
		var v uint64
		v, err = strconv.ParseUint(s, 10, 8)
		*p = uint8(v)
	case *uint16:
		var v uint64
		v, err = strconv.ParseUint(s, 10, 16)
		*p = uint16(v)
	case *uint32:
		var v uint64
		v, err = strconv.ParseUint(s, 10, 32)
		*p = uint32(v)
	case *uint64:
		*p, err = strconv.ParseUint(s, 10, 64)
	case *float32:
		var v float64
		v, err = strconv.ParseFloat(s, 32)
		*p = float32(v)
	case *float64:
		*p, err = strconv.ParseFloat(s, 64)
	}

	return out, err
}

// isBool reports whether T is the boolean target type, which gets
// normalization before validation and parsing.
func isBool[T Value]() bool {
	var v T
	_, ok := any(v).(bool)
	return ok
}
