package freebsd

import (
	"bytes"
	"fmt"
	"math"
	"unicode/utf8"
)

// Value is a decoded sysctl result. Kind selects the populated field;
// the remaining fields hold their zero value.
type Value struct {
	Kind  ValueKind
	Uint  uint64  // valid when Kind == KindUint
	Temp  float64 // valid when Kind == KindTemp, degrees Celsius
	Str   string  // valid when Kind == KindString
	Bytes []byte  // valid when Kind == KindBytes
}

// ToUint64 interprets data as an unsigned little-endian integer whose
// width is the length of the slice. An empty slice decodes to zero.
// Slices longer than eight bytes do not fit a uint64 and fail with a
// [DecodeError].
func ToUint64(data []byte) (uint64, error) {
	if len(data) > 8 {
		return 0, &DecodeError{Reason: fmt.Sprintf("integer width %d exceeds 8 bytes", len(data))}
	}
	var v uint64
	for i, b := range data {
		v |= uint64(b) << (8 * i)
	}
	return v, nil
}

// ToDegC interprets data as a kernel temperature reading, an integer
// count of tenths of a Kelvin as reported by nodes such as
// hw.acpi.thermal.tz0.temperature, and converts it to degrees Celsius
// rounded to one decimal place.
func ToDegC(data []byte) (float64, error) {
	v, err := ToUint64(data)
	if err != nil {
		return 0, err
	}
	c := float64(v)/10 - 273.15
	return math.Round(c*10) / 10, nil
}

// ToString decodes data as NUL-terminated text. Trailing NUL bytes are
// stripped and the remainder must be valid UTF-8, else a [DecodeError]
// is returned.
func ToString(data []byte) (string, error) {
	end := len(data)
	for end > 0 && data[end-1] == 0 {
		end--
	}
	s := data[:end]
	if !utf8.Valid(s) {
		return "", &DecodeError{Reason: "string value is not valid UTF-8"}
	}
	return string(s), nil
}

// isTerminatedString reports whether data has the shape of a
// NUL-terminated string: non-empty, a single trailing NUL, and no
// embedded NULs before it.
func isTerminatedString(data []byte) bool {
	if len(data) == 0 || data[len(data)-1] != 0 {
		return false
	}
	return bytes.IndexByte(data[:len(data)-1], 0) < 0
}

// AutoDecode guesses the shape of a raw sysctl value. Buffers of
// exactly 4 or 8 bytes decode as integers, the widths the kernel uses
// for its int and quad node types. Otherwise a buffer terminated by a
// single NUL with no embedded NULs and a valid UTF-8 body decodes as a
// string. Anything else comes back as raw bytes, so AutoDecode never
// fails.
//
// The integer rule looks at the buffer length alone and misclassifies
// fixed-size binary structures that happen to be 4 or 8 bytes wide.
// Callers that know a node's type should pass an explicit [Decoder] to
// [Decode] instead.
func AutoDecode(data []byte) Value {
	if len(data) == 4 || len(data) == 8 {
		v, _ := ToUint64(data)
		return Value{Kind: KindUint, Uint: v}
	}
	if isTerminatedString(data) {
		if s, err := ToString(data); err == nil {
			return Value{Kind: KindString, Str: s}
		}
	}
	return Value{Kind: KindBytes, Bytes: data}
}

// Decode applies the selected [Decoder] to a raw sysctl value.
// DecoderNone returns the bytes unchanged and DecoderAuto never fails;
// the remaining decoders fail with a [DecodeError] when the value does
// not fit their shape.
func Decode(data []byte, dec Decoder) (Value, error) {
	switch dec {
	case DecoderNone:
		return Value{Kind: KindBytes, Bytes: data}, nil
	case DecoderInt:
		v, err := ToUint64(data)
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: KindUint, Uint: v}, nil
	case DecoderTemp:
		c, err := ToDegC(data)
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: KindTemp, Temp: c}, nil
	case DecoderString:
		s, err := ToString(data)
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: KindString, Str: s}, nil
	case DecoderAuto:
		return AutoDecode(data), nil
	default:
		return Value{}, &DecodeError{Reason: fmt.Sprintf("unknown decoder %d", dec)}
	}
}
