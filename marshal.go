// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dtoa

import "fmt"

// Float64 is a float64 that implements fmt.Stringer, fmt.Formatter and
// encoding.TextMarshaler in terms of String/Append, for callers that want
// those interfaces without calling the free functions directly. The type
// carries no state beyond the value itself: no precision, rounding mode or
// accuracy to configure.
type Float64 float64

// String returns the shortest round-trip decimal representation of x.
func (x Float64) String() string { return String(float64(x)) }

// MarshalText implements encoding.TextMarshaler.
func (x Float64) MarshalText() ([]byte, error) {
	return Append(nil, float64(x)), nil
}

// Format implements fmt.Formatter. It supports the 'v' and 's' verbs; any
// other verb is reported as a %!verb(type=value) error string, matching
// fmt's own convention for formatters asked to handle a verb they don't
// support, rather than silently falling back to strconv.
func (x Float64) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
		writeString(s, x.String())
	default:
		fmt.Fprintf(s, "%%!%c(dtoa.Float64=%s)", verb, x.String())
	}
}

// Float32 is the float32 analog of Float64, backed by the dedicated
// 32-bit DiyFp path (AppendFloat32/StringFloat32).
type Float32 float32

// String returns the shortest round-trip decimal representation of x.
func (x Float32) String() string { return StringFloat32(float32(x)) }

// MarshalText implements encoding.TextMarshaler.
func (x Float32) MarshalText() ([]byte, error) {
	return AppendFloat32(nil, float32(x)), nil
}

// Format implements fmt.Formatter, with the same verb support as
// Float64.Format.
func (x Float32) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
		writeString(s, x.String())
	default:
		fmt.Fprintf(s, "%%!%c(dtoa.Float32=%s)", verb, x.String())
	}
}

// writeString writes s to w, ignoring the error: fmt.State.Write never
// fails in practice (it writes into the Printf machinery's own buffer), and
// fmt.Formatter's contract has no error channel to report one through.
func writeString(w fmt.State, s string) {
	_, _ = w.Write([]byte(s))
}
