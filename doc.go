// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package dtoa converts IEEE-754 binary floating-point values to the shortest
decimal string that round-trips back to the exact same binary value.

The implementation is a Grisu2-style extended-precision digit generator: a
(significand, exponent) pair of fixed width ("DiyFp", do-it-yourself
floating-point) is scaled by a precomputed power of ten so that a small,
constant number of integer divisions suffice to emit every significant
digit. Unlike big.Float-style arbitrary-precision conversion, every
intermediate value fits in a machine word, and the cached powers of ten are
immutable program data. The formatting path is not allocation-free: the
digit generator allocates a new digit buffer on each call.

The package exposes both a float64 and a float32 path. Each float64 value
formats through the 64-bit DiyFp; each float32 value formats through a
dedicated 32-bit DiyFp rather than widening to float64, since a float32's
binary layout (8-bit exponent, 23-bit significand) needs fewer boundary
bits than a float64's and produces at most 9 significant digits instead of
17.

Basic usage:

	s := dtoa.String(2.718281828459045) // "2.718281828459045"
	err := dtoa.Format(w, 1.1e128)      // writes "1.1e128" to w

Format, Append and String assume the input is finite; behavior on NaN or
±Inf is unspecified (see ErrNotFinite). FormatChecked and AppendChecked
reject non-finite input instead of producing unspecified output.

Float64 and Float32 are thin wrapper types for callers that want
fmt.Stringer, fmt.Formatter or encoding.TextMarshaler support without
calling the free functions directly.
*/
package dtoa
