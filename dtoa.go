// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dtoa

import (
	"io"
	"math"
)

// MaxLen64 is the maximum number of bytes Append can write for a finite
// float64: 17 significant digits, sign, decimal point, 'e', exponent sign
// and up to 3 exponent digits.
const MaxLen64 = 24

// MaxLen32 is the float32 analog of MaxLen64: at most 9 significant digits.
const MaxLen32 = 15

// Append appends the shortest round-trip decimal representation of v to dst
// and returns the extended buffer. Behavior is unspecified if v is NaN or
// ±Inf; use AppendChecked to reject those explicitly.
func Append(dst []byte, v float64) []byte {
	bits := math.Float64bits(v)
	neg := bits>>63 != 0
	if v == 0 {
		if neg {
			dst = append(dst, '-')
		}
		return append(dst, '0', '.', '0')
	}

	mag := v
	if neg {
		mag = -mag
	}
	f := diyFpFromFloat64(mag)
	mMinus, mPlus := f.NormalizedBoundaries()
	digits, weight := shortestDigits(f, mMinus, mPlus)
	return formatDigits(dst, digits, weight, neg)
}

// AppendFloat32 is the float32 analog of Append, using the dedicated
// 32-bit DiyFp path (diyFp32) rather than widening to float64.
func AppendFloat32(dst []byte, v float32) []byte {
	bits := math.Float32bits(v)
	neg := bits>>31 != 0
	if v == 0 {
		if neg {
			dst = append(dst, '-')
		}
		return append(dst, '0', '.', '0')
	}

	mag := v
	if neg {
		mag = -mag
	}
	f := diyFp32FromFloat32(mag)
	mMinus, mPlus := f.normalizedBoundaries()
	digits, weight := shortestDigits32(f, mMinus, mPlus)
	return formatDigits(dst, digits, weight, neg)
}

// String returns the shortest round-trip decimal representation of v.
// Behavior is unspecified if v is NaN or ±Inf.
func String(v float64) string {
	var buf [MaxLen64]byte
	return string(Append(buf[:0], v))
}

// StringFloat32 is the float32 analog of String.
func StringFloat32(v float32) string {
	var buf [MaxLen32]byte
	return string(AppendFloat32(buf[:0], v))
}

// Format writes the shortest round-trip decimal representation of v to w.
// Any error returned is the one reported by w.Write, unmodified. Behavior is
// unspecified if v is NaN or ±Inf.
func Format(w io.Writer, v float64) error {
	var buf [MaxLen64]byte
	_, err := w.Write(Append(buf[:0], v))
	return err
}

// FormatFloat32 is the float32 analog of Format.
func FormatFloat32(w io.Writer, v float32) error {
	var buf [MaxLen32]byte
	_, err := w.Write(AppendFloat32(buf[:0], v))
	return err
}

// AppendChecked is like Append but returns ErrNotFinite instead of
// unspecified output when v is NaN or ±Inf.
func AppendChecked(dst []byte, v float64) ([]byte, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return dst, ErrNotFinite
	}
	return Append(dst, v), nil
}

// AppendFloat32Checked is the float32 analog of AppendChecked.
func AppendFloat32Checked(dst []byte, v float32) ([]byte, error) {
	if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
		return dst, ErrNotFinite
	}
	return AppendFloat32(dst, v), nil
}

// FormatChecked is like Format but returns ErrNotFinite without touching w
// when v is NaN or ±Inf.
func FormatChecked(w io.Writer, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ErrNotFinite
	}
	return Format(w, v)
}

// FormatFloat32Checked is the float32 analog of FormatChecked.
func FormatFloat32Checked(w io.Writer, v float32) error {
	if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
		return ErrNotFinite
	}
	return FormatFloat32(w, v)
}
