// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dtoa

// formatDigits places the decimal point (or exponent) around a shortest
// digit string and appends the result to buf. digits holds L significant
// digits with no leading or trailing zeros (as produced by
// shortestDigits/shortestDigits32); the represented magnitude is
// digits * 10**weight, equivalently 0.digits * 10**(L+weight). neg prepends
// a '-' sign. Positional notation is used when 0 < kk <= 21 or
// -6 < kk <= 0 (kk = L+weight, the power of ten of the leading digit plus
// one); scientific notation otherwise.
func formatDigits(buf []byte, digits []byte, weight int, neg bool) []byte {
	if neg {
		buf = append(buf, '-')
	}

	l := len(digits)
	kk := l + weight

	switch {
	case kk > 0 && kk <= 21:
		if kk >= l {
			buf = append(buf, digits...)
			for i := 0; i < kk-l; i++ {
				buf = append(buf, '0')
			}
			buf = append(buf, '.', '0')
		} else {
			buf = append(buf, digits[:kk]...)
			buf = append(buf, '.')
			buf = append(buf, digits[kk:]...)
		}
	case kk > -6 && kk <= 0:
		buf = append(buf, '0', '.')
		for i := 0; i < -kk; i++ {
			buf = append(buf, '0')
		}
		buf = append(buf, digits...)
	case l == 1:
		buf = append(buf, digits[0])
		buf = appendExponent(buf, kk-1)
	default:
		buf = append(buf, digits[0], '.')
		buf = append(buf, digits[1:]...)
		buf = appendExponent(buf, kk-1)
	}

	return buf
}

// appendExponent appends "e" followed by exp in decimal, with a leading '-'
// for negative values and no leading '+' or leading zeros.
func appendExponent(buf []byte, exp int) []byte {
	buf = append(buf, 'e')
	if exp < 0 {
		buf = append(buf, '-')
		exp = -exp
	}
	if exp >= 100 {
		// digitPairs only covers two digits at a time; peel off the
		// hundreds (float64 exponents need at most 3 digits).
		hundreds := exp / 100
		buf = append(buf, byte('0'+hundreds))
		exp %= 100
		return appendTwoDigits(buf, exp)
	}
	if exp >= 10 {
		return appendTwoDigits(buf, exp)
	}
	return append(buf, byte('0'+exp))
}
