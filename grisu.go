// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dtoa

import "math/bits"

// pow10Table64 holds 10**0 .. 10**9, enough to split the at-most-10-digit
// integer part produced by the digit generator one division at a time.
var pow10Table64 = [...]uint32{
	1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000, 1000000000,
}

// pow2DecDigits32 maps bits.Len32(x) to the number of decimal digits needed
// to represent x, possibly one too many (countDecimalDigits32 corrects for
// that), for x in uint32's range.
var pow2DecDigits32 = [...]uint{
	1, 1, 1, 1, 2, 2, 2, 3, 3, 3, 4, 4, 4, 4, 5, 5,
	5, 6, 6, 6, 7, 7, 7, 7, 8, 8, 8, 9, 9, 9, 10, 10,
	10,
}

func countDecimalDigits32(x uint32) int {
	n := pow2DecDigits32[bits.Len32(x)]
	if x < pow10Table64[n-1] {
		n--
	}
	return int(n)
}

// shortestDigits runs Grisu2 on the DiyFp w (the raw decomposition of the
// float, normalized here) and its normalized boundaries m-, m+ (which share
// the exponent of the normalized w) and returns the shortest decimal digit string and its weight K such that
// the represented value is digits * 10**K.
func shortestDigits(w DiyFp, mMinus, mPlus DiyFp) (digits []byte, K int) {
	wNorm := w.Normalize()
	cMk, k := getCachedPower(mPlus.E)
	W := wNorm.Mul(cMk)
	Wp := mPlus.Mul(cMk)
	Wm := mMinus.Mul(cMk)
	Wm.F++
	Wp.F--

	digits, K = digitGen(W, Wp, Wp.F-Wm.F)
	K += k
	return digits, K
}

// digitGen splits mp by the position -mp.E into an integer part p1 and a
// fractional part p2, emits p1's digits most- to least-significant, then
// continues into p2 one digit at a time, stopping as soon as the remaining
// uncertainty (delta, shrunk by each emitted digit) no longer distinguishes
// the printed prefix from any other value that would round to the same
// float. kappa is the decimal exponent of the next digit to be emitted,
// relative to mp's scale.
func digitGen(w, mp DiyFp, delta uint64) (buf []byte, K int) {
	one := DiyFp{F: uint64(1) << uint(-mp.E), E: mp.E}
	wpW := mp.Sub(w)

	p1 := uint32(mp.F >> uint(-one.E))
	p2 := mp.F & (one.F - 1)

	kappa := countDecimalDigits32(p1)
	buf = make([]byte, 0, 18)

	for kappa > 0 {
		d := p1 / pow10Table64[kappa-1]
		p1 %= pow10Table64[kappa-1]
		kappa--
		if d != 0 || len(buf) != 0 {
			buf = append(buf, byte('0'+d))
		}
		tmp := (uint64(p1) << uint(-one.E)) + p2
		if tmp <= delta {
			// The last digit emitted sits at place value 10**kappa, scaled
			// into mp's fixed-point representation; that is the unit
			// roundWeed must compare rest/delta against here, not one.F
			// (one.F is the fractional loop's unit, one part in 2**-one.E).
			K = kappa
			roundWeed(buf, delta, tmp, uint64(pow10Table64[kappa])<<uint(-one.E), wpW.F)
			return buf, K
		}
	}

	for {
		p2 *= 10
		delta *= 10
		d := byte(p2 >> uint(-one.E))
		if d != 0 || len(buf) != 0 {
			buf = append(buf, '0'+d)
		}
		p2 &= one.F - 1
		kappa--
		if p2 < delta {
			K = kappa
			index := -kappa
			scaledWpW := wpW.F
			if index < len(pow10Table64) {
				scaledWpW *= uint64(pow10Table64[index])
			} else {
				scaledWpW = 0
			}
			roundWeed(buf, delta, p2, one.F, scaledWpW)
			return buf, K
		}
	}
}

// roundWeed biases the last emitted digit toward the representable value
// closest to the original float, decrementing it while doing so keeps the
// printed prefix within the [mMinus, mPlus] interval and closer to w.
func roundWeed(buf []byte, delta, rest, tenKappa, wpW uint64) {
	for rest < wpW &&
		delta-rest >= tenKappa &&
		(rest+tenKappa < wpW || wpW-rest > rest+tenKappa-wpW) {
		buf[len(buf)-1]--
		rest += tenKappa
	}
}
