// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dtoa

// shortestDigits32 is the float32-path analog of shortestDigits, composed
// from diyFp32's operations and the -29 scaled-exponent window of
// getCachedPower32.
func shortestDigits32(w, mMinus, mPlus diyFp32) (digits []byte, K int) {
	wNorm := w.normalize()
	cMk, k := getCachedPower32(mPlus.e)
	W := wNorm.mul(cMk)
	Wp := mPlus.mul(cMk)
	Wm := mMinus.mul(cMk)
	Wm.f++
	Wp.f--

	digits, K = digitGen32(W, Wp, uint64(Wp.f-Wm.f))
	K += k
	return digits, K
}

// digitGen32 mirrors digitGen but over 32-bit significands: the integer
// part p1 fits in at most 9-10 decimal digits either way, so it reuses the
// same pow10Table64/countDecimalDigits32 helpers as the float64 path.
func digitGen32(w, mp diyFp32, delta uint64) (buf []byte, K int) {
	one := diyFp32{f: uint32(1) << uint(-mp.e), e: mp.e}
	wpW := mp.sub(w)

	p1 := mp.f >> uint(-one.e)
	p2 := mp.f & (one.f - 1)

	kappa := countDecimalDigits32(p1)
	buf = make([]byte, 0, 10)

	for kappa > 0 {
		d := p1 / pow10Table64[kappa-1]
		p1 %= pow10Table64[kappa-1]
		kappa--
		if d != 0 || len(buf) != 0 {
			buf = append(buf, byte('0'+d))
		}
		tmp := (uint64(p1) << uint(-one.e)) + uint64(p2)
		if tmp <= delta {
			// See digitGen's integer loop: the unit here is the just-emitted
			// digit's place value 10**kappa, not one.f (the fractional
			// loop's unit).
			K = kappa
			roundWeed(buf, delta, tmp, uint64(pow10Table64[kappa])<<uint(-one.e), uint64(wpW.f))
			return buf, K
		}
	}

	for {
		p2 *= 10
		delta *= 10
		d := byte(p2 >> uint(-one.e))
		if d != 0 || len(buf) != 0 {
			buf = append(buf, '0'+d)
		}
		p2 &= one.f - 1
		kappa--
		if uint64(p2) < delta {
			K = kappa
			index := -kappa
			scaledWpW := uint64(wpW.f)
			if index < len(pow10Table64) {
				scaledWpW *= uint64(pow10Table64[index])
			} else {
				scaledWpW = 0
			}
			roundWeed(buf, delta, uint64(p2), uint64(one.f), scaledWpW)
			return buf, K
		}
	}
}
