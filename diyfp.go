// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dtoa

import (
	"math"
	"math/bits"
)

// Significand width of the extended-precision float used for the float64
// path. Both operands to Mul are always normalized (top bit set) so the
// 128-bit product never overflows.
const diySignificandSize = 64

const (
	dpSignificandSize = 52
	dpExponentBias    = 0x3FF + dpSignificandSize
	dpMinExponent     = -dpExponentBias
	dpExponentMask    = 0x7FF0000000000000
	dpSignificandMask = 0x000FFFFFFFFFFFFF
	dpHiddenBit       = 0x0010000000000000
)

// DiyFp ("do-it-yourself floating-point") is an unsigned significand paired
// with a signed binary exponent, representing the real number f * 2**e.
// Operations on DiyFp do not check for overflow or underflow: callers are
// responsible for passing normalized, non-zero operands.
type DiyFp struct {
	F uint64
	E int
}

// NewDiyFp returns the DiyFp f*2**e.
func NewDiyFp(f uint64, e int) DiyFp { return DiyFp{F: f, E: e} }

// diyFpFromFloat64 decomposes the bits of a finite float64 into a DiyFp.
// It does not normalize the result; callers needing a normalized value call
// Normalize.
func diyFpFromFloat64(d float64) DiyFp {
	u := math.Float64bits(d)
	biasedE := int((u & dpExponentMask) >> dpSignificandSize)
	significand := u & dpSignificandMask
	if biasedE != 0 {
		return DiyFp{F: significand + dpHiddenBit, E: biasedE - dpExponentBias}
	}
	return DiyFp{F: significand, E: dpMinExponent + 1}
}

// Normalize left-shifts f.F until its top bit is set, decrementing f.E by
// the shift count. The result is undefined if f.F == 0.
func (f DiyFp) Normalize() DiyFp {
	s := bits.LeadingZeros64(f.F)
	return DiyFp{F: f.F << uint(s), E: f.E - s}
}

// normalizeBoundary shifts f until bit (dpSignificandSize+1) is set (one
// above the hidden bit), then shifts a further
// (diySignificandSize - dpSignificandSize - 2) positions, adjusting E by the
// total shift. This brings a boundary value derived from a float64's
// significand up to the same scale NormalizedBoundaries' m+ needs.
func (f DiyFp) normalizeBoundary() DiyFp {
	for f.F&(dpHiddenBit<<1) == 0 {
		f.F <<= 1
		f.E--
	}
	const shift = diySignificandSize - dpSignificandSize - 2
	f.F <<= shift
	f.E -= shift
	return f
}

// NormalizedBoundaries computes the lower (m-) and upper (m+) midpoints
// between f and its neighbors on the float64 grid, both expressed with the
// exponent of m+. f must not be normalized; it is the raw decomposition of
// the source float64.
func (f DiyFp) NormalizedBoundaries() (minus, plus DiyFp) {
	plus = DiyFp{F: (f.F << 1) + 1, E: f.E - 1}.normalizeBoundary()
	var mi DiyFp
	if f.F == dpHiddenBit {
		mi = DiyFp{F: (f.F << 2) - 1, E: f.E - 2}
	} else {
		mi = DiyFp{F: (f.F << 1) - 1, E: f.E - 1}
	}
	mi.F <<= uint(mi.E - plus.E)
	mi.E = plus.E
	return mi, plus
}

// Sub returns a-b. Requires a.E == b.E and a.F >= b.F.
func (a DiyFp) Sub(b DiyFp) DiyFp {
	return DiyFp{F: a.F - b.F, E: a.E}
}

// Mul returns the rounded product a*b, computed as a full 128-bit product of
// the two significands. Both operands must be normalized (top bit set) so
// the product cannot overflow the returned 64-bit significand: split the
// product into high/low halves via bits.Mul64, then fold in a rounding
// constant before taking the high word.
func (a DiyFp) Mul(b DiyFp) DiyFp {
	hi, lo := bits.Mul64(a.F, b.F)
	// round to nearest by adding 2**63 to the low half before truncating;
	// bits.Add64 reports the carry into the high half.
	var carry uint64
	lo, carry = bits.Add64(lo, 1<<63, 0)
	hi += carry
	return DiyFp{F: hi, E: a.E + b.E + diySignificandSize}
}
