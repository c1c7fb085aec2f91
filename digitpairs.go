// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dtoa

// digitPairs is the classic "00010203...9899" lookup table: two ASCII
// digits for every value in [0, 99], letting the formatter emit an exponent
// two digits at a time instead of dividing by 10 twice.
const digitPairs = "" +
	"0001020304050607080910111213141516171819" +
	"2021222324252627282930313233343536373839" +
	"4041424344454647484950515253545556575859" +
	"6061626364656667686970717273747576777879" +
	"8081828384858687888990919293949596979899"

// appendTwoDigits appends the two-character decimal representation of
// n (0 <= n <= 99) to buf.
func appendTwoDigits(buf []byte, n int) []byte {
	return append(buf, digitPairs[n*2], digitPairs[n*2+1])
}
