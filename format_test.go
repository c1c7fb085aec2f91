// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dtoa

import "testing"

func TestFormatDigits(t *testing.T) {
	cases := []struct {
		digits string
		weight int
		neg    bool
		want   string
	}{
		// positional, integer-looking: kk >= l
		{"1", 0, false, "1.0"},
		{"42", 0, false, "42.0"},
		{"1", 2, false, "100.0"},
		{"1", 20, false, "100000000000000000000.0"},
		// positional, decimal point inside the digit string
		{"12345", -2, false, "123.45"},
		{"271828", -5, false, "2.71828"},
		// small fraction, -6 < kk <= 0
		{"1234", -7, false, "0.0001234"},
		{"5", -1, false, "0.5"},
		// single-digit scientific
		{"1", 21, false, "1e21"},
		{"1", -7, false, "1e-7"},
		// multi-digit scientific
		{"11", 127, false, "1.1e128"},
		{"11", -65, false, "1.1e-64"},
		// sign handling
		{"5", -1, true, "-0.5"},
		{"1", 21, true, "-1e21"},
	}
	for _, c := range cases {
		got := string(formatDigits(nil, []byte(c.digits), c.weight, c.neg))
		if got != c.want {
			t.Errorf("formatDigits(%q, %d, %v) = %q, want %q", c.digits, c.weight, c.neg, got, c.want)
		}
	}
}

func TestAppendExponent(t *testing.T) {
	cases := []struct {
		exp  int
		want string
	}{
		{0, "e0"},
		{7, "e7"},
		{21, "e21"},
		{-7, "e-7"},
		{128, "e128"},
		{-64, "e-64"},
		{308, "e308"},
		{-308, "e-308"},
	}
	for _, c := range cases {
		got := string(appendExponent(nil, c.exp))
		if got != c.want {
			t.Errorf("appendExponent(%d) = %q, want %q", c.exp, got, c.want)
		}
	}
}
