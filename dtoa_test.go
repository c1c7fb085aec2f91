// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dtoa

import (
	"bytes"
	"errors"
	"math"
	"strconv"
	"strings"
	"sync"
	"testing"
)

// TestEndToEndScenarios runs the exact input/output pairs a complete
// implementation of this package must produce.
func TestEndToEndScenarios(t *testing.T) {
	cases := []struct {
		v    float64
		want string
	}{
		{2.71828, "2.71828"},
		{0.0, "0.0"},
		{math.Copysign(0, -1), "-0.0"},
		{1.1e128, "1.1e128"},
		{1.1e-64, "1.1e-64"},
		{2.718281828459045, "2.718281828459045"},
		{math.MaxFloat64, "1.7976931348623157e308"},
	}
	for _, c := range cases {
		if got := String(c.v); got != c.want {
			t.Errorf("String(%v) = %q, want %q", c.v, got, c.want)
		}
	}
}

// TestP1RoundTrip is P1: parsing the output recovers v exactly, including
// the sign of zero.
func TestP1RoundTrip(t *testing.T) {
	values := []float64{
		0, math.Copysign(0, -1), 1, -1, 0.5, 42, 2.71828,
		1.1e128, 1.1e-64, math.MaxFloat64, math.SmallestNonzeroFloat64,
	}
	for _, v := range values {
		s := String(v)
		got, err := strconv.ParseFloat(s, 64)
		if err != nil {
			t.Fatalf("ParseFloat(%q): %v", s, err)
		}
		if got != v || math.Signbit(got) != math.Signbit(v) {
			t.Errorf("%v -> %q -> %v, sign mismatch or value mismatch", v, s, got)
		}
	}
}

// TestP2Shortest is P2: no digit can be substituted, and the last digit
// cannot be dropped, without either breaking the parse or changing the
// parsed value. It works directly on the digits/weight pair shortestDigits
// produces rather than scraping the formatted string, so substitution never
// confuses the synthetic ".0" integer-looking suffix (formatDigits padding,
// not a generated digit) with a real one. Dropping is checked only at the
// last digit: for an interior digit, the printed decimal point can sit on
// either side of the dropped position, which changes the place value of
// every digit to one side of it in a way that depends on display form
// (positional vs scientific) rather than on the digit sequence alone -
// dropping the trailing digit has no such ambiguity, since it always just
// shifts the weight of what remains by one.
func TestP2Shortest(t *testing.T) {
	values := []float64{2.71828, 1.1e128, 1.1e-64, 100000, 0.0001234, 42}
	for _, v := range values {
		f := diyFpFromFloat64(v)
		mMinus, mPlus := f.NormalizedBoundaries()
		digits, weight := shortestDigits(f, mMinus, mPlus)

		for i := range digits {
			for d := byte('0'); d <= '9'; d++ {
				if d == digits[i] {
					continue
				}
				replaced := append([]byte(nil), digits...)
				replaced[i] = d
				s := string(formatDigits(nil, replaced, weight, false))
				if got, err := strconv.ParseFloat(s, 64); err == nil && got == v {
					t.Errorf("%v: replacing digit %d with %c (%q) still parses to the same value (%q)", v, i, d, digits, s)
				}
			}
		}

		if len(digits) > 1 {
			truncated := digits[:len(digits)-1]
			s := string(formatDigits(nil, truncated, weight+1, false))
			if got, err := strconv.ParseFloat(s, 64); err == nil && got == v {
				t.Errorf("%v: dropping the trailing digit (%q -> %q) still parses to the same value (%q)", v, digits, truncated, s)
			}
		}
	}
}

// TestP3CanonicalFormSelection is P3: the positional/scientific split
// matches the kk-based rule for a spread of magnitudes.
func TestP3CanonicalFormSelection(t *testing.T) {
	cases := []struct {
		v              float64
		wantPositional bool
	}{
		{1.0, true},
		{1e20, true},
		{1e21, false},
		{1e-6, true},
		{1e-7, false},
		{0.0001234, true},
	}
	for _, c := range cases {
		s := String(c.v)
		isPositional := !strings.ContainsAny(s, "eE")
		if isPositional != c.wantPositional {
			t.Errorf("String(%v) = %q, positional = %v, want %v", c.v, s, isPositional, c.wantPositional)
		}
	}
}

// TestP4IntegerLooking is P4: whole numbers in the positional range keep a
// ".0" suffix.
func TestP4IntegerLooking(t *testing.T) {
	for _, v := range []float64{1, 42, 100000, 1e20} {
		s := String(v)
		if !strings.HasSuffix(s, ".0") {
			t.Errorf("String(%v) = %q, want a \".0\" suffix", v, s)
		}
	}
}

// TestP5SignHandling is P5.
func TestP5SignHandling(t *testing.T) {
	if got := String(0); strings.HasPrefix(got, "-") {
		t.Errorf("String(0) = %q, must not have a leading '-'", got)
	}
	if got := String(math.Copysign(0, -1)); !strings.HasPrefix(got, "-") {
		t.Errorf("String(-0.0) = %q, want a leading '-'", got)
	}
	if got := String(1); strings.HasPrefix(got, "-") {
		t.Errorf("String(1) = %q, must not have a leading '-'", got)
	}
	if got := String(-1); !strings.HasPrefix(got, "-") {
		t.Errorf("String(-1) = %q, want a leading '-'", got)
	}
}

// TestP6BoundedLength is P6.
func TestP6BoundedLength(t *testing.T) {
	for i := 0; i < 2000; i++ {
		v := math.Float64frombits(rnd.Uint64())
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if s := String(v); len(s) > MaxLen64 {
			t.Errorf("String(%v) = %q, length %d exceeds MaxLen64 (%d)", v, s, len(s), MaxLen64)
		}
		v32 := math.Float32frombits(rnd.Uint32())
		if math.IsNaN(float64(v32)) || math.IsInf(float64(v32), 0) {
			continue
		}
		if s := StringFloat32(v32); len(s) > MaxLen32 {
			t.Errorf("StringFloat32(%v) = %q, length %d exceeds MaxLen32 (%d)", v32, s, len(s), MaxLen32)
		}
	}
}

// TestP7Reentrancy is P7: concurrent calls on separate goroutines with
// distinct sinks produce identical output to the serial results, since
// Append/Format hold no package-level mutable state.
func TestP7Reentrancy(t *testing.T) {
	values := make([]float64, 200)
	for i := range values {
		values[i] = math.Float64frombits(rnd.Uint64())
	}
	want := make([]string, len(values))
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			want[i] = ""
			continue
		}
		want[i] = String(v)
	}

	got := make([]string, len(values))
	var wg sync.WaitGroup
	for i, v := range values {
		if want[i] == "" {
			continue
		}
		wg.Add(1)
		go func(i int, v float64) {
			defer wg.Done()
			var buf bytes.Buffer
			if err := Format(&buf, v); err != nil {
				t.Errorf("Format(%v): %v", v, err)
				return
			}
			got[i] = buf.String()
		}(i, v)
	}
	wg.Wait()

	for i := range values {
		if want[i] == "" {
			continue
		}
		if got[i] != want[i] {
			t.Errorf("concurrent Format(%v) = %q, want %q (serial)", values[i], got[i], want[i])
		}
	}
}

func TestAppendGrowsExistingBuffer(t *testing.T) {
	dst := []byte("x=")
	got := Append(dst, 42)
	if string(got) != "x=42.0" {
		t.Errorf("Append(%q, 42) = %q, want %q", "x=", got, "x=42.0")
	}
}

func TestFormatWriteError(t *testing.T) {
	if err := Format(failingWriter{}, 1.0); err == nil {
		t.Fatal("Format with a failing sink: want an error, got nil")
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) { return 0, errWriteFailed }

var errWriteFailed = errors.New("write failed")

func TestCheckedRejectsNonFinite(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := AppendChecked(nil, v); err != ErrNotFinite {
			t.Errorf("AppendChecked(%v): err = %v, want ErrNotFinite", v, err)
		}
		if err := FormatChecked(&bytes.Buffer{}, v); err != ErrNotFinite {
			t.Errorf("FormatChecked(%v): err = %v, want ErrNotFinite", v, err)
		}
	}
	if _, err := AppendChecked(nil, 1.0); err != nil {
		t.Errorf("AppendChecked(1.0): unexpected error %v", err)
	}
}
