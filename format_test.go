package numinput

import (
	"math"
	"testing"
)

func TestStepDecimals(t *testing.T) {
	cases := []struct {
		step string
		d    int
		ok   bool
	}{
		{"", 0, false},
		{"any", 0, false},
		{"ANY", 0, false},
		{" any ", 0, false},
		{"apples", 0, false},
		{"1.2.3", 0, false},
		{"1", 0, true},
		{"5", 0, true},
		{"10", 0, true},
		{"0.5", 1, true},
		{"0.01", 2, true},
		{"0.001", 3, true},
		{".25", 2, true},
		{" 0.01 ", 2, true},
		// The count comes from the text, not the value.
		{"0.50", 2, true},
		{"1e-2", 0, true},
	}
	for _, c := range cases {
		d, ok := stepDecimals(c.step)
		if d != c.d || ok != c.ok {
			t.Errorf("stepDecimals(%q) = %d, %v, want %d, %v", c.step, d, ok, c.d, c.ok)
		}
	}
}

func TestFormatValue(t *testing.T) {
	negZero := math.Copysign(0, -1)
	cases := []struct {
		v    float64
		step string
		want string
	}{
		{2, "", "2"},
		{-7, "", "-7"},
		{12.5, "", "12.5"},
		{0.1 + 0.2, "", "0.3"},
		{1.0 / 3.0, "", "0.3333333333"},
		{1e20, "", "100000000000000000000"},
		{1e-11, "", "0"},
		{negZero, "", "0"},
		{2, "any", "2"},
		{2.345, "apples", "2.345"},
		{2, "0.01", "2.00"},
		{2.5, "0.50", "2.50"},
		{13.6, "1", "14"},
		{1.0 / 3.0, "0.01", "0.33"},
		{123.456, "0.1", "123.5"},
		{-2.5, "0.5", "-2.5"},
		// Rounding must not leave a bare -0 behind.
		{negZero, "0.01", "0.00"},
		{-0.004, "0.01", "0.00"},
	}
	for _, c := range cases {
		if got := FormatValue(c.v, c.step); got != c.want {
			t.Errorf("FormatValue(%v, %q) = %q, want %q", c.v, c.step, got, c.want)
		}
	}
}
