package ir

import "testing"

func TestParseInt32(t *testing.T) {
	tests := []struct {
		in   string
		want int32
		ok   bool
	}{
		{"8080", 8080, true},
		{"-17", -17, true},
		{"+3", 3, true},
		{"0x1f", 31, true},
		{"010", 8, true},
		{"2147483647", 2147483647, true},
		{"-2147483648", -2147483648, true},
		{"2147483648", 0, false},
		{"1_000", 0, false},
		{"", 0, false},
		{"12 ", 0, false},
		{"1.5", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseInt32(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseInt32(%q) = %d, %t; want %d, %t", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseFloat32(t *testing.T) {
	tests := []struct {
		in   string
		want float32
		ok   bool
	}{
		{"1.5", 1.5, true},
		{"-2", -2, true},
		{"1e3", 1000, true},
		{"1e39", 0, false},
		{"abc", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseFloat32(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseFloat32(%q) = %g, %t; want %g, %t", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
