package ir

import (
	"math"
	"strconv"
	"strings"
)

// ParseInt32 parses all of s as an integer.  A 0x prefix selects
// hexadecimal and a leading 0 octal.
func ParseInt32(s string) (int32, bool) {
	if s == "" || strings.ContainsRune(s, '_') {
		return 0, false
	}
	i, err := strconv.ParseInt(s, 0, 32)
	if err != nil {
		return 0, false
	}
	return int32(i), true
}

// ParseFloat32 parses all of s as a float that fits in a float32.
func ParseFloat32(s string) (float32, bool) {
	if s == "" || strings.ContainsRune(s, '_') {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, false
	}
	return float32(f), true
}

// FormatFloat renders f with at most 8 significant digits, always keeping a
// decimal point so the text reads back as a float.
func FormatFloat(f float32) string {
	switch {
	case math.IsNaN(float64(f)):
		return "nan"
	case math.IsInf(float64(f), 1):
		return "inf"
	case math.IsInf(float64(f), -1):
		return "-inf"
	}
	s := strconv.FormatFloat(float64(f), 'g', 8, 64)
	if strings.ContainsRune(s, '.') {
		return s
	}
	if i := strings.IndexByte(s, 'e'); i >= 0 {
		return s[:i] + ".0" + s[i:]
	}
	return s + ".0"
}

func truncInt32(f float32) (int32, bool) {
	t := math.Trunc(float64(f))
	if math.IsNaN(t) || t < math.MinInt32 || t > math.MaxInt32 {
		return 0, false
	}
	return int32(t), true
}
