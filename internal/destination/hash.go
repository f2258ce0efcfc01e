package destination

import (
	"math"
	"unicode/utf16"
)

// Hash returns the 32-bit rolling string hash of s (h = h*31 + unit, wrapping).
// It walks UTF-16 code units so the value matches the browser implementation
// for non-ASCII names too.
func Hash(s string) int32 {
	var h int32
	for _, u := range utf16.Encode([]rune(s)) {
		h = h*31 + int32(u)
	}
	return h
}

// nameLength is the UTF-16 length of s, the length every selection rule uses.
func nameLength(s string) int {
	return len(utf16.Encode([]rune(s)))
}

// absMod returns |v mod n|. Arithmetic is done in int64 so h+i never wraps.
func absMod(v int64, n int) int {
	m := v % int64(n)
	if m < 0 {
		m = -m
	}
	return int(m)
}

// SafetyScore derives a stable score in [6.0, 9.5] from the name alone.
func SafetyScore(name string) float64 {
	base := float64(absMod(int64(Hash(name)), 35))/10 + 6.0
	return math.Round(base*10) / 10
}

// Description fills one of the fixed templates with name.
func Description(name string) string {
	return descriptionTemplates[absMod(int64(nameLength(name)), len(descriptionTemplates))](name)
}
