package destination_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/neexbeast/travelsafe/internal/destination"
)

func TestHash(t *testing.T) {
	tests := []struct {
		in   string
		want int32
	}{
		{"", 0},
		{"abc", 96354},
		{"hello", 99162322},
		{"polygenelubricants", math.MinInt32},
		{"é", 233},
		{"😀", 1772899}, // surrogate pair: two code units
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, destination.Hash(tt.in))
		})
	}
}

func TestSafetyScore(t *testing.T) {
	tests := []struct {
		name string
		want float64
	}{
		{"abc", 9.4},
		{"hello", 6.7},
		{"polygenelubricants", 8.3},
		{"Zzzqqxaaaa", 6.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, destination.SafetyScore(tt.name))
		})
	}
}

func TestSafetyScore_RangeAndPrecision(t *testing.T) {
	for _, name := range []string{"a", "Rome", "Reykjavik", "Ouagadougou", "Llanfairpwllgwyngyll", "東京"} {
		score := destination.SafetyScore(name)
		assert.GreaterOrEqual(t, score, 6.0, name)
		assert.LessOrEqual(t, score, 9.5, name)
		assert.InDelta(t, score, math.Round(score*10)/10, 1e-9, "%s should have one decimal", name)
		assert.Equal(t, score, destination.SafetyScore(name), "%s should be stable", name)
	}
}

func TestDescription(t *testing.T) {
	// "hello" has length 5, so template 0.
	got := destination.Description("hello")
	assert.True(t, strings.HasPrefix(got, "hello offers travelers"), got)

	// Length 11 selects template 1, which embeds the name mid-sentence.
	got = destination.Description("Qwertyville")
	assert.True(t, strings.HasPrefix(got, "Known for its distinctive charm, Qwertyville"), got)

	assert.Equal(t, destination.Description("Oslo"), destination.Description("Oslo"))
}
