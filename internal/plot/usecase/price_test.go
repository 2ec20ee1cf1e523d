package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"no digits", "abc", ""},
		{"short", "950", "950"},
		{"four digits", "1234", "1,234"},
		{"seven digits", "1234567", "1,234,567"},
		{"already formatted", "1,234,567", "1,234,567"},
		{"currency noise", "KSh 2,500,000/-", "2,500,000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPrice(tt.input))
		})
	}
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int64
	}{
		{"empty", "", 0},
		{"tbd sentinel", "TBD", 0},
		{"garbage", "ask the owner", 0},
		{"plain", "1200000", 1200000},
		{"formatted", "1,200,000", 1200000},
		{"currency noise", "KSh 850,000", 850000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParsePrice(tt.input))
		})
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	for _, raw := range []string{"1", "42", "999", "1000", "123456", "7890123", "999999999"} {
		assert.Equal(t, ParsePrice(raw), ParsePrice(FormatPrice(raw)), "round trip changed value for %q", raw)
	}
}

func TestPriceUnset(t *testing.T) {
	assert.True(t, PriceUnset("TBD"))
	assert.True(t, PriceUnset("tbd"))
	assert.True(t, PriceUnset("  TbD  "))
	assert.False(t, PriceUnset(""))
	assert.False(t, PriceUnset("1000"))
	assert.False(t, PriceUnset("TBD soon"))
}
