package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"already rounded", 100.25, 100.25},
		{"rounds half up", 0.005, 0.01},
		{"truncates long tail", 33.333333, 33.33},
		{"negative", -1.005, -1.0},
		{"zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Round2(tt.in), 1e-9)
		})
	}
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{"small", 500, "$500"},
		{"thousands", 87000, "$87,000"},
		{"millions rounds", 1234567.8, "$1,234,568"},
		{"zero", 0, "$0"},
		{"negative", -1500, "-$1,500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCurrency(tt.in))
		})
	}
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "23.5%", FormatPercent(23.456))
	assert.Equal(t, "0.0%", FormatPercent(0))
	assert.Equal(t, "100.0%", FormatPercent(100))
}

func TestAbbreviateName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Sarah Johnson", "Sarah J"},
		{"Madonna", "Madonna"},
		{"  Alice  ", "Alice"},
		{"Mary Jane Watson", "Mary Jane W"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AbbreviateName(tt.name))
		})
	}
}
