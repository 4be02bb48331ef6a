package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetPlainLabel(t *testing.T) {
	tests := []struct {
		name    string
		percent float64
		want    string
	}{
		{"well above plan", 150, AheadValue},
		{"exactly at plan", 100, AheadValue},
		{"on track", 70, OnTrackValue},
		{"behind", 40, BehindValue},
		{"just under behind", 39.9, CriticalValue},
		{"zero", 0, CriticalValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetPlainLabel(tt.percent))
		})
	}
}

func TestGetColorLabel(t *testing.T) {
	// The colored label always contains the plain text regardless of whether
	// escape sequences are active in the test environment.
	assert.Contains(t, GetColorLabel(120), AheadValue)
	assert.Contains(t, GetColorLabel(10), CriticalValue)
}

func TestParseBoolString(t *testing.T) {
	for _, s := range []string{"", "yes", "Y", "true", "1", "ON"} {
		got, err := ParseBoolString(s)
		assert.NoError(t, err, "input %q", s)
		assert.True(t, got, "input %q", s)
	}
	for _, s := range []string{"no", "N", "false", "0", "off"} {
		got, err := ParseBoolString(s)
		assert.NoError(t, err, "input %q", s)
		assert.False(t, got, "input %q", s)
	}

	_, err := ParseBoolString("maybe")
	assert.Error(t, err)
}
