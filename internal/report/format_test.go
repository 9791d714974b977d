package report

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatHoursMinutes(t *testing.T) {
	tests := []struct {
		name  string
		hours float64
		want  string
	}{
		{"zero", 0, "0h 0m"},
		{"plain", 2.5, "2h 30m"},
		{"minute rollover", 1.999, "2h 0m"},
		{"just under rollover", 1.99, "1h 59m"},
		{"negative clamps", -3, "0h 0m"},
		{"nan clamps", math.NaN(), "0h 0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatHoursMinutes(tt.hours))
		})
	}
}

func TestSafeToFixed(t *testing.T) {
	assert.Equal(t, "0.00", SafeToFixed(math.NaN(), 2))
	assert.Equal(t, "0.00", SafeToFixed(math.Inf(1), 2))
	assert.Equal(t, "0.00", SafeToFixed(math.Inf(-1), 2))
	assert.Equal(t, "80.00", SafeToFixed(80, 2))
	assert.Equal(t, "33.33", SafeToFixed(100.0/3.0, 2))
	assert.Equal(t, "25.0", SafeToFixed(25, 1))
}

func TestFormatSecondsOrDash(t *testing.T) {
	assert.Equal(t, "-", FormatSecondsOrDash(math.NaN()))
	assert.Equal(t, "-", FormatSecondsOrDash(-1))
	assert.Equal(t, "1h 0m", FormatSecondsOrDash(3600))
	assert.Equal(t, "0h 30m", FormatSecondsOrDash(1800))
}
