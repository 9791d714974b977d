package report

import (
	"math"
	"strconv"
	"strings"
)

// ParseToDecimalHours converts a stored hour value to decimal hours.
// Accepted forms: "HH:MM", "HH:MM:SS", or a plain decimal-hours number in
// string form. Anything malformed parses to 0 rather than failing: a single
// bad row must never take down a whole report.
func ParseToDecimalHours(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return 0
	}

	if strings.Contains(s, ":") {
		parts := strings.Split(s, ":")
		h, errH := strconv.ParseFloat(parts[0], 64)
		m, errM := strconv.ParseFloat(parts[1], 64)
		if errH != nil || errM != nil {
			return 0
		}
		total := h + m/60
		if len(parts) > 2 {
			sec, errS := strconv.ParseFloat(parts[2], 64)
			if errS != nil {
				return 0
			}
			total += sec / 3600
		}
		return total
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// ClockToSeconds converts a wall-clock string ("HH:MM:SS" or "HH:MM") to
// seconds since midnight. Malformed input yields 0.
func ClockToSeconds(s string) float64 {
	return ParseToDecimalHours(s) * 3600
}

// SecondsToDecimalHours converts a seconds counter to decimal hours.
// NaN, infinite, and negative counters are treated as unknown and yield 0;
// display paths use FormatSecondsOrDash to keep the unknown case visible.
func SecondsToDecimalHours(seconds float64) float64 {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 {
		return 0
	}
	return seconds / 3600
}

// SpanHours is the duration in hours between two wall-clock times on the
// same date. Negative spans (end before start, e.g. a log crossing midnight
// without a date rollover) are floored to zero.
func SpanHours(start, end string) float64 {
	span := (ClockToSeconds(end) - ClockToSeconds(start)) / 3600
	if span < 0 || math.IsNaN(span) {
		return 0
	}
	return span
}
