package report

import (
	"fmt"
	"math"
	"strconv"
)

// FormatHoursMinutes renders decimal hours as "Xh Ym". Minutes that round
// up to 60 roll over into the next hour, so 1.999 renders as "2h 0m" and
// never "1h 60m". Non-finite or negative input renders as "0h 0m".
func FormatHoursMinutes(decimalHours float64) string {
	if math.IsNaN(decimalHours) || math.IsInf(decimalHours, 0) || decimalHours < 0 {
		decimalHours = 0
	}

	hours := int(decimalHours)
	minutes := int(math.Round((decimalHours - float64(hours)) * 60))
	if minutes == 60 {
		hours++
		minutes = 0
	}

	return fmt.Sprintf("%dh %dm", hours, minutes)
}

// SafeToFixed renders a number with a fixed number of decimals. NaN and
// infinities render as the zero string ("0.00" for two digits) so a broken
// upstream value can never leak into a table cell or an export.
func SafeToFixed(value float64, digits int) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		value = 0
	}
	return strconv.FormatFloat(value, 'f', digits, 64)
}

// FormatSecondsOrDash renders a seconds counter as "Xh Ym", or "-" when the
// counter is unknown. Unknown stays visible as a dash; arithmetic paths use
// SecondsToDecimalHours, which maps the same input to 0.
func FormatSecondsOrDash(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 {
		return "-"
	}
	return FormatHoursMinutes(seconds / 3600)
}
