package report

import (
	"math"

	"poppys-backend/internal/storage"
)

// Mode classifies a raw log row by the machine's activity state. The mapping
// below is the single authoritative one: every report consumes it, so mode
// labels cannot drift between screens.
type Mode int

const (
	ModeSewing Mode = iota + 1
	ModeIdle
	ModeNoFeeding
	ModeMeeting
	ModeMaintenance
	ModeRework
	ModeNeedleBreak
)

var modeNames = map[Mode]string{
	ModeSewing:      "Sewing",
	ModeIdle:        "Idle",
	ModeNoFeeding:   "No Feeding",
	ModeMeeting:     "Meeting",
	ModeMaintenance: "Maintenance",
	ModeRework:      "Rework",
	ModeNeedleBreak: "Needle Break",
}

func (m Mode) String() string {
	if n, ok := modeNames[m]; ok {
		return n
	}
	return "Unknown"
}

func (m Mode) Valid() bool {
	return m >= ModeSewing && m <= ModeNeedleBreak
}

// DurationHours returns the row's duration in decimal hours. The controller
// usually reports it directly; when the field is absent (or garbage) the
// duration is derived from the start/end clock span.
func DurationHours(row storage.LogRow) float64 {
	if d := row.DurationHours; d > 0 && !math.IsInf(d, 0) {
		return d
	}
	return SpanHours(row.StartTime, row.EndTime)
}

// BucketDurationHours sums the duration of every row in the given mode.
func BucketDurationHours(rows []storage.LogRow, mode Mode) float64 {
	var total float64
	for _, row := range rows {
		if Mode(row.Mode) == mode {
			total += DurationHours(row)
		}
	}
	return total
}
