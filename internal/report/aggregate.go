package report

import (
	"math"

	"poppys-backend/internal/storage"
)

// Metrics is the canonical per-entity aggregate. All fields are plain
// numbers derived by Aggregate; none is ever NaN or infinite.
type Metrics struct {
	SewingHours      float64
	IdleHours        float64
	NoFeedingHours   float64
	MeetingHours     float64
	MaintenanceHours float64
	ReworkHours      float64
	NeedleBreakHours float64
	TotalHours       float64

	ProductiveTimePercent float64
	NPTPercent            float64
	NeedleRuntimePercent  float64
	SewingSpeed           float64
	StitchCount           int64
}

// Options tunes the aggregation policy per report type.
type Options struct {
	// FixedDayHours, when positive, pins the workday to a standard length:
	// idle time is backfilled so the buckets sum to at least this many
	// hours. Operator reports use the standard 10-hour day; machine and
	// line reports leave it zero and use the observed sum.
	FixedDayHours float64
}

// Aggregate reduces a set of raw log rows to canonical metrics. Every
// division is guarded so an empty or degenerate row set yields zeros, never
// NaN or Inf.
func Aggregate(rows []storage.LogRow, opts Options) Metrics {
	var m Metrics

	m.SewingHours = BucketDurationHours(rows, ModeSewing)
	m.IdleHours = BucketDurationHours(rows, ModeIdle)
	m.NoFeedingHours = BucketDurationHours(rows, ModeNoFeeding)
	m.MeetingHours = BucketDurationHours(rows, ModeMeeting)
	m.MaintenanceHours = BucketDurationHours(rows, ModeMaintenance)
	m.ReworkHours = BucketDurationHours(rows, ModeRework)
	m.NeedleBreakHours = BucketDurationHours(rows, ModeNeedleBreak)

	if opts.FixedDayHours > 0 {
		// Idle is not observed but defined: whatever remains of the
		// standard day after the other buckets. Observed idle rows are
		// discarded so the total stays pinned at the day length.
		nonIdle := m.SewingHours + m.NoFeedingHours + m.MeetingHours +
			m.MaintenanceHours + m.ReworkHours + m.NeedleBreakHours
		m.IdleHours = math.Max(0, opts.FixedDayHours-nonIdle)
	}

	m.TotalHours = m.SewingHours + m.IdleHours + m.NoFeedingHours +
		m.MeetingHours + m.MaintenanceHours + m.ReworkHours + m.NeedleBreakHours

	if m.TotalHours > 0 {
		m.ProductiveTimePercent = m.SewingHours / m.TotalHours * 100
		m.NPTPercent = (m.TotalHours - m.SewingHours) / m.TotalHours * 100
	}

	var needleSeconds float64
	var spmSum float64
	var spmSamples int
	for _, row := range rows {
		m.StitchCount += row.StitchCount

		if Mode(row.Mode) != ModeSewing {
			continue
		}
		if s := row.NeedleRuntimeSeconds; !math.IsNaN(s) && !math.IsInf(s, 0) && s > 0 {
			needleSeconds += s
		}
		if r := row.Reserve; !math.IsNaN(r) && !math.IsInf(r, 0) && r > 0 {
			spmSum += r
			spmSamples++
		}
	}

	if sewingSeconds := m.SewingHours * 3600; sewingSeconds > 0 {
		m.NeedleRuntimePercent = needleSeconds / sewingSeconds * 100
	}
	if spmSamples > 0 {
		m.SewingSpeed = spmSum / float64(spmSamples)
	}

	return m
}
