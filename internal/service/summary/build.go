package summary

import (
	"poppys-backend/internal/report"
	"poppys-backend/internal/storage"
)

type groupKey struct {
	entity string
	date   string
}

// buildReport groups rows by (entity, date), aggregates each group, and
// derives the four dashboard tiles from the whole row set. Group order
// follows first appearance, which the storage layer keeps date-ascending.
func buildReport(rows []storage.LogRow, opts report.Options,
	keyOf func(storage.LogRow) string,
	describe func(*storage.SummaryRow, storage.LogRow),
) *storage.Report {
	groups := make(map[groupKey][]storage.LogRow)
	var order []groupKey

	for _, row := range rows {
		key := groupKey{entity: keyOf(row), date: row.Date}
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], row)
	}

	summary := make([]storage.SummaryRow, 0, len(order))
	var sewingSum, totalSum float64
	for _, key := range order {
		group := groups[key]
		m := report.Aggregate(group, opts)
		sewingSum += m.SewingHours
		totalSum += m.TotalHours

		sr := summaryRow(key.date, m)
		describe(&sr, group[0])
		summary = append(summary, sr)
	}

	// The day-fixing policy applies per entity-day, so the productive-time
	// and total-hours tiles sum the per-group aggregates. Needle runtime
	// and sewing speed only depend on sewing-mode rows and come from one
	// pass over the whole set.
	overall := report.Aggregate(rows, report.Options{})
	var productive float64
	if totalSum > 0 {
		productive = sewingSum / totalSum * 100
	}

	return &storage.Report{
		Summary:             summary,
		Tile1ProductiveTime: report.SafeToFixed(productive, 2),
		Tile2NeedleTime:     report.SafeToFixed(overall.NeedleRuntimePercent, 2),
		Tile3SewingSpeed:    report.SafeToFixed(overall.SewingSpeed, 2),
		Tile4TotalHours:     report.FormatHoursMinutes(totalSum),
	}
}

func summaryRow(date string, m report.Metrics) storage.SummaryRow {
	return storage.SummaryRow{
		Date:             date,
		TotalHours:       report.FormatHoursMinutes(m.TotalHours),
		SewingHours:      report.FormatHoursMinutes(m.SewingHours),
		IdleHours:        report.FormatHoursMinutes(m.IdleHours),
		NoFeedingHours:   report.FormatHoursMinutes(m.NoFeedingHours),
		MeetingHours:     report.FormatHoursMinutes(m.MeetingHours),
		MaintenanceHours: report.FormatHoursMinutes(m.MaintenanceHours),
		ReworkHours:      report.FormatHoursMinutes(m.ReworkHours),
		NeedleBreakHours: report.FormatHoursMinutes(m.NeedleBreakHours),
		ProductiveTime:   report.SafeToFixed(m.ProductiveTimePercent, 2),
		NPT:              report.SafeToFixed(m.NPTPercent, 2),
		NeedleRuntime:    report.SafeToFixed(m.NeedleRuntimePercent, 2),
		SewingSpeed:      report.SafeToFixed(m.SewingSpeed, 2),
		StitchCount:      m.StitchCount,
	}
}
