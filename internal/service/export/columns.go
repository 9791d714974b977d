package export

import (
	"strconv"

	"poppys-backend/internal/storage"
)

// column pairs an export header with its cell extractor. The per-entity
// arrays below are the single source of column ordering for CSV, HTML and
// Excel output alike.
type column struct {
	header string
	value  func(storage.SummaryRow) string
}

var metricColumns = []column{
	{"Total Hours", func(r storage.SummaryRow) string { return r.TotalHours }},
	{"Sewing Hours", func(r storage.SummaryRow) string { return r.SewingHours }},
	{"Idle Hours", func(r storage.SummaryRow) string { return r.IdleHours }},
	{"No Feeding Hours", func(r storage.SummaryRow) string { return r.NoFeedingHours }},
	{"Meeting Hours", func(r storage.SummaryRow) string { return r.MeetingHours }},
	{"Maintenance Hours", func(r storage.SummaryRow) string { return r.MaintenanceHours }},
	{"Rework Hours", func(r storage.SummaryRow) string { return r.ReworkHours }},
	{"Needle Break Hours", func(r storage.SummaryRow) string { return r.NeedleBreakHours }},
	{"PT %", func(r storage.SummaryRow) string { return r.ProductiveTime }},
	{"NPT %", func(r storage.SummaryRow) string { return r.NPT }},
	{"Needle Runtime %", func(r storage.SummaryRow) string { return r.NeedleRuntime }},
	{"SPM", func(r storage.SummaryRow) string { return r.SewingSpeed }},
	{"Stitch Count", func(r storage.SummaryRow) string { return strconv.FormatInt(r.StitchCount, 10) }},
}

var entityColumns = map[string][]column{
	"machine": {
		{"Date", func(r storage.SummaryRow) string { return r.Date }},
		{"Machine ID", func(r storage.SummaryRow) string { return r.MachineID }},
	},
	"operator": {
		{"Date", func(r storage.SummaryRow) string { return r.Date }},
		{"Operator ID", func(r storage.SummaryRow) string { return r.OperatorID }},
		{"Operator Name", func(r storage.SummaryRow) string { return r.OperatorName }},
	},
	"line": {
		{"Date", func(r storage.SummaryRow) string { return r.Date }},
		{"Line Number", func(r storage.SummaryRow) string { return r.LineNumber }},
	},
	"consolidated": {
		{"Date", func(r storage.SummaryRow) string { return r.Date }},
		{"Machine ID", func(r storage.SummaryRow) string { return r.MachineID }},
		{"Line Number", func(r storage.SummaryRow) string { return r.LineNumber }},
		{"Operator ID", func(r storage.SummaryRow) string { return r.OperatorID }},
		{"Operator Name", func(r storage.SummaryRow) string { return r.OperatorName }},
	},
}

func columnsFor(entity string) []column {
	base, ok := entityColumns[entity]
	if !ok {
		return nil
	}
	return append(append([]column{}, base...), metricColumns...)
}

func headersOf(cols []column) []string {
	headers := make([]string, len(cols))
	for i, c := range cols {
		headers[i] = c.header
	}
	return headers
}

func cellsOf(cols []column, row storage.SummaryRow) []string {
	cells := make([]string, len(cols))
	for i, c := range cols {
		cells[i] = c.value(row)
	}
	return cells
}
