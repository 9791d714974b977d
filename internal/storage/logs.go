package storage

// LogRow is one raw telemetry record as the machine controller reports it.
// Field keys follow the controller's column naming, which the dashboard
// expects verbatim in raw-data responses.
type LogRow struct {
	ID                   int64   `json:"id"`
	MachineID            string  `json:"MACHINE_ID"`
	LineNumber           string  `json:"LINE_NUMB"`
	OperatorID           string  `json:"OPERATOR_ID"`
	OperatorName         string  `json:"OPERATOR_NAME"`
	Date                 string  `json:"DATE"`
	StartTime            string  `json:"START_TIME"`
	EndTime              string  `json:"END_TIME"`
	Mode                 int     `json:"MODE"`
	StitchCount          int64   `json:"STITCH_COUNT"`
	NeedleRuntimeSeconds float64 `json:"NEEDLE_RUNTIME"`
	NeedleStopTime       string  `json:"NEEDLE_STOPTIME"`
	Reserve              float64 `json:"RESERVE"`
	DurationHours        float64 `json:"duration_hours"`
}

// SummaryRow is one aggregated table row, one per entity per date. Hour
// fields are display strings, percentages are fixed-decimal strings.
type SummaryRow struct {
	Date             string `json:"Date"`
	MachineID        string `json:"Machine ID,omitempty"`
	LineNumber       string `json:"Line Number,omitempty"`
	OperatorID       string `json:"Operator ID,omitempty"`
	OperatorName     string `json:"Operator Name,omitempty"`
	TotalHours       string `json:"Total Hours"`
	SewingHours      string `json:"Sewing Hours"`
	IdleHours        string `json:"Idle Hours"`
	NoFeedingHours   string `json:"No Feeding Hours"`
	MeetingHours     string `json:"Meeting Hours"`
	MaintenanceHours string `json:"Maintenance Hours"`
	ReworkHours      string `json:"Rework Hours"`
	NeedleBreakHours string `json:"Needle Break Hours"`
	ProductiveTime   string `json:"PT %"`
	NPT              string `json:"NPT %"`
	NeedleRuntime    string `json:"Needle Runtime %"`
	SewingSpeed      string `json:"SPM"`
	StitchCount      int64  `json:"Stitch Count"`
}

// Report is the response envelope every report endpoint returns: summary
// table rows plus the four dashboard tiles, optionally with raw rows.
type Report struct {
	Summary             []SummaryRow `json:"summary"`
	Tile1ProductiveTime string       `json:"tile1_productive_time"`
	Tile2NeedleTime     string       `json:"tile2_needle_time"`
	Tile3SewingSpeed    string       `json:"tile3_sewing_speed"`
	Tile4TotalHours     string       `json:"tile4_total_hours"`
	RawData             []LogRow     `json:"raw_data,omitempty"`
}
