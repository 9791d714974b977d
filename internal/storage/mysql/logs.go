package mysql

import (
	"context"
	"fmt"
	"strings"

	"poppys-backend/internal/report"
	"poppys-backend/internal/storage"
)

// Logs is the single query behind every report: machine, operator, line and
// consolidated views all read the same telemetry table and differ only in
// which filter dimensions they populate.
func (s *Storage) Logs(ctx context.Context, f report.Filter) ([]storage.LogRow, error) {
	const op = "storage.mysql.Logs"

	query := `
        SELECT l.id, l.machine_id, l.line_number, l.operator_rfid,
               COALESCE(o.name, '') AS operator_name,
               DATE_FORMAT(l.log_date, '%Y-%m-%d'),
               TIME_FORMAT(l.start_time, '%H:%i:%s'),
               TIME_FORMAT(l.end_time, '%H:%i:%s'),
               l.mode, l.stitch_count,
               COALESCE(l.needle_runtime, 0),
               COALESCE(TIME_FORMAT(l.needle_stop_time, '%H:%i:%s'), ''),
               COALESCE(l.reserve, 0),
               COALESCE(l.duration_hours, 0)
        FROM machine_logs l
        LEFT JOIN operators o ON o.rfid = l.operator_rfid`

	var where []string
	var args []interface{}

	if f.From != "" {
		where = append(where, "l.log_date >= ?")
		args = append(args, f.From)
	}
	if f.To != "" {
		where = append(where, "l.log_date <= ?")
		args = append(args, f.To)
	}
	appendIn(&where, &args, "l.machine_id", f.MachineIDs)
	appendIn(&where, &args, "l.line_number", f.LineNumbers)
	appendIn(&where, &args, "l.operator_rfid", f.OperatorIDs)
	appendIn(&where, &args, "o.name", f.OperatorNames)

	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY l.log_date ASC, l.machine_id ASC, l.start_time ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: query telemetry logs: %w", op, err)
	}
	defer rows.Close()

	var logs []storage.LogRow
	for rows.Next() {
		var l storage.LogRow

		err := rows.Scan(&l.ID, &l.MachineID, &l.LineNumber, &l.OperatorID,
			&l.OperatorName, &l.Date, &l.StartTime, &l.EndTime, &l.Mode,
			&l.StitchCount, &l.NeedleRuntimeSeconds, &l.NeedleStopTime,
			&l.Reserve, &l.DurationHours)
		if err != nil {
			return nil, fmt.Errorf("%s: scan telemetry row: %w", op, err)
		}

		logs = append(logs, l)
	}

	return logs, rows.Err()
}

func appendIn(where *[]string, args *[]interface{}, column string, values []string) {
	if len(values) == 0 {
		return
	}

	*where = append(*where, column+" IN ("+placeholders(len(values))+")")
	for _, v := range values {
		*args = append(*args, v)
	}
}
