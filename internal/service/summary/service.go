package summary

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"poppys-backend/internal/report"
	"poppys-backend/internal/storage"
)

// Storage is the slice of the database the report builders need.
type Storage interface {
	Logs(ctx context.Context, f report.Filter) ([]storage.LogRow, error)
	Operators(ctx context.Context) ([]storage.Operator, error)
}

// Service turns raw telemetry into the per-entity reports the dashboard
// renders. All aggregation goes through the report package, so every view
// shares one mode mapping and one set of division guards.
type Service struct {
	storage       Storage
	fixedDayHours float64
}

// NewService wires the report builders. fixedDayHours is the standard
// operator workday (idle backfill target) used by operator reports only.
func NewService(storage Storage, fixedDayHours float64) *Service {
	return &Service{storage: storage, fixedDayHours: fixedDayHours}
}

func (s *Service) MachineReport(ctx context.Context, f report.Filter) (*storage.Report, error) {
	const op = "service.summary.MachineReport"

	rows, err := s.storage.Logs(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return buildReport(rows, report.Options{},
		func(r storage.LogRow) string { return r.MachineID },
		func(sr *storage.SummaryRow, r storage.LogRow) { sr.MachineID = r.MachineID },
	), nil
}

func (s *Service) OperatorReport(ctx context.Context, f report.Filter) (*storage.Report, error) {
	const op = "service.summary.OperatorReport"

	rows, err := s.storage.Logs(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return buildReport(rows, report.Options{FixedDayHours: s.fixedDayHours},
		func(r storage.LogRow) string { return r.OperatorID },
		func(sr *storage.SummaryRow, r storage.LogRow) {
			sr.OperatorID = r.OperatorID
			sr.OperatorName = r.OperatorName
		},
	), nil
}

// OperatorReportByName builds a single-operator report, optionally carrying
// the raw rows it was aggregated from.
func (s *Service) OperatorReportByName(ctx context.Context, name string, includeRaw bool, f report.Filter) (*storage.Report, error) {
	const op = "service.summary.OperatorReportByName"

	f.OperatorNames = []string{name}

	rows, err := s.storage.Logs(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rep := buildReport(rows, report.Options{FixedDayHours: s.fixedDayHours},
		func(r storage.LogRow) string { return r.OperatorID },
		func(sr *storage.SummaryRow, r storage.LogRow) {
			sr.OperatorID = r.OperatorID
			sr.OperatorName = r.OperatorName
		},
	)
	if includeRaw {
		rep.RawData = rows
	}

	return rep, nil
}

func (s *Service) LineReport(ctx context.Context, f report.Filter) (*storage.Report, error) {
	const op = "service.summary.LineReport"

	rows, err := s.storage.Logs(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return buildReport(rows, report.Options{},
		func(r storage.LogRow) string { return r.LineNumber },
		func(sr *storage.SummaryRow, r storage.LogRow) { sr.LineNumber = r.LineNumber },
	), nil
}

// ConsolidatedReport builds the combined machine/line/operator view. Logs
// and the operator directory are fetched in parallel; directory names win
// over whatever name the controller logged with the row.
func (s *Service) ConsolidatedReport(ctx context.Context, f report.Filter) (*storage.Report, error) {
	const op = "service.summary.ConsolidatedReport"

	var (
		rows      []storage.LogRow
		operators []storage.Operator
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rows, err = s.storage.Logs(gCtx, f)
		if err != nil {
			return fmt.Errorf("logs: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		operators, err = s.storage.Operators(gCtx)
		if err != nil {
			return fmt.Errorf("operator directory: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	names := make(map[string]string, len(operators))
	for _, o := range operators {
		names[o.RFID] = o.Name
	}
	for i := range rows {
		if name, ok := names[rows[i].OperatorID]; ok {
			rows[i].OperatorName = name
		}
	}

	return buildReport(rows, report.Options{},
		func(r storage.LogRow) string {
			return r.MachineID + "|" + r.LineNumber + "|" + r.OperatorID
		},
		func(sr *storage.SummaryRow, r storage.LogRow) {
			sr.MachineID = r.MachineID
			sr.LineNumber = r.LineNumber
			sr.OperatorID = r.OperatorID
			sr.OperatorName = r.OperatorName
		},
	), nil
}

// RawLogs serves the raw-data toggle of every view.
func (s *Service) RawLogs(ctx context.Context, f report.Filter) ([]storage.LogRow, error) {
	const op = "service.summary.RawLogs"

	rows, err := s.storage.Logs(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return rows, nil
}

// ByEntity dispatches to the builder for an export entity name.
func (s *Service) ByEntity(ctx context.Context, entity string, f report.Filter) (*storage.Report, error) {
	const op = "service.summary.ByEntity"

	switch entity {
	case "machine":
		return s.MachineReport(ctx, f)
	case "operator":
		return s.OperatorReport(ctx, f)
	case "line":
		return s.LineReport(ctx, f)
	case "consolidated":
		return s.ConsolidatedReport(ctx, f)
	}

	return nil, fmt.Errorf("%s: unknown entity %q", op, entity)
}
