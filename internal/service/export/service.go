package export

import (
	"context"
	"fmt"

	"poppys-backend/internal/report"
	"poppys-backend/internal/storage"
)

// Reporter produces the summary report an export renders.
type Reporter interface {
	ByEntity(ctx context.Context, entity string, f report.Filter) (*storage.Report, error)
}

// Service renders reports as downloadable files. All three formats share
// the per-entity column arrays in columns.go, so a table cell and its
// exported counterpart can never disagree.
type Service struct {
	reports Reporter
}

func NewService(reports Reporter) *Service {
	return &Service{reports: reports}
}

func (s *Service) fetch(ctx context.Context, entity string, f report.Filter) ([]column, *storage.Report, error) {
	cols := columnsFor(entity)
	if cols == nil {
		return nil, nil, fmt.Errorf("unknown export entity %q", entity)
	}

	rep, err := s.reports.ByEntity(ctx, entity, f)
	if err != nil {
		return nil, nil, fmt.Errorf("build %s report: %w", entity, err)
	}

	return cols, rep, nil
}
