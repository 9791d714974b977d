package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"

	"poppys-backend/internal/report"
)

// CSV renders the report as a comma-separated file, header row first. The
// cells carry the exact formatted strings the dashboard table shows, so a
// re-parse of the file reproduces the table.
func (s *Service) CSV(ctx context.Context, entity string, f report.Filter) ([]byte, error) {
	const op = "service.export.CSV"

	cols, rep, err := s.fetch(ctx, entity, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(headersOf(cols)); err != nil {
		return nil, fmt.Errorf("%s: write header: %w", op, err)
	}
	for _, row := range rep.Summary {
		if err := w.Write(cellsOf(cols, row)); err != nil {
			return nil, fmt.Errorf("%s: write row: %w", op, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return buf.Bytes(), nil
}
