package export

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"poppys-backend/internal/report"
)

// Excel renders the report as a styled workbook: bold filled header row,
// frozen so it stays visible while scrolling the data.
func (s *Service) Excel(ctx context.Context, entity string, f report.Filter) ([]byte, error) {
	const op = "service.export.Excel"

	cols, rep, err := s.fetch(ctx, entity, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	wb := excelize.NewFile()
	defer wb.Close()
	sheet := titleFor(entity)
	wb.SetSheetName("Sheet1", sheet)

	headerStyle, _ := wb.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 2}},
	})

	for i, header := range headersOf(cols) {
		wb.SetCellValue(sheet, cellName(i+1, 1), header)
	}
	lastCol, _ := excelize.CoordinatesToCellName(len(cols), 1)
	wb.SetCellStyle(sheet, "A1", lastCol, headerStyle)

	for rowIdx, row := range rep.Summary {
		for colIdx, cell := range cellsOf(cols, row) {
			wb.SetCellValue(sheet, cellName(colIdx+1, rowIdx+2), cell)
		}
	}

	wb.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		XSplit:      0,
		YSplit:      1,
		TopLeftCell: "A2",
	})
	wb.SetColWidth(sheet, "A", "Z", 15)

	buf, err := wb.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return buf.Bytes(), nil
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
