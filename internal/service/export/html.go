package export

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"poppys-backend/internal/report"
)

var htmlReport = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body style="font-family: Arial, sans-serif; margin: 24px;">
<h2 style="color: #2c3e50;">{{.Title}}</h2>
<table style="border-collapse: collapse; width: 100%;">
<thead>
<tr>
{{- range .Headers}}
<th style="border: 1px solid #ccc; padding: 6px 10px; background: #e0e0e0; text-align: left;">{{.}}</th>
{{- end}}
</tr>
</thead>
<tbody>
{{- range .Rows}}
<tr>
{{- range .}}
<td style="border: 1px solid #ccc; padding: 6px 10px;">{{.}}</td>
{{- end}}
</tr>
{{- end}}
</tbody>
</table>
</body>
</html>
`))

// HTML renders the report as a standalone inline-styled document, suitable
// for download and offline viewing with no stylesheet dependencies.
func (s *Service) HTML(ctx context.Context, entity string, f report.Filter) ([]byte, error) {
	const op = "service.export.HTML"

	cols, rep, err := s.fetch(ctx, entity, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows := make([][]string, 0, len(rep.Summary))
	for _, row := range rep.Summary {
		rows = append(rows, cellsOf(cols, row))
	}

	var buf bytes.Buffer
	err = htmlReport.Execute(&buf, struct {
		Title   string
		Headers []string
		Rows    [][]string
	}{
		Title:   titleFor(entity),
		Headers: headersOf(cols),
		Rows:    rows,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return buf.Bytes(), nil
}

func titleFor(entity string) string {
	switch entity {
	case "machine":
		return "Machine Report"
	case "operator":
		return "Operator Report"
	case "line":
		return "Line Report"
	case "consolidated":
		return "Consolidated Report"
	}
	return "Report"
}
