package export

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/net/context"

	"poppys-backend/internal/report"
)

type Exporter interface {
	CSV(ctx context.Context, entity string, f report.Filter) ([]byte, error)
	HTML(ctx context.Context, entity string, f report.Filter) ([]byte, error)
	Excel(ctx context.Context, entity string, f report.Filter) ([]byte, error)
}

func exportFilter(r *http.Request) (string, report.Filter) {
	q := r.URL.Query()
	entity := q.Get("entity")
	if entity == "" {
		entity = "machine"
	}

	return entity, report.Filter{
		From:          q.Get("from"),
		To:            q.Get("to"),
		MachineIDs:    q["machine_id"],
		LineNumbers:   q["line_number"],
		OperatorIDs:   q["operator_id"],
		OperatorNames: q["operator_name"],
	}
}

func serve(log *slog.Logger, op, contentType, extension string,
	generate func(ctx context.Context, entity string, f report.Filter) ([]byte, error),
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entity, f := exportFilter(r)
		if err := f.Validate(); err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("invalid filter")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
		defer cancel()

		data, err := generate(ctx, entity, f)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("export failed")
			http.Error(w, "Failed to generate report", http.StatusInternalServerError)
			return
		}

		filename := fmt.Sprintf("%s_report_%s.%s", entity, time.Now().Format("2006-01-02"), extension)
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		w.Write(data)
	}
}

func DownloadCSV(log *slog.Logger, exporter Exporter) http.HandlerFunc {
	return serve(log, "handler.export.DownloadCSV",
		"text/csv; charset=utf-8", "csv", exporter.CSV)
}

func DownloadHTML(log *slog.Logger, exporter Exporter) http.HandlerFunc {
	return serve(log, "handler.export.DownloadHTML",
		"text/html; charset=utf-8", "html", exporter.HTML)
}

func DownloadExcel(log *slog.Logger, exporter Exporter) http.HandlerFunc {
	return serve(log, "handler.export.DownloadExcel",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "xlsx", exporter.Excel)
}
