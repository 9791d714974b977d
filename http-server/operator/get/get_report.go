package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"poppys-backend/internal/report"
	"poppys-backend/internal/storage"
)

type ResponseError struct {
	Error string `json:"error"`
}

type RawResponse struct {
	RawData []storage.LogRow `json:"raw_data"`
}

type OperatorReports interface {
	OperatorReport(ctx context.Context, f report.Filter) (*storage.Report, error)
	OperatorReportByName(ctx context.Context, name string, includeRaw bool, f report.Filter) (*storage.Report, error)
}

type RawLogs interface {
	RawLogs(ctx context.Context, f report.Filter) ([]storage.LogRow, error)
}

func operatorFilter(r *http.Request) report.Filter {
	q := r.URL.Query()
	return report.Filter{
		From:        q.Get("from"),
		To:          q.Get("to"),
		OperatorIDs: q["operator_id"],
	}
}

func GetOperatorReport(log *slog.Logger, reports OperatorReports) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.operator.get.GetOperatorReport"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		f := operatorFilter(r)
		if err := f.Validate(); err != nil {
			log.Error("invalid filter", slog.String("error", err.Error()))
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		rep, err := reports.OperatorReport(ctx, f)
		if err != nil {
			log.Error("operator report failed", slog.String("error", err.Error()))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, ResponseError{Error: "No data found"})
			return
		}

		render.JSON(w, r, rep)
	}
}

// GetOperatorReportByName serves the single-operator drill-down. The name
// comes from the URL path; include_raw_data=true attaches the raw rows.
func GetOperatorReportByName(log *slog.Logger, reports OperatorReports) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.operator.get.GetOperatorReportByName"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		name := chi.URLParam(r, "name")
		if name == "" {
			http.Error(w, "Missing operator name", http.StatusBadRequest)
			return
		}

		f := operatorFilter(r)
		if err := f.Validate(); err != nil {
			log.Error("invalid filter", slog.String("error", err.Error()))
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		includeRaw := r.URL.Query().Get("include_raw_data") == "true"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		rep, err := reports.OperatorReportByName(ctx, name, includeRaw, f)
		if err != nil {
			log.Error("operator report by name failed",
				slog.String("operator", name), slog.String("error", err.Error()))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, ResponseError{Error: "No data found"})
			return
		}

		render.JSON(w, r, rep)
	}
}

func GetOperatorRawLogs(log *slog.Logger, logs RawLogs) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.operator.get.GetOperatorRawLogs"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		f := operatorFilter(r)
		if err := f.Validate(); err != nil {
			log.Error("invalid filter", slog.String("error", err.Error()))
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		rows, err := logs.RawLogs(ctx, f)
		if err != nil {
			log.Error("raw logs failed", slog.String("error", err.Error()))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, ResponseError{Error: "No data found"})
			return
		}

		render.JSON(w, r, RawResponse{RawData: rows})
	}
}
