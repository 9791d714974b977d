package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

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

type MachineReports interface {
	MachineReport(ctx context.Context, f report.Filter) (*storage.Report, error)
}

type RawLogs interface {
	RawLogs(ctx context.Context, f report.Filter) ([]storage.LogRow, error)
}

func machineFilter(r *http.Request) report.Filter {
	q := r.URL.Query()
	return report.Filter{
		From:       q.Get("from"),
		To:         q.Get("to"),
		MachineIDs: q["machine_id"],
	}
}

func GetMachineLogs(log *slog.Logger, reports MachineReports) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.machine.get.GetMachineLogs"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		f := machineFilter(r)
		if err := f.Validate(); err != nil {
			log.Error("invalid filter", slog.String("error", err.Error()))
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		rep, err := reports.MachineReport(ctx, f)
		if err != nil {
			log.Error("machine report failed", slog.String("error", err.Error()))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, ResponseError{Error: "No data found"})
			return
		}

		render.JSON(w, r, rep)
	}
}

func GetMachineRawLogs(log *slog.Logger, logs RawLogs) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.machine.get.GetMachineRawLogs"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		f := machineFilter(r)
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
