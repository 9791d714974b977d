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

type ConsolidatedReports interface {
	ConsolidatedReport(ctx context.Context, f report.Filter) (*storage.Report, error)
}

// GetConsolidatedLogs serves the combined machine/line/operator view. All
// three id parameters are repeatable and combine as an AND across
// dimensions, OR within one.
func GetConsolidatedLogs(log *slog.Logger, reports ConsolidatedReports) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.consolidated.get.GetConsolidatedLogs"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		q := r.URL.Query()
		f := report.Filter{
			From:          q.Get("from"),
			To:            q.Get("to"),
			MachineIDs:    q["machine_id"],
			LineNumbers:   q["line_number"],
			OperatorNames: q["operator_name"],
		}
		if err := f.Validate(); err != nil {
			log.Error("invalid filter", slog.String("error", err.Error()))
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		rep, err := reports.ConsolidatedReport(ctx, f)
		if err != nil {
			log.Error("consolidated report failed", slog.String("error", err.Error()))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, ResponseError{Error: "No data found"})
			return
		}

		render.JSON(w, r, rep)
	}
}
