package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"poppys-backend/internal/storage"
)

type Directory interface {
	Operators(ctx context.Context) ([]storage.Operator, error)
}

// GetOperators serves the RFID to operator-name directory the dashboards
// resolve names through.
func GetOperators(log *slog.Logger, directory Directory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.operators.get.GetOperators"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		operators, err := directory.Operators(ctx)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("operator directory failed")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, operators)
	}
}
