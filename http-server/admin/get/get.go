package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"poppys-backend/internal/storage"
)

type OperatorsProvider interface {
	AllOperators(ctx context.Context) ([]storage.Operator, error)
}

// GetAllOperatorsAdmin lists the whole operator directory, inactive cards
// included, for the admin panel.
func GetAllOperatorsAdmin(log *slog.Logger, directory OperatorsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.get.GetAllOperatorsAdmin"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		operators, err := directory.AllOperators(ctx)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("list operators failed")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, operators)
	}
}
