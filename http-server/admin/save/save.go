package save

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"poppys-backend/internal/storage"
)

type OperatorsProvider interface {
	SaveOperator(ctx context.Context, req storage.SaveOperator) (int64, error)
}

type Response struct {
	ID int64 `json:"id"`
}

// SaveOperatorAdmin registers an RFID card with an operator name, or
// reactivates and renames an existing card.
func SaveOperatorAdmin(log *slog.Logger, directory OperatorsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.save.SaveOperatorAdmin"

		var req storage.SaveOperator
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if req.RFID == "" || req.Name == "" {
			http.Error(w, "rfid and operator_name are required", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		id, err := directory.SaveOperator(ctx, req)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("save operator failed")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, Response{ID: id})
	}
}
