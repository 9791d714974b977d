package update

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"poppys-backend/internal/storage"
)

type OperatorsProvider interface {
	UpdateOperator(ctx context.Context, req storage.UpdateOperator) error
}

func UpdateOperatorAdmin(log *slog.Logger, directory OperatorsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.update.UpdateOperatorAdmin"

		var req storage.UpdateOperator
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if req.ID == 0 {
			http.Error(w, "id is required", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := directory.UpdateOperator(ctx, req); err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("update operator failed")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}
