package deleteBudgetItem

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"eventPlanner/internal/lib/api/request"
	"eventPlanner/internal/lib/api/response"
	"eventPlanner/internal/lib/logger/sl"
	"eventPlanner/internal/lib/requestctx"
	"eventPlanner/internal/storage"

	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BudgetItemDeleter
type BudgetItemDeleter interface {
	DeleteBudgetItemForOrganizer(ctx context.Context, id, userID int64) error
}

func New(log *slog.Logger, deleter BudgetItemDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.budget.deleteBudgetItem.New"

		log := log.With(slog.String("op", op))

		userID, ok := requestctx.UserIDFromContext(r.Context())
		if !ok {
			log.Error("no user in request context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("unauthorized"))
			return
		}

		itemID, err := request.IDParam(r, "id")
		if err != nil {
			log.Error("invalid budget item id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid budget item id format"))
			return
		}

		log = log.With(slog.Int64("budget_item_id", itemID), slog.Int64("user_id", userID))

		if err = deleter.DeleteBudgetItemForOrganizer(r.Context(), itemID, userID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				log.Info("budget item not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("budget item not found"))
				return
			}

			log.Error("failed to delete budget item", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to delete budget item"))
			return
		}

		log.Info("budget item deleted")

		render.JSON(w, r, response.OK())
	}
}
