package updateBudgetItem

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"eventPlanner/internal/http-server/handlers/budget/form"
	"eventPlanner/internal/lib/api/request"
	"eventPlanner/internal/lib/api/response"
	"eventPlanner/internal/lib/logger/sl"
	"eventPlanner/internal/lib/requestctx"
	"eventPlanner/internal/models"
	"eventPlanner/internal/storage"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BudgetItemUpdater
type BudgetItemUpdater interface {
	UpdateBudgetItemForOrganizer(ctx context.Context, item models.BudgetItem, userID int64) error
}

func New(log *slog.Logger, updater BudgetItemUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.budget.updateBudgetItem.New"

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

		var req form.BudgetItemRequest

		if err = render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Info("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		if field, err := req.InvalidAmount(); err != nil {
			log.Info("invalid amount", slog.String("field", field), sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.FieldError(field, err.Error()))
			return
		}

		// The item keeps its event; storage resolves it from the item id.
		if err = updater.UpdateBudgetItemForOrganizer(r.Context(), req.BudgetItem(itemID, 0), userID); err != nil {
			switch {
			case errors.Is(err, storage.ErrNotFound):
				log.Info("budget item not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("budget item not found"))
			case errors.Is(err, storage.ErrInvalidReference):
				log.Info("vendor contract belongs to another event")
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.FieldError("event_vendor_id", "vendor contract does not belong to this event"))
			default:
				log.Error("failed to update budget item", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to update budget item"))
			}
			return
		}

		log.Info("budget item updated")

		render.JSON(w, r, response.OK())
	}
}
