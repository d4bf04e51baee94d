package getBudget

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"eventPlanner/internal/lib/api/request"
	"eventPlanner/internal/lib/api/response"
	"eventPlanner/internal/lib/logger/sl"
	"eventPlanner/internal/lib/requestctx"
	"eventPlanner/internal/models"
	"eventPlanner/internal/storage"

	"github.com/go-chi/render"
)

type BudgetResponse struct {
	response.Response
	Items []models.BudgetItem `json:"items"`
	models.BudgetTotals
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BudgetGetter
type BudgetGetter interface {
	BudgetForOrganizer(ctx context.Context, eventID, userID int64) ([]models.BudgetItem, models.BudgetTotals, error)
}

func New(log *slog.Logger, getter BudgetGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.budget.getBudget.New"

		log := log.With(slog.String("op", op))

		userID, ok := requestctx.UserIDFromContext(r.Context())
		if !ok {
			log.Error("no user in request context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("unauthorized"))
			return
		}

		eventID, err := request.IDParam(r, "id")
		if err != nil {
			log.Error("invalid event id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event id format"))
			return
		}

		log = log.With(slog.Int64("event_id", eventID), slog.Int64("user_id", userID))

		items, totals, err := getter.BudgetForOrganizer(r.Context(), eventID, userID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				log.Info("event not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
				return
			}

			log.Error("failed to get budget", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get budget"))
			return
		}

		log.Info("budget retrieved",
			slog.Int("items", len(items)),
			slog.String("total_estimated", totals.Estimated.StringFixed(models.AmountScale)),
		)

		render.JSON(w, r, BudgetResponse{
			Response:     response.OK(),
			Items:        items,
			BudgetTotals: totals,
		})
	}
}
