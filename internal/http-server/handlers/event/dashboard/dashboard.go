package dashboard

import (
	"context"
	"log/slog"
	"net/http"

	"eventPlanner/internal/lib/api/response"
	"eventPlanner/internal/lib/logger/sl"
	"eventPlanner/internal/lib/requestctx"
	"eventPlanner/internal/models"

	"github.com/go-chi/render"
)

type DashboardResponse struct {
	response.Response
	models.Dashboard
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=DashboardProvider
type DashboardProvider interface {
	Dashboard(ctx context.Context, userID int64) (models.Dashboard, error)
}

// New reports how many events the caller organizes and the next few still in play.
func New(log *slog.Logger, provider DashboardProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.dashboard.New"

		log := log.With(slog.String("op", op))

		userID, ok := requestctx.UserIDFromContext(r.Context())
		if !ok {
			log.Error("no user in request context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("unauthorized"))
			return
		}

		d, err := provider.Dashboard(r.Context(), userID)
		if err != nil {
			log.Error("failed to build dashboard", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get dashboard"))
			return
		}

		log.Debug("dashboard built", slog.Int64("user_id", userID), slog.Int("total_events", d.TotalEvents))

		render.JSON(w, r, DashboardResponse{
			Response:  response.OK(),
			Dashboard: d,
		})
	}
}
