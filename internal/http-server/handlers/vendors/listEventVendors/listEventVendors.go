package listEventVendors

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

type EventVendorsResponse struct {
	response.Response
	EventVendors []models.EventVendor `json:"event_vendors"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventVendorsGetter
type EventVendorsGetter interface {
	EventVendorsForOrganizer(ctx context.Context, eventID, userID int64) ([]models.EventVendor, error)
}

func New(log *slog.Logger, getter EventVendorsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.vendors.listEventVendors.New"

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

		contracts, err := getter.EventVendorsForOrganizer(r.Context(), eventID, userID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				log.Info("event not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
				return
			}

			log.Error("failed to get event vendors", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get event vendors"))
			return
		}

		log.Info("event vendors retrieved", slog.Int("count", len(contracts)))

		render.JSON(w, r, EventVendorsResponse{
			Response:     response.OK(),
			EventVendors: contracts,
		})
	}
}
