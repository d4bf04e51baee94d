package listGuests

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

type GuestsResponse struct {
	response.Response
	Guests []models.Guest `json:"guests"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=GuestLister
type GuestLister interface {
	GuestsForOrganizer(ctx context.Context, eventID, userID int64) ([]models.Guest, error)
}

func New(log *slog.Logger, lister GuestLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.guest.listGuests.New"

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

		guests, err := lister.GuestsForOrganizer(r.Context(), eventID, userID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				log.Info("event not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
				return
			}

			log.Error("failed to get guests", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get guests"))
			return
		}

		log.Info("guests retrieved", slog.Int("count", len(guests)))

		render.JSON(w, r, GuestsResponse{
			Response: response.OK(),
			Guests:   guests,
		})
	}
}
