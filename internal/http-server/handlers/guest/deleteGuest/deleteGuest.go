package deleteGuest

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

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=GuestDeleter
type GuestDeleter interface {
	DeleteGuestForOrganizer(ctx context.Context, guestID, userID int64) error
}

func New(log *slog.Logger, deleter GuestDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.guest.deleteGuest.New"

		log := log.With(slog.String("op", op))

		userID, ok := requestctx.UserIDFromContext(r.Context())
		if !ok {
			log.Error("no user in request context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("unauthorized"))
			return
		}

		guestID, err := request.IDParam(r, "id")
		if err != nil {
			log.Error("invalid guest id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid guest id format"))
			return
		}

		log = log.With(slog.Int64("guest_id", guestID), slog.Int64("user_id", userID))

		if err = deleter.DeleteGuestForOrganizer(r.Context(), guestID, userID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				log.Info("guest not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("guest not found"))
				return
			}

			log.Error("failed to remove guest", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to remove guest"))
			return
		}

		log.Info("guest removed")

		render.JSON(w, r, response.OK())
	}
}
