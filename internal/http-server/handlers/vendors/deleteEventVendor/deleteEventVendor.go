package deleteEventVendor

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

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventVendorDeleter
type EventVendorDeleter interface {
	DeleteEventVendorForOrganizer(ctx context.Context, id, userID int64) error
}

func New(log *slog.Logger, deleter EventVendorDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.vendors.deleteEventVendor.New"

		log := log.With(slog.String("op", op))

		userID, ok := requestctx.UserIDFromContext(r.Context())
		if !ok {
			log.Error("no user in request context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("unauthorized"))
			return
		}

		id, err := request.IDParam(r, "id")
		if err != nil {
			log.Error("invalid event vendor id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event vendor id format"))
			return
		}

		log = log.With(slog.Int64("event_vendor_id", id), slog.Int64("user_id", userID))

		if err = deleter.DeleteEventVendorForOrganizer(r.Context(), id, userID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				log.Info("event vendor not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event vendor not found"))
				return
			}

			log.Error("failed to remove event vendor", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to remove event vendor"))
			return
		}

		log.Info("event vendor removed")

		render.JSON(w, r, response.OK())
	}
}
