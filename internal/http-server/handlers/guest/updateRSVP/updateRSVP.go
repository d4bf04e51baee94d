package updateRSVP

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
	"github.com/go-playground/validator/v10"
)

type Request struct {
	Status         models.RSVPStatus `json:"status" validate:"required,oneof=pending accepted declined"`
	NumberOfGuests int               `json:"number_of_guests" validate:"min=1"`
	Notes          string            `json:"notes"`
}

type Response struct {
	response.Response
	RSVP models.RSVP `json:"rsvp"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RSVPUpdater
type RSVPUpdater interface {
	UpdateRSVPForOrganizer(ctx context.Context, rsvpID, userID int64, upd models.RSVPUpdate) (models.RSVP, error)
}

func New(log *slog.Logger, updater RSVPUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.guest.updateRSVP.New"

		log := log.With(slog.String("op", op))

		userID, ok := requestctx.UserIDFromContext(r.Context())
		if !ok {
			log.Error("no user in request context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("unauthorized"))
			return
		}

		rsvpID, err := request.IDParam(r, "id")
		if err != nil {
			log.Error("invalid rsvp id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid rsvp id format"))
			return
		}

		log = log.With(slog.Int64("rsvp_id", rsvpID), slog.Int64("user_id", userID))

		var req Request

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

		rsvp, err := updater.UpdateRSVPForOrganizer(r.Context(), rsvpID, userID, models.RSVPUpdate{
			Status:         req.Status,
			NumberOfGuests: req.NumberOfGuests,
			Notes:          req.Notes,
		})
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				log.Info("rsvp not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("rsvp not found"))
				return
			}

			log.Error("failed to update rsvp", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to update rsvp"))
			return
		}

		log.Info("rsvp updated", slog.String("status", string(rsvp.Status)))

		render.JSON(w, r, Response{
			Response: response.OK(),
			RSVP:     rsvp,
		})
	}
}
