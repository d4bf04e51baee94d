package createInvitation

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"eventPlanner/internal/lib/api/request"
	"eventPlanner/internal/lib/api/response"
	"eventPlanner/internal/lib/logger/sl"
	"eventPlanner/internal/lib/requestctx"
	"eventPlanner/internal/models"
	"eventPlanner/internal/notifier"
	"eventPlanner/internal/storage"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type Request struct {
	InviteeID int64  `json:"invitee_id" validate:"required,min=1"`
	Notes     string `json:"notes"`
}

type Response struct {
	response.Response
	Invitation models.Invitation `json:"invitation"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=InvitationCreator
type InvitationCreator interface {
	CreateInvitation(ctx context.Context, eventID, organizerID, inviteeID int64, notes string) (models.Invitation, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Publisher
type Publisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
}

func New(log *slog.Logger, creator InvitationCreator, publisher Publisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.invitation.createInvitation.New"

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

		if req.InviteeID == userID {
			log.Info("organizer tried to invite themselves")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.FieldError("invitee_id", "you cannot invite yourself"))
			return
		}

		inv, err := creator.CreateInvitation(r.Context(), eventID, userID, req.InviteeID, req.Notes)
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrNotFound):
				log.Info("event not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
			case errors.Is(err, storage.ErrInvitationExists):
				log.Info("user already invited", slog.Int64("invitee_id", req.InviteeID))
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.FieldError("invitee_id", "user already invited to this event"))
			case errors.Is(err, storage.ErrInvalidReference):
				log.Info("invitee does not exist", slog.Int64("invitee_id", req.InviteeID))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.FieldError("invitee_id", "user does not exist"))
			default:
				log.Error("failed to create invitation", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to create invitation"))
			}
			return
		}

		log.Info("invitation sent", slog.Int64("invitation_id", inv.ID))

		msg := notifier.NewInvitationMessage(inv, time.Now())
		if err = publisher.Publish(r.Context(), notifier.KeyInvitationSent, msg); err != nil {
			log.Warn("failed to publish invitation notification", sl.Err(err))
		}

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, Response{
			Response:   response.OK(),
			Invitation: inv,
		})
	}
}
