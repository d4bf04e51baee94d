package respondInvitation

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

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

const RedirectPath = "/my-invitations"

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=InvitationResponder
type InvitationResponder interface {
	RespondInvitation(ctx context.Context, invitationID, inviteeID int64, action models.ResponseAction) (models.Invitation, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Publisher
type Publisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
}

// New lets an invitee accept or decline their own pending invitation and then
// sends them back to their invitation list. Any other invitation, an answered
// one included, is not found.
func New(log *slog.Logger, responder InvitationResponder, publisher Publisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.invitation.respondInvitation.New"

		log := log.With(slog.String("op", op))

		userID, ok := requestctx.UserIDFromContext(r.Context())
		if !ok {
			log.Error("no user in request context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("unauthorized"))
			return
		}

		invitationID, err := request.IDParam(r, "id")
		if err != nil {
			log.Error("invalid invitation id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid invitation id format"))
			return
		}

		log = log.With(slog.Int64("invitation_id", invitationID), slog.Int64("user_id", userID))

		action, err := models.ParseResponseAction(chi.URLParam(r, "action"))
		if err != nil {
			log.Info("unknown action", slog.String("action", chi.URLParam(r, "action")))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("invitation not found"))
			return
		}

		inv, err := responder.RespondInvitation(r.Context(), invitationID, userID, action)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) || errors.Is(err, models.ErrNotPending) {
				log.Info("no pending invitation for user")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("invitation not found"))
				return
			}

			log.Error("failed to respond to invitation", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to respond to invitation"))
			return
		}

		log.Info("invitation answered", slog.String("status", string(inv.Status)))

		msg := notifier.NewInvitationMessage(inv, time.Now())
		if err = publisher.Publish(r.Context(), notifier.InvitationKey(inv.Status), msg); err != nil {
			log.Warn("failed to publish invitation notification", sl.Err(err))
		}

		http.Redirect(w, r, RedirectPath, http.StatusSeeOther)
	}
}
