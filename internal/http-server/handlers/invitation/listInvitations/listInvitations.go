package listInvitations

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

type InvitationsResponse struct {
	response.Response
	Invitations []models.Invitation     `json:"invitations"`
	Counts      models.InvitationCounts `json:"counts"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=InvitationLister
type InvitationLister interface {
	InvitationsForOrganizer(ctx context.Context, eventID, userID int64) ([]models.Invitation, error)
}

func New(log *slog.Logger, lister InvitationLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.invitation.listInvitations.New"

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

		invitations, err := lister.InvitationsForOrganizer(r.Context(), eventID, userID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				log.Info("event not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
				return
			}

			log.Error("failed to get invitations", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get invitations"))
			return
		}

		counts := models.CountInvitations(invitations)

		log.Info("invitations retrieved", slog.Int("count", len(invitations)))

		render.JSON(w, r, InvitationsResponse{
			Response:    response.OK(),
			Invitations: invitations,
			Counts:      counts,
		})
	}
}
