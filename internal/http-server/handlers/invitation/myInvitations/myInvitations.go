package myInvitations

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

type MyInvitationsResponse struct {
	response.Response
	Pending      []models.Invitation `json:"pending"`
	Responded    []models.Invitation `json:"responded"`
	PendingCount int                 `json:"pending_count"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=InviteeInvitations
type InviteeInvitations interface {
	InvitationsForInvitee(ctx context.Context, userID int64) ([]models.Invitation, error)
}

// New shows the caller everything they were invited to, awaiting answers first.
func New(log *slog.Logger, invitations InviteeInvitations) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.invitation.myInvitations.New"

		log := log.With(slog.String("op", op))

		userID, ok := requestctx.UserIDFromContext(r.Context())
		if !ok {
			log.Error("no user in request context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("unauthorized"))
			return
		}

		all, err := invitations.InvitationsForInvitee(r.Context(), userID)
		if err != nil {
			log.Error("failed to get invitations", sl.Err(err), slog.Int64("user_id", userID))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get invitations"))
			return
		}

		pending, responded := models.SplitByResponse(all)

		render.JSON(w, r, MyInvitationsResponse{
			Response:     response.OK(),
			Pending:      pending,
			Responded:    responded,
			PendingCount: len(pending),
		})
	}
}
