package deleteInvitation

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

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=InvitationDeleter
type InvitationDeleter interface {
	DeleteInvitationForOrganizer(ctx context.Context, invitationID, userID int64) error
}

func New(log *slog.Logger, deleter InvitationDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.invitation.deleteInvitation.New"

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

		if err = deleter.DeleteInvitationForOrganizer(r.Context(), invitationID, userID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				log.Info("invitation not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("invitation not found"))
				return
			}

			log.Error("failed to delete invitation", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to delete invitation"))
			return
		}

		log.Info("invitation cancelled")

		render.JSON(w, r, response.OK())
	}
}
