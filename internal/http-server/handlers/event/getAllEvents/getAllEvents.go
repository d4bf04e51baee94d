package getAllEvents

import (
	"context"
	"log/slog"
	"net/http"

	"eventPlanner/internal/lib/api/request"
	"eventPlanner/internal/lib/api/response"
	"eventPlanner/internal/lib/logger/sl"
	"eventPlanner/internal/lib/requestctx"
	"eventPlanner/internal/models"

	"github.com/go-chi/render"
)

type EventsResponse struct {
	response.Response
	Events     []models.Event `json:"events"`
	Page       int            `json:"page"`
	TotalPages int            `json:"total_pages"`
	Total      int            `json:"total"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventsGetter
type EventsGetter interface {
	EventsForOrganizer(ctx context.Context, userID int64, page int) ([]models.Event, int, error)
}

// New lists the caller's events ten per page. A page past the end is clamped
// to the last page.
func New(log *slog.Logger, eventsGetter EventsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getAllEvents.New"

		log := log.With(slog.String("op", op))

		userID, ok := requestctx.UserIDFromContext(r.Context())
		if !ok {
			log.Error("no user in request context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("unauthorized"))
			return
		}

		page := request.Page(r)

		events, total, err := eventsGetter.EventsForOrganizer(r.Context(), userID, page)
		if err != nil {
			log.Error("failed to get events", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get events"))
			return
		}

		totalPages := pageCount(total)
		if len(events) == 0 && page > totalPages && totalPages > 0 {
			page = totalPages

			events, total, err = eventsGetter.EventsForOrganizer(r.Context(), userID, page)
			if err != nil {
				log.Error("failed to get events", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to get events"))
				return
			}
			totalPages = pageCount(total)
		}

		log.Info("events retrieved successfully",
			slog.Int64("user_id", userID),
			slog.Int("page", page),
			slog.Int("count", len(events)),
		)

		responseOK(w, r, EventsResponse{
			Response:   response.OK(),
			Events:     events,
			Page:       page,
			TotalPages: max(totalPages, 1),
			Total:      total,
		})
	}
}

func pageCount(total int) int {
	return (total + models.EventsPerPage - 1) / models.EventsPerPage
}

func responseOK(w http.ResponseWriter, r *http.Request, resp EventsResponse) {
	render.JSON(w, r, resp)
}
