package logout

import (
	"log/slog"
	"net/http"

	"eventPlanner/internal/lib/api/response"
	"eventPlanner/internal/lib/session"

	"github.com/go-chi/render"
)

// New expires the session cookie. It succeeds whether or not a session existed.
func New(log *slog.Logger, secureCookie bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.account.logout.New"

		http.SetCookie(w, &http.Cookie{
			Name:     session.CookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   secureCookie,
			SameSite: http.SameSiteLaxMode,
		})

		log.Info("session cleared", slog.String("op", op))

		render.JSON(w, r, response.OK())
	}
}
