package mwauth

import (
	"log/slog"
	"net/http"
	"net/url"

	"eventPlanner/internal/lib/logger/sl"
	"eventPlanner/internal/lib/requestctx"
	"eventPlanner/internal/lib/session"

	"github.com/go-chi/chi/v5/middleware"
)

const LoginPath = "/login"

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SessionParser
type SessionParser interface {
	Parse(token string) (int64, error)
}

// New admits requests carrying a valid session cookie and redirects the rest
// to the login page, remembering where they were headed.
func New(log *slog.Logger, parser SessionParser) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		log := log.With(
			slog.String("component", "middleware/auth"),
		)

		fn := func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(session.CookieName)
			if err != nil {
				redirectToLogin(w, r)
				return
			}

			userID, err := parser.Parse(cookie.Value)
			if err != nil {
				log.Debug("rejected session",
					slog.String("request_id", middleware.GetReqID(r.Context())),
					sl.Err(err),
				)
				redirectToLogin(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(requestctx.WithUserID(r.Context(), userID)))
		}

		return http.HandlerFunc(fn)
	}
}

func redirectToLogin(w http.ResponseWriter, r *http.Request) {
	target := LoginPath + "?" + url.Values{"next": {r.URL.RequestURI()}}.Encode()
	http.Redirect(w, r, target, http.StatusFound)
}
