package login

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"eventPlanner/internal/lib/api/response"
	"eventPlanner/internal/lib/logger/sl"
	"eventPlanner/internal/lib/session"
	"eventPlanner/internal/models"
	"eventPlanner/internal/storage"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

const DefaultNext = "/dashboard"

type Request struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Next     string `json:"next"`
}

type Response struct {
	response.Response
	UserID int64  `json:"user_id,omitempty"`
	Next   string `json:"next"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserProvider
type UserProvider interface {
	UserByUsername(ctx context.Context, username string) (models.User, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SessionIssuer
type SessionIssuer interface {
	Issue(userID int64) (string, time.Time, error)
}

// New checks the credentials and sets the session cookie. Unknown users and
// wrong passwords get the same answer.
func New(log *slog.Logger, users UserProvider, sessions SessionIssuer, secureCookie bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.account.login.New"

		log := log.With(slog.String("op", op))

		var req Request

		if err := render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err := validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		log = log.With(slog.String("username", req.Username))

		user, err := users.UserByUsername(r.Context(), req.Username)
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			log.Error("failed to get user", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to log in"))
			return
		}

		if err != nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
			log.Info("invalid credentials")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("invalid username or password"))
			return
		}

		token, exp, err := sessions.Issue(user.ID)
		if err != nil {
			log.Error("failed to issue session", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to log in"))
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     session.CookieName,
			Value:    token,
			Path:     "/",
			Expires:  exp,
			HttpOnly: true,
			Secure:   secureCookie,
			SameSite: http.SameSiteLaxMode,
		})

		log.Info("user logged in", slog.Int64("user_id", user.ID))

		render.JSON(w, r, Response{
			Response: response.OK(),
			UserID:   user.ID,
			Next:     SafeNext(req.Next),
		})
	}
}

// Prompt answers GET /login: the caller has to authenticate before reaching next.
func Prompt(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.account.login.Prompt"

		log.Debug("login required", slog.String("op", op))

		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, Response{
			Response: response.Error("login required"),
			Next:     SafeNext(r.URL.Query().Get("next")),
		})
	}
}

// SafeNext keeps redirects on this site: only absolute local paths pass.
func SafeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return DefaultNext
	}

	return next
}
