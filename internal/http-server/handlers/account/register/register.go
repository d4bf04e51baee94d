package register

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"eventPlanner/internal/lib/api/response"
	"eventPlanner/internal/lib/logger/sl"
	"eventPlanner/internal/models"
	"eventPlanner/internal/storage"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

type Request struct {
	Username    string      `json:"username" validate:"required,min=3,max=150"`
	Email       string      `json:"email" validate:"required,email"`
	Password    string      `json:"password" validate:"required,min=8,max=72"`
	FirstName   string      `json:"first_name" validate:"max=150"`
	LastName    string      `json:"last_name" validate:"max=150"`
	PhoneNumber string      `json:"phone_number" validate:"max=20"`
	Role        models.Role `json:"role" validate:"omitempty,oneof=planner guest"`
}

type Response struct {
	response.Response
	UserID int64 `json:"user_id"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserCreator
type UserCreator interface {
	CreateUser(ctx context.Context, u models.User) (int64, error)
}

func New(log *slog.Logger, users UserCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.account.register.New"

		log := log.With(slog.String("op", op))

		var req Request

		if err := render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log = log.With(slog.String("username", req.Username))

		if err := validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Info("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Error("failed to hash password", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to register user"))
			return
		}

		role := req.Role
		if role == "" {
			role = models.RolePlanner
		}

		userID, err := users.CreateUser(r.Context(), models.User{
			Username:     req.Username,
			Email:        req.Email,
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			PhoneNumber:  req.PhoneNumber,
			Role:         role,
			PasswordHash: string(hash),
		})
		if err != nil {
			if errors.Is(err, storage.ErrUserExists) {
				log.Info("username already taken")
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.FieldError("username", "username already taken"))
				return
			}

			log.Error("failed to create user", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to register user"))
			return
		}

		log.Info("user registered", slog.Int64("user_id", userID))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, Response{
			Response: response.OK(),
			UserID:   userID,
		})
	}
}
