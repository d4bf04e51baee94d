package createVendor

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"eventPlanner/internal/http-server/handlers/vendors/form"
	"eventPlanner/internal/lib/api/response"
	"eventPlanner/internal/lib/logger/sl"
	"eventPlanner/internal/models"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type Response struct {
	response.Response
	VendorID int64 `json:"vendor_id"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=VendorCreator
type VendorCreator interface {
	CreateVendor(ctx context.Context, v models.Vendor) (int64, error)
}

func New(log *slog.Logger, creator VendorCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.vendors.createVendor.New"

		log := log.With(slog.String("op", op))

		var req form.VendorRequest

		if err := render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err := validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Info("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		id, err := creator.CreateVendor(r.Context(), req.Vendor(0))
		if err != nil {
			log.Error("failed to create vendor", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create vendor"))
			return
		}

		log.Info("vendor created", slog.Int64("vendor_id", id))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, Response{
			Response: response.OK(),
			VendorID: id,
		})
	}
}
