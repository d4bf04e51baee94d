package updateVendor

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"eventPlanner/internal/http-server/handlers/vendors/form"
	"eventPlanner/internal/lib/api/request"
	"eventPlanner/internal/lib/api/response"
	"eventPlanner/internal/lib/logger/sl"
	"eventPlanner/internal/models"
	"eventPlanner/internal/storage"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=VendorUpdater
type VendorUpdater interface {
	UpdateVendor(ctx context.Context, v models.Vendor) error
}

func New(log *slog.Logger, updater VendorUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.vendors.updateVendor.New"

		log := log.With(slog.String("op", op))

		vendorID, err := request.IDParam(r, "id")
		if err != nil {
			log.Error("invalid vendor id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid vendor id format"))
			return
		}

		log = log.With(slog.Int64("vendor_id", vendorID))

		var req form.VendorRequest

		if err = render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Info("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		if err = updater.UpdateVendor(r.Context(), req.Vendor(vendorID)); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				log.Info("vendor not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("vendor not found"))
				return
			}

			log.Error("failed to update vendor", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to update vendor"))
			return
		}

		log.Info("vendor updated")

		render.JSON(w, r, response.OK())
	}
}
