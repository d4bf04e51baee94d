package deleteVendor

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"eventPlanner/internal/lib/api/request"
	"eventPlanner/internal/lib/api/response"
	"eventPlanner/internal/lib/logger/sl"
	"eventPlanner/internal/storage"

	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=VendorDeleter
type VendorDeleter interface {
	DeleteVendor(ctx context.Context, id int64) error
}

func New(log *slog.Logger, deleter VendorDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.vendors.deleteVendor.New"

		log := log.With(slog.String("op", op))

		vendorID, err := request.IDParam(r, "id")
		if err != nil {
			log.Error("invalid vendor id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid vendor id format"))
			return
		}

		log = log.With(slog.Int64("vendor_id", vendorID))

		if err = deleter.DeleteVendor(r.Context(), vendorID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				log.Info("vendor not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("vendor not found"))
				return
			}

			log.Error("failed to delete vendor", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to delete vendor"))
			return
		}

		log.Info("vendor deleted")

		render.JSON(w, r, response.OK())
	}
}
