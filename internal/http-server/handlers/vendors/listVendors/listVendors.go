package listVendors

import (
	"context"
	"log/slog"
	"net/http"

	"eventPlanner/internal/lib/api/response"
	"eventPlanner/internal/lib/logger/sl"
	"eventPlanner/internal/models"

	"github.com/go-chi/render"
)

type VendorsResponse struct {
	response.Response
	Vendors []models.Vendor `json:"vendors"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=VendorsGetter
type VendorsGetter interface {
	Vendors(ctx context.Context) ([]models.Vendor, error)
}

func New(log *slog.Logger, getter VendorsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.vendors.listVendors.New"

		log := log.With(slog.String("op", op))

		vendors, err := getter.Vendors(r.Context())
		if err != nil {
			log.Error("failed to get vendors", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get vendors"))
			return
		}

		log.Info("vendors retrieved", slog.Int("count", len(vendors)))

		render.JSON(w, r, VendorsResponse{
			Response: response.OK(),
			Vendors:  vendors,
		})
	}
}
