package updateEventVendor

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"eventPlanner/internal/http-server/handlers/vendors/form"
	"eventPlanner/internal/lib/api/request"
	"eventPlanner/internal/lib/api/response"
	"eventPlanner/internal/lib/logger/sl"
	"eventPlanner/internal/lib/requestctx"
	"eventPlanner/internal/models"
	"eventPlanner/internal/storage"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventVendorUpdater
type EventVendorUpdater interface {
	EventVendorForOrganizer(ctx context.Context, id, userID int64) (models.EventVendor, error)
	VendorAssignment(ctx context.Context, eventID, vendorID, excludeID, userID int64) (string, bool, error)
	UpdateEventVendorForOrganizer(ctx context.Context, ev models.EventVendor, userID int64) error
}

func New(log *slog.Logger, updater EventVendorUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.vendors.updateEventVendor.New"

		log := log.With(slog.String("op", op))

		userID, ok := requestctx.UserIDFromContext(r.Context())
		if !ok {
			log.Error("no user in request context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("unauthorized"))
			return
		}

		id, err := request.IDParam(r, "id")
		if err != nil {
			log.Error("invalid event vendor id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event vendor id format"))
			return
		}

		log = log.With(slog.Int64("event_vendor_id", id), slog.Int64("user_id", userID))

		var req form.EventVendorRequest

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

		if err = models.ValidateAmount(*req.ContractAmount); err != nil {
			log.Info("invalid contract amount", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.FieldError("contract_amount", err.Error()))
			return
		}

		current, err := updater.EventVendorForOrganizer(r.Context(), id, userID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				log.Info("event vendor not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event vendor not found"))
				return
			}

			log.Error("failed to get event vendor", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to update event vendor"))
			return
		}

		log = log.With(slog.Int64("event_id", current.EventID), slog.Int64("vendor_id", req.VendorID))

		name, assigned, err := updater.VendorAssignment(r.Context(), current.EventID, req.VendorID, id, userID)
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrNotFound):
				log.Info("event not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event vendor not found"))
			case errors.Is(err, storage.ErrInvalidReference):
				log.Info("vendor does not exist")
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.FieldError("vendor_id", "vendor does not exist"))
			default:
				log.Error("failed to check vendor assignment", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to update event vendor"))
			}
			return
		}

		if assigned {
			log.Info("vendor already assigned")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.FieldError("vendor_id", form.AlreadyAssigned(name)))
			return
		}

		err = updater.UpdateEventVendorForOrganizer(r.Context(), req.EventVendor(id, current.EventID), userID)
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrNotFound):
				log.Info("event vendor not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event vendor not found"))
			case errors.Is(err, storage.ErrEventVendorExists):
				log.Info("vendor assigned concurrently")
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.FieldError("vendor_id", form.AlreadyAssigned(name)))
			case errors.Is(err, storage.ErrInvalidReference):
				log.Info("vendor does not exist")
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.FieldError("vendor_id", "vendor does not exist"))
			default:
				log.Error("failed to update event vendor", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to update event vendor"))
			}
			return
		}

		log.Info("event vendor updated")

		render.JSON(w, r, response.OK())
	}
}
