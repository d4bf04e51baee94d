package form

import (
	"fmt"

	"eventPlanner/internal/models"

	"github.com/shopspring/decimal"
)

// VendorRequest is the body accepted when creating or editing a catalog vendor.
type VendorRequest struct {
	Name          string                `json:"name" validate:"required,max=200"`
	Category      models.VendorCategory `json:"category" validate:"required,oneof=catering photography decoration other"`
	ContactPerson string                `json:"contact_person" validate:"max=100"`
	Email         string                `json:"email" validate:"omitempty,email"`
	PhoneNumber   string                `json:"phone_number" validate:"max=20"`
	Notes         string                `json:"notes"`
}

func (req VendorRequest) Vendor(id int64) models.Vendor {
	return models.Vendor{
		ID:            id,
		Name:          req.Name,
		Category:      req.Category,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		PhoneNumber:   req.PhoneNumber,
		Notes:         req.Notes,
	}
}

// EventVendorRequest is the body accepted when assigning a vendor to an event or editing the contract.
type EventVendorRequest struct {
	VendorID           int64                    `json:"vendor_id" validate:"required,min=1"`
	ServiceDescription string                   `json:"service_description" validate:"required"`
	ContractAmount     *decimal.Decimal         `json:"contract_amount" validate:"required"`
	Status             models.EventVendorStatus `json:"status" validate:"omitempty,oneof=pending confirmed completed"`
}

// EventVendor builds the contract for eventID. An empty status means pending.
func (req EventVendorRequest) EventVendor(id, eventID int64) models.EventVendor {
	status := req.Status
	if status == "" {
		status = models.EventVendorPending
	}

	return models.EventVendor{
		ID:                 id,
		EventID:            eventID,
		VendorID:           req.VendorID,
		ServiceDescription: req.ServiceDescription,
		ContractAmount:     *req.ContractAmount,
		Status:             status,
	}
}

// AlreadyAssigned is the message reported when vendorName already has a contract for the event.
func AlreadyAssigned(vendorName string) string {
	return fmt.Sprintf("vendor %q is already assigned to this event", vendorName)
}
