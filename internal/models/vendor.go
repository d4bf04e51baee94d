package models

import "github.com/shopspring/decimal"

type VendorCategory string

const (
	VendorCatering    VendorCategory = "catering"
	VendorPhotography VendorCategory = "photography"
	VendorDecoration  VendorCategory = "decoration"
	VendorOther       VendorCategory = "other"
)

type Vendor struct {
	ID            int64          `json:"id"`
	Name          string         `json:"name"`
	Category      VendorCategory `json:"category"`
	ContactPerson string         `json:"contact_person"`
	Email         string         `json:"email"`
	PhoneNumber   string         `json:"phone_number"`
	Notes         string         `json:"notes"`
}

type EventVendorStatus string

const (
	EventVendorPending   EventVendorStatus = "pending"
	EventVendorConfirmed EventVendorStatus = "confirmed"
	EventVendorCompleted EventVendorStatus = "completed"
)

// EventVendor is the contract between an event and a catalog vendor.
type EventVendor struct {
	ID                 int64             `json:"id"`
	EventID            int64             `json:"event_id"`
	VendorID           int64             `json:"vendor_id"`
	ServiceDescription string            `json:"service_description"`
	ContractAmount     decimal.Decimal   `json:"contract_amount"`
	Status             EventVendorStatus `json:"status"`

	Vendor *Vendor `json:"vendor,omitempty"`
}
