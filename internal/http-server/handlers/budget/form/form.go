package form

import (
	"eventPlanner/internal/models"

	"github.com/shopspring/decimal"
)

// BudgetItemRequest is the body accepted when creating or editing a budget item.
type BudgetItemRequest struct {
	EventVendorID *int64                `json:"event_vendor_id" validate:"omitempty,min=1"`
	Category      models.BudgetCategory `json:"category" validate:"required,oneof=venue catering decoration other"`
	Name          string                `json:"name" validate:"required,max=200"`
	EstimatedCost *decimal.Decimal      `json:"estimated_cost" validate:"required"`
	ActualCost    *decimal.Decimal      `json:"actual_cost"`
	Status        models.BudgetStatus   `json:"status" validate:"omitempty,oneof=planned paid pending"`
	PaymentDate   *models.Date          `json:"payment_date"`
}

// InvalidAmount returns the JSON name of the first cost that is not a valid amount, with the reason.
func (req BudgetItemRequest) InvalidAmount() (string, error) {
	if err := models.ValidateAmount(*req.EstimatedCost); err != nil {
		return "estimated_cost", err
	}

	if req.ActualCost != nil {
		if err := models.ValidateAmount(*req.ActualCost); err != nil {
			return "actual_cost", err
		}
	}

	return "", nil
}

// BudgetItem builds the item for eventID. An empty status means planned and a
// blank payment date means none.
func (req BudgetItemRequest) BudgetItem(id, eventID int64) models.BudgetItem {
	status := req.Status
	if status == "" {
		status = models.BudgetPlanned
	}

	var actual decimal.NullDecimal
	if req.ActualCost != nil {
		actual = decimal.NewNullDecimal(*req.ActualCost)
	}

	paymentDate := req.PaymentDate
	if paymentDate != nil && paymentDate.IsZero() {
		paymentDate = nil
	}

	return models.BudgetItem{
		ID:            id,
		EventID:       eventID,
		EventVendorID: req.EventVendorID,
		Category:      req.Category,
		Name:          req.Name,
		EstimatedCost: *req.EstimatedCost,
		ActualCost:    actual,
		Status:        status,
		PaymentDate:   paymentDate,
	}
}
