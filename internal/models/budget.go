package models

import "github.com/shopspring/decimal"

type BudgetCategory string

const (
	BudgetVenue      BudgetCategory = "venue"
	BudgetCatering   BudgetCategory = "catering"
	BudgetDecoration BudgetCategory = "decoration"
	BudgetOther      BudgetCategory = "other"
)

type BudgetStatus string

const (
	BudgetPlanned BudgetStatus = "planned"
	BudgetPaid    BudgetStatus = "paid"
	BudgetPending BudgetStatus = "pending"
)

type BudgetItem struct {
	ID            int64               `json:"id"`
	EventID       int64               `json:"event_id"`
	EventVendorID *int64              `json:"event_vendor_id"`
	Category      BudgetCategory      `json:"category"`
	Name          string              `json:"name"`
	EstimatedCost decimal.Decimal     `json:"estimated_cost"`
	ActualCost    decimal.NullDecimal `json:"actual_cost"`
	Status        BudgetStatus        `json:"status"`
	PaymentDate   *Date               `json:"payment_date"`
}

type BudgetTotals struct {
	Estimated decimal.Decimal `json:"total_estimated"`
	Actual    decimal.Decimal `json:"total_actual"`
	Remaining decimal.Decimal `json:"remaining"`
}

func NewBudgetTotals(estimated, actual decimal.Decimal) BudgetTotals {
	return BudgetTotals{
		Estimated: estimated,
		Actual:    actual,
		Remaining: estimated.Sub(actual),
	}
}

// SumBudget totals items in memory. Items without an actual cost add nothing to Actual.
func SumBudget(items []BudgetItem) BudgetTotals {
	estimated, actual := decimal.Zero, decimal.Zero

	for _, item := range items {
		estimated = estimated.Add(item.EstimatedCost)
		if item.ActualCost.Valid {
			actual = actual.Add(item.ActualCost.Decimal)
		}
	}

	return NewBudgetTotals(estimated, actual)
}
