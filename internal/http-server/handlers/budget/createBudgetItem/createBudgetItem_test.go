package createBudgetItem

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventPlanner/internal/http-server/handlers/budget/createBudgetItem/mocks"
	"eventPlanner/internal/lib/logger/handlers/slogdiscard"
	"eventPlanner/internal/lib/requestctx"
	"eventPlanner/internal/models"
	"eventPlanner/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const userID int64 = 7

func TestCreateBudgetItemHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	body := `{"event_vendor_id":11,"category":"catering","name":"Dinner","estimated_cost":"50.00","actual_cost":"45.00","status":"paid","payment_date":"2025-06-01"}`
	item := mock.MatchedBy(func(b models.BudgetItem) bool {
		return b.EventID == 3 &&
			b.EventVendorID != nil && *b.EventVendorID == 11 &&
			b.Category == models.BudgetCatering &&
			b.Name == "Dinner" &&
			b.EstimatedCost.Equal(decimal.RequireFromString("50")) &&
			b.ActualCost.Valid && b.ActualCost.Decimal.Equal(decimal.RequireFromString("45")) &&
			b.Status == models.BudgetPaid &&
			b.PaymentDate != nil && b.PaymentDate.String() == "2025-06-01"
	})

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(m *mocks.BudgetItemCreator)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Success",
			requestBody: body,
			mockSetup: func(m *mocks.BudgetItemCreator) {
				m.On("CreateBudgetItem", mock.Anything, item, userID).Return(int64(2), nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `{"status":"OK","budget_item_id":2}`,
		},
		{
			name:        "Estimate only",
			requestBody: `{"category":"venue","name":"Hall","estimated_cost":100}`,
			mockSetup: func(m *mocks.BudgetItemCreator) {
				m.On("CreateBudgetItem", mock.Anything, mock.MatchedBy(func(b models.BudgetItem) bool {
					return b.Status == models.BudgetPlanned && !b.ActualCost.Valid && b.EventVendorID == nil
				}), userID).Return(int64(1), nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `{"status":"OK","budget_item_id":1}`,
		},
		{
			name:        "Blank payment date",
			requestBody: `{"category":"venue","name":"Hall","estimated_cost":"10","payment_date":""}`,
			mockSetup: func(m *mocks.BudgetItemCreator) {
				m.On("CreateBudgetItem", mock.Anything, mock.MatchedBy(func(b models.BudgetItem) bool {
					return b.PaymentDate == nil
				}), userID).Return(int64(4), nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `{"status":"OK","budget_item_id":4}`,
		},
		{
			name:        "Vendor contract from another event",
			requestBody: body,
			mockSetup: func(m *mocks.BudgetItemCreator) {
				m.On("CreateBudgetItem", mock.Anything, item, userID).Return(int64(0), storage.ErrInvalidReference)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody: `{"status":"Error","error":"vendor contract does not belong to this event",
				"fields":{"event_vendor_id":"vendor contract does not belong to this event"}}`,
		},
		{
			name:        "Non-owner",
			requestBody: body,
			mockSetup: func(m *mocks.BudgetItemCreator) {
				m.On("CreateBudgetItem", mock.Anything, item, userID).Return(int64(0), storage.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"event not found"}`,
		},
		{
			name:           "Negative actual cost",
			requestBody:    `{"category":"venue","name":"Hall","estimated_cost":"100","actual_cost":"-1"}`,
			mockSetup:      func(m *mocks.BudgetItemCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"amount must not be negative","fields":{"actual_cost":"amount must not be negative"}}`,
		},
		{
			name:           "Missing estimate",
			requestBody:    `{"category":"venue","name":"Hall"}`,
			mockSetup:      func(m *mocks.BudgetItemCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody: `{"status":"Error","error":"field EstimatedCost is a required field",
				"fields":{"EstimatedCost":"field EstimatedCost is a required field"}}`,
		},
		{
			name:           "Bad payment date",
			requestBody:    `{"category":"venue","name":"Hall","estimated_cost":"100","payment_date":"01/06/2025"}`,
			mockSetup:      func(m *mocks.BudgetItemCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name:        "Storage failure",
			requestBody: body,
			mockSetup: func(m *mocks.BudgetItemCreator) {
				m.On("CreateBudgetItem", mock.Anything, item, userID).Return(int64(0), errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to create budget item"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			creator := mocks.NewBudgetItemCreator(t)
			tc.mockSetup(creator)

			router := chi.NewRouter()
			router.Post("/event/{id}/budget", New(logger, creator))

			req, err := http.NewRequest(http.MethodPost, "/event/3/budget", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)
			req = req.WithContext(requestctx.WithUserID(req.Context(), userID))

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}
