package updateBudgetItem

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventPlanner/internal/http-server/handlers/budget/updateBudgetItem/mocks"
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

func TestUpdateBudgetItemHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	body := `{"category":"catering","name":"Dinner","estimated_cost":"60.00","actual_cost":"58.40","status":"paid"}`
	item := mock.MatchedBy(func(b models.BudgetItem) bool {
		return b.ID == 2 &&
			b.EstimatedCost.Equal(decimal.RequireFromString("60")) &&
			b.ActualCost.Valid && b.ActualCost.Decimal.Equal(decimal.RequireFromString("58.4")) &&
			b.Status == models.BudgetPaid
	})

	testCases := []struct {
		name           string
		itemID         string
		requestBody    string
		mockSetup      func(m *mocks.BudgetItemUpdater)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Success",
			itemID:      "2",
			requestBody: body,
			mockSetup: func(m *mocks.BudgetItemUpdater) {
				m.On("UpdateBudgetItemForOrganizer", mock.Anything, item, userID).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK"}`,
		},
		{
			name:        "Not the organizer",
			itemID:      "2",
			requestBody: body,
			mockSetup: func(m *mocks.BudgetItemUpdater) {
				m.On("UpdateBudgetItemForOrganizer", mock.Anything, item, userID).Return(storage.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"budget item not found"}`,
		},
		{
			name:        "Vendor contract from another event",
			itemID:      "2",
			requestBody: `{"event_vendor_id":99,"category":"catering","name":"Dinner","estimated_cost":"60.00"}`,
			mockSetup: func(m *mocks.BudgetItemUpdater) {
				m.On("UpdateBudgetItemForOrganizer", mock.Anything, mock.Anything, userID).Return(storage.ErrInvalidReference)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody: `{"status":"Error","error":"vendor contract does not belong to this event",
				"fields":{"event_vendor_id":"vendor contract does not belong to this event"}}`,
		},
		{
			name:           "Unknown status",
			itemID:         "2",
			requestBody:    `{"category":"catering","name":"Dinner","estimated_cost":"60.00","status":"overdue"}`,
			mockSetup:      func(m *mocks.BudgetItemUpdater) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody: `{"status":"Error","error":"field Status must be one of [planned paid pending]",
				"fields":{"Status":"field Status must be one of [planned paid pending]"}}`,
		},
		{
			name:           "Invalid id",
			itemID:         "0",
			requestBody:    body,
			mockSetup:      func(m *mocks.BudgetItemUpdater) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid budget item id format"}`,
		},
		{
			name:        "Storage failure",
			itemID:      "2",
			requestBody: body,
			mockSetup: func(m *mocks.BudgetItemUpdater) {
				m.On("UpdateBudgetItemForOrganizer", mock.Anything, item, userID).Return(errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to update budget item"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			updater := mocks.NewBudgetItemUpdater(t)
			tc.mockSetup(updater)

			router := chi.NewRouter()
			router.Put("/budget/{id}", New(logger, updater))

			req, err := http.NewRequest(http.MethodPut, "/budget/"+tc.itemID, bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)
			req = req.WithContext(requestctx.WithUserID(req.Context(), userID))

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}
