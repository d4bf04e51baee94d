package deleteEvent

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventPlanner/internal/http-server/handlers/event/deleteEvent/mocks"
	"eventPlanner/internal/lib/logger/handlers/slogdiscard"
	"eventPlanner/internal/lib/requestctx"
	"eventPlanner/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const userID int64 = 7

func TestDeleteEventHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		eventID        string
		mockSetup      func(m *mocks.EventDeleter)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:    "Success",
			eventID: "3",
			mockSetup: func(m *mocks.EventDeleter) {
				m.On("DeleteEvent", mock.Anything, int64(3), userID).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK"}`,
		},
		{
			name:    "Someone else's event",
			eventID: "4",
			mockSetup: func(m *mocks.EventDeleter) {
				m.On("DeleteEvent", mock.Anything, int64(4), userID).Return(storage.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"event not found"}`,
		},
		{
			name:           "Invalid id",
			eventID:        "0",
			mockSetup:      func(m *mocks.EventDeleter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid event id format"}`,
		},
		{
			name:    "Storage failure",
			eventID: "3",
			mockSetup: func(m *mocks.EventDeleter) {
				m.On("DeleteEvent", mock.Anything, int64(3), userID).Return(errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to delete event"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockDeleter := mocks.NewEventDeleter(t)
			tc.mockSetup(mockDeleter)

			router := chi.NewRouter()
			router.Delete("/events/{id}", New(logger, mockDeleter))

			req, err := http.NewRequest(http.MethodDelete, "/events/"+tc.eventID, nil)
			require.NoError(t, err)
			req = req.WithContext(requestctx.WithUserID(req.Context(), userID))

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}
