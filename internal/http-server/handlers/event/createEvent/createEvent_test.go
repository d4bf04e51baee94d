package createEvent

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eventPlanner/internal/http-server/handlers/event/createEvent/mocks"
	"eventPlanner/internal/lib/logger/handlers/slogdiscard"
	"eventPlanner/internal/lib/requestctx"
	"eventPlanner/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const userID int64 = 7

func TestCreateEventHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	start := time.Date(2024, 12, 25, 18, 0, 0, 0, time.UTC)
	end := time.Date(2024, 12, 25, 23, 0, 0, 0, time.UTC)

	wantEvent := models.Event{
		Title:       "Test Event",
		EventType:   models.EventTypeParty,
		Status:      models.EventStatusPlanning,
		StartDate:   start,
		EndDate:     end,
		Venue:       "Hall A",
		MaxCapacity: 100,
		CreatedBy:   userID,
	}

	validBody := `{
		"title": "Test Event",
		"event_type": "party",
		"start_date": "2024-12-25T18:00:00Z",
		"end_date": "2024-12-25T23:00:00Z",
		"venue": "Hall A",
		"max_capacity": 100
	}`

	testCases := []struct {
		name           string
		requestBody    string
		anonymous      bool
		mockSetup      func(mock *mocks.EventCreator)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Success",
			requestBody: validBody,
			mockSetup: func(m *mocks.EventCreator) {
				m.On("CreateEvent", mock.Anything, wantEvent).Return(int64(123), nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `{"status":"OK","event_id":123}`,
		},
		{
			name: "End before start is accepted",
			requestBody: `{
				"title": "Test Event",
				"event_type": "party",
				"start_date": "2024-12-25T23:00:00Z",
				"end_date": "2024-12-25T18:00:00Z",
				"venue": "Hall A",
				"max_capacity": 100
			}`,
			mockSetup: func(m *mocks.EventCreator) {
				e := wantEvent
				e.StartDate, e.EndDate = end, start
				m.On("CreateEvent", mock.Anything, e).Return(int64(124), nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `{"status":"OK","event_id":124}`,
		},
		{
			name:           "Invalid JSON",
			requestBody:    `invalid json`,
			mockSetup:      func(m *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name: "Missing title",
			requestBody: `{
				"event_type": "party",
				"start_date": "2024-12-25T18:00:00Z",
				"end_date": "2024-12-25T23:00:00Z"
			}`,
			mockSetup:      func(m *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, `"Title":"field Title is a required field"`)
			},
		},
		{
			name: "Unknown event type",
			requestBody: `{
				"title": "Test Event",
				"event_type": "concert",
				"start_date": "2024-12-25T18:00:00Z",
				"end_date": "2024-12-25T23:00:00Z"
			}`,
			mockSetup:      func(m *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "EventType")
				assert.Contains(t, body, "must be one of [wedding corporate party other]")
			},
		},
		{
			name: "Invalid date format",
			requestBody: `{
				"title": "Test Event",
				"event_type": "party",
				"start_date": "invalid-date",
				"end_date": "2024-12-25T23:00:00Z"
			}`,
			mockSetup:      func(m *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name:           "No session user",
			requestBody:    validBody,
			anonymous:      true,
			mockSetup:      func(m *mocks.EventCreator) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"unauthorized"}`,
		},
		{
			name:        "Internal server error",
			requestBody: validBody,
			mockSetup: func(m *mocks.EventCreator) {
				m.On("CreateEvent", mock.Anything, wantEvent).Return(int64(0), errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to add event"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockCreator := mocks.NewEventCreator(t)
			tc.mockSetup(mockCreator)

			handler := New(logger, mockCreator)

			req, err := http.NewRequest(http.MethodPost, "/events", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)
			if !tc.anonymous {
				req = req.WithContext(requestctx.WithUserID(req.Context(), userID))
			}

			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}

func TestResponseOK(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	responseOK(rr, req, 456)

	assert.Equal(t, http.StatusCreated, rr.Code)

	var actualResponse EventResponse
	err := json.Unmarshal(rr.Body.Bytes(), &actualResponse)
	require.NoError(t, err)

	assert.Equal(t, "OK", actualResponse.Status)
	assert.Equal(t, "", actualResponse.Error)
	assert.Equal(t, int64(456), actualResponse.EventId)
}
