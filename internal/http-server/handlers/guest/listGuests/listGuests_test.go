package listGuests

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eventPlanner/internal/http-server/handlers/guest/listGuests/mocks"
	"eventPlanner/internal/lib/logger/handlers/slogdiscard"
	"eventPlanner/internal/lib/requestctx"
	"eventPlanner/internal/models"
	"eventPlanner/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const userID int64 = 7

func TestListGuestsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	at := time.Date(2025, 2, 2, 9, 30, 0, 0, time.UTC)
	invitationID := int64(40)

	guests := []models.Guest{
		{
			ID:           9,
			EventID:      3,
			UserID:       20,
			InvitationID: &invitationID,
			AddedAt:      at,
			User:         &models.User{ID: 20, Username: "dana", FirstName: "Dana", LastName: "Ito"},
			RSVP:         &models.RSVP{ID: 12, GuestID: 9, Status: models.RSVPPending, NumberOfGuests: 1},
		},
	}

	testCases := []struct {
		name           string
		eventID        string
		mockSetup      func(m *mocks.GuestLister)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:    "Success",
			eventID: "3",
			mockSetup: func(m *mocks.GuestLister) {
				m.On("GuestsForOrganizer", mock.Anything, int64(3), userID).Return(guests, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var resp GuestsResponse
				require.NoError(t, json.Unmarshal([]byte(body), &resp))

				require.Len(t, resp.Guests, 1)
				assert.Equal(t, "dana", resp.Guests[0].User.Username)
				require.NotNil(t, resp.Guests[0].RSVP)
				assert.Equal(t, models.RSVPPending, resp.Guests[0].RSVP.Status)
				assert.Equal(t, 1, resp.Guests[0].RSVP.NumberOfGuests)
				assert.NotContains(t, body, "password")
			},
		},
		{
			name:    "Non-owner",
			eventID: "3",
			mockSetup: func(m *mocks.GuestLister) {
				m.On("GuestsForOrganizer", mock.Anything, int64(3), userID).Return(nil, storage.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"event not found"}`,
		},
		{
			name:    "Storage failure",
			eventID: "3",
			mockSetup: func(m *mocks.GuestLister) {
				m.On("GuestsForOrganizer", mock.Anything, int64(3), userID).Return(nil, errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to get guests"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			lister := mocks.NewGuestLister(t)
			tc.mockSetup(lister)

			router := chi.NewRouter()
			router.Get("/event/{id}/guests", New(logger, lister))

			req, err := http.NewRequest(http.MethodGet, "/event/"+tc.eventID+"/guests", nil)
			require.NoError(t, err)
			req = req.WithContext(requestctx.WithUserID(req.Context(), userID))

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String())
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}
