package login

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eventPlanner/internal/http-server/handlers/account/login/mocks"
	"eventPlanner/internal/lib/logger/handlers/slogdiscard"
	"eventPlanner/internal/lib/session"
	"eventPlanner/internal/models"
	"eventPlanner/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestLoginHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cretpass"), bcrypt.MinCost)
	require.NoError(t, err)

	alice := models.User{ID: 11, Username: "alice", PasswordHash: string(hash)}
	exp := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(u *mocks.UserProvider, s *mocks.SessionIssuer)
		expectedStatus int
		expectedBody   string
		wantCookie     bool
	}{
		{
			name:        "Success",
			requestBody: `{"username":"alice","password":"s3cretpass","next":"/events?page=2"}`,
			mockSetup: func(u *mocks.UserProvider, s *mocks.SessionIssuer) {
				u.On("UserByUsername", mock.Anything, "alice").Return(alice, nil)
				s.On("Issue", int64(11)).Return("signed-token", exp, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","user_id":11,"next":"/events?page=2"}`,
			wantCookie:     true,
		},
		{
			name:        "Offsite next is dropped",
			requestBody: `{"username":"alice","password":"s3cretpass","next":"//evil.example.com"}`,
			mockSetup: func(u *mocks.UserProvider, s *mocks.SessionIssuer) {
				u.On("UserByUsername", mock.Anything, "alice").Return(alice, nil)
				s.On("Issue", int64(11)).Return("signed-token", exp, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","user_id":11,"next":"/dashboard"}`,
			wantCookie:     true,
		},
		{
			name:        "Wrong password",
			requestBody: `{"username":"alice","password":"wrong-pass"}`,
			mockSetup: func(u *mocks.UserProvider, s *mocks.SessionIssuer) {
				u.On("UserByUsername", mock.Anything, "alice").Return(alice, nil)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"invalid username or password"}`,
		},
		{
			name:        "Unknown user",
			requestBody: `{"username":"mallory","password":"whatever1"}`,
			mockSetup: func(u *mocks.UserProvider, s *mocks.SessionIssuer) {
				u.On("UserByUsername", mock.Anything, "mallory").Return(models.User{}, storage.ErrNotFound)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"invalid username or password"}`,
		},
		{
			name:           "Missing password",
			requestBody:    `{"username":"alice"}`,
			mockSetup:      func(u *mocks.UserProvider, s *mocks.SessionIssuer) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field Password is a required field","fields":{"Password":"field Password is a required field"}}`,
		},
		{
			name:        "Storage failure",
			requestBody: `{"username":"alice","password":"s3cretpass"}`,
			mockSetup: func(u *mocks.UserProvider, s *mocks.SessionIssuer) {
				u.On("UserByUsername", mock.Anything, "alice").Return(models.User{}, errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to log in"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			users := mocks.NewUserProvider(t)
			sessions := mocks.NewSessionIssuer(t)
			tc.mockSetup(users, sessions)

			req, err := http.NewRequest(http.MethodPost, "/login", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			New(logger, users, sessions, true).ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())

			cookies := rr.Result().Cookies()
			if !tc.wantCookie {
				assert.Empty(t, cookies)
				return
			}

			require.Len(t, cookies, 1)
			assert.Equal(t, session.CookieName, cookies[0].Name)
			assert.Equal(t, "signed-token", cookies[0].Value)
			assert.True(t, cookies[0].HttpOnly)
			assert.True(t, cookies[0].Secure)
		})
	}
}

func TestPrompt(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/login?next=%2Fmy-invitations", nil)
	rr := httptest.NewRecorder()

	Prompt(slogdiscard.NewDiscardLogger()).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.JSONEq(t, `{"status":"Error","error":"login required","next":"/my-invitations"}`, rr.Body.String())
}

func TestSafeNext(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"":                    DefaultNext,
		"/events/3":           "/events/3",
		"https://example.com": DefaultNext,
		"//example.com":       DefaultNext,
		"/\\example.com":      DefaultNext,
		"events":              DefaultNext,
	}

	for in, want := range cases {
		assert.Equal(t, want, SafeNext(in), in)
	}
}
