package listVendors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventPlanner/internal/http-server/handlers/vendors/listVendors/mocks"
	"eventPlanner/internal/lib/logger/handlers/slogdiscard"
	"eventPlanner/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListVendorsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		mockSetup      func(m *mocks.VendorsGetter)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			mockSetup: func(m *mocks.VendorsGetter) {
				m.On("Vendors", mock.Anything).Return([]models.Vendor{
					{ID: 1, Name: "Bloom", Category: models.VendorDecoration, Email: "hi@bloom.test"},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"status":"OK","vendors":[{"id":1,"name":"Bloom","category":"decoration",
				"contact_person":"","email":"hi@bloom.test","phone_number":"","notes":""}]}`,
		},
		{
			name: "Empty catalog",
			mockSetup: func(m *mocks.VendorsGetter) {
				m.On("Vendors", mock.Anything).Return([]models.Vendor{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","vendors":[]}`,
		},
		{
			name: "Storage failure",
			mockSetup: func(m *mocks.VendorsGetter) {
				m.On("Vendors", mock.Anything).Return(nil, errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to get vendors"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			getter := mocks.NewVendorsGetter(t)
			tc.mockSetup(getter)

			router := chi.NewRouter()
			router.Get("/vendors", New(logger, getter))

			req, err := http.NewRequest(http.MethodGet, "/vendors", nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}
