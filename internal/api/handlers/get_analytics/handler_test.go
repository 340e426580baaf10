package get_analytics

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/TennisCourtBooking/internal/service/analytics/models"
)

type mockService struct{ mock.Mock }

func (m *mockService) Get(ctx context.Context) (*models.AnalyticsResponse, error) {
	args := m.Called(ctx)
	if r := args.Get(0); r != nil {
		return r.(*models.AnalyticsResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Error(string, ...interface{}) {}

func TestHandle(t *testing.T) {
	svc := &mockService{}
	svc.On("Get", mock.Anything).Return(&models.AnalyticsResponse{
		TotalReservations: 4, ConfirmedReservations: 3, TotalRevenue: 30, TotalUsers: 2,
	}, nil)

	rec := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/analytics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"total_reservations":4,"confirmed_reservations":3,"total_revenue":30,"total_users":2}`, rec.Body.String())
}

func TestHandle_Error(t *testing.T) {
	svc := &mockService{}
	svc.On("Get", mock.Anything).Return(nil, errors.New("boom"))

	rec := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/analytics", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
