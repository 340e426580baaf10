package get_my_reservations

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/TennisCourtBooking/internal/api/middleware"
	"github.com/m04kA/TennisCourtBooking/internal/domain"
	"github.com/m04kA/TennisCourtBooking/internal/service/reservations/models"
)

type mockService struct{ mock.Mock }

func (m *mockService) GetUserReservations(ctx context.Context, userID string) ([]models.ReservationResponse, error) {
	args := m.Called(ctx, userID)
	if r := args.Get(0); r != nil {
		return r.([]models.ReservationResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandle_OnlyCallersReservations(t *testing.T) {
	svc := &mockService{}
	svc.On("GetUserReservations", mock.Anything, "u-1").
		Return([]models.ReservationResponse{{ID: "r-1", UserID: "u-1"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reservations/my", nil)
	req = req.WithContext(middleware.WithUser(req.Context(), &domain.User{ID: "u-1"}))
	rec := httptest.NewRecorder()

	NewHandler(svc, nopLogger{}).Handle(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"reservations":[{"id":"r-1"`)
	svc.AssertExpectations(t)
}

func TestHandle_Unauthenticated(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(&mockService{}, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/reservations/my", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
