package list_notifications

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/TennisCourtBooking/internal/api/middleware"
	"github.com/m04kA/TennisCourtBooking/internal/domain"
	"github.com/m04kA/TennisCourtBooking/internal/service/notifications/models"
)

type mockService struct{ mock.Mock }

func (m *mockService) ListUnread(ctx context.Context, userID string) ([]models.NotificationResponse, error) {
	args := m.Called(ctx, userID)
	if r := args.Get(0); r != nil {
		return r.([]models.NotificationResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Error(string, ...interface{}) {}

func TestHandle(t *testing.T) {
	svc := &mockService{}
	svc.On("ListUnread", mock.Anything, "u-1").Return([]models.NotificationResponse{{ID: "n-1", Message: "hi"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/notifications", nil)
	req = req.WithContext(middleware.WithUser(req.Context(), &domain.User{ID: "u-1"}))
	rec := httptest.NewRecorder()

	NewHandler(svc, nopLogger{}).Handle(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"notifications":[{"id":"n-1"`)
}
