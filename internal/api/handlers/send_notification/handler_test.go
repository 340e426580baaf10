package send_notification

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/TennisCourtBooking/internal/api/middleware"
	"github.com/m04kA/TennisCourtBooking/internal/domain"
	"github.com/m04kA/TennisCourtBooking/internal/service/notifications"
	"github.com/m04kA/TennisCourtBooking/internal/service/notifications/models"
)

type mockService struct{ mock.Mock }

func (m *mockService) Send(ctx context.Context, sender string, req *models.SendRequest) (*models.SendResponse, error) {
	args := m.Called(ctx, sender, req)
	if r := args.Get(0); r != nil {
		return r.(*models.SendResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var staff = &domain.User{ID: "s-1", Username: "AlpharettaStaff1122", IsStaff: true}

func send(svc *mockService, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/notifications", strings.NewReader(body))
	req = req.WithContext(middleware.WithUser(req.Context(), staff))
	rec := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	svc := &mockService{}
	svc.On("Send", mock.Anything, "AlpharettaStaff1122", &models.SendRequest{Message: "Court 3 resurfacing"}).
		Return(&models.SendResponse{Message: "Notification sent successfully", NotificationID: "n-1"}, nil)

	rec := send(svc, `{"message":"Court 3 resurfacing"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Notification sent successfully","notification_id":"n-1"}`, rec.Body.String())
}

func TestHandle_Blank(t *testing.T) {
	svc := &mockService{}
	svc.On("Send", mock.Anything, mock.Anything, mock.Anything).Return(nil, notifications.ErrEmptyMessage)

	rec := send(svc, `{"message":"   "}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), msgMessageRequired)
}
