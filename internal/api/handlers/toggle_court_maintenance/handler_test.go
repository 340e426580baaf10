package toggle_court_maintenance

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/TennisCourtBooking/internal/service/courts"
	"github.com/m04kA/TennisCourtBooking/internal/service/courts/models"
)

type mockService struct{ mock.Mock }

func (m *mockService) ToggleMaintenance(ctx context.Context, courtID int64) (*models.ToggleMaintenanceResponse, error) {
	args := m.Called(ctx, courtID)
	if r := args.Get(0); r != nil {
		return r.(*models.ToggleMaintenanceResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(svc *mockService, path string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/admin/courts/{courtId}/maintenance", NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodPost)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, path, nil))
	return rec
}

func TestHandle(t *testing.T) {
	svc := &mockService{}
	svc.On("ToggleMaintenance", mock.Anything, int64(2)).
		Return(&models.ToggleMaintenanceResponse{Message: "Court 2 disabled", CourtID: 2}, nil)

	rec := serve(svc, "/api/v1/admin/courts/2/maintenance")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Court 2 disabled","court_id":2,"available":false}`, rec.Body.String())
}

func TestHandle_Errors(t *testing.T) {
	svc := &mockService{}
	svc.On("ToggleMaintenance", mock.Anything, int64(99)).Return(nil, courts.ErrCourtNotFound)

	assert.Equal(t, http.StatusNotFound, serve(svc, "/api/v1/admin/courts/99/maintenance").Code)
	assert.Equal(t, http.StatusBadRequest, serve(svc, "/api/v1/admin/courts/abc/maintenance").Code)
}
