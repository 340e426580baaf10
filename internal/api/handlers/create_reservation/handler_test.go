package create_reservation

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TennisCourtBooking/internal/api/middleware"
	"github.com/m04kA/TennisCourtBooking/internal/domain"
	createReservation "github.com/m04kA/TennisCourtBooking/internal/usecase/create_reservation"
)

type mockUseCase struct{ mock.Mock }

func (m *mockUseCase) Execute(ctx context.Context, req *createReservation.Request) (*createReservation.Response, error) {
	args := m.Called(ctx, req)
	if r := args.Get(0); r != nil {
		return r.(*createReservation.Response), args.Error(1)
	}
	return nil, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var (
	resident = &domain.User{ID: "u-1", Username: "membermock", Tiers: domain.TierSet{Resident: true}}
	guest    = &domain.User{ID: "u-2", Username: "guest"}
)

const validBody = `{"court_id":1,"start_time":"2026-10-20T10:00:00Z","end_time":"2026-10-20T12:00:00Z","attendees":4}`

func serve(h *Handler, user *domain.User, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(body))
	if user != nil {
		req = req.WithContext(middleware.WithUser(req.Context(), user))
	}
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	uc := &mockUseCase{}
	start := time.Date(2026, 10, 20, 10, 0, 0, 0, time.UTC)
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(r *createReservation.Request) bool {
		return r.User == resident && r.CourtID == 1 && r.StartTime.Equal(start) &&
			r.EndTime.Equal(start.Add(2*time.Hour)) && r.Attendees == 4
	})).Return(&createReservation.Response{
		ReservationID: "r-1",
		ClientSecret:  "demo_secret_r1",
		PaymentRef:    "demo_payment_r1",
		CourtID:       1,
		StartTime:     start,
		EndTime:       start.Add(2 * time.Hour),
		Attendees:     4,
		TotalCost:     8,
		Pricing:       domain.PricingDiscounted,
		Status:        "confirmed",
	}, nil)

	rec := serve(NewHandler(uc, nopLogger{}), resident, validBody)

	require.Equal(t, http.StatusOK, rec.Code)
	var body ReservationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "r-1", body.ReservationID)
	assert.Equal(t, "demo_secret_r1", body.ClientSecret)
	assert.Equal(t, 8.0, body.TotalCost)
}

func TestHandle_NaiveTimestampsAreUTC(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(r *createReservation.Request) bool {
		return r.StartTime.Equal(time.Date(2026, 10, 20, 10, 0, 0, 0, time.UTC))
	})).Return(nil, createReservation.ErrTimeConflict)

	rec := serve(NewHandler(uc, nopLogger{}), guest,
		`{"court_id":1,"start_time":"2026-10-20T10:00:00","end_time":"2026-10-20T12:00:00","attendees":2}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertExpectations(t)
}

func TestHandle_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		user       *domain.User
		ucErr      error
		wantStatus int
		wantMsg    string
	}{
		{name: "court", user: guest, ucErr: createReservation.ErrCourtUnavailable, wantStatus: 400, wantMsg: msgCourtUnavailable},
		{name: "duration", user: guest, ucErr: createReservation.ErrDurationTooShort, wantStatus: 400, wantMsg: msgDurationTooShort},
		{name: "attendees", user: guest, ucErr: createReservation.ErrTooManyAttendees, wantStatus: 400, wantMsg: msgTooManyAttendees},
		{name: "resident window", user: resident, ucErr: createReservation.ErrAdvanceWindowExceeded, wantStatus: 400, wantMsg: msgResidentWindow},
		{name: "non-resident window", user: guest, ucErr: createReservation.ErrAdvanceWindowExceeded, wantStatus: 400, wantMsg: msgNonResidentWindow},
		{name: "conflict", user: guest, ucErr: createReservation.ErrTimeConflict, wantStatus: 400, wantMsg: msgTimeConflict},
		{name: "payment declined", user: guest, ucErr: createReservation.ErrPaymentFailed, wantStatus: 402, wantMsg: msgPaymentNotInitialized},
		{name: "internal", user: guest, ucErr: errors.New("boom"), wantStatus: 500, wantMsg: "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.ucErr)

			rec := serve(NewHandler(uc, nopLogger{}), tt.user, validBody)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var body struct {
				Code    int    `json:"code"`
				Message string `json:"message"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantStatus, body.Code)
			assert.Equal(t, tt.wantMsg, body.Message)
		})
	}
}

func TestHandle_BadInput(t *testing.T) {
	uc := &mockUseCase{}
	h := NewHandler(uc, nopLogger{})

	assert.Equal(t, http.StatusUnauthorized, serve(h, nil, validBody).Code)
	assert.Equal(t, http.StatusBadRequest, serve(h, guest, `not json`).Code)
	assert.Equal(t, http.StatusBadRequest,
		serve(h, guest, `{"court_id":1,"start_time":"tomorrow","end_time":"2026-10-20T12:00:00Z","attendees":1}`).Code)

	uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}
