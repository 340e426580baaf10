package export_reservations

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/TennisCourtBooking/internal/api/handlers"
	"github.com/m04kA/TennisCourtBooking/internal/infra/export"
)

type Handler struct {
	service ReservationService
	logger  Logger
	now     func() time.Time
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
		now:     time.Now,
	}
}

// Handle GET /api/v1/admin/reservations/export
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Книга собирается в память целиком, чтобы ошибку можно было вернуть в JSON
	var buf bytes.Buffer
	if err := h.service.ExportReservations(r.Context(), &buf); err != nil {
		h.logger.Error("GET /admin/reservations/export - Failed to export reservations: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	filename := fmt.Sprintf("reservations_%s.xlsx", h.now().UTC().Format("20060102_150405"))
	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)

	h.logger.Info("GET /admin/reservations/export - Sent %s", filename)
}
