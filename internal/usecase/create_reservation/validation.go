package create_reservation

import (
	"fmt"
	"time"

	"github.com/m04kA/TennisCourtBooking/internal/domain"
)

// validateRequest проверяет наличие обязательных полей.
// Порядок бизнес-правил не меняется: здесь отсекаются только непарсящиеся запросы.
func validateRequest(req *Request) error {
	if req.User == nil {
		return fmt.Errorf("%w: user is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: start_time is required", ErrInvalidInput)
	}

	if req.EndTime.IsZero() {
		return fmt.Errorf("%w: end_time is required", ErrInvalidInput)
	}

	return nil
}

// validateCourt проверяет, что корт доступен для бронирования
func validateCourt(court *domain.Court) error {
	if court == nil || !court.Available {
		return ErrCourtUnavailable
	}
	return nil
}

// validateDuration проверяет минимальную длительность.
// Интервал с концом раньше начала имеет отрицательную длительность и тоже отклоняется.
func validateDuration(hours float64, rules domain.BookingRules) error {
	if hours < rules.MinDurationHours {
		return ErrDurationTooShort
	}
	return nil
}

// validateAttendees проверяет количество участников
func validateAttendees(attendees int, rules domain.BookingRules) error {
	if attendees > rules.MaxAttendees {
		return ErrTooManyAttendees
	}
	return nil
}

// validateAdvanceWindow проверяет, что дата начала не дальше окна бронирования.
// Сравниваются календарные даты в UTC, время суток не учитывается.
func validateAdvanceWindow(start, now time.Time, tiers domain.TierSet, rules domain.BookingRules) error {
	if daysAhead(start, now) > rules.AdvanceDaysFor(tiers) {
		return ErrAdvanceWindowExceeded
	}
	return nil
}

// daysAhead количество календарных дней от now до start
func daysAhead(start, now time.Time) int {
	diff := domain.StartOfDay(start).Sub(domain.StartOfDay(now))
	return int(diff.Hours() / 24)
}

// findConflicts возвращает активные бронирования, пересекающие [start, end)
func findConflicts(existing []*domain.Reservation, start, end time.Time) []*domain.Reservation {
	conflicts := make([]*domain.Reservation, 0)
	for _, r := range existing {
		if r.IsActive() && r.Overlaps(start, end) {
			conflicts = append(conflicts, r)
		}
	}
	return conflicts
}
