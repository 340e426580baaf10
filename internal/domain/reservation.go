package domain

import (
	"fmt"
	"strings"
	"time"
)

// ReservationStatus represents the lifecycle state of a reservation
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCancelled ReservationStatus = "cancelled"
)

// Reservation represents a court booking over the half-open interval [StartTime, EndTime)
type Reservation struct {
	ID         string
	UserID     string
	CourtID    int64
	StartTime  time.Time
	EndTime    time.Time
	Attendees  int
	TotalCost  float64
	Status     ReservationStatus
	PaymentRef string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the reservation occupies its court
func (r *Reservation) IsActive() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// Hours returns the reserved duration in fractional hours
func (r *Reservation) Hours() float64 {
	return r.EndTime.Sub(r.StartTime).Hours()
}

// Overlaps reports whether the reservation intersects [start, end).
// Back-to-back intervals do not overlap.
func (r *Reservation) Overlaps(start, end time.Time) bool {
	return r.StartTime.Before(end) && r.EndTime.After(start)
}

// CanBeConfirmed returns true if a successful payment may confirm the reservation
func (r *Reservation) CanBeConfirmed() bool {
	return r.Status == StatusPending
}

// CanBeCancelled returns true if the reservation may still be cancelled
func (r *Reservation) CanBeCancelled() bool {
	return r.IsActive()
}

// ParseReservationStatus converts a string to ReservationStatus
func ParseReservationStatus(s string) (ReservationStatus, error) {
	switch status := ReservationStatus(strings.ToLower(strings.TrimSpace(s))); status {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return status, nil
	default:
		return "", fmt.Errorf("unknown reservation status %q", s)
	}
}

// ReservationFilter narrows reservation listings. Nil fields are not applied.
type ReservationFilter struct {
	UserID  *string
	CourtID *int64

	// From/To select reservations overlapping [From, To)
	From *time.Time
	To   *time.Time

	ActiveOnly bool
}

// ParseTimestamp parses a reservation bound and normalizes it to UTC
func ParseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range TimestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", value)
}

// StartOfDay truncates t to midnight UTC
func StartOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
