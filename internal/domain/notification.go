package domain

import "time"

// Notification is a broadcast message from staff to all members
type Notification struct {
	ID        string
	Message   string
	Sender    string // username of the sending staff member
	CreatedAt time.Time
}

// Analytics aggregates reservation and membership counters
type Analytics struct {
	TotalReservations     int64
	ConfirmedReservations int64
	TotalRevenue          float64
	TotalUsers            int64
}

// PaymentMode controls whether new reservations wait for a payment event
type PaymentMode string

const (
	PaymentModeAuto PaymentMode = "auto" // confirmed on creation
	PaymentModeHold PaymentMode = "hold" // pending until the payment webhook
)

// InitialStatus returns the status a new reservation is stored with
func (m PaymentMode) InitialStatus() ReservationStatus {
	if m == PaymentModeHold {
		return StatusPending
	}
	return StatusConfirmed
}
