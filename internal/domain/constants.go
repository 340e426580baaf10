package domain

import "time"

// Default booking rules
const (
	DefaultMinDurationHours       = 2.0
	DefaultMaxAttendees           = 20
	DefaultResidentAdvanceDays    = 7
	DefaultNonResidentAdvanceDays = 5
	DefaultDiscountedHourlyRate   = 4.0
	DefaultStandardHourlyRate     = 6.0
)

// NotificationInboxLimit maximum number of unread notifications returned per request
const NotificationInboxLimit = 10

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// TimestampLayouts accepted for reservation bounds. Layouts without an offset are read as UTC.
var TimestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ActiveStatuses statuses that occupy a court
var ActiveStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
}
