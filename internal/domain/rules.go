package domain

// Pricing labels used in metrics and responses
const (
	PricingDiscounted = "discounted"
	PricingStandard   = "standard"
)

// BookingRules are the reservation policy parameters
type BookingRules struct {
	MinDurationHours       float64
	MaxAttendees           int
	ResidentAdvanceDays    int
	NonResidentAdvanceDays int
	DiscountedHourlyRate   float64
	StandardHourlyRate     float64
}

// DefaultBookingRules returns the standard club policy
func DefaultBookingRules() BookingRules {
	return BookingRules{
		MinDurationHours:       DefaultMinDurationHours,
		MaxAttendees:           DefaultMaxAttendees,
		ResidentAdvanceDays:    DefaultResidentAdvanceDays,
		NonResidentAdvanceDays: DefaultNonResidentAdvanceDays,
		DiscountedHourlyRate:   DefaultDiscountedHourlyRate,
		StandardHourlyRate:     DefaultStandardHourlyRate,
	}
}

// AdvanceDaysFor returns how many days ahead a user may book.
// Only the resident tier extends the window.
func (r BookingRules) AdvanceDaysFor(t TierSet) int {
	if t.Resident {
		return r.ResidentAdvanceDays
	}
	return r.NonResidentAdvanceDays
}

// HourlyRateFor returns the hourly rate for a user
func (r BookingRules) HourlyRateFor(t TierSet) float64 {
	if t.Discounted() {
		return r.DiscountedHourlyRate
	}
	return r.StandardHourlyRate
}

// PricingFor returns the pricing label for a user
func (r BookingRules) PricingFor(t TierSet) string {
	if t.Discounted() {
		return PricingDiscounted
	}
	return PricingStandard
}

// Price returns the total cost for a reservation of the given length
func (r BookingRules) Price(t TierSet, hours float64) float64 {
	return hours * r.HourlyRateFor(t)
}
