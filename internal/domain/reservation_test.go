package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, minute int) time.Time {
	return time.Date(2024, 6, 10, hour, minute, 0, 0, time.UTC)
}

func TestReservation_Overlaps(t *testing.T) {
	r := &Reservation{StartTime: at(14, 0), EndTime: at(16, 0)}

	assert.True(t, r.Overlaps(at(15, 0), at(17, 0)))
	assert.True(t, r.Overlaps(at(13, 0), at(14, 1)))
	assert.True(t, r.Overlaps(at(14, 30), at(15, 30)))
	assert.False(t, r.Overlaps(at(16, 0), at(18, 0)), "back-to-back after")
	assert.False(t, r.Overlaps(at(12, 0), at(14, 0)), "back-to-back before")
}

func TestReservation_Lifecycle(t *testing.T) {
	pending := &Reservation{Status: StatusPending}
	confirmed := &Reservation{Status: StatusConfirmed}
	cancelled := &Reservation{Status: StatusCancelled}

	assert.True(t, pending.IsActive())
	assert.True(t, confirmed.IsActive())
	assert.False(t, cancelled.IsActive())

	assert.True(t, pending.CanBeConfirmed())
	assert.False(t, confirmed.CanBeConfirmed())
	assert.False(t, cancelled.CanBeCancelled())
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{in: "2024-06-10T14:00:00Z", want: at(14, 0)},
		{in: "2024-06-10T16:00:00+02:00", want: at(14, 0)},
		{in: "2024-06-10T14:00:00", want: at(14, 0)},
		{in: "2024-06-10T14:00", want: at(14, 0)},
	}
	for _, tt := range tests {
		got, err := ParseTimestamp(tt.in)
		require.NoError(t, err, tt.in)
		assert.True(t, tt.want.Equal(got), tt.in)
		assert.Equal(t, time.UTC, got.Location())
	}

	_, err := ParseTimestamp("tomorrow")
	assert.Error(t, err)
}

func TestTierUpdate(t *testing.T) {
	yes, no := true, false
	update := TierUpdate{Resident: &yes, USTA: &no}

	assert.False(t, update.IsEmpty())
	assert.True(t, TierUpdate{}.IsEmpty())
	assert.Equal(t, []string{"is_resident", "is_usta_member"}, update.FieldNames())
	assert.Equal(t, TierSet{Resident: true, ALTA: true}, update.Apply(TierSet{ALTA: true, USTA: true}))
}
