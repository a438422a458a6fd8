package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransition(t *testing.T) {
	all := []BookingStatus{StatusDraft, StatusPending, StatusApproved, StatusRejected, StatusCompleted}
	allowed := map[[2]BookingStatus]bool{
		{StatusDraft, StatusPending}:      true,
		{StatusPending, StatusApproved}:   true,
		{StatusPending, StatusRejected}:   true,
		{StatusApproved, StatusCompleted}: true,
	}

	for _, from := range all {
		for _, to := range all {
			err := Transition(from, to)
			if allowed[[2]BookingStatus{from, to}] {
				assert.NoError(t, err, "%s -> %s", from, to)
			} else {
				assert.True(t, errors.Is(err, ErrInvalidTransition), "%s -> %s", from, to)
			}
		}
	}
}

func TestBooking_IsActive(t *testing.T) {
	tests := []struct {
		status BookingStatus
		want   bool
	}{
		{StatusPending, true},
		{StatusApproved, true},
		{StatusRejected, false},
		{StatusCompleted, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			b := &Booking{Status: tt.status}
			assert.Equal(t, tt.want, b.IsActive())
		})
	}
}

func TestSlotKey(t *testing.T) {
	date := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "E1|2025-06-03|morning-1", SlotKey("E1", date, "morning-1"))

	b := &Booking{EquipmentID: "E1", Date: date, SlotID: "morning-1"}
	assert.Equal(t, SlotKey("E1", date, "morning-1"), b.Key())
}

func TestBookingFilter_Match(t *testing.T) {
	d := func(day int) time.Time { return time.Date(2025, 6, day, 0, 0, 0, 0, time.UTC) }
	b := &Booking{
		EquipmentID:  "1",
		StudentID:    "st-1",
		SupervisorID: "sv-1",
		SlotID:       "morning-1",
		Date:         d(10),
		Status:       StatusApproved,
	}
	from, to := d(1), d(10)
	late := d(11)

	tests := []struct {
		name   string
		filter BookingFilter
		want   bool
	}{
		{"empty filter", BookingFilter{}, true},
		{"equipment match", BookingFilter{EquipmentID: "1"}, true},
		{"equipment mismatch", BookingFilter{EquipmentID: "2"}, false},
		{"student mismatch", BookingFilter{StudentID: "st-2"}, false},
		{"supervisor match", BookingFilter{SupervisorID: "sv-1"}, true},
		{"status in list", BookingFilter{Statuses: []BookingStatus{StatusPending, StatusApproved}}, true},
		{"status not in list", BookingFilter{Statuses: []BookingStatus{StatusRejected}}, false},
		{"active only", BookingFilter{ActiveOnly: true}, true},
		{"inclusive range", BookingFilter{StartDate: &from, EndDate: &to}, true},
		{"starts after", BookingFilter{StartDate: &late}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Match(b))
		})
	}
}

func TestParseBookingStatus(t *testing.T) {
	s, err := ParseBookingStatus("Approved")
	require.NoError(t, err)
	assert.Equal(t, StatusApproved, s)

	_, err = ParseBookingStatus("draft")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
