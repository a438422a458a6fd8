package domain

import "github.com/m04kA/SMC-LabBookingService/pkg/types"

// DateFormat формат даты YYYY-MM-DD
const DateFormat = "2006-01-02"

// Policy defaults
const (
	// DefaultHalfDayCutoff slots starting at or after this time are closed on a half holiday
	DefaultHalfDayCutoff types.TimeString = "12:00"
)

// Business validation constants
const (
	MaxNameLength            = 200
	MaxDescriptionLength     = 1000
	MaxRejectionReasonLength = 500
	MaxSearchQueryLength     = 100
)

// ActiveStatuses список статусов, занимающих слот
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusApproved,
}

