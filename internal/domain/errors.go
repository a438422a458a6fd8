package domain

import "errors"

var (
	// ErrSlotUnavailable slot is not Available at the moment of the request
	ErrSlotUnavailable = errors.New("slot is not available")

	// ErrNotFound unknown booking, equipment, student or rule id
	ErrNotFound = errors.New("not found")

	// ErrNotPending decision attempted on a booking that is no longer pending
	ErrNotPending = errors.New("booking is not pending")

	// ErrForbidden actor lacks authority for the action
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidTransition booking status change not allowed by the workflow
	ErrInvalidTransition = errors.New("invalid booking status transition")

	// ErrInvalidDate booking date is in the past
	ErrInvalidDate = errors.New("invalid booking date")

	// ErrInvalidInput malformed request data
	ErrInvalidInput = errors.New("invalid input data")
)
