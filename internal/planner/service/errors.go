package service

import "errors"

// The error kinds every operation reports. Handlers map these onto HTTP
// statuses; nothing else in the system switches on error text.
var (
	// ErrValidation covers malformed, missing or out-of-policy input. Not
	// retryable without changing the input.
	ErrValidation = errors.New("planner: invalid input")

	// ErrNotAllowed means the acting member lacks the required role or does
	// not own the record being mutated.
	ErrNotAllowed = errors.New("planner: not allowed")

	// ErrNotFound means a referenced record does not exist.
	ErrNotFound = errors.New("planner: not found")

	// ErrSlotConflict means the room already has a reservation overlapping
	// the requested interval.
	ErrSlotConflict = errors.New("planner: room slot conflict")

	// ErrRoomFull means the reservation already has as many accepted
	// attendees as the room's capacity.
	ErrRoomFull = errors.New("planner: room capacity reached")

	// ErrScheduleConflict means the member already accepted another
	// reservation overlapping this one.
	ErrScheduleConflict = errors.New("planner: member schedule conflict")
)
