package attendance

import "errors"

// Attendance domain errors
var (
	// Submission errors
	ErrDuplicateEvent   = errors.New("an event of this type already exists for today")
	ErrInvalidEventType = errors.New("invalid event type")

	// Approval errors
	ErrEventNotFound    = errors.New("attendance event not found")
	ErrAlreadyProcessed = errors.New("attendance event has already been approved or rejected")
	ErrInvalidDecision  = errors.New("decision must be approved or rejected")

	// Forced clock-out errors
	ErrNoClockInForDay   = errors.New("no clock-in exists for that day")
	ErrClockOutExists    = errors.New("a clock-out already exists for that day")
	ErrNoPlannedClockOut = errors.New("no planned clock-out time to source the forced clock-out from")
)
