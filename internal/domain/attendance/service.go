package attendance

import "context"

type AttendanceService interface {
	// SubmitEvent validates and scores a raw clock event. The event is
	// always written unless rejected as a duplicate; the response carries
	// the definite outcome either way.
	SubmitEvent(ctx context.Context, req SubmitEventRequest) (SubmitEventResponse, error)

	// List returns validated events for a date range, scoped to the
	// caller's store unless the caller holds the head-office role.
	List(ctx context.Context, filter ListFilter) ([]EventResponse, error)

	// DailySummaries folds the event log into one work-day record per
	// (date, store, employee).
	DailySummaries(ctx context.Context, filter ListFilter) ([]DailySummaryResponse, error)

	// Approve settles the approval state of an event. Managers may only
	// settle events of their own store.
	Approve(ctx context.Context, eventID string, req ApproveRequest) error

	// ForceClockOut backfills a missing clock-out from the planned shift
	// time. The resulting event requires approval.
	ForceClockOut(ctx context.Context, req ForceClockOutRequest) (SubmitEventResponse, error)
}
