package timerecord

import "context"

// PunchService validates and records clock events.
type PunchService interface {
	// RecordPunch validates the attempt against the employee's
	// effective allowed area and persists it when accepted. A punch
	// from outside the area returns a *geofence.ViolationError and
	// stores nothing.
	RecordPunch(ctx context.Context, req RecordPunchRequest) (PunchResponse, error)

	// ListPunches returns the employee's punch events in the filter's
	// period, ordered by timestamp ascending.
	ListPunches(ctx context.Context, filter ListPunchesFilter) ([]PunchResponse, error)
}
