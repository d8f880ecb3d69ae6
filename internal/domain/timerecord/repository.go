package timerecord

import (
	"context"
	"time"
)

// PunchRepository persists punch events. The store is append-only by
// contract: there are no update or delete operations.
type PunchRepository interface {
	Create(ctx context.Context, event PunchEvent) (PunchEvent, error)
	ListByEmployee(ctx context.Context, employeeID string, start, end time.Time) ([]PunchEvent, error)

	// ListByPeriod returns all punch events for a client with
	// Timestamp in [start, end), ordered by timestamp ascending.
	ListByPeriod(ctx context.Context, clientID string, start, end time.Time) ([]PunchEvent, error)
}
