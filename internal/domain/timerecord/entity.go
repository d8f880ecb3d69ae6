package timerecord

import (
	"time"

	"github.com/pontolabs/ponto-backend-go/internal/pkg/geo"
)

// Punch types. TypePunch is the generic clock event used by the mobile
// punch flow; entry/exit are reserved for imports that carry explicit
// direction.
const (
	TypePunch = "punch"
	TypeEntry = "entry"
	TypeExit  = "exit"
)

const (
	StatusValid    = "valid"
	StatusRejected = "rejected"
)

// PunchEvent is one accepted clock event. Events are append-only:
// once stored they are never updated or deleted, so reports computed
// over a period snapshot are reproducible.
type PunchEvent struct {
	ID         string
	EmployeeID string
	ClientID   string
	Timestamp  time.Time
	Location   geo.Point
	Type       string
	Status     string
	CreatedAt  time.Time
}
