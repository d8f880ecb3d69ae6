package department

import "time"

type Department struct {
	ID        string
	ClientID  string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
