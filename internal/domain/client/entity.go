package client

import (
	"time"

	"github.com/pontolabs/ponto-backend-go/internal/domain/geofence"
)

// Client is a company onboarded by an accounting firm. It owns the
// default allowed punch area for its employees.
type Client struct {
	ID           string
	AccountantID string
	CompanyName  string
	Email        string
	Phone        string
	Status       string
	PasswordHash string
	Geofence     geofence.Area
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
