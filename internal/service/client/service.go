package client

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pontolabs/ponto-backend-go/internal/domain/client"
	"github.com/pontolabs/ponto-backend-go/internal/domain/geofence"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/email"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/password"
)

type ClientServiceImpl struct {
	client.ClientRepository
	emailSvc    email.EmailService
	frontendURL string
}

func NewClientService(clientRepo client.ClientRepository, emailSvc email.EmailService, frontendURL string) *ClientServiceImpl {
	return &ClientServiceImpl{
		ClientRepository: clientRepo,
		emailSvc:         emailSvc,
		frontendURL:      frontendURL,
	}
}

// CreateClient implements client.ClientService.
func (s *ClientServiceImpl) CreateClient(ctx context.Context, req client.CreateClientRequest) (client.ClientResponse, error) {
	if err := req.Validate(); err != nil {
		return client.ClientResponse{}, err
	}

	exists, err := s.ClientRepository.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return client.ClientResponse{}, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return client.ClientResponse{}, client.ErrEmailExists
	}

	tempPassword, err := password.GenerateTemporary()
	if err != nil {
		return client.ClientResponse{}, err
	}
	hash, err := password.Hash(tempPassword)
	if err != nil {
		return client.ClientResponse{}, err
	}

	now := time.Now().UTC()
	c := client.Client{
		ID:           uuid.NewString(),
		AccountantID: req.AccountantID,
		CompanyName:  req.CompanyName,
		Email:        req.Email,
		Phone:        req.Phone,
		Status:       "active",
		PasswordHash: hash,
		Geofence:     req.Geofence.Area(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	stored, err := s.ClientRepository.Create(ctx, c)
	if err != nil {
		return client.ClientResponse{}, fmt.Errorf("failed to create client: %w", err)
	}

	go func() {
		loginLink := s.frontendURL + "/login"
		if err := s.emailSvc.SendWelcome(stored.Email, stored.CompanyName, stored.CompanyName, stored.Email, tempPassword, loginLink); err != nil {
			slog.Error("Failed to send client welcome email", "client_id", stored.ID, "error", err)
		}
	}()

	return toResponse(stored), nil
}

// GetClient implements client.ClientService.
func (s *ClientServiceImpl) GetClient(ctx context.Context, id string) (client.ClientResponse, error) {
	c, err := s.ClientRepository.GetByID(ctx, id)
	if err != nil {
		return client.ClientResponse{}, err
	}
	return toResponse(c), nil
}

// UpdateClient implements client.ClientService.
func (s *ClientServiceImpl) UpdateClient(ctx context.Context, req client.UpdateClientRequest) (client.ClientResponse, error) {
	if err := req.Validate(); err != nil {
		return client.ClientResponse{}, err
	}

	c, err := s.ClientRepository.GetByID(ctx, req.ID)
	if err != nil {
		return client.ClientResponse{}, err
	}

	if req.CompanyName != nil {
		c.CompanyName = *req.CompanyName
	}
	if req.Phone != nil {
		c.Phone = *req.Phone
	}
	if req.Status != nil {
		c.Status = *req.Status
	}
	if req.Geofence != nil {
		c.Geofence = req.Geofence.Area()
	}
	c.UpdatedAt = time.Now().UTC()

	if err := s.ClientRepository.Update(ctx, c); err != nil {
		return client.ClientResponse{}, fmt.Errorf("failed to update client: %w", err)
	}
	return toResponse(c), nil
}

// DeleteClient implements client.ClientService.
func (s *ClientServiceImpl) DeleteClient(ctx context.Context, id string) error {
	if _, err := s.ClientRepository.GetByID(ctx, id); err != nil {
		return err
	}
	return s.ClientRepository.Delete(ctx, id)
}

// ListClients implements client.ClientService.
func (s *ClientServiceImpl) ListClients(ctx context.Context, accountantID string) ([]client.ClientResponse, error) {
	clients, err := s.ClientRepository.ListByAccountant(ctx, accountantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}

	responses := make([]client.ClientResponse, 0, len(clients))
	for _, c := range clients {
		responses = append(responses, toResponse(c))
	}
	return responses, nil
}

func toResponse(c client.Client) client.ClientResponse {
	return client.ClientResponse{
		ID:           c.ID,
		AccountantID: c.AccountantID,
		CompanyName:  c.CompanyName,
		Email:        c.Email,
		Phone:        c.Phone,
		Status:       c.Status,
		Geofence: geofence.Input{
			Latitude:     c.Geofence.Center.Latitude,
			Longitude:    c.Geofence.Center.Longitude,
			RadiusMeters: c.Geofence.RadiusMeters,
			Enabled:      c.Geofence.Enabled,
		},
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
		UpdatedAt: c.UpdatedAt.Format(time.RFC3339),
	}
}
