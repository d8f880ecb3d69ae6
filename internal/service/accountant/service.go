package accountant

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pontolabs/ponto-backend-go/internal/domain/accountant"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/email"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/password"
)

type AccountantServiceImpl struct {
	accountant.AccountantRepository
	emailSvc    email.EmailService
	frontendURL string
}

func NewAccountantService(accountantRepo accountant.AccountantRepository, emailSvc email.EmailService, frontendURL string) *AccountantServiceImpl {
	return &AccountantServiceImpl{
		AccountantRepository: accountantRepo,
		emailSvc:             emailSvc,
		frontendURL:          frontendURL,
	}
}

// CreateAccountant implements accountant.AccountantService.
func (s *AccountantServiceImpl) CreateAccountant(ctx context.Context, req accountant.CreateAccountantRequest) (accountant.AccountantResponse, error) {
	if err := req.Validate(); err != nil {
		return accountant.AccountantResponse{}, err
	}

	exists, err := s.AccountantRepository.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return accountant.AccountantResponse{}, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return accountant.AccountantResponse{}, accountant.ErrEmailExists
	}

	tempPassword, err := password.GenerateTemporary()
	if err != nil {
		return accountant.AccountantResponse{}, err
	}
	hash, err := password.Hash(tempPassword)
	if err != nil {
		return accountant.AccountantResponse{}, err
	}

	now := time.Now().UTC()
	a := accountant.Accountant{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Company:      req.Company,
		Email:        req.Email,
		Phone:        req.Phone,
		Status:       "active",
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	stored, err := s.AccountantRepository.Create(ctx, a)
	if err != nil {
		return accountant.AccountantResponse{}, fmt.Errorf("failed to create accountant: %w", err)
	}

	go func() {
		loginLink := s.frontendURL + "/login"
		if err := s.emailSvc.SendWelcome(stored.Email, stored.Name, stored.Company, stored.Email, tempPassword, loginLink); err != nil {
			slog.Error("Failed to send accountant welcome email", "accountant_id", stored.ID, "error", err)
		}
	}()

	return toResponse(stored), nil
}

// GetAccountant implements accountant.AccountantService.
func (s *AccountantServiceImpl) GetAccountant(ctx context.Context, id string) (accountant.AccountantResponse, error) {
	a, err := s.AccountantRepository.GetByID(ctx, id)
	if err != nil {
		return accountant.AccountantResponse{}, err
	}
	return toResponse(a), nil
}

// UpdateAccountant implements accountant.AccountantService.
func (s *AccountantServiceImpl) UpdateAccountant(ctx context.Context, req accountant.UpdateAccountantRequest) (accountant.AccountantResponse, error) {
	if err := req.Validate(); err != nil {
		return accountant.AccountantResponse{}, err
	}

	a, err := s.AccountantRepository.GetByID(ctx, req.ID)
	if err != nil {
		return accountant.AccountantResponse{}, err
	}

	if req.Name != nil {
		a.Name = *req.Name
	}
	if req.Company != nil {
		a.Company = *req.Company
	}
	if req.Phone != nil {
		a.Phone = *req.Phone
	}
	if req.Status != nil {
		a.Status = *req.Status
	}
	a.UpdatedAt = time.Now().UTC()

	if err := s.AccountantRepository.Update(ctx, a); err != nil {
		return accountant.AccountantResponse{}, fmt.Errorf("failed to update accountant: %w", err)
	}
	return toResponse(a), nil
}

// DeleteAccountant implements accountant.AccountantService.
func (s *AccountantServiceImpl) DeleteAccountant(ctx context.Context, id string) error {
	if _, err := s.AccountantRepository.GetByID(ctx, id); err != nil {
		return err
	}
	return s.AccountantRepository.Delete(ctx, id)
}

// ListAccountants implements accountant.AccountantService.
func (s *AccountantServiceImpl) ListAccountants(ctx context.Context) ([]accountant.AccountantResponse, error) {
	accountants, err := s.AccountantRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list accountants: %w", err)
	}

	responses := make([]accountant.AccountantResponse, 0, len(accountants))
	for _, a := range accountants {
		responses = append(responses, toResponse(a))
	}
	return responses, nil
}

func toResponse(a accountant.Accountant) accountant.AccountantResponse {
	return accountant.AccountantResponse{
		ID:          a.ID,
		Name:        a.Name,
		Company:     a.Company,
		Email:       a.Email,
		Phone:       a.Phone,
		Status:      a.Status,
		ClientCount: a.ClientCount,
		CreatedAt:   a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   a.UpdatedAt.Format(time.RFC3339),
	}
}
