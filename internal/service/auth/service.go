package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/pontolabs/ponto-backend-go/internal/domain/auth"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/jwt"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/password"
)

type AuthServiceImpl struct {
	auth.AccountRepository
	jwtService jwt.Service
}

func NewAuthService(accountRepo auth.AccountRepository, jwtService jwt.Service) *AuthServiceImpl {
	return &AuthServiceImpl{
		AccountRepository: accountRepo,
		jwtService:        jwtService,
	}
}

// Login implements auth.AuthService.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	account, err := s.AccountRepository.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to look up account: %w", err)
	}

	if !password.Verify(account.PasswordHash, req.Password) {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwtService.GenerateAccessToken(account.ID, account.Role, account.ClientID)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return auth.LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		UserID:      account.ID,
		Role:        account.Role,
		Name:        account.Name,
	}, nil
}
