package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pontolabs/ponto-backend-go/internal/domain/auth"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/database"
)

type accountRepositoryImpl struct {
	db *database.DB
}

func NewAccountRepository(db *database.DB) auth.AccountRepository {
	return &accountRepositoryImpl{db: db}
}

// FindByEmail implements auth.AccountRepository. Searches the three
// account collections in onboarding order; the first match wins.
func (r *accountRepositoryImpl) FindByEmail(ctx context.Context, email string) (auth.Account, error) {
	q := GetQuerier(ctx, r.db)

	lookups := []struct {
		role  string
		query string
	}{
		{
			role: auth.RoleAccountant,
			query: `SELECT id, name, email, password_hash, '' AS client_id
				FROM accountants WHERE email = $1 AND status = 'active'`,
		},
		{
			role: auth.RoleClient,
			query: `SELECT id, company_name AS name, email, password_hash, '' AS client_id
				FROM clients WHERE email = $1 AND status = 'active'`,
		},
		{
			role: auth.RoleEmployee,
			query: `SELECT id, name, email, password_hash, client_id
				FROM employees WHERE email = $1 AND status = 'active'`,
		},
	}

	for _, lookup := range lookups {
		var account auth.Account
		err := q.QueryRow(ctx, lookup.query, email).Scan(
			&account.ID,
			&account.Name,
			&account.Email,
			&account.PasswordHash,
			&account.ClientID,
		)
		if err == nil {
			account.Role = lookup.role
			return account, nil
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return auth.Account{}, fmt.Errorf("failed to look up %s account: %w", lookup.role, err)
		}
	}

	return auth.Account{}, auth.ErrInvalidCredentials
}
