package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pontolabs/ponto-backend-go/internal/domain/accountant"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/database"
)

type accountantRepositoryImpl struct {
	db *database.DB
}

func NewAccountantRepository(db *database.DB) accountant.AccountantRepository {
	return &accountantRepositoryImpl{db: db}
}

const accountantColumns = `
	a.id, a.name, a.company, a.email, a.phone, a.status, a.password_hash,
	(SELECT COUNT(*) FROM clients c WHERE c.accountant_id = a.id) AS client_count,
	a.created_at, a.updated_at`

// Create implements accountant.AccountantRepository.
func (r *accountantRepositoryImpl) Create(ctx context.Context, a accountant.Accountant) (accountant.Accountant, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO accountants (id, name, company, email, phone, status, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`

	var id string
	err := q.QueryRow(ctx, query,
		a.ID, a.Name, a.Company, a.Email, a.Phone, a.Status, a.PasswordHash, a.CreatedAt, a.UpdatedAt,
	).Scan(&id)
	if err != nil {
		return accountant.Accountant{}, fmt.Errorf("failed to insert accountant: %w", err)
	}

	return a, nil
}

// GetByID implements accountant.AccountantRepository.
func (r *accountantRepositoryImpl) GetByID(ctx context.Context, id string) (accountant.Accountant, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + accountantColumns + ` FROM accountants a WHERE a.id = $1`

	a, err := scanAccountant(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return accountant.Accountant{}, accountant.ErrAccountantNotFound
		}
		return accountant.Accountant{}, fmt.Errorf("failed to get accountant: %w", err)
	}
	return a, nil
}

// Update implements accountant.AccountantRepository.
func (r *accountantRepositoryImpl) Update(ctx context.Context, a accountant.Accountant) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE accountants
		SET name = $2, company = $3, phone = $4, status = $5, updated_at = $6
		WHERE id = $1`

	tag, err := q.Exec(ctx, query, a.ID, a.Name, a.Company, a.Phone, a.Status, a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update accountant: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return accountant.ErrAccountantNotFound
	}
	return nil
}

// Delete implements accountant.AccountantRepository.
func (r *accountantRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM accountants WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete accountant: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return accountant.ErrAccountantNotFound
	}
	return nil
}

// List implements accountant.AccountantRepository.
func (r *accountantRepositoryImpl) List(ctx context.Context) ([]accountant.Accountant, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + accountantColumns + ` FROM accountants a ORDER BY a.name ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query accountants: %w", err)
	}
	defer rows.Close()

	var accountants []accountant.Accountant
	for rows.Next() {
		a, err := scanAccountant(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan accountant: %w", err)
		}
		accountants = append(accountants, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read accountants: %w", err)
	}
	return accountants, nil
}

// ExistsByEmail implements accountant.AccountantRepository.
func (r *accountantRepositoryImpl) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM accountants WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check accountant email: %w", err)
	}
	return exists, nil
}

func scanAccountant(row pgx.Row) (accountant.Accountant, error) {
	var a accountant.Accountant
	if err := row.Scan(
		&a.ID,
		&a.Name,
		&a.Company,
		&a.Email,
		&a.Phone,
		&a.Status,
		&a.PasswordHash,
		&a.ClientCount,
		&a.CreatedAt,
		&a.UpdatedAt,
	); err != nil {
		return accountant.Accountant{}, err
	}
	return a, nil
}
