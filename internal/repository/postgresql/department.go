package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pontolabs/ponto-backend-go/internal/domain/department"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/database"
)

type departmentRepositoryImpl struct {
	db *database.DB
}

func NewDepartmentRepository(db *database.DB) department.DepartmentRepository {
	return &departmentRepositoryImpl{db: db}
}

// Create implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) Create(ctx context.Context, d department.Department) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO departments (id, client_id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id string
	err := q.QueryRow(ctx, query, d.ID, d.ClientID, d.Name, d.CreatedAt, d.UpdatedAt).Scan(&id)
	if err != nil {
		return department.Department{}, fmt.Errorf("failed to insert department: %w", err)
	}

	return d, nil
}

// GetByID implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) GetByID(ctx context.Context, id string) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, client_id, name, created_at, updated_at FROM departments WHERE id = $1`

	var d department.Department
	err := q.QueryRow(ctx, query, id).Scan(&d.ID, &d.ClientID, &d.Name, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return department.Department{}, department.ErrDepartmentNotFound
		}
		return department.Department{}, fmt.Errorf("failed to get department: %w", err)
	}
	return d, nil
}

// Delete implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete department: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return department.ErrDepartmentNotFound
	}
	return nil
}

// ListByClient implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) ListByClient(ctx context.Context, clientID string) ([]department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, client_id, name, created_at, updated_at FROM departments WHERE client_id = $1 ORDER BY name ASC`

	rows, err := q.Query(ctx, query, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to query departments: %w", err)
	}
	defer rows.Close()

	var departments []department.Department
	for rows.Next() {
		var d department.Department
		if err := rows.Scan(&d.ID, &d.ClientID, &d.Name, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan department: %w", err)
		}
		departments = append(departments, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read departments: %w", err)
	}
	return departments, nil
}

// ExistsByName implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) ExistsByName(ctx context.Context, clientID, name string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM departments WHERE client_id = $1 AND LOWER(name) = LOWER($2))`,
		clientID, name,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check department name: %w", err)
	}
	return exists, nil
}
