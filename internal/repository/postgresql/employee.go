package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pontolabs/ponto-backend-go/internal/domain/employee"
	"github.com/pontolabs/ponto-backend-go/internal/domain/geofence"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/database"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/geo"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	id, client_id, department_id, name, email, phone, status, password_hash,
	workdays,
	geofence_latitude, geofence_longitude, geofence_radius_meters, geofence_enabled,
	created_at, updated_at`

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (` + employeeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id`

	lat, lng, radius, enabled := flattenArea(emp.Geofence)

	var id string
	err := q.QueryRow(ctx, query,
		emp.ID,
		emp.ClientID,
		emp.DepartmentID,
		emp.Name,
		emp.Email,
		emp.Phone,
		emp.Status,
		emp.PasswordHash,
		employee.FormatWorkdays(emp.Workdays),
		lat, lng, radius, enabled,
		emp.CreatedAt,
		emp.UpdatedAt,
	).Scan(&id)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to insert employee: %w", err)
	}

	return emp, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return emp, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET department_id = $2, name = $3, phone = $4, status = $5,
			workdays = $6,
			geofence_latitude = $7, geofence_longitude = $8,
			geofence_radius_meters = $9, geofence_enabled = $10,
			updated_at = $11
		WHERE id = $1`

	lat, lng, radius, enabled := flattenArea(emp.Geofence)

	tag, err := q.Exec(ctx, query,
		emp.ID,
		emp.DepartmentID,
		emp.Name,
		emp.Phone,
		emp.Status,
		employee.FormatWorkdays(emp.Workdays),
		lat, lng, radius, enabled,
		emp.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// ListByClient implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ListByClient(ctx context.Context, clientID string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE client_id = $1 ORDER BY name ASC`

	rows, err := q.Query(ctx, query, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read employees: %w", err)
	}
	return employees, nil
}

// ExistsByEmail implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ExistsByEmail(ctx context.Context, clientID, email string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM employees WHERE client_id = $1 AND email = $2)`,
		clientID, email,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check employee email: %w", err)
	}
	return exists, nil
}

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	var workdays []string
	var lat, lng, radius *float64
	var enabled *bool

	if err := row.Scan(
		&emp.ID,
		&emp.ClientID,
		&emp.DepartmentID,
		&emp.Name,
		&emp.Email,
		&emp.Phone,
		&emp.Status,
		&emp.PasswordHash,
		&workdays,
		&lat, &lng, &radius, &enabled,
		&emp.CreatedAt,
		&emp.UpdatedAt,
	); err != nil {
		return employee.Employee{}, err
	}

	parsed, err := employee.ParseWorkdays(workdays)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("stored workdays are invalid: %w", err)
	}
	emp.Workdays = parsed
	emp.Geofence = buildArea(lat, lng, radius, enabled)
	return emp, nil
}

// flattenArea splits an optional area into nullable columns.
func flattenArea(area *geofence.Area) (lat, lng, radius *float64, enabled *bool) {
	if area == nil {
		return nil, nil, nil, nil
	}
	return &area.Center.Latitude, &area.Center.Longitude, &area.RadiusMeters, &area.Enabled
}

// buildArea rebuilds an optional area from nullable columns.
func buildArea(lat, lng, radius *float64, enabled *bool) *geofence.Area {
	if lat == nil || lng == nil || radius == nil || enabled == nil {
		return nil
	}
	return &geofence.Area{
		Center:       geo.Point{Latitude: *lat, Longitude: *lng},
		RadiusMeters: *radius,
		Enabled:      *enabled,
	}
}
