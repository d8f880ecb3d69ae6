package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pontolabs/ponto-backend-go/internal/domain/client"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/database"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/geo"
)

type clientRepositoryImpl struct {
	db *database.DB
}

func NewClientRepository(db *database.DB) client.ClientRepository {
	return &clientRepositoryImpl{db: db}
}

const clientColumns = `
	id, accountant_id, company_name, email, phone, status, password_hash,
	geofence_latitude, geofence_longitude, geofence_radius_meters, geofence_enabled,
	created_at, updated_at`

// Create implements client.ClientRepository.
func (r *clientRepositoryImpl) Create(ctx context.Context, c client.Client) (client.Client, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO clients (` + clientColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id`

	var id string
	err := q.QueryRow(ctx, query,
		c.ID,
		c.AccountantID,
		c.CompanyName,
		c.Email,
		c.Phone,
		c.Status,
		c.PasswordHash,
		c.Geofence.Center.Latitude,
		c.Geofence.Center.Longitude,
		c.Geofence.RadiusMeters,
		c.Geofence.Enabled,
		c.CreatedAt,
		c.UpdatedAt,
	).Scan(&id)
	if err != nil {
		return client.Client{}, fmt.Errorf("failed to insert client: %w", err)
	}

	return c, nil
}

// GetByID implements client.ClientRepository.
func (r *clientRepositoryImpl) GetByID(ctx context.Context, id string) (client.Client, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`

	c, err := scanClient(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return client.Client{}, client.ErrClientNotFound
		}
		return client.Client{}, fmt.Errorf("failed to get client: %w", err)
	}
	return c, nil
}

// Update implements client.ClientRepository.
func (r *clientRepositoryImpl) Update(ctx context.Context, c client.Client) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE clients
		SET company_name = $2, phone = $3, status = $4,
			geofence_latitude = $5, geofence_longitude = $6,
			geofence_radius_meters = $7, geofence_enabled = $8,
			updated_at = $9
		WHERE id = $1`

	tag, err := q.Exec(ctx, query,
		c.ID,
		c.CompanyName,
		c.Phone,
		c.Status,
		c.Geofence.Center.Latitude,
		c.Geofence.Center.Longitude,
		c.Geofence.RadiusMeters,
		c.Geofence.Enabled,
		c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update client: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return client.ErrClientNotFound
	}
	return nil
}

// Delete implements client.ClientRepository.
func (r *clientRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return client.ErrClientNotFound
	}
	return nil
}

// ListByAccountant implements client.ClientRepository.
func (r *clientRepositoryImpl) ListByAccountant(ctx context.Context, accountantID string) ([]client.Client, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + clientColumns + ` FROM clients WHERE accountant_id = $1 ORDER BY company_name ASC`

	rows, err := q.Query(ctx, query, accountantID)
	if err != nil {
		return nil, fmt.Errorf("failed to query clients: %w", err)
	}
	defer rows.Close()

	return scanClients(rows)
}

// List implements client.ClientRepository.
func (r *clientRepositoryImpl) List(ctx context.Context) ([]client.Client, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + clientColumns + ` FROM clients ORDER BY company_name ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query clients: %w", err)
	}
	defer rows.Close()

	return scanClients(rows)
}

// ExistsByEmail implements client.ClientRepository.
func (r *clientRepositoryImpl) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM clients WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check client email: %w", err)
	}
	return exists, nil
}

func scanClients(rows pgx.Rows) ([]client.Client, error) {
	var clients []client.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan client: %w", err)
		}
		clients = append(clients, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read clients: %w", err)
	}
	return clients, nil
}

func scanClient(row pgx.Row) (client.Client, error) {
	var c client.Client
	var center geo.Point

	if err := row.Scan(
		&c.ID,
		&c.AccountantID,
		&c.CompanyName,
		&c.Email,
		&c.Phone,
		&c.Status,
		&c.PasswordHash,
		&center.Latitude,
		&center.Longitude,
		&c.Geofence.RadiusMeters,
		&c.Geofence.Enabled,
		&c.CreatedAt,
		&c.UpdatedAt,
	); err != nil {
		return client.Client{}, err
	}

	c.Geofence.Center = center
	return c, nil
}
