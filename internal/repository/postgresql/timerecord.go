package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/pontolabs/ponto-backend-go/internal/domain/timerecord"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/database"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/geo"
)

type punchRepositoryImpl struct {
	db *database.DB
}

func NewPunchRepository(db *database.DB) timerecord.PunchRepository {
	return &punchRepositoryImpl{db: db}
}

// Create implements timerecord.PunchRepository. Inserts only: stored
// punch events are never updated or deleted.
func (r *punchRepositoryImpl) Create(ctx context.Context, event timerecord.PunchEvent) (timerecord.PunchEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO time_records (id, employee_id, client_id, recorded_at, latitude, longitude, type, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`

	var id string
	err := q.QueryRow(ctx, query,
		event.ID,
		event.EmployeeID,
		event.ClientID,
		event.Timestamp,
		event.Location.Latitude,
		event.Location.Longitude,
		event.Type,
		event.Status,
		event.CreatedAt,
	).Scan(&id)
	if err != nil {
		return timerecord.PunchEvent{}, fmt.Errorf("failed to insert time record: %w", err)
	}

	return event, nil
}

// ListByEmployee implements timerecord.PunchRepository.
func (r *punchRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string, start, end time.Time) ([]timerecord.PunchEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, client_id, recorded_at, latitude, longitude, type, status, created_at
		FROM time_records
		WHERE employee_id = $1 AND recorded_at >= $2 AND recorded_at < $3
		ORDER BY recorded_at ASC`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query time records: %w", err)
	}
	defer rows.Close()

	return scanPunchEvents(rows)
}

// ListByPeriod implements timerecord.PunchRepository.
func (r *punchRepositoryImpl) ListByPeriod(ctx context.Context, clientID string, start, end time.Time) ([]timerecord.PunchEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, client_id, recorded_at, latitude, longitude, type, status, created_at
		FROM time_records
		WHERE client_id = $1 AND recorded_at >= $2 AND recorded_at < $3
		ORDER BY recorded_at ASC`

	rows, err := q.Query(ctx, query, clientID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query time records: %w", err)
	}
	defer rows.Close()

	return scanPunchEvents(rows)
}

func scanPunchEvents(rows pgx.Rows) ([]timerecord.PunchEvent, error) {
	var events []timerecord.PunchEvent
	for rows.Next() {
		var event timerecord.PunchEvent
		var location geo.Point
		if err := rows.Scan(
			&event.ID,
			&event.EmployeeID,
			&event.ClientID,
			&event.Timestamp,
			&location.Latitude,
			&location.Longitude,
			&event.Type,
			&event.Status,
			&event.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan time record: %w", err)
		}
		event.Location = location
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read time records: %w", err)
	}
	return events, nil
}
