package timerecord

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pontolabs/ponto-backend-go/internal/domain/client"
	"github.com/pontolabs/ponto-backend-go/internal/domain/employee"
	"github.com/pontolabs/ponto-backend-go/internal/domain/geofence"
	"github.com/pontolabs/ponto-backend-go/internal/domain/timerecord"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/geo"
)

type PunchServiceImpl struct {
	timerecord.PunchRepository
	employee.EmployeeRepository
	client.ClientRepository
}

func NewPunchService(
	punchRepo timerecord.PunchRepository,
	employeeRepo employee.EmployeeRepository,
	clientRepo client.ClientRepository,
) *PunchServiceImpl {
	return &PunchServiceImpl{
		PunchRepository:    punchRepo,
		EmployeeRepository: employeeRepo,
		ClientRepository:   clientRepo,
	}
}

// RecordPunch implements timerecord.PunchService.
func (s *PunchServiceImpl) RecordPunch(ctx context.Context, req timerecord.RecordPunchRequest) (timerecord.PunchResponse, error) {
	if err := req.Validate(); err != nil {
		return timerecord.PunchResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return timerecord.PunchResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	area, err := s.effectiveArea(ctx, emp)
	if err != nil {
		return timerecord.PunchResponse{}, err
	}

	location := geo.Point{Latitude: req.Latitude, Longitude: req.Longitude}
	if !geofence.Contains(location, area) {
		return timerecord.PunchResponse{}, &geofence.ViolationError{
			DistanceMeters: geo.DistanceMeters(location, area.Center),
			RadiusMeters:   area.RadiusMeters,
		}
	}

	punchType := req.Type
	if punchType == "" {
		punchType = timerecord.TypePunch
	}

	now := time.Now().UTC()
	event := timerecord.PunchEvent{
		ID:         uuid.NewString(),
		EmployeeID: emp.ID,
		ClientID:   emp.ClientID,
		Timestamp:  now,
		Location:   location,
		Type:       punchType,
		Status:     timerecord.StatusValid,
		CreatedAt:  now,
	}

	stored, err := s.PunchRepository.Create(ctx, event)
	if err != nil {
		return timerecord.PunchResponse{}, errors.Join(timerecord.ErrStoreUnavailable, err)
	}

	return timerecord.ToPunchResponse(stored), nil
}

// effectiveArea resolves the allowed area for a punch. An enabled
// employee-level geofence overrides the client company's area.
func (s *PunchServiceImpl) effectiveArea(ctx context.Context, emp employee.Employee) (geofence.Area, error) {
	if emp.Geofence != nil && emp.Geofence.Enabled {
		return *emp.Geofence, nil
	}

	c, err := s.ClientRepository.GetByID(ctx, emp.ClientID)
	if err != nil {
		return geofence.Area{}, fmt.Errorf("failed to get client: %w", err)
	}
	return c.Geofence, nil
}

// ListPunches implements timerecord.PunchService.
func (s *PunchServiceImpl) ListPunches(ctx context.Context, filter timerecord.ListPunchesFilter) ([]timerecord.PunchResponse, error) {
	events, err := s.PunchRepository.ListByEmployee(ctx, filter.EmployeeID, filter.Start, filter.End)
	if err != nil {
		return nil, errors.Join(timerecord.ErrStoreUnavailable, err)
	}

	responses := make([]timerecord.PunchResponse, 0, len(events))
	for _, event := range events {
		responses = append(responses, timerecord.ToPunchResponse(event))
	}
	return responses, nil
}
