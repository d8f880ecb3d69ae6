package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pontolabs/ponto-backend-go/internal/domain/auth"
	"github.com/pontolabs/ponto-backend-go/internal/domain/geofence"
	"github.com/pontolabs/ponto-backend-go/internal/domain/timerecord"
	"github.com/pontolabs/ponto-backend-go/internal/handler/http/middleware"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/jwt"
)

type fakePunchService struct {
	recordErr error
	recorded  []timerecord.RecordPunchRequest
}

func (f *fakePunchService) RecordPunch(_ context.Context, req timerecord.RecordPunchRequest) (timerecord.PunchResponse, error) {
	if f.recordErr != nil {
		return timerecord.PunchResponse{}, f.recordErr
	}
	f.recorded = append(f.recorded, req)
	return timerecord.PunchResponse{
		ID:         "punch-1",
		EmployeeID: req.EmployeeID,
		Timestamp:  time.Now().UTC(),
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
		Type:       timerecord.TypePunch,
		Status:     timerecord.StatusValid,
	}, nil
}

func (f *fakePunchService) ListPunches(_ context.Context, _ timerecord.ListPunchesFilter) ([]timerecord.PunchResponse, error) {
	return nil, nil
}

func newPunchRouter(svc timerecord.PunchService, jwtSvc jwt.Service) *chi.Mux {
	handler := NewTimeRecordHandler(svc)

	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(jwtauth.Verifier(jwtSvc.JWTAuth()))
		r.Use(middleware.AuthRequired(jwtSvc.JWTAuth()))
		r.Use(middleware.RequireRole(auth.RoleEmployee))
		r.Post("/punches", handler.Punch)
	})
	return r
}

func employeeToken(t *testing.T, jwtSvc jwt.Service) string {
	t.Helper()
	token, _, err := jwtSvc.GenerateAccessToken("emp-1", auth.RoleEmployee, "client-1")
	require.NoError(t, err)
	return token
}

func TestPunchHandlerSuccess(t *testing.T) {
	jwtSvc := jwt.NewJWTService("test-secret", "1h")
	svc := &fakePunchService{}
	router := newPunchRouter(svc, jwtSvc)

	body, _ := json.Marshal(map[string]interface{}{
		"latitude":  -23.5614,
		"longitude": -46.6559,
	})
	req := httptest.NewRequest(http.MethodPost, "/punches", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+employeeToken(t, jwtSvc))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, svc.recorded, 1)
	assert.Equal(t, "emp-1", svc.recorded[0].EmployeeID, "employee id must come from the token")
}

func TestPunchHandlerGeofenceViolation(t *testing.T) {
	jwtSvc := jwt.NewJWTService("test-secret", "1h")
	svc := &fakePunchService{recordErr: &geofence.ViolationError{DistanceMeters: 250, RadiusMeters: 100}}
	router := newPunchRouter(svc, jwtSvc)

	body, _ := json.Marshal(map[string]interface{}{
		"latitude":  -23.5505,
		"longitude": -46.6333,
	})
	req := httptest.NewRequest(http.MethodPost, "/punches", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+employeeToken(t, jwtSvc))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)

	var resp struct {
		Success bool `json:"success"`
		Error   struct {
			Code    string            `json:"code"`
			Details map[string]string `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "OUTSIDE_ALLOWED_AREA", resp.Error.Code)
	assert.Equal(t, "250", resp.Error.Details["distance_meters"])
	assert.Equal(t, "100", resp.Error.Details["radius_meters"])
}

func TestPunchHandlerMissingToken(t *testing.T) {
	jwtSvc := jwt.NewJWTService("test-secret", "1h")
	router := newPunchRouter(&fakePunchService{}, jwtSvc)

	req := httptest.NewRequest(http.MethodPost, "/punches", bytes.NewReader([]byte(`{}`)))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPunchHandlerWrongRole(t *testing.T) {
	jwtSvc := jwt.NewJWTService("test-secret", "1h")
	router := newPunchRouter(&fakePunchService{}, jwtSvc)

	token, _, err := jwtSvc.GenerateAccessToken("client-1", auth.RoleClient, "")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/punches", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
