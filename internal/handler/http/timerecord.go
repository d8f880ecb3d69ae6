package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pontolabs/ponto-backend-go/internal/domain/timerecord"
	"github.com/pontolabs/ponto-backend-go/internal/handler/http/response"
)

type TimeRecordHandler interface {
	Punch(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListForEmployee(w http.ResponseWriter, r *http.Request)
}

type TimeRecordHandlerImpl struct {
	punchService timerecord.PunchService
}

func NewTimeRecordHandler(punchService timerecord.PunchService) TimeRecordHandler {
	return &TimeRecordHandlerImpl{punchService: punchService}
}

// Punch implements TimeRecordHandler.
func (h *TimeRecordHandlerImpl) Punch(w http.ResponseWriter, r *http.Request) {
	userID, _, _, err := tokenClaims(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req timerecord.RecordPunchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = userID

	resp, err := h.punchService.RecordPunch(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Punch recorded successfully", resp)
}

// List implements TimeRecordHandler.
func (h *TimeRecordHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	userID, _, _, err := tokenClaims(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	start, end, err := parsePeriod(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	punches, err := h.punchService.ListPunches(r.Context(), timerecord.ListPunchesFilter{
		EmployeeID: userID,
		Start:      start,
		End:        end,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, punches)
}

// ListForEmployee implements TimeRecordHandler. Management-side view
// of a single employee's punches.
func (h *TimeRecordHandlerImpl) ListForEmployee(w http.ResponseWriter, r *http.Request) {
	start, end, err := parsePeriod(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	punches, err := h.punchService.ListPunches(r.Context(), timerecord.ListPunchesFilter{
		EmployeeID: chi.URLParam(r, "id"),
		Start:      start,
		End:        end,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, punches)
}

// parsePeriod reads start/end query dates, defaulting to the current
// month. End is returned exclusive (start of the following day).
func parsePeriod(r *http.Request) (time.Time, time.Time, error) {
	now := time.Now().UTC()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	if raw := r.URL.Query().Get("start"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		start = parsed
	}
	if raw := r.URL.Query().Get("end"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		end = parsed.AddDate(0, 0, 1)
	}
	return start, end, nil
}
