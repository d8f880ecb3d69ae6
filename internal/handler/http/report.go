package http

import (
	"encoding/json"
	"net/http"

	"github.com/pontolabs/ponto-backend-go/internal/domain/auth"
	"github.com/pontolabs/ponto-backend-go/internal/domain/report"
	"github.com/pontolabs/ponto-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

// Generate implements ReportHandler.
func (h *ReportHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	var req report.GenerateReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := scopeReportRequest(r, &req); err != nil {
		response.HandleError(w, err)
		return
	}

	doc, err := h.reportService.Generate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, doc)
}

// Export implements ReportHandler. The filter arrives in the body and
// the format in the query string, so the same payload drives both the
// on-screen report and its downloads.
func (h *ReportHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "pdf"
	}

	var req report.GenerateReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := scopeReportRequest(r, &req); err != nil {
		response.HandleError(w, err)
		return
	}

	file, err := h.reportService.Export(r.Context(), req, format)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.File(w, file.Content, file.ContentType, file.Filename)
}

// scopeReportRequest fills the request's client from the caller's
// token. Employees only ever report on themselves, whatever employee
// filter the request carries.
func scopeReportRequest(r *http.Request, req *report.GenerateReportRequest) error {
	clientID, err := resolveClientID(r)
	if err != nil {
		return err
	}
	req.ClientID = clientID

	userID, role, _, err := tokenClaims(r)
	if err != nil {
		return err
	}
	if role == auth.RoleEmployee {
		req.EmployeeIDs = []string{userID}
	}
	return nil
}
