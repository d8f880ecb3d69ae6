package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pontolabs/ponto-backend-go/internal/domain/accountant"
	"github.com/pontolabs/ponto-backend-go/internal/handler/http/response"
)

type AccountantHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type AccountantHandlerImpl struct {
	accountantService accountant.AccountantService
}

func NewAccountantHandler(accountantService accountant.AccountantService) AccountantHandler {
	return &AccountantHandlerImpl{accountantService: accountantService}
}

// Create implements AccountantHandler.
func (h *AccountantHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req accountant.CreateAccountantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.accountantService.CreateAccountant(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Accountant created successfully", resp)
}

// GetByID implements AccountantHandler.
func (h *AccountantHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	resp, err := h.accountantService.GetAccountant(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Update implements AccountantHandler.
func (h *AccountantHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req accountant.UpdateAccountantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	resp, err := h.accountantService.UpdateAccountant(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Accountant updated successfully", resp)
}

// Delete implements AccountantHandler.
func (h *AccountantHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.accountantService.DeleteAccountant(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Accountant deleted successfully", nil)
}

// List implements AccountantHandler.
func (h *AccountantHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	accountants, err := h.accountantService.ListAccountants(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, accountants)
}
