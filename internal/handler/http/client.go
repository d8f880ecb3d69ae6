package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pontolabs/ponto-backend-go/internal/domain/client"
	"github.com/pontolabs/ponto-backend-go/internal/handler/http/response"
)

type ClientHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type ClientHandlerImpl struct {
	clientService client.ClientService
}

func NewClientHandler(clientService client.ClientService) ClientHandler {
	return &ClientHandlerImpl{clientService: clientService}
}

// Create implements ClientHandler.
func (h *ClientHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	accountantID, _, _, err := tokenClaims(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req client.CreateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.AccountantID = accountantID

	resp, err := h.clientService.CreateClient(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Client created successfully", resp)
}

// GetByID implements ClientHandler.
func (h *ClientHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	resp, err := h.clientService.GetClient(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Update implements ClientHandler.
func (h *ClientHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req client.UpdateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	resp, err := h.clientService.UpdateClient(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Client updated successfully", resp)
}

// Delete implements ClientHandler.
func (h *ClientHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.clientService.DeleteClient(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Client deleted successfully", nil)
}

// List implements ClientHandler.
func (h *ClientHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	accountantID, _, _, err := tokenClaims(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	clients, err := h.clientService.ListClients(r.Context(), accountantID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, clients)
}
