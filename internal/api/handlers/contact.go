package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/lightone/tce-backend/internal/service"
)

type ContactHandler struct {
	contactService *service.ContactService
}

func NewContactHandler(contactService *service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

type CreateContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Tour    string `json:"tour"`
	Message string `json:"message"`
}

func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	message, err := h.contactService.Create(r.Context(), service.CreateContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Tour:    req.Tour,
		Message: req.Message,
	})
	if err != nil {
		respondServiceError(w, "handlers.Contact", err, "Contact message not found")
		return
	}

	JSON(w, http.StatusCreated, message)
}

func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	messages, err := h.contactService.GetAll(r.Context())
	if err != nil {
		respondServiceError(w, "handlers.Contact", err, "Contact message not found")
		return
	}

	JSONList(w, http.StatusOK, messages, envelope{"count": len(messages)})
}

func (h *ContactHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		Error(w, http.StatusBadRequest, "Invalid contact message ID format")
		return
	}

	message, err := h.contactService.Get(r.Context(), id)
	if err != nil {
		respondServiceError(w, "handlers.Contact", err, "Contact message not found")
		return
	}

	JSON(w, http.StatusOK, message)
}

func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		Error(w, http.StatusBadRequest, "Invalid contact message ID format")
		return
	}

	if err := h.contactService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, "handlers.Contact", err, "Contact message not found")
		return
	}

	JSON(w, http.StatusOK, map[string]string{"message": "Contact message deleted successfully"})
}
