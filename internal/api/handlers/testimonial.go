package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/lightone/tce-backend/internal/service"
)

type TestimonialHandler struct {
	testimonialService *service.TestimonialService
}

func NewTestimonialHandler(testimonialService *service.TestimonialService) *TestimonialHandler {
	return &TestimonialHandler{testimonialService: testimonialService}
}

type CreateTestimonialRequest struct {
	FullName string `json:"fullname"`
	Content  string `json:"content"`
	Country  string `json:"country"`
}

func (h *TestimonialHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateTestimonialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	testimonial, err := h.testimonialService.Create(r.Context(), service.CreateTestimonialInput{
		FullName: req.FullName,
		Content:  req.Content,
		Country:  req.Country,
	})
	if err != nil {
		respondServiceError(w, "handlers.Testimonial", err, "Testimonial not found")
		return
	}

	JSON(w, http.StatusCreated, testimonial)
}

func (h *TestimonialHandler) List(w http.ResponseWriter, r *http.Request) {
	testimonials, err := h.testimonialService.GetAll(r.Context())
	if err != nil {
		respondServiceError(w, "handlers.Testimonial", err, "Testimonial not found")
		return
	}

	JSONList(w, http.StatusOK, testimonials, envelope{"count": len(testimonials)})
}

func (h *TestimonialHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		Error(w, http.StatusBadRequest, "Invalid testimonial ID format")
		return
	}

	if err := h.testimonialService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, "handlers.Testimonial", err, "Testimonial not found")
		return
	}

	JSON(w, http.StatusOK, map[string]string{"message": "Testimonial deleted successfully"})
}
