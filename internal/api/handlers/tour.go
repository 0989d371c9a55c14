package handlers

import (
	"math"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/lightone/tce-backend/internal/repository"
	"github.com/lightone/tce-backend/internal/service"
	"github.com/lightone/tce-backend/internal/upload"
)

const tourImageDir = "/img/tours"

type TourHandler struct {
	tourService *service.TourService
	uploader    *upload.Uploader
}

func NewTourHandler(tourService *service.TourService, uploader *upload.Uploader) *TourHandler {
	return &TourHandler{
		tourService: tourService,
		uploader:    uploader,
	}
}

func (h *TourHandler) Create(w http.ResponseWriter, r *http.Request) {
	image, err := saveImageField(r, h.uploader, tourImageDir)
	if err != nil {
		respondUploadError(w, "handlers.Tour", err)
		return
	}

	tour, err := h.tourService.Create(r.Context(), service.CreateTourInput{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Price:       r.FormValue("price"),
		Link:        r.FormValue("link"),
		Image:       image,
	})
	if err != nil {
		respondServiceError(w, "handlers.Tour", err, "Tour not found")
		return
	}

	JSON(w, http.StatusCreated, tour)
}

func (h *TourHandler) List(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 1 {
		limit = 20
	}

	params := repository.ListParams{
		Page:   page,
		Limit:  limit,
		Search: r.URL.Query().Get("search"),
	}

	tours, total, err := h.tourService.List(r.Context(), params)
	if err != nil {
		respondServiceError(w, "handlers.Tour", err, "Tour not found")
		return
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	JSONList(w, http.StatusOK, tours, envelope{
		"count":      len(tours),
		"total":      total,
		"page":       page,
		"totalPages": totalPages,
		"hasNext":    page < totalPages,
		"hasPrev":    page > 1,
	})
}

func (h *TourHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		Error(w, http.StatusBadRequest, "Invalid tour ID format")
		return
	}

	tour, err := h.tourService.Get(r.Context(), id)
	if err != nil {
		respondServiceError(w, "handlers.Tour", err, "Tour not found")
		return
	}

	JSON(w, http.StatusOK, tour)
}

func (h *TourHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		Error(w, http.StatusBadRequest, "Invalid tour ID format")
		return
	}

	image, err := saveImageField(r, h.uploader, tourImageDir)
	if err != nil {
		respondUploadError(w, "handlers.Tour", err)
		return
	}

	tour, err := h.tourService.Update(r.Context(), id, service.UpdateTourInput{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Price:       r.FormValue("price"),
		Link:        r.FormValue("link"),
		Image:       image,
	})
	if err != nil {
		respondServiceError(w, "handlers.Tour", err, "Tour not found")
		return
	}

	JSON(w, http.StatusOK, tour)
}

func (h *TourHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		Error(w, http.StatusBadRequest, "Invalid tour ID format")
		return
	}

	if err := h.tourService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, "handlers.Tour", err, "Tour not found")
		return
	}

	JSON(w, http.StatusOK, map[string]string{"message": "Tour deleted successfully"})
}
