package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/lightone/tce-backend/internal/service"
	"github.com/lightone/tce-backend/internal/upload"
)

const galleryImageDir = "/img/gallery"

type GalleryHandler struct {
	galleryService *service.GalleryService
	uploader       *upload.Uploader
}

func NewGalleryHandler(galleryService *service.GalleryService, uploader *upload.Uploader) *GalleryHandler {
	return &GalleryHandler{
		galleryService: galleryService,
		uploader:       uploader,
	}
}

func (h *GalleryHandler) Create(w http.ResponseWriter, r *http.Request) {
	image, err := saveImageField(r, h.uploader, galleryImageDir)
	if err != nil {
		respondUploadError(w, "handlers.Gallery", err)
		return
	}
	if image == nil {
		Error(w, http.StatusBadRequest, "Image file required")
		return
	}

	galleryImage, err := h.galleryService.Create(r.Context(), *image, r.FormValue("alt"))
	if err != nil {
		respondServiceError(w, "handlers.Gallery", err, "Gallery image not found")
		return
	}

	JSON(w, http.StatusCreated, galleryImage)
}

func (h *GalleryHandler) List(w http.ResponseWriter, r *http.Request) {
	images, err := h.galleryService.GetAll(r.Context())
	if err != nil {
		respondServiceError(w, "handlers.Gallery", err, "Gallery image not found")
		return
	}

	JSONList(w, http.StatusOK, images, envelope{"count": len(images)})
}

func (h *GalleryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		Error(w, http.StatusBadRequest, "Invalid gallery image ID format")
		return
	}

	if err := h.galleryService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, "handlers.Gallery", err, "Gallery image not found")
		return
	}

	JSON(w, http.StatusOK, map[string]string{"message": "Image deleted"})
}
