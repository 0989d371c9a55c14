package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/lightone/tce-backend/internal/domain"
	"github.com/lightone/tce-backend/internal/upload"
	"gorm.io/gorm"
)

// respondServiceError maps service-layer failures onto the error taxonomy.
// Unexpected errors are logged with context but answered generically.
func respondServiceError(w http.ResponseWriter, component string, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		Error(w, http.StatusNotFound, notFoundMsg)
	case errors.Is(err, domain.ErrMissingFields),
		errors.Is(err, domain.ErrInvalidPrice),
		errors.Is(err, domain.ErrInvalidLink),
		errors.Is(err, domain.ErrShortFullName),
		errors.Is(err, domain.ErrShortContent),
		errors.Is(err, domain.ErrNoUpdateFields):
		Error(w, http.StatusBadRequest, err.Error())
	default:
		log.Printf("ERROR [%s] %v", component, err)
		Error(w, http.StatusInternalServerError, "An internal server error occurred. Please try again later.")
	}
}

// respondUploadError maps upload validator failures: bad type is a 400,
// oversize is a 413.
func respondUploadError(w http.ResponseWriter, component string, err error) {
	switch {
	case errors.Is(err, upload.ErrUnsupportedType):
		Error(w, http.StatusBadRequest, "File type not allowed. Allowed types: image/jpeg, image/png, image/gif, image/webp")
	case errors.Is(err, upload.ErrTooLarge):
		Error(w, http.StatusRequestEntityTooLarge, "File exceeds the maximum allowed size")
	default:
		log.Printf("ERROR [%s] upload failed: %v", component, err)
		Error(w, http.StatusInternalServerError, "Failed to store uploaded file")
	}
}
