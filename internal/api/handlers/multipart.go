package handlers

import (
	"errors"
	"net/http"
	"path"

	"github.com/lightone/tce-backend/internal/upload"
)

// Form parsing buffer; larger uploads spill to temp files.
const maxFormMemory = 10 << 20

// saveImageField pulls the "image" file out of a multipart form, validates
// and stores it, and returns its public reference (publicDir + stored name).
// Returns (nil, nil) when the request carries no image field, so callers can
// treat the upload as optional.
func saveImageField(r *http.Request, uploader *upload.Uploader, publicDir string) (*string, error) {
	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()

	name, err := uploader.Save(file, header)
	if err != nil {
		return nil, err
	}

	ref := path.Join(publicDir, name)
	return &ref, nil
}
