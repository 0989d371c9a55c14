package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/lightone/tce-backend/internal/api/middleware"
	"github.com/lightone/tce-backend/internal/service"
	"github.com/lightone/tce-backend/internal/upload"
)

const blogImageDir = "/img/blog"

type BlogHandler struct {
	blogService *service.BlogService
	uploader    *upload.Uploader
}

func NewBlogHandler(blogService *service.BlogService, uploader *upload.Uploader) *BlogHandler {
	return &BlogHandler{
		blogService: blogService,
		uploader:    uploader,
	}
}

func (h *BlogHandler) Create(w http.ResponseWriter, r *http.Request) {
	authorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		Error(w, http.StatusUnauthorized, "Invalid token.")
		return
	}

	image, err := saveImageField(r, h.uploader, blogImageDir)
	if err != nil {
		respondUploadError(w, "handlers.Blog", err)
		return
	}
	if image == nil {
		Error(w, http.StatusBadRequest, "Image file is required")
		return
	}

	post, err := h.blogService.Create(r.Context(), service.CreatePostInput{
		Title:    r.FormValue("title"),
		Content:  r.FormValue("content"),
		Image:    *image,
		AuthorID: authorID,
	})
	if err != nil {
		respondServiceError(w, "handlers.Blog", err, "Blog post not found")
		return
	}

	JSON(w, http.StatusCreated, post)
}

func (h *BlogHandler) List(w http.ResponseWriter, r *http.Request) {
	posts, err := h.blogService.GetAll(r.Context())
	if err != nil {
		respondServiceError(w, "handlers.Blog", err, "Blog post not found")
		return
	}

	JSONList(w, http.StatusOK, posts, envelope{"count": len(posts)})
}

func (h *BlogHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		Error(w, http.StatusBadRequest, "Invalid blog post ID format")
		return
	}

	post, err := h.blogService.Get(r.Context(), id)
	if err != nil {
		respondServiceError(w, "handlers.Blog", err, "Blog post not found")
		return
	}

	JSON(w, http.StatusOK, post)
}

func (h *BlogHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		Error(w, http.StatusBadRequest, "Invalid blog post ID format")
		return
	}

	image, err := saveImageField(r, h.uploader, blogImageDir)
	if err != nil {
		respondUploadError(w, "handlers.Blog", err)
		return
	}

	post, err := h.blogService.Update(r.Context(), id, service.UpdatePostInput{
		Title:   r.FormValue("title"),
		Content: r.FormValue("content"),
		Image:   image,
	})
	if err != nil {
		respondServiceError(w, "handlers.Blog", err, "Blog post not found")
		return
	}

	JSON(w, http.StatusOK, post)
}

func (h *BlogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		Error(w, http.StatusBadRequest, "Invalid blog post ID format")
		return
	}

	if err := h.blogService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, "handlers.Blog", err, "Blog post not found")
		return
	}

	JSON(w, http.StatusOK, map[string]string{"message": "Blog post deleted successfully"})
}
