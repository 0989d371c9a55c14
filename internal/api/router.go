package api

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/lightone/tce-backend/internal/api/handlers"
	"github.com/lightone/tce-backend/internal/api/middleware"
	"github.com/lightone/tce-backend/internal/config"
	"github.com/lightone/tce-backend/internal/service"
	"github.com/lightone/tce-backend/internal/upload"
	"github.com/lightone/tce-backend/internal/ws"
)

func NewRouter(services *service.Services, hub *ws.Hub, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.CORS)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Each image-bearing resource uploads into its own subdirectory.
	tourUploader := upload.NewUploader(filepath.Join(cfg.UploadDir, "tours"), cfg.MaxUploadBytes, nil)
	blogUploader := upload.NewUploader(filepath.Join(cfg.UploadDir, "blog"), cfg.MaxUploadBytes, nil)
	galleryUploader := upload.NewUploader(filepath.Join(cfg.UploadDir, "gallery"), cfg.MaxUploadBytes, nil)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth)
	tourHandler := handlers.NewTourHandler(services.Tour, tourUploader)
	blogHandler := handlers.NewBlogHandler(services.Blog, blogUploader)
	galleryHandler := handlers.NewGalleryHandler(services.Gallery, galleryUploader)
	testimonialHandler := handlers.NewTestimonialHandler(services.Testimonial)
	contactHandler := handlers.NewContactHandler(services.Contact)
	analyticsHandler := handlers.NewAnalyticsHandler(services.Analytics)
	liveHandler := handlers.NewLiveHandler(hub, services.Auth)

	auth := middleware.Auth(services.Auth)

	r.Route("/users", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth)
			r.Get("/profile", authHandler.Profile)

			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/admin/dashboard", authHandler.AdminDashboard)
			})
		})
	})

	r.Route("/tours", func(r chi.Router) {
		r.Get("/", tourHandler.List)
		r.Get("/{id}", tourHandler.Get)

		r.Group(func(r chi.Router) {
			r.Use(auth, middleware.AdminOnly)
			r.Post("/", tourHandler.Create)
			r.Put("/{id}", tourHandler.Update)
			r.Delete("/{id}", tourHandler.Delete)
		})
	})

	r.Route("/blog", func(r chi.Router) {
		r.Get("/", blogHandler.List)
		r.Get("/{id}", blogHandler.Get)

		r.Group(func(r chi.Router) {
			r.Use(auth, middleware.AdminOnly)
			r.Post("/", blogHandler.Create)
			r.Put("/{id}", blogHandler.Update)
			r.Delete("/{id}", blogHandler.Delete)
		})
	})

	r.Route("/gallery", func(r chi.Router) {
		r.Get("/", galleryHandler.List)

		r.Group(func(r chi.Router) {
			r.Use(auth, middleware.AdminOnly)
			r.Post("/", galleryHandler.Create)
			r.Delete("/{id}", galleryHandler.Delete)
		})
	})

	r.Route("/testimonials", func(r chi.Router) {
		r.Get("/", testimonialHandler.List)
		r.Post("/", testimonialHandler.Create)

		r.Group(func(r chi.Router) {
			r.Use(auth, middleware.AdminOnly)
			r.Delete("/{id}", testimonialHandler.Delete)
		})
	})

	r.Route("/contactUs", func(r chi.Router) {
		r.Post("/", contactHandler.Create)

		r.Group(func(r chi.Router) {
			r.Use(auth, middleware.AdminOnly)
			r.Get("/", contactHandler.List)
			r.Get("/{id}", contactHandler.Get)
			r.Delete("/{id}", contactHandler.Delete)
		})
	})

	r.Route("/analytics", func(r chi.Router) {
		r.Post("/track", analyticsHandler.Track)
		r.Get("/live", liveHandler.Handle) // token via query param

		r.Group(func(r chi.Router) {
			r.Use(auth, middleware.AdminOnly)
			r.Get("/", analyticsHandler.Stats)
		})
	})

	// Stored assets are public at /img/...
	r.Handle("/img/*", http.StripPrefix("/img/", http.FileServer(http.Dir(cfg.UploadDir))))

	// Frontend build with SPA fallback
	if cfg.FrontendDir != "" {
		r.NotFound(spaFallback(cfg.FrontendDir))
	}

	return r
}

// spaFallback serves static frontend files and falls back to index.html so
// client-side routes resolve on refresh.
func spaFallback(dir string) http.HandlerFunc {
	fileServer := http.FileServer(http.Dir(dir))

	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.NotFound(w, r)
			return
		}

		path := filepath.Join(dir, filepath.Clean("/"+r.URL.Path))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			fileServer.ServeHTTP(w, r)
			return
		}

		http.ServeFile(w, r, filepath.Join(dir, "index.html"))
	}
}
