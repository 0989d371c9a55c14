package handlers

import (
	"net"
	"net/http"
	"strings"

	"github.com/lightone/tce-backend/internal/service"
)

type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
}

func NewAnalyticsHandler(analyticsService *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// Track records a visit from request metadata alone; the frontend sends an
// empty POST on page load.
func (h *AnalyticsHandler) Track(w http.ResponseWriter, r *http.Request) {
	_, err := h.analyticsService.Track(r.Context(), service.TrackInput{
		IP:        clientIP(r),
		UserAgent: r.Header.Get("User-Agent"),
		Country:   r.Header.Get("CF-IPCountry"),
		Referrer:  r.Header.Get("Referer"),
	})
	if err != nil {
		respondServiceError(w, "handlers.Analytics", err, "Analytics error")
		return
	}

	JSON(w, http.StatusOK, map[string]bool{"tracked": true})
}

func (h *AnalyticsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.analyticsService.Stats(r.Context())
	if err != nil {
		respondServiceError(w, "handlers.Analytics", err, "Analytics error")
		return
	}

	JSON(w, http.StatusOK, stats)
}

// clientIP prefers the first hop of X-Forwarded-For when behind a proxy.
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
