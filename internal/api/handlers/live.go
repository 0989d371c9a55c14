package handlers

import (
	"log"
	"net/http"

	gws "github.com/gorilla/websocket"
	"github.com/lightone/tce-backend/internal/service"
	"github.com/lightone/tce-backend/internal/ws"
)

var upgrader = gws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // dashboard and API run on different origins in development
	},
}

// LiveHandler streams visit events to admin dashboards over a websocket.
type LiveHandler struct {
	hub         *ws.Hub
	authService *service.AuthService
}

func NewLiveHandler(hub *ws.Hub, authService *service.AuthService) *LiveHandler {
	return &LiveHandler{
		hub:         hub,
		authService: authService,
	}
}

// Handle authenticates via a token query parameter (browsers cannot set
// headers on websocket dials) and requires the admin role.
func (h *LiveHandler) Handle(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		Error(w, http.StatusUnauthorized, "Access denied. No token provided.")
		return
	}

	claims, err := h.authService.VerifyToken(token)
	if err != nil {
		Error(w, http.StatusUnauthorized, "Invalid token.")
		return
	}

	if !claims.IsAdmin {
		Error(w, http.StatusForbidden, "Access denied. Admin rights required.")
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ERROR [handlers.Live] websocket upgrade failed: %v", err)
		return
	}

	client := ws.NewClient(h.hub, conn, claims.UserID)
	h.hub.Register(client)

	go client.WritePump()
	go client.ReadPump()
}
