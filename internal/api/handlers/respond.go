package handlers

import (
	"encoding/json"
	"net/http"
)

// Every response goes through this boundary so the envelope is uniform:
// {"success":true,"data":...} or {"success":false,"message":"..."}.

type envelope map[string]interface{}

func JSON(w http.ResponseWriter, status int, data interface{}) {
	write(w, status, envelope{"success": true, "data": data})
}

// JSONList is JSON plus list metadata (count, pagination) merged into the envelope.
func JSONList(w http.ResponseWriter, status int, data interface{}, extra envelope) {
	body := envelope{"success": true, "data": data}
	for k, v := range extra {
		body[k] = v
	}
	write(w, status, body)
}

func Error(w http.ResponseWriter, status int, message string) {
	write(w, status, envelope{"success": false, "message": message})
}

func write(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
