package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Every response body carries a success flag.

type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type listResponse struct {
	Success bool `json:"success"`
	Count   int  `json:"count"`
	Data    any  `json:"data"`
}

type dataResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data"`
}

const (
	msgInternalError = "Internal Server Error"
	msgRouteNotFound = "Route not found"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Warn("failed to write response", "error", err)
	}
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, messageResponse{Success: status < http.StatusBadRequest, Message: msg})
}

// writeInternalError logs err with the request id and hides it from the client.
func writeInternalError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	slog.Error(msg, "error", err, "request_id", RequestIDFromContext(r.Context()), "path", r.URL.Path)
	writeMessage(w, http.StatusInternalServerError, msgInternalError)
}

// NotFound handles every path no route claims.
func NotFound(w http.ResponseWriter, r *http.Request) {
	writeMessage(w, http.StatusNotFound, msgRouteNotFound)
}
