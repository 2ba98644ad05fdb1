package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gurusoftware/backend/internal/logging"
	"github.com/gurusoftware/backend/internal/service"
)

const (
	msgInvalidBody      = "Invalid request body"
	msgBodyTooLarge     = "Request body too large"
	msgNotFound         = "Resource not found"
	msgMethodNotAllowed = "Method not allowed"
	msgTooManyRequests  = "Too many requests"
)

// errorResponse is the failure envelope shared by every API route.
type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeFailure(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Success: false, Error: msg})
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, messageResponse{Success: true, Message: msg})
}

// writeServiceError maps a service error kind to its status code. Only
// validation and not-found messages reach the client; everything else is
// logged and answered with a generic message.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	kind := service.KindOf(err)
	switch kind {
	case service.KindValidation:
		writeFailure(w, http.StatusBadRequest, service.PublicMessage(err))
	case service.KindNotFound:
		writeFailure(w, http.StatusNotFound, service.PublicMessage(err))
	default:
		logFromRequest(r).Error("request failed", "kind", kind.String(), "error", err)
		writeFailure(w, http.StatusInternalServerError, service.MsgInternal)
	}
}

// writeDecodeError answers a request whose body could not be read or parsed.
func writeDecodeError(w http.ResponseWriter, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeFailure(w, http.StatusRequestEntityTooLarge, msgBodyTooLarge)
		return
	}
	writeFailure(w, http.StatusBadRequest, msgInvalidBody)
}

func logFromRequest(r *http.Request) *slog.Logger {
	return logging.FromContext(r.Context())
}
