package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-wallet-profiles/internal/logger"
	"github.com/sbilibin2017/gw-wallet-profiles/internal/services"
)

// ErrorResponse represents an error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Profile not found
	Error string `json:"error"`
}

const (
	msgInvalidBody    = "Invalid request body"
	msgInternalServer = "Internal server error"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErrorMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// writeError maps a service error to its status code. Internal errors are
// logged and replaced with a generic message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch services.KindOf(err) {
	case services.KindValidation:
		writeErrorMessage(w, http.StatusBadRequest, err.Error())
	case services.KindConflict:
		writeErrorMessage(w, http.StatusConflict, err.Error())
	case services.KindNotFound:
		writeErrorMessage(w, http.StatusNotFound, err.Error())
	default:
		logger.Log.Errorw("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		writeErrorMessage(w, http.StatusInternalServerError, msgInternalServer)
	}
}
