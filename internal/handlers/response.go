package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/Lixing-Zhang/storefront-api/internal/apperror"
)

// ErrorResponse is the body of every non-2xx JSON response
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// Responder writes JSON responses and maps service errors to status codes.
// With Debug set, the underlying error text is echoed in the error field.
type Responder struct {
	Log   *slog.Logger
	Debug bool
}

// JSON writes data with the given status
func (rs Responder) JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		rs.Log.Error("failed to encode JSON response", "error", err)
	}
}

// Error writes a failure envelope with the given status and message
func (rs Responder) Error(w http.ResponseWriter, status int, message string) {
	rs.JSON(w, status, ErrorResponse{Message: message})
}

// Fail maps err to a status through its apperror kind. Validation and
// not-found messages are shown to the caller; anything else becomes fallback.
func (rs Responder) Fail(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	kind := apperror.KindOf(err)
	status := apperror.HTTPStatus(kind)

	if status >= http.StatusInternalServerError {
		rs.Log.Error(fallback, "error", err, "path", r.URL.Path)
	} else {
		rs.Log.Info("request rejected", "kind", kind.String(), "error", err, "path", r.URL.Path)
	}

	body := ErrorResponse{Message: apperror.MessageOf(err, fallback)}
	if rs.Debug && status >= http.StatusInternalServerError {
		body.Error = err.Error()
	}
	rs.JSON(w, status, body)
}
