package home

import (
	"net/http"

	"go.uber.org/zap"
)

// DefaultMessage is the liveness text served at / when none is configured.
const DefaultMessage = "cheaking"

// Handler serves the plain-text liveness line.
type Handler struct {
	Message string
	Log     *zap.Logger
}

func NewHandler(message string, logger *zap.Logger) *Handler {
	if message == "" {
		message = DefaultMessage
	}
	return &Handler{
		Message: message,
		Log:     logger,
	}
}

// ServeRoot handles GET /.
func (h *Handler) ServeRoot(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(h.Message))
}
