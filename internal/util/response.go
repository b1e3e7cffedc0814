package util

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"
)

// WithBodyAndStatus writes body as JSON with the given status code. A nil body
// writes the status only.
func WithBodyAndStatus(body interface{}, httpStatus int, w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatus)
	if body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.WithError(err).Error("Failed to write response body")
	}
}

// MaxRequestBytes caps the JSON request bodies read by handlers.
const MaxRequestBytes = 64 << 10

// LimitBody caps the request body at MaxRequestBytes. Reads past the cap fail.
func LimitBody(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxRequestBytes)
}

// ErrorResponse is the body returned for failed requests.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func WithError(message string, httpStatus int, w http.ResponseWriter) {
	WithBodyAndStatus(ErrorResponse{Status: httpStatus, Message: message}, httpStatus, w)
}
