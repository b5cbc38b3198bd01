package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

// ResponseEnvelope wraps successful API responses.
type ResponseEnvelope struct {
	Data interface{}  `json:"data"`
	Meta ResponseMeta `json:"meta"`
}

// ResponseMeta carries per-response metadata.
type ResponseMeta struct {
	RequestID string    `json:"request_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// ErrorBody is the error payload of ErrorResponse.
type ErrorBody struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// ErrorResponse wraps API errors.
type ErrorResponse struct {
	Error ErrorBody    `json:"error"`
	Meta  ResponseMeta `json:"meta"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("response encoding failed", "error", err)
	}
}

func writeData(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	writeJSON(w, status, ResponseEnvelope{
		Data: data,
		Meta: ResponseMeta{
			RequestID: requestIDFrom(r.Context()),
			Timestamp: time.Now().UTC(),
		},
	})
}

func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string, details interface{}) {
	writeJSON(w, status, ErrorResponse{
		Error: ErrorBody{
			Code:    code,
			Message: message,
			Details: details,
		},
		Meta: ResponseMeta{
			RequestID: requestIDFrom(r.Context()),
			Timestamp: time.Now().UTC(),
		},
	})
}
