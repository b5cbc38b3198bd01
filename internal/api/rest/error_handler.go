package rest

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/echub/compliance-hub-backend/internal/domain/errors"
	"github.com/echub/compliance-hub-backend/internal/infrastructure/repository"
)

// respondError maps an error to the right HTTP status and error body.
// Internal details never leak to the client; they are logged instead.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		status := statusForKind(appErr.Kind)
		if status >= http.StatusInternalServerError {
			slog.ErrorContext(r.Context(), "request failed",
				"code", appErr.Code,
				"error", appErr.Error(),
				"path", r.URL.Path)
			writeError(w, r, status, appErr.Code, "an internal error occurred", nil)
			return
		}
		writeError(w, r, status, appErr.Code, appErr.Message, nil)
		return
	}

	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, r, http.StatusNotFound, "NOT_FOUND", "resource not found", nil)
		return
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		details := make([]map[string]string, 0, len(validationErrs))
		for _, fe := range validationErrs {
			details = append(details, map[string]string{
				"field": fe.Field(),
				"rule":  fe.Tag(),
			})
		}
		writeError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "request validation failed", details)
		return
	}

	if errors.Is(err, errBodyTooLarge) {
		writeError(w, r, http.StatusRequestEntityTooLarge, "BODY_TOO_LARGE", "request body exceeds the size limit", nil)
		return
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		writeError(w, r, http.StatusBadRequest, "INVALID_JSON", "request body is not valid JSON", nil)
		return
	}

	if ctxErr := r.Context().Err(); ctxErr != nil && errors.Is(err, ctxErr) {
		writeError(w, r, http.StatusRequestTimeout, "REQUEST_TIMEOUT", "request cancelled or timed out", nil)
		return
	}

	slog.ErrorContext(r.Context(), "unhandled error",
		"error", err.Error(),
		"path", r.URL.Path)
	writeError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred", nil)
}

func statusForKind(kind apperrors.Kind) int {
	switch kind {
	case apperrors.KindValidation:
		return http.StatusBadRequest
	case apperrors.KindNotFound:
		return http.StatusNotFound
	case apperrors.KindUnauthorized:
		return http.StatusUnauthorized
	case apperrors.KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

var errBodyTooLarge = errors.New("request body too large")

const maxBodyBytes = 1 << 20 // 1 MiB

// decodeJSON reads and decodes a JSON request body with a size cap.
func decodeJSON(r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(nil, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return errBodyTooLarge
		}
		return err
	}
	return nil
}
