package utils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	apperrors "darzi/internal/errors"
)

const maxBodyBytes = 1 << 20

// ReadJSON decodes a single JSON value of at most 1MB from the request body.
func ReadJSON(w http.ResponseWriter, r *http.Request, data any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(data); err != nil {
		return err
	}

	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errors.New("body must only have a single JSON value")
	}
	return nil
}

func WriteJSON(w http.ResponseWriter, status int, data any) error {
	out, err := json.Marshal(data)
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(out)
	return err
}

type ErrorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	TraceID string                       `json:"traceId,omitempty"`
	Details []apperrors.ValidationDetail `json:"details,omitempty"`
}

func WriteError(w http.ResponseWriter, status int, code, message, traceID string, details ...apperrors.ValidationDetail) {
	_ = WriteJSON(w, status, ErrorResponse{
		Error:   code,
		Message: message,
		TraceID: traceID,
		Details: details,
	})
}
