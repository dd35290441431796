package restapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"pitstop.roadtripper.org/internal/models"
)

const maxRequestBodyBytes = 1 << 20

// sendResponse writes the response envelope as JSON with the HTTP status
// taken from the envelope code.
func (api *RestAPI) sendResponse(w http.ResponseWriter, r *http.Request, response models.ResponseModel) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(response.Code)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		api.Logger.Error("failed to encode response", "path", r.URL.Path, "error", err)
	}
}

func (api *RestAPI) validationErrorResponse(w http.ResponseWriter, r *http.Request, fieldErrors map[string]string) {
	api.sendResponse(w, r, models.NewValidationErrorResponse(fieldErrors, api.Clock))
}

func (api *RestAPI) badRequestResponse(w http.ResponseWriter, r *http.Request, text string) {
	api.sendResponse(w, r, models.NewErrorResponse(http.StatusBadRequest, text, api.Clock))
}

func (api *RestAPI) unauthorizedResponse(w http.ResponseWriter, r *http.Request, text string) {
	api.sendResponse(w, r, models.NewErrorResponse(http.StatusUnauthorized, text, api.Clock))
}

func (api *RestAPI) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.Logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	api.sendResponse(w, r, models.NewErrorResponse(http.StatusInternalServerError, err.Error(), api.Clock))
}

// decodeJSONBody reads and decodes a JSON request body into dst, rejecting
// unknown garbage and oversized payloads with a client-friendly message.
func (api *RestAPI) decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		switch {
		case errors.Is(err, io.EOF):
			return errors.New("request body must not be empty")
		case errors.As(err, &maxBytesErr):
			return fmt.Errorf("request body must not exceed %d bytes", maxBytesErr.Limit)
		default:
			return fmt.Errorf("request body is not valid JSON: %w", err)
		}
	}
	return nil
}
