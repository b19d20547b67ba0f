package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tgoubier/moments-ms-go/internal/logger"
	"github.com/tgoubier/moments-ms-go/internal/port"
	"github.com/tgoubier/moments-ms-go/internal/similarity"
	"github.com/tgoubier/moments-ms-go/internal/usecase/search"
	"github.com/tgoubier/moments-ms-go/internal/validation"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func WriteError(w http.ResponseWriter, status int, msg string, err error) {
	ctx := context.Background()
	if err != nil {
		logger.Errorf(ctx, "❌  %s: %v", msg, err)
	} else {
		logger.Error(ctx, "❌  "+msg)
	}
	w.Header().Set("Cache-Control", "no-store, max-age=0, must-revalidate")
	RespondJSON(w, status, ErrorResponse{Error: msg})
}

func RespondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Errorf(context.Background(), "❌  Failed to encode JSON response: %v", err)
	}
}

func RespondRawJSON(w http.ResponseWriter, status int, raw []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(raw); err != nil {
		logger.Errorf(context.Background(), "❌  Failed to write JSON payload: %v", err)
	}
}

// WriteDomainError maps a use-case error onto the wire contract:
// invalid input 400, unusable vectors 422, missing records 404,
// store connectivity 503, anything else 500.
func WriteDomainError(w http.ResponseWriter, msg string, err error) {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		errsJSON, jerr := validation.ErrorsToJson(verr)
		if jerr != nil {
			WriteError(w, http.StatusInternalServerError, "failed to encode validation errors", jerr)
			return
		}
		w.Header().Set("Cache-Control", "no-store, max-age=0, must-revalidate")
		RespondRawJSON(w, http.StatusBadRequest, []byte(errsJSON))
		logger.Errorf(context.Background(), "❌  Validation failed: %s", errsJSON)
	case errors.Is(err, similarity.ErrDimensionMismatch), errors.Is(err, similarity.ErrDegenerateVector):
		WriteError(w, http.StatusUnprocessableEntity, err.Error(), nil)
	case errors.Is(err, port.ErrVideoNotFound), errors.Is(err, port.ErrMomentNotFound),
		errors.Is(err, search.ErrNoKeyframeImage):
		WriteError(w, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, port.ErrStoreUnavailable):
		WriteError(w, http.StatusServiceUnavailable, "store unavailable", err)
	default:
		WriteError(w, http.StatusInternalServerError, msg, err)
	}
}
