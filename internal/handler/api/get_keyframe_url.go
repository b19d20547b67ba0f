package api

import (
	"log"
	"net/http"

	"github.com/tgoubier/moments-ms-go/internal/api_context"
	"github.com/tgoubier/moments-ms-go/internal/port"
)

func GetKeyframeURLHandler(svc port.KeyframeURLGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := api_context.MomentIDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "moment ID is required", nil)
			return
		}

		out, err := svc.GetKeyframeURL(r.Context(), id)
		if err != nil {
			WriteDomainError(w, "could not generate keyframe URL", err)
			return
		}

		RespondJSON(w, http.StatusOK, out)
		log.Printf("✅  Successfully generated keyframe URL for moment #%s", id)
	}
}

// KeyframeStorageDisabledHandler serves the keyframe route when no
// object storage is configured.
func KeyframeStorageDisabledHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, http.StatusNotImplemented, "keyframe storage is not configured", nil)
	}
}
