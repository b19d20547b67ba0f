package api

import (
	"log"
	"net/http"

	"github.com/tgoubier/moments-ms-go/internal/api_context"
	"github.com/tgoubier/moments-ms-go/internal/port"
)

func GetVideoHandler(svc port.VideoGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := api_context.VideoIDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "video ID is required", nil)
			return
		}

		out, err := svc.GetVideoDetails(r.Context(), id)
		if err != nil {
			WriteDomainError(w, "could not get video details", err)
			return
		}

		RespondJSON(w, http.StatusOK, out)
		log.Printf("✅  Successfully returned details for video #%s", id)
	}
}
