package api

import (
	"log"
	"net/http"

	"github.com/tgoubier/moments-ms-go/internal/port"
)

func GetStatsHandler(renderer port.HTTPRenderer, svc port.StatsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, etag, err := renderer.RenderStats(r.Context(), svc)
		if err != nil {
			WriteDomainError(w, "could not get store statistics", err)
			return
		}

		w.Header().Set("ETag", etag)
		w.Header().Set("Cache-Control", "public, max-age=300")
		if match := r.Header.Get("If-None-Match"); match == etag {
			w.WriteHeader(http.StatusNotModified)
			log.Printf("✅  Returning cached stats")
			return
		}

		RespondRawJSON(w, http.StatusOK, raw)
		log.Printf("✅  Successfully returned store statistics")
	}
}
