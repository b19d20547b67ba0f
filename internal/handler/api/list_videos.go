package api

import (
	"log"
	"net/http"

	"github.com/tgoubier/moments-ms-go/internal/model"
	"github.com/tgoubier/moments-ms-go/internal/port"
)

type ListVideosResponse struct {
	Videos []model.VideoWithCount `json:"videos"`
	Count  int                    `json:"count"`
}

func ListVideosHandler(svc port.VideoLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		videos, err := svc.ListVideos(r.Context())
		if err != nil {
			WriteDomainError(w, "could not list videos", err)
			return
		}
		if videos == nil {
			videos = []model.VideoWithCount{}
		}

		RespondJSON(w, http.StatusOK, ListVideosResponse{Videos: videos, Count: len(videos)})
		log.Printf("✅  Successfully listed %d videos", len(videos))
	}
}
