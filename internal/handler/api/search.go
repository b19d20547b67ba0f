package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/tgoubier/moments-ms-go/internal/port"
)

func SearchKeywordsHandler(svc port.KeywordSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in port.KeywordSearchInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			WriteError(w, http.StatusBadRequest, "invalid request payload", err)
			return
		}

		out, err := svc.SearchKeywords(r.Context(), in)
		if err != nil {
			WriteDomainError(w, "keyword search failed", err)
			return
		}

		RespondJSON(w, http.StatusOK, out)
		log.Printf("✅  Keyword search returned %d moments", out.Count)
	}
}

func SearchObjectsHandler(svc port.ObjectSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in port.ObjectSearchInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			WriteError(w, http.StatusBadRequest, "invalid request payload", err)
			return
		}

		out, err := svc.SearchObjects(r.Context(), in)
		if err != nil {
			WriteDomainError(w, "object search failed", err)
			return
		}

		RespondJSON(w, http.StatusOK, out)
		log.Printf("✅  Object search returned %d moments", out.Count)
	}
}

func SearchTextHandler(svc port.TextSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in port.TextSearchInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			WriteError(w, http.StatusBadRequest, "invalid request payload", err)
			return
		}

		out, err := svc.SearchText(r.Context(), in)
		if err != nil {
			WriteDomainError(w, "text search failed", err)
			return
		}

		RespondJSON(w, http.StatusOK, out)
		log.Printf("✅  Text search returned %d moments", out.Count)
	}
}

func SearchColorHandler(svc port.ColorSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in port.ColorSearchInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			WriteError(w, http.StatusBadRequest, "invalid request payload", err)
			return
		}

		out, err := svc.SearchColor(r.Context(), in)
		if err != nil {
			WriteDomainError(w, "color search failed", err)
			return
		}

		RespondJSON(w, http.StatusOK, out)
		log.Printf("✅  Color search returned %d moments", out.Count)
	}
}

func SearchEmbeddingHandler(svc port.EmbeddingSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in port.EmbeddingSearchInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			WriteError(w, http.StatusBadRequest, "invalid request payload", err)
			return
		}

		out, err := svc.SearchEmbedding(r.Context(), in)
		if err != nil {
			WriteDomainError(w, "vector search failed", err)
			return
		}

		RespondJSON(w, http.StatusOK, out)
		log.Printf("✅  Vector search returned %d moments", out.Count)
	}
}

func SearchTemporalHandler(svc port.TemporalSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in port.TemporalSearchInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			WriteError(w, http.StatusBadRequest, "invalid request payload", err)
			return
		}

		out, err := svc.SearchTemporal(r.Context(), in)
		if err != nil {
			WriteDomainError(w, "temporal search failed", err)
			return
		}

		RespondJSON(w, http.StatusOK, out)
		log.Printf("✅  Temporal search returned %d moments", out.Count)
	}
}

func SearchSegmentHandler(svc port.SegmentSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in port.SegmentSearchInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			WriteError(w, http.StatusBadRequest, "invalid request payload", err)
			return
		}

		out, err := svc.SearchSegment(r.Context(), in)
		if err != nil {
			WriteDomainError(w, "segment search failed", err)
			return
		}

		RespondJSON(w, http.StatusOK, out)
		log.Printf("✅  Segment search returned %d moments", out.Count)
	}
}

func SearchMultimodalHandler(svc port.MultimodalSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in port.MultimodalSearchInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			WriteError(w, http.StatusBadRequest, "invalid request payload", err)
			return
		}

		out, err := svc.SearchMultimodal(r.Context(), in)
		if err != nil {
			WriteDomainError(w, "multimodal search failed", err)
			return
		}

		RespondJSON(w, http.StatusOK, out)
		log.Printf("✅  Multimodal search returned %d moments", out.Count)
	}
}
