package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tgoubier/moments-ms-go/internal/api_context"
)

func WithVideoID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := chi.URLParam(r, "id")
			if id == "" {
				WriteError(w, http.StatusBadRequest, "video ID is required", nil)
				return
			}

			// stash it in context and call the real handler
			ctx := api_context.WithVideoID(r.Context(), id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func WithMomentID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := chi.URLParam(r, "momentID")
			if id == "" {
				WriteError(w, http.StatusBadRequest, "moment ID is required", nil)
				return
			}

			ctx := api_context.WithMomentID(r.Context(), id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
