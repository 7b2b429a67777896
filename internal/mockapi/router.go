// Package mockapi serves a local stand-in for the remote video listing API.
package mockapi

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ytget/video-playlists/internal/model"
)

// ServiceName is reported by the health endpoint
const ServiceName = "mock-video-api"

// NewRouter builds the routes: /health and /api/videos?page=n
func NewRouter(videos []model.Video) http.Handler {
	r := chi.NewRouter()

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"status":  "ok",
			"service": ServiceName,
		})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/videos", func(w http.ResponseWriter, r *http.Request) {
			page := 1
			if raw := r.URL.Query().Get("page"); raw != "" {
				n, err := strconv.Atoi(raw)
				if err != nil || n < 1 {
					writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid page"})
					return
				}
				page = n
			}
			writeJSON(w, http.StatusOK, model.VideoPage{Videos: Page(videos, page)})
		})
	})

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write response: %v", err)
	}
}
