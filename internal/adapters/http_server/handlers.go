package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"careersite/internal/app"
	"careersite/internal/domain"
)

type Handlers struct {
	Pages *app.PageService
	Enum  *app.Enumerator
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/sitemap.xml", h.sitemap)
	s.mux.Get("/career-hub/guides/{slug}", h.guide)
	s.mux.Get("/{slug}", h.page)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

// page serves every root-level landing page. A slug that doesn't classify,
// or classifies to entities we don't have, is a plain 404; those are
// navigational outcomes, not errors.
func (h *Handlers) page(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, chi.URLParam(r, "slug"))
}

func (h *Handlers) guide(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, "career-hub/guides/"+chi.URLParam(r, "slug"))
}

func (h *Handlers) serve(w http.ResponseWriter, r *http.Request, slug string) {
	payload, err := h.Pages.Get(r.Context(), slug)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownSlug) || errors.Is(err, domain.ErrNotFound) {
			writeProblem(w, http.StatusNotFound, "Not Found", "page not found")
			return
		}
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "")
		return
	}

	etag, body := calcETagAndBody(payload)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write page body")
	}
}

func (h *Handlers) sitemap(w http.ResponseWriter, r *http.Request) {
	body, err := h.Pages.SitemapXML(r.Context(), h.Enum)
	if err != nil {
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "sitemap generation failed")
		return
	}
	w.Header().Set("Content-Type", "application/xml")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write sitemap body")
	}
}
