// internal/adapters/http_server/handlers.go
package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/heynenm/snowreport/internal/app"
)

// freshness advertised to intermediaries; the consuming page falls back to
// its static snow.json when we answer 5xx, so stale is better than nothing.
const cacheControl = "public, s-maxage=900, stale-while-revalidate=3600"

var validate = validator.New()

type Handlers struct{ Svc *app.ReportService }

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// snowError is the failure body; always JSON so the page can detect it.
type snowError struct {
	Error     string    `json:"error"`
	Detail    string    `json:"detail"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/snow", h.getSnow)
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

func (h *Handlers) getSnow(w http.ResponseWriter, r *http.Request) {
	state := r.URL.Query().Get("state")
	if state != "" {
		if err := validate.Var(state, "len=2,alpha"); err != nil {
			writeProblem(w, http.StatusBadRequest, "Invalid state", "state must be a two-letter code")
			return
		}
	}

	payload, err := h.Svc.BuildReport(r.Context(), state)
	if err != nil {
		log.Error().Err(err).Str("state", state).Msg("snow report build failed")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		body := snowError{Error: "Failed to fetch snow data", Detail: err.Error(), UpdatedAt: time.Now().UTC()}
		if err := json.NewEncoder(w).Encode(body); err != nil {
			log.Error().Err(err).Msg("failed to write error body")
		}
		return
	}

	etag, body := calcETagAndBody(payload)
	// If client already has this version, short-circuit.
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag) // include ETag on 304
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", cacheControl)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write snow report body")
	}
}
