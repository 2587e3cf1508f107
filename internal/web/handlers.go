package web

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/pfrederiksen/league-leaderboard/internal/leaderboard"
	"github.com/pfrederiksen/league-leaderboard/internal/render"
)

// load runs one load for the request. On failure the caller gets nil and must render
// the static failure response; the cause is only logged by the loader.
func (s *Server) load(r *http.Request) *leaderboard.Snapshot {
	snap, err := s.loader.Load(r.Context())
	if err != nil {
		return nil
	}
	return snap
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer

	snap := s.load(r)
	if snap == nil {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusBadGateway)
		if err := render.ErrorPage(w); err != nil {
			s.log.Error("Writing error page failed", nil, err)
		}
		return
	}

	// Render fully before writing so a template failure cannot leave half a page.
	if err := render.HTML(&buf, snap, s.roster); err != nil {
		s.log.Error("Rendering page failed", nil, err)
		http.Error(w, render.ErrorMessage, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	s.write(w, buf.Bytes())
}

func (s *Server) handleAPI(w http.ResponseWriter, r *http.Request) {
	snap := s.load(r)
	if snap == nil {
		s.writeJSON(w, http.StatusBadGateway, map[string]string{"error": render.ErrorMessage})
		return
	}
	s.writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	snap := s.load(r)
	if snap == nil {
		http.Error(w, render.ErrorMessage, http.StatusBadGateway)
		return
	}

	var buf bytes.Buffer
	if err := render.Chart(&buf, snap); err != nil {
		s.log.Error("Rendering chart failed", nil, err)
		http.Error(w, render.ErrorMessage, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	s.write(w, buf.Bytes())
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("Writing response failed", nil, err)
	}
}

// write sends a fully rendered body. The status is already committed, so a failure
// (usually the client going away) can only be logged.
func (s *Server) write(w http.ResponseWriter, body []byte) {
	if _, err := w.Write(body); err != nil {
		s.log.Error("Writing response failed", nil, err)
	}
}
