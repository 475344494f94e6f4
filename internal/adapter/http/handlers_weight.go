package adapthttp

import (
	"encoding/json"
	"net/http"

	"weightlog/internal/app"
)

func (s *Server) handleWeightList(w http.ResponseWriter, r *http.Request) {
	snap := s.tracker.Snapshot()
	writeJSON(w, http.StatusOK, map[string]any{
		"profile": snap.Profile,
		"items":   snap.Records,
		"rows":    snap.Stats.Rows,
		"dropped": snap.Stats.Dropped,
	})
}

func (s *Server) handleWeightAdd(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Value json.Number `json:"value"`
		Unit  string      `json:"unit"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	value, err := app.ParseWeight(body.Value.String())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	entry, err := s.tracker.AddEntry(r.Context(), value, body.Unit)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"entry": entry, "message": "Weight entry added!"})
}

// handleWeightConvert backs the live conversion label; bad input clears it.
func (s *Server) handleWeightConvert(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	unit := q.Get("unit")
	if unit == "" {
		unit = "lbs"
	}
	text, _ := app.Preview(q.Get("value"), unit)
	writeJSON(w, http.StatusOK, map[string]any{"text": text})
}
