package adapthttp

import (
	"bytes"
	"net/http"
	"strconv"

	"weightlog/internal/app"
)

func (s *Server) handleChartsSeries(w http.ResponseWriter, r *http.Request) {
	snap := s.tracker.Snapshot()
	writeJSON(w, http.StatusOK, map[string]any{
		"profile": snap.Profile,
		"unit":    "lbs",
		"items":   app.ToSeriesLbs(snap.Records),
	})
}

func (s *Server) handleChartsPNG(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := s.tracker.RenderChart(&buf); err != nil {
		s.log.Warn().Err(err).Msg("render chart")
		writeDomainError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
