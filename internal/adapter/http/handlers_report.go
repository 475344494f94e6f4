package adapthttp

import (
	"bytes"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"weightlog/internal/adapter/xlsx"
	"weightlog/internal/domain"
)

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	profile, report, err := s.tracker.Report()
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"profile": profile,
		"report":  report,
		"text":    report.Text(profile),
	})
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	snap := s.tracker.Snapshot()
	if snap.Profile == "" {
		writeDomainError(w, fmt.Errorf("select a profile or create a new one: %w", domain.ErrNoProfile))
		return
	}
	var buf bytes.Buffer
	if err := xlsx.Export(&buf, snap.Profile, snap.Records); err != nil {
		writeDomainError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename*=UTF-8''"+url.PathEscape(snap.Profile+".xlsx"))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
