package adapthttp

import (
	"net/http"
)

func (s *Server) handleProfilesList(w http.ResponseWriter, r *http.Request) {
	profiles, snap := s.tracker.Overview(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{
		"profiles": profiles,
		"current":  snap.Profile,
		"state":    snap.State.String(),
	})
}

func (s *Server) handleProfileCreate(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name string `json:"name"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	name, err := s.tracker.CreateProfile(r.Context(), body.Name)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"profile": name,
		"message": "Profile '" + name + "' created successfully!",
	})
}

func (s *Server) handleProfileSelect(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name string `json:"name"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	snap, err := s.tracker.Select(r.Context(), body.Name)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"profile": snap.Profile, "records": len(snap.Records)})
}
