package api

import "net/http"

func (s *Server) handleStreak(w http.ResponseWriter, r *http.Request) {
	state := s.StreakEngine.State(r.Context())
	writeJSON(w, http.StatusOK, state)
}

// handleStreakCheckIn runs the once-per-day streak evaluation. The
// client calls it on launch; repeat calls the same day are no-ops.
func (s *Server) handleStreakCheckIn(w http.ResponseWriter, r *http.Request) {
	state, notification := s.StreakEngine.CheckIn(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{
		"streak":        state.Streak,
		"lastLoginDate": state.LastLoginDate,
		"history":       state.History,
		"notification":  notification,
	})
}
