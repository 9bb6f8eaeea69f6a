package api

import "net/http"

func (s *Server) handleNativeLang(w http.ResponseWriter, r *http.Request) {
	lang, err := s.SettingsService.NativeLang(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"nativeLang": lang})
}

func (s *Server) handleToggleNativeLang(w http.ResponseWriter, r *http.Request) {
	lang, err := s.SettingsService.ToggleNativeLang(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"nativeLang": lang})
}
