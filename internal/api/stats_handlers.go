package api

import (
	"net/http"

	"github.com/vytor/lingoflash/internal/errors"
	"github.com/vytor/lingoflash/internal/logger"
)

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	overview, err := s.StatsService.Overview(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, overview)
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	log.Warn("full application data reset requested")

	s.StudyService.EndSession(r.Context())
	if err := s.Resetter.Reset(r.Context()); err != nil {
		handleError(w, r, errors.NewInternalError(err))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
