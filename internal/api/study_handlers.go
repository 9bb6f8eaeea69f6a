package api

import (
	"errors"
	"net/http"

	"github.com/vytor/lingoflash/internal/logger"
	"github.com/vytor/lingoflash/internal/study"
)

type startSessionRequest struct {
	FolderID string `json:"folderId"`
	OnlyDue  bool   `json:"onlyDue"`
	Mode     string `json:"mode" validate:"omitempty,oneof=new review mixed"`
}

type rateRequest struct {
	Quality int `json:"quality"`
}

func (s *Server) handleStartSession(w http.ResponseWriter, r *http.Request) {
	var req startSessionRequest
	if err := decodeAndValidate(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	queue, err := s.StudyService.StartSession(r.Context(), req.FolderID, req.OnlyDue, study.Mode(req.Mode))
	if errors.Is(err, study.ErrNothingToStudy) {
		// Empty scope is an empty-state signal, not a failure.
		logger.FromContext(r.Context()).Debug("nothing to study for folder=%q mode=%q", req.FolderID, req.Mode)
		writeJSON(w, http.StatusOK, map[string]any{
			"nothingToStudy": true,
			"cards":          []any{},
		})
		return
	}
	if err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"nothingToStudy": false,
		"cards":          queue,
	})
}

func (s *Server) handleCurrentCard(w http.ResponseWriter, r *http.Request) {
	card, position, total, err := s.StudyService.CurrentCard(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"card":     card,
		"position": position,
		"total":    total,
		"done":     card == nil,
	})
}

func (s *Server) handleRateCard(w http.ResponseWriter, r *http.Request) {
	var req rateRequest
	if err := decodeAndValidate(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	result, err := s.StudyService.RateCurrent(r.Context(), req.Quality)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleEndSession(w http.ResponseWriter, r *http.Request) {
	s.StudyService.EndSession(r.Context())
	w.WriteHeader(http.StatusNoContent)
}
