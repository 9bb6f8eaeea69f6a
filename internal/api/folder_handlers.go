package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vytor/lingoflash/internal/logger"
	"github.com/vytor/lingoflash/internal/models"
)

type createFolderRequest struct {
	ParentID string `json:"parentId"`
	NameFR   string `json:"nameFr" validate:"required"`
	NameES   string `json:"nameEs" validate:"required"`
	Icon     string `json:"icon"`
}

func (s *Server) handleListFolders(w http.ResponseWriter, r *http.Request) {
	folders, err := s.FolderService.ListFolders(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"folders": folders})
}

func (s *Server) handleCreateFolder(w http.ResponseWriter, r *http.Request) {
	var req createFolderRequest
	if err := decodeAndValidate(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	folder, err := s.FolderService.CreateFolder(r.Context(), req.ParentID, models.LocalizedString{FR: req.NameFR, ES: req.NameES}, req.Icon)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, folder)
}

func (s *Server) handleDeleteFolder(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	logger.FromContext(r.Context()).Debug("deleting folder: id=%s", id)

	if err := s.FolderService.DeleteFolder(r.Context(), id); err != nil {
		handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
