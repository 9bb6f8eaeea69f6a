package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/folders", s.handleListFolders)
		r.Post("/folders", s.handleCreateFolder)
		r.Delete("/folders/{id}", s.handleDeleteFolder)

		r.Get("/cards", s.handleListCards)
		r.Post("/cards", s.handleCreateCard)
		r.Put("/cards/{id}", s.handleUpdateCard)
		r.Delete("/cards/{id}", s.handleDeleteCard)

		r.Post("/study/sessions", s.handleStartSession)
		r.Get("/study/current", s.handleCurrentCard)
		r.Post("/study/rate", s.handleRateCard)
		r.Delete("/study/sessions", s.handleEndSession)

		r.Get("/streak", s.handleStreak)
		r.Post("/streak/check-in", s.handleStreakCheckIn)

		r.Get("/settings/language", s.handleNativeLang)
		r.Post("/settings/language/toggle", s.handleToggleNativeLang)

		r.Get("/stats", s.handleStats)
		r.Post("/reset", s.handleReset)
	})

	return r
}
