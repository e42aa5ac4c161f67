package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)

	r.Get("/health", s.handleHealth)
	r.Get("/ready", s.handleReady)

	r.Route("/api", func(r chi.Router) {
		r.Get("/oauth/google/redirect_url", s.handleOAuthRedirectURL)
		r.Post("/sessions", s.handleCreateSession)
		r.Get("/logout", s.handleLogout)

		// Puzzle generation is stateless and open to guests.
		r.Get("/game/puzzle/{category}", s.handleGamePuzzle)

		r.Group(func(r chi.Router) {
			r.Use(s.withUser)
			r.Post("/game/start", s.handleGameStart)
			r.Post("/game/submit", s.handleGameSubmit)

			r.Group(func(r chi.Router) {
				r.Use(s.requireUser)
				r.Get("/users/me", s.handleCurrentUser)
				r.Get("/game/stats", s.handleGameStats)
				r.Get("/game/history", s.handleGameHistory)
			})
		})
	})

	return r
}
