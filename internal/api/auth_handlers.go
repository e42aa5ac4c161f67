package api

import (
	"encoding/json"
	"net/http"

	"github.com/karim/quizrush/internal/errors"
	"github.com/karim/quizrush/internal/logger"
)

func (s *Server) handleOAuthRedirectURL(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	log.Debug("fetching oauth redirect url")

	url, err := s.Identity.RedirectURL(r.Context())
	if err != nil {
		handleError(w, r, errors.NewInternalError(err))
		return
	}

	respondJSON(w, r, http.StatusOK, map[string]string{"redirectUrl": url})
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	log.Debug("creating session from oauth code")

	var body struct {
		Code string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		handleError(w, r, errors.NewValidationError("body", "malformed JSON"))
		return
	}
	if body.Code == "" {
		handleError(w, r, errors.NewValidationError("code", "is required"))
		return
	}

	token, err := s.Identity.ExchangeCode(r.Context(), body.Code)
	if err != nil {
		handleError(w, r, errors.NewInternalError(err))
		return
	}

	s.setSessionCookie(w, token)
	log.Info("session created")
	respondJSON(w, r, http.StatusOK, map[string]bool{"success": true})
}

func (s *Server) handleCurrentUser(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, userFromContext(r.Context()))
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	log.Debug("logging out")

	if cookie, err := r.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		if err := s.Identity.DeleteSession(r.Context(), cookie.Value); err != nil {
			// Clear the cookie regardless, the token will expire upstream.
			log.Warn("failed to delete provider session: %v", err)
		}
	}

	s.clearSessionCookie(w)
	respondJSON(w, r, http.StatusOK, map[string]bool{"success": true})
}
