package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/karim/quizrush/internal/errors"
	"github.com/karim/quizrush/internal/logger"
	"github.com/karim/quizrush/internal/models"
)

func (s *Server) handleGameStart(w http.ResponseWriter, r *http.Request) {
	session, err := s.GameService.StartSession(r.Context(), userFromContext(r.Context()))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, session)
}

func (s *Server) handleGamePuzzle(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")

	// A missing or garbled score draws from the beginner pool.
	score, _ := strconv.Atoi(r.URL.Query().Get("score"))

	locale := r.URL.Query().Get("locale")
	if locale == "" {
		locale = r.URL.Query().Get("language")
	}

	puzzle, err := s.GameService.NewPuzzle(r.Context(), category, score, locale)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, puzzle)
}

func (s *Server) handleGameSubmit(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	// Pointer fields distinguish absent from zero: the guest sentinel
	// session id is a legitimate 0.
	var body struct {
		GameSessionID  *int64         `json:"gameSessionId"`
		Puzzle         *models.Puzzle `json:"puzzle"`
		UserAnswer     *string        `json:"userAnswer"`
		ElapsedSeconds *float64       `json:"elapsedSeconds"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Warn("malformed submit body: %v", err)
		handleError(w, r, errors.NewValidationError("body", "malformed JSON"))
		return
	}
	switch {
	case body.GameSessionID == nil:
		handleError(w, r, errors.NewValidationError("gameSessionId", "is required"))
		return
	case body.Puzzle == nil:
		handleError(w, r, errors.NewValidationError("puzzle", "is required"))
		return
	case body.Puzzle.Answer == "":
		handleError(w, r, errors.NewValidationError("puzzle.answer", "is required"))
		return
	case body.UserAnswer == nil:
		handleError(w, r, errors.NewValidationError("userAnswer", "is required"))
		return
	case body.ElapsedSeconds == nil:
		handleError(w, r, errors.NewValidationError("elapsedSeconds", "is required"))
		return
	}

	result, err := s.GameService.SubmitAnswer(r.Context(), userFromContext(r.Context()), models.SubmitAnswerRequest{
		GameSessionID:  *body.GameSessionID,
		Puzzle:         *body.Puzzle,
		UserAnswer:     *body.UserAnswer,
		ElapsedSeconds: *body.ElapsedSeconds,
	})
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, result)
}

func (s *Server) handleGameStats(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	stats, err := s.StatsService.UserStats(r.Context(), user.ID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, stats)
}

func (s *Server) handleGameHistory(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	sessions, err := s.StatsService.History(r.Context(), user.ID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, sessions)
}
