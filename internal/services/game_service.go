package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/karim/quizrush/internal/errors"
	"github.com/karim/quizrush/internal/game"
	"github.com/karim/quizrush/internal/identity"
	"github.com/karim/quizrush/internal/logger"
	"github.com/karim/quizrush/internal/models"
	"github.com/karim/quizrush/internal/repository"
)

// GameService handles game-related business logic
type GameService interface {
	StartSession(ctx context.Context, user *identity.User) (*models.GameSession, error)
	NewPuzzle(ctx context.Context, category string, score int, locale string) (*models.Puzzle, error)
	SubmitAnswer(ctx context.Context, user *identity.User, req models.SubmitAnswerRequest) (*models.SubmitResult, error)
}

type gameService struct {
	sessionRepo repository.SessionRepository
	resultRepo  repository.ResultRepository
	statsRepo   repository.StatsRepository
}

// NewGameService creates a new GameService
func NewGameService(sessionRepo repository.SessionRepository, resultRepo repository.ResultRepository, statsRepo repository.StatsRepository) GameService {
	return &gameService{
		sessionRepo: sessionRepo,
		resultRepo:  resultRepo,
		statsRepo:   statsRepo,
	}
}

func (s *gameService) StartSession(ctx context.Context, user *identity.User) (*models.GameSession, error) {
	log := logger.FromContext(ctx)

	if user == nil {
		log.Debug("starting ephemeral guest session")
		now := time.Now()
		return &models.GameSession{
			ID:        0,
			UserID:    models.GuestUserID,
			CreatedAt: now,
			UpdatedAt: now,
		}, nil
	}

	log.Debug("starting game session: user_id=%s", user.ID)
	session, err := s.sessionRepo.Insert(ctx, user.ID)
	if err != nil {
		log.Error("failed to create game session: %v", err)
		return nil, errors.NewStoreUnavailableError(err)
	}
	log.Info("game session started: id=%d, user_id=%s", session.ID, user.ID)
	return session, nil
}

func (s *gameService) NewPuzzle(ctx context.Context, category string, score int, locale string) (*models.Puzzle, error) {
	log := logger.FromContext(ctx)
	log.Debug("generating puzzle: category=%s, score=%d, locale=%s", category, score, locale)

	return game.Generate(category, score, locale)
}

// SubmitAnswer scores a submission and, for authenticated play, folds it
// into the session row, the result log and the user's aggregates. Guest
// submissions (no user, or the sentinel session id 0) are scored and
// answered but leave no trace in the store.
func (s *gameService) SubmitAnswer(ctx context.Context, user *identity.User, req models.SubmitAnswerRequest) (*models.SubmitResult, error) {
	log := logger.FromContext(ctx)
	log.Debug("submitting answer: session_id=%d, type=%s, elapsed=%.1fs", req.GameSessionID, req.Puzzle.Type, req.ElapsedSeconds)

	persist := user != nil && req.GameSessionID != 0

	// The difficulty tier for point awarding comes from the session's
	// score at submission time, not the score the puzzle was drawn at.
	currentScore := 0
	if persist {
		session, err := s.sessionRepo.Get(ctx, req.GameSessionID)
		if err != nil {
			log.Error("failed to load session: %v", err)
			return nil, errors.NewStoreUnavailableError(err)
		}
		if session == nil {
			return nil, errors.NewNotFoundError("game session", req.GameSessionID)
		}
		currentScore = session.TotalScore
	}

	scored := game.Score(req.Puzzle, req.UserAnswer, req.ElapsedSeconds, currentScore)
	result := &models.SubmitResult{
		IsCorrect:     scored.IsCorrect,
		CorrectAnswer: scored.CorrectAnswer,
		PointsEarned:  scored.PointsEarned,
	}

	if !persist {
		log.Debug("guest submission, skipping persistence")
		return result, nil
	}

	puzzleJSON, err := json.Marshal(req.Puzzle)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}

	if _, err := s.resultRepo.Insert(ctx, models.PuzzleResult{
		GameSessionID:    req.GameSessionID,
		UserID:           user.ID,
		PuzzleType:       req.Puzzle.Type,
		PuzzleData:       string(puzzleJSON),
		UserAnswer:       req.UserAnswer,
		CorrectAnswer:    scored.CorrectAnswer,
		IsCorrect:        scored.IsCorrect,
		TimeTakenSeconds: req.ElapsedSeconds,
		PointsEarned:     scored.PointsEarned,
	}); err != nil {
		log.Error("failed to record puzzle result: %v", err)
		return nil, errors.NewStoreUnavailableError(err)
	}

	solved := 0
	if scored.IsCorrect {
		solved = 1
	}
	if err := s.sessionRepo.ApplyAttempt(ctx, req.GameSessionID, scored.PointsEarned, solved); err != nil {
		log.Error("failed to update game session: %v", err)
		return nil, errors.NewStoreUnavailableError(err)
	}

	if err := s.statsRepo.ApplyAttempt(ctx, models.AttemptDelta{
		UserID:         user.ID,
		SessionID:      req.GameSessionID,
		PuzzleType:     req.Puzzle.Type,
		PointsEarned:   scored.PointsEarned,
		IsCorrect:      scored.IsCorrect,
		ElapsedSeconds: req.ElapsedSeconds,
	}); err != nil {
		log.Error("failed to update user stats: %v", err)
		return nil, errors.NewStoreUnavailableError(err)
	}

	log.Info("answer submitted: session_id=%d, correct=%t, points=%d", req.GameSessionID, scored.IsCorrect, scored.PointsEarned)
	return result, nil
}
