package sqlite_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/karim/quizrush/internal/db"
	"github.com/karim/quizrush/internal/models"
	"github.com/karim/quizrush/internal/repository"
	"github.com/karim/quizrush/internal/repository/sqlite"
	"github.com/karim/quizrush/internal/testutil"
)

type StatsRepositorySuite struct {
	suite.Suite
	db       *db.DB
	repo     repository.StatsRepository
	sessions repository.SessionRepository
}

func (s *StatsRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewStatsRepository(s.db)
	s.sessions = sqlite.NewSessionRepository(s.db)
}

func (s *StatsRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *StatsRepositorySuite) TestGet_NoRow() {
	ctx := context.Background()

	stats, err := s.repo.Get(ctx, "user-1")
	s.Require().NoError(err)
	s.Assert().Nil(stats)
}

func (s *StatsRepositorySuite) TestApplyAttempt_CreatesRow() {
	ctx := context.Background()

	session, err := s.sessions.Insert(ctx, "user-1")
	s.Require().NoError(err)
	s.Require().NoError(s.sessions.ApplyAttempt(ctx, session.ID, 20, 1))

	err = s.repo.ApplyAttempt(ctx, models.AttemptDelta{
		UserID:         "user-1",
		SessionID:      session.ID,
		PuzzleType:     models.CategoryMath,
		PointsEarned:   20,
		IsCorrect:      true,
		ElapsedSeconds: 10,
	})
	s.Require().NoError(err)

	stats, err := s.repo.Get(ctx, "user-1")
	s.Require().NoError(err)
	s.Require().NotNil(stats)
	s.Assert().Equal(20, stats.TotalScore)
	s.Assert().Equal(1, stats.TotalPuzzlesSolved)
	s.Assert().Equal(1, stats.TotalPuzzlesAttempted)
	s.Assert().Equal(20, stats.BestSessionScore)
	s.Assert().InDelta(10.0, stats.AverageTimePerPuzzle, 1e-9)
	s.Assert().Equal(1, stats.MathPuzzlesSolved)
	s.Assert().Equal(0, stats.SciencePuzzlesSolved)
}

func (s *StatsRepositorySuite) TestApplyAttempt_RunningMean() {
	ctx := context.Background()

	session, err := s.sessions.Insert(ctx, "user-1")
	s.Require().NoError(err)

	s.Require().NoError(s.repo.ApplyAttempt(ctx, models.AttemptDelta{
		UserID: "user-1", SessionID: session.ID, PuzzleType: models.CategoryMath,
		PointsEarned: 10, IsCorrect: true, ElapsedSeconds: 10,
	}))
	s.Require().NoError(s.repo.ApplyAttempt(ctx, models.AttemptDelta{
		UserID: "user-1", SessionID: session.ID, PuzzleType: models.CategoryScience,
		PointsEarned: 0, IsCorrect: false, ElapsedSeconds: 20,
	}))

	stats, err := s.repo.Get(ctx, "user-1")
	s.Require().NoError(err)
	s.Require().NotNil(stats)
	s.Assert().Equal(2, stats.TotalPuzzlesAttempted)
	s.Assert().Equal(1, stats.TotalPuzzlesSolved)
	s.Assert().InDelta(15.0, stats.AverageTimePerPuzzle, 1e-9)
	// Incorrect attempts never bump per-category counters.
	s.Assert().Equal(0, stats.SciencePuzzlesSolved)
}

func (s *StatsRepositorySuite) TestApplyAttempt_BestSessionScoreMonotonic() {
	ctx := context.Background()

	first, err := s.sessions.Insert(ctx, "user-1")
	s.Require().NoError(err)
	s.Require().NoError(s.sessions.ApplyAttempt(ctx, first.ID, 40, 1))
	s.Require().NoError(s.repo.ApplyAttempt(ctx, models.AttemptDelta{
		UserID: "user-1", SessionID: first.ID, PuzzleType: models.CategoryPuzzle,
		PointsEarned: 40, IsCorrect: true, ElapsedSeconds: 5,
	}))

	// A weaker later session must not lower the best score.
	second, err := s.sessions.Insert(ctx, "user-1")
	s.Require().NoError(err)
	s.Require().NoError(s.sessions.ApplyAttempt(ctx, second.ID, 10, 1))
	s.Require().NoError(s.repo.ApplyAttempt(ctx, models.AttemptDelta{
		UserID: "user-1", SessionID: second.ID, PuzzleType: models.CategoryMath,
		PointsEarned: 10, IsCorrect: true, ElapsedSeconds: 5,
	}))

	stats, err := s.repo.Get(ctx, "user-1")
	s.Require().NoError(err)
	s.Assert().Equal(40, stats.BestSessionScore)
	s.Assert().Equal(50, stats.TotalScore)
	s.Assert().Equal(1, stats.PuzzlePuzzlesSolved)
	s.Assert().Equal(1, stats.MathPuzzlesSolved)
}

func TestStatsRepositorySuite(t *testing.T) {
	suite.Run(t, new(StatsRepositorySuite))
}
