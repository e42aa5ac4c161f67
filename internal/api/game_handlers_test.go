package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/karim/quizrush/internal/api"
	"github.com/karim/quizrush/internal/db"
	"github.com/karim/quizrush/internal/identity"
	"github.com/karim/quizrush/internal/models"
	"github.com/karim/quizrush/internal/repository/sqlite"
	"github.com/karim/quizrush/internal/services"
	"github.com/karim/quizrush/internal/testutil"
	"github.com/karim/quizrush/internal/testutil/mocks"
)

type testServer struct {
	handler  http.Handler
	db       *db.DB
	identity *mocks.MockIdentityClient
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	database := testutil.NewTestDB(t)
	t.Cleanup(func() { database.Close() })

	sessionRepo := sqlite.NewSessionRepository(database)
	resultRepo := sqlite.NewResultRepository(database)
	statsRepo := sqlite.NewStatsRepository(database)

	identityClient := new(mocks.MockIdentityClient)

	srv := &api.Server{
		DB:            database,
		GameService:   services.NewGameService(sessionRepo, resultRepo, statsRepo),
		StatsService:  services.NewStatsService(statsRepo, sessionRepo),
		Identity:      identityClient,
		SessionMaxAge: 3600,
	}
	return &testServer{handler: srv.Routes(), db: database, identity: identityClient}
}

func (ts *testServer) request(t *testing.T, method, path, body, sessionToken string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, reader)
	if sessionToken != "" {
		req.AddCookie(&http.Cookie{Name: "quizrush_session", Value: sessionToken})
	}
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	return rec
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var payload struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	return payload.Error.Code
}

func TestGamePuzzle(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.request(t, http.MethodGet, "/api/game/puzzle/math?score=0&locale=en", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	puzzle := decodeJSON[models.Puzzle](t, rec)
	assert.Equal(t, models.CategoryMath, puzzle.Type)
	assert.NotEmpty(t, puzzle.Question)
	assert.NotEmpty(t, puzzle.Answer)
}

func TestGamePuzzle_LanguageFallbackParam(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.request(t, http.MethodGet, "/api/game/puzzle/science?language=ar", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	puzzle := decodeJSON[models.Puzzle](t, rec)
	assert.Equal(t, models.CategoryScience, puzzle.Type)
	assert.Len(t, puzzle.Options, 4)
}

func TestGamePuzzle_InvalidCategory(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.request(t, http.MethodGet, "/api/game/puzzle/history", "", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_CATEGORY", errorCode(t, rec))
}

func TestGameStart_Guest(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.request(t, http.MethodPost, "/api/game/start", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	session := decodeJSON[models.GameSession](t, rec)
	assert.Equal(t, int64(0), session.ID)
	assert.Equal(t, models.GuestUserID, session.UserID)
}

func TestGameStart_Authenticated(t *testing.T) {
	ts := newTestServer(t)
	ts.identity.On("ResolveSession", mock.Anything, "tok-1").Return(&identity.User{ID: "user-1"}, nil)

	rec := ts.request(t, http.MethodPost, "/api/game/start", "", "tok-1")
	require.Equal(t, http.StatusOK, rec.Code)

	session := decodeJSON[models.GameSession](t, rec)
	assert.Greater(t, session.ID, int64(0))
	assert.Equal(t, "user-1", session.UserID)
}

func TestGameStart_StaleCookieFallsBackToGuest(t *testing.T) {
	ts := newTestServer(t)
	ts.identity.On("ResolveSession", mock.Anything, "stale").Return(nil, nil)

	rec := ts.request(t, http.MethodPost, "/api/game/start", "", "stale")
	require.Equal(t, http.StatusOK, rec.Code)

	session := decodeJSON[models.GameSession](t, rec)
	assert.Equal(t, models.GuestUserID, session.UserID)
}

func TestGameSubmit_ValidationErrors(t *testing.T) {
	ts := newTestServer(t)

	cases := []struct {
		name string
		body string
	}{
		{"malformed json", "{"},
		{"missing session id", `{"puzzle":{"type":"math","question":"1+1","answer":"2"},"userAnswer":"2","elapsedSeconds":3}`},
		{"missing puzzle", `{"gameSessionId":0,"userAnswer":"2","elapsedSeconds":3}`},
		{"missing answer", `{"gameSessionId":0,"puzzle":{"type":"math","question":"1+1"},"userAnswer":"2","elapsedSeconds":3}`},
		{"missing user answer", `{"gameSessionId":0,"puzzle":{"type":"math","question":"1+1","answer":"2"},"elapsedSeconds":3}`},
		{"missing elapsed", `{"gameSessionId":0,"puzzle":{"type":"math","question":"1+1","answer":"2"},"userAnswer":"2"}`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec := ts.request(t, http.MethodPost, "/api/game/submit", c.body, "")
			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "VALIDATION_ERROR", errorCode(t, rec))
		})
	}
}

func TestGameSubmit_GuestScoredButNotPersisted(t *testing.T) {
	ts := newTestServer(t)

	body := `{"gameSessionId":0,"puzzle":{"type":"math","question":"3 + 4 = ?","answer":"7"},"userAnswer":"٧","elapsedSeconds":10}`
	rec := ts.request(t, http.MethodPost, "/api/game/submit", body, "")
	require.Equal(t, http.StatusOK, rec.Code)

	result := decodeJSON[models.SubmitResult](t, rec)
	assert.True(t, result.IsCorrect)
	assert.Equal(t, "7", result.CorrectAnswer)
	assert.Equal(t, 15, result.PointsEarned)

	var count int
	require.NoError(t, ts.db.QueryRow(`SELECT COUNT(*) FROM puzzle_results`).Scan(&count))
	assert.Equal(t, 0, count)
	require.NoError(t, ts.db.QueryRow(`SELECT COUNT(*) FROM game_sessions`).Scan(&count))
	assert.Equal(t, 0, count)
}

func TestGameSubmit_AuthenticatedFlow(t *testing.T) {
	ts := newTestServer(t)
	ts.identity.On("ResolveSession", mock.Anything, "tok-1").Return(&identity.User{ID: "user-1"}, nil)

	rec := ts.request(t, http.MethodPost, "/api/game/start", "", "tok-1")
	require.Equal(t, http.StatusOK, rec.Code)
	session := decodeJSON[models.GameSession](t, rec)

	body := `{"gameSessionId":` + strconv.FormatInt(session.ID, 10) + `,"puzzle":{"type":"math","question":"3 + 4 = ?","answer":"7"},"userAnswer":"7","elapsedSeconds":10}`
	rec = ts.request(t, http.MethodPost, "/api/game/submit", body, "tok-1")
	require.Equal(t, http.StatusOK, rec.Code)

	result := decodeJSON[models.SubmitResult](t, rec)
	assert.True(t, result.IsCorrect)
	assert.Equal(t, 15, result.PointsEarned)

	rec = ts.request(t, http.MethodGet, "/api/game/stats", "", "tok-1")
	require.Equal(t, http.StatusOK, rec.Code)
	stats := decodeJSON[models.UserStats](t, rec)
	assert.Equal(t, 15, stats.TotalScore)
	assert.Equal(t, 1, stats.TotalPuzzlesAttempted)
	assert.Equal(t, 15, stats.BestSessionScore)
	assert.Equal(t, 1, stats.MathPuzzlesSolved)

	rec = ts.request(t, http.MethodGet, "/api/game/history", "", "tok-1")
	require.Equal(t, http.StatusOK, rec.Code)
	history := decodeJSON[[]models.GameSession](t, rec)
	require.Len(t, history, 1)
	assert.Equal(t, 15, history[0].TotalScore)
}

func TestGameStats_Unauthorized(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.request(t, http.MethodGet, "/api/game/stats", "", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHORIZED", errorCode(t, rec))
}

func TestGameStats_ZeroedDefault(t *testing.T) {
	ts := newTestServer(t)
	ts.identity.On("ResolveSession", mock.Anything, "tok-1").Return(&identity.User{ID: "user-1"}, nil)

	rec := ts.request(t, http.MethodGet, "/api/game/stats", "", "tok-1")
	require.Equal(t, http.StatusOK, rec.Code)

	stats := decodeJSON[models.UserStats](t, rec)
	assert.Equal(t, "user-1", stats.UserID)
	assert.Equal(t, 0, stats.TotalScore)
	assert.Equal(t, 0, stats.TotalPuzzlesAttempted)
}
