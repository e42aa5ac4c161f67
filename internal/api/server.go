package api

import (
	"github.com/karim/quizrush/internal/db"
	"github.com/karim/quizrush/internal/identity"
	"github.com/karim/quizrush/internal/services"
)

type Server struct {
	DB            *db.DB
	GameService   services.GameService
	StatsService  services.StatsService
	Identity      identity.ClientInterface
	CookieSecure  bool
	SessionMaxAge int
}
