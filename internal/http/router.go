package http

import (
	"github.com/gin-gonic/gin"

	httpH "github.com/castellano-app/castellano-backend/internal/http/handlers"
	httpMW "github.com/castellano-app/castellano-backend/internal/http/middleware"
	"github.com/castellano-app/castellano-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log *logger.Logger

	RoundsHandler    *httpH.RoundsHandler
	QuestionsHandler *httpH.QuestionsHandler
	VerbsHandler     *httpH.VerbsHandler
	MetricsHandler   *httpH.MetricsHandler

	HealthHandler *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS())

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	{
		// Rounds
		if cfg.RoundsHandler != nil {
			api.POST("/rounds", cfg.RoundsHandler.CreateRound)
			api.GET("/rounds/active", cfg.RoundsHandler.GetActiveRound)
			api.GET("/rounds/:id", cfg.RoundsHandler.GetRound)
			api.PUT("/rounds/:id/complete", cfg.RoundsHandler.CompleteRound)
			api.POST("/rounds/:id/transition", cfg.RoundsHandler.TransitionRound)
			api.PUT("/guesses/:id", cfg.RoundsHandler.SubmitGuess)
		}

		// Ad-hoc questions
		if cfg.QuestionsHandler != nil {
			api.GET("/questions", cfg.QuestionsHandler.ListQuestions)
		}

		// Verbs
		if cfg.VerbsHandler != nil {
			api.GET("/verbs/:verb/conjugations", cfg.VerbsHandler.Conjugations)
		}

		// Metrics
		if cfg.MetricsHandler != nil {
			api.GET("/metrics/coverage", cfg.MetricsHandler.Coverage)
		}
	}

	return r
}
