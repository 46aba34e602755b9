package app

import (
	"github.com/gin-gonic/gin"

	internalhttp "github.com/castellano-app/castellano-backend/internal/http"
	"github.com/castellano-app/castellano-backend/internal/platform/logger"
)

func wireRouter(log *logger.Logger, handlers Handlers) *gin.Engine {
	return internalhttp.NewRouter(internalhttp.RouterConfig{
		Log:              log,
		RoundsHandler:    handlers.Rounds,
		QuestionsHandler: handlers.Questions,
		VerbsHandler:     handlers.Verbs,
		MetricsHandler:   handlers.Metrics,
		HealthHandler:    handlers.Health,
	})
}
