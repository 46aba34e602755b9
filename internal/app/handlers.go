package app

import (
	"github.com/castellano-app/castellano-backend/internal/data/db"
	httpH "github.com/castellano-app/castellano-backend/internal/http/handlers"
	"github.com/castellano-app/castellano-backend/internal/platform/logger"
)

type Handlers struct {
	Rounds    *httpH.RoundsHandler
	Questions *httpH.QuestionsHandler
	Verbs     *httpH.VerbsHandler
	Metrics   *httpH.MetricsHandler
	Health    *httpH.HealthHandler
}

func wireHandlers(log *logger.Logger, cfg Config, dbService *db.Service, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Rounds:    httpH.NewRoundsHandler(services.Round, cfg.DefaultVerbClass),
		Questions: httpH.NewQuestionsHandler(services.Generator, cfg.DefaultVerbClass),
		Verbs:     httpH.NewVerbsHandler(services.Verb),
		Metrics:   httpH.NewMetricsHandler(services.Metrics),
		Health:    httpH.NewHealthHandler(dbService),
	}
}
