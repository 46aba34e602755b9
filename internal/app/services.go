package app

import (
	"gorm.io/gorm"

	"github.com/castellano-app/castellano-backend/internal/catalog"
	"github.com/castellano-app/castellano-backend/internal/conjugation"
	"github.com/castellano-app/castellano-backend/internal/generator"
	"github.com/castellano-app/castellano-backend/internal/platform/logger"
	"github.com/castellano-app/castellano-backend/internal/services"
)

type Services struct {
	Conjugation *conjugation.Adapter
	Catalog     *catalog.Catalog
	Generator   *generator.Generator

	Round   services.RoundService
	Verb    services.VerbService
	Metrics services.MetricsService
}

func wireServices(db *gorm.DB, log *logger.Logger, repos Repos) Services {
	log.Info("Wiring services...")

	adapter := conjugation.NewAdapter(conjugation.NewRuleEngine(), log)
	cat := catalog.NewCatalog(repos.Verb, log)
	gen := generator.NewGenerator(cat, adapter, log)

	return Services{
		Conjugation: adapter,
		Catalog:     cat,
		Generator:   gen,

		Round:   services.NewRoundService(db, log, gen, adapter, repos.Verb, repos.Round, repos.Guess),
		Verb:    services.NewVerbService(adapter, log),
		Metrics: services.NewMetricsService(db, log, repos.Guess),
	}
}
