package app

import (
	"gorm.io/gorm"

	"github.com/castellano-app/castellano-backend/internal/data/repos/practice"
	"github.com/castellano-app/castellano-backend/internal/platform/logger"
)

type Repos struct {
	Verb  practice.VerbRepo
	Round practice.RoundRepo
	Guess practice.GuessRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Verb:  practice.NewVerbRepo(db, log),
		Round: practice.NewRoundRepo(db, log),
		Guess: practice.NewGuessRepo(db, log),
	}
}
