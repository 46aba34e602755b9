package services

import (
	"github.com/castellano-app/castellano-backend/internal/conjugation"
	types "github.com/castellano-app/castellano-backend/internal/domain"
	"github.com/castellano-app/castellano-backend/internal/platform/logger"
)

// ConjugationTable maps mood → tense → pronoun → surface form. Combinations
// the adapter cannot produce are simply absent.
type ConjugationTable map[types.Mood]map[types.Tense]map[types.Pronoun]string

type VerbService interface {
	// Conjugations builds the full conjugation table for one infinitive.
	Conjugations(verb string) ConjugationTable
}

type verbService struct {
	adapter *conjugation.Adapter
	log     *logger.Logger
}

func NewVerbService(adapter *conjugation.Adapter, baseLog *logger.Logger) VerbService {
	return &verbService{adapter: adapter, log: baseLog.With("service", "VerbService")}
}

func (s *verbService) Conjugations(verb string) ConjugationTable {
	table := make(ConjugationTable)
	for _, mood := range types.AllMoods {
		for _, tense := range types.AllTenses {
			for _, pronoun := range types.AllPronouns {
				form, err := s.adapter.Conjugate(verb, tense, mood, pronoun)
				if err != nil {
					continue
				}
				if table[mood] == nil {
					table[mood] = make(map[types.Tense]map[types.Pronoun]string)
				}
				if table[mood][tense] == nil {
					table[mood][tense] = make(map[types.Pronoun]string)
				}
				table[mood][tense][pronoun] = form
			}
		}
	}
	return table
}
