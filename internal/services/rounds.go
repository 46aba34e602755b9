package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/castellano-app/castellano-backend/internal/data/repos/practice"
	types "github.com/castellano-app/castellano-backend/internal/domain"
	"github.com/castellano-app/castellano-backend/internal/generator"
	"github.com/castellano-app/castellano-backend/internal/platform/logger"
)

var (
	ErrRoundNotFound  = errors.New("round not found")
	ErrRoundCompleted = errors.New("round already completed")
	ErrGuessNotFound  = errors.New("guess not found")

	// ErrInsufficientQuestions: the generator could not reach the requested
	// count. Recoverable; the caller may retry with looser filters.
	ErrInsufficientQuestions = errors.New("could not generate the requested number of questions")

	// ErrGenerationUnavailable: a guess could not be constructed even after
	// re-deriving its answer. The whole creation is abandoned.
	ErrGenerationUnavailable = errors.New("conjugation generation unavailable")
)

// guessBuildAttempts bounds per-question construction retries during round
// creation.
const guessBuildAttempts = 3

const transitionReasonFilterChange = "filter_change"

// GuessView is a guess with its verb lemma resolved for responses.
type GuessView struct {
	ID            uuid.UUID     `json:"id"`
	RoundID       *uuid.UUID    `json:"round_id,omitempty"`
	UserID        *uuid.UUID    `json:"user_id,omitempty"`
	Verb          string        `json:"verb"`
	Pronoun       types.Pronoun `json:"pronoun"`
	Tense         types.Tense   `json:"tense"`
	Mood          types.Mood    `json:"mood"`
	CorrectAnswer string        `json:"correct_answer"`
	UserAnswer    *string       `json:"user_answer,omitempty"`
	IsCorrect     *bool         `json:"is_correct,omitempty"`
	Skipped       bool          `json:"skipped"`
	CreatedAt     time.Time     `json:"created_at"`
}

type RoundWithGuesses struct {
	Round   *types.Round `json:"round"`
	Guesses []GuessView  `json:"guesses"`
}

type TransitionResult struct {
	CompletedRound   *types.Round `json:"completed_round"`
	NewRound         *types.Round `json:"new_round"`
	Guesses          []GuessView  `json:"guesses"`
	TransitionReason string       `json:"transition_reason"`
}

type RoundService interface {
	// CreateRound persists a round shell plus count pre-generated guesses in
	// one transaction. A generation shortfall or guess-construction failure
	// rolls everything back.
	CreateRound(ctx context.Context, filters types.Filters, count int, userID *uuid.UUID, verbClass string) (*RoundWithGuesses, error)

	// CompleteRound stamps ended_at and recomputes num_correct_answers from
	// the round's guesses. The recomputation, not any running counter, is
	// the source of truth for the final score.
	CompleteRound(ctx context.Context, roundID uuid.UUID) (*RoundWithGuesses, error)

	// UpdateGuess records the user's answer. Deliberately does not check
	// whether the parent round is still active; that policy belongs to
	// callers that want it.
	UpdateGuess(ctx context.Context, guessID uuid.UUID, userAnswer string, isCorrect bool) (*GuessView, error)

	// TransitionToNewRound completes the current round and creates the next
	// one with new filters. The two steps are sequential, not atomic: if
	// creation fails the completed round stays completed.
	TransitionToNewRound(ctx context.Context, currentRoundID uuid.UUID, newFilters types.Filters, count int, userID *uuid.UUID, verbClass string) (*TransitionResult, error)

	GetActiveRound(ctx context.Context, userID *uuid.UUID) (*RoundWithGuesses, error)
	GetRound(ctx context.Context, roundID uuid.UUID) (*RoundWithGuesses, error)
}

type roundService struct {
	db        *gorm.DB
	log       *logger.Logger
	generator *generator.Generator
	conjugate generator.Conjugator
	verbRepo  practice.VerbRepo
	roundRepo practice.RoundRepo
	guessRepo practice.GuessRepo
}

func NewRoundService(
	db *gorm.DB,
	baseLog *logger.Logger,
	gen *generator.Generator,
	conj generator.Conjugator,
	verbRepo practice.VerbRepo,
	roundRepo practice.RoundRepo,
	guessRepo practice.GuessRepo,
) RoundService {
	return &roundService{
		db:        db,
		log:       baseLog.With("service", "RoundService"),
		generator: gen,
		conjugate: conj,
		verbRepo:  verbRepo,
		roundRepo: roundRepo,
		guessRepo: guessRepo,
	}
}

func (s *roundService) CreateRound(ctx context.Context, filters types.Filters, count int, userID *uuid.UUID, verbClass string) (*RoundWithGuesses, error) {
	if err := filters.Validate(); err != nil {
		return nil, err
	}
	if count <= 0 {
		return nil, fmt.Errorf("%w: num_questions must be positive", types.ErrInvalidFilters)
	}
	filtersJSON, err := filters.JSON()
	if err != nil {
		return nil, err
	}

	var result *RoundWithGuesses
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		round := &types.Round{
			ID:           uuid.New(),
			UserID:       userID,
			Filters:      filtersJSON,
			NumQuestions: count,
		}
		if _, err := s.roundRepo.Create(ctx, tx, round); err != nil {
			return fmt.Errorf("create round shell: %w", err)
		}

		questions, err := s.generator.Generate(ctx, tx, filters.Pronoun, filters.Tense, filters.Mood, verbClass, count)
		if err != nil {
			return err
		}
		if len(questions) < count {
			return fmt.Errorf("%w: got %d of %d", ErrInsufficientQuestions, len(questions), count)
		}

		guesses := make([]*types.Guess, 0, count)
		views := make([]GuessView, 0, count)
		for _, q := range questions {
			verb, err := s.getOrCreateVerb(ctx, tx, q.Verb)
			if err != nil {
				return fmt.Errorf("resolve verb %q: %w", q.Verb, err)
			}
			guess, err := s.buildGuess(q, round.ID, userID, verb.ID)
			if err != nil {
				return err
			}
			guesses = append(guesses, guess)
		}
		if _, err := s.guessRepo.Create(ctx, tx, guesses); err != nil {
			return fmt.Errorf("persist guesses: %w", err)
		}

		for i, g := range guesses {
			views = append(views, guessView(g, questions[i].Verb))
		}
		result = &RoundWithGuesses{Round: round, Guesses: views}
		return nil
	})
	if err != nil {
		s.log.Warn("CreateRound failed", "error", err, "verb_class", verbClass, "num_questions", count)
		return nil, err
	}
	return result, nil
}

func (s *roundService) getOrCreateVerb(ctx context.Context, tx *gorm.DB, infinitive string) (*types.Verb, error) {
	verb, err := s.verbRepo.GetByInfinitive(ctx, tx, infinitive)
	if err != nil {
		return nil, err
	}
	if verb != nil {
		return verb, nil
	}
	rows, err := s.verbRepo.Create(ctx, tx, []*types.Verb{{ID: uuid.New(), Infinitive: infinitive}})
	if err != nil {
		return nil, err
	}
	return rows[0], nil
}

func (s *roundService) buildGuess(q generator.Question, roundID uuid.UUID, userID *uuid.UUID, verbID uuid.UUID) (*types.Guess, error) {
	answer := q.Answer
	for attempt := 0; attempt < guessBuildAttempts; attempt++ {
		if answer == "" {
			derived, err := s.conjugate.Conjugate(q.Verb, q.Tense, q.Mood, q.Pronoun)
			if err != nil {
				continue
			}
			answer = derived
		}
		rID := roundID
		return &types.Guess{
			ID:            uuid.New(),
			RoundID:       &rID,
			UserID:        userID,
			VerbID:        verbID,
			Pronoun:       q.Pronoun,
			Tense:         q.Tense,
			Mood:          q.Mood,
			CorrectAnswer: answer,
		}, nil
	}
	return nil, fmt.Errorf("%w: %s/%s/%s/%s", ErrGenerationUnavailable, q.Verb, q.Tense, q.Mood, q.Pronoun)
}

func (s *roundService) CompleteRound(ctx context.Context, roundID uuid.UUID) (*RoundWithGuesses, error) {
	var result *RoundWithGuesses
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		round, err := s.roundRepo.GetByID(ctx, tx, roundID)
		if err != nil {
			return err
		}
		if round == nil {
			return ErrRoundNotFound
		}
		if round.EndedAt != nil {
			return ErrRoundCompleted
		}

		numCorrect, err := s.guessRepo.CountCorrectByRoundID(ctx, tx, roundID)
		if err != nil {
			return err
		}
		endedAt := time.Now().UTC()
		if err := s.roundRepo.UpdateFields(ctx, tx, roundID, map[string]interface{}{
			"ended_at":            endedAt,
			"num_correct_answers": int(numCorrect),
		}); err != nil {
			return err
		}
		round.EndedAt = &endedAt
		round.NumCorrectAnswers = int(numCorrect)

		guesses, err := s.guessRepo.ListByRoundID(ctx, tx, roundID)
		if err != nil {
			return err
		}
		result = &RoundWithGuesses{Round: round, Guesses: guessViews(guesses)}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *roundService) UpdateGuess(ctx context.Context, guessID uuid.UUID, userAnswer string, isCorrect bool) (*GuessView, error) {
	var view GuessView
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		guess, err := s.guessRepo.GetByID(ctx, tx, guessID)
		if err != nil {
			return err
		}
		if guess == nil {
			return ErrGuessNotFound
		}
		if err := s.guessRepo.UpdateFields(ctx, tx, guessID, map[string]interface{}{
			"user_answer": userAnswer,
			"is_correct":  isCorrect,
			"skipped":     false,
		}); err != nil {
			return err
		}
		refreshed, err := s.guessRepo.GetByID(ctx, tx, guessID)
		if err != nil {
			return err
		}
		view = guessView(refreshed, verbLemma(refreshed))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func (s *roundService) TransitionToNewRound(ctx context.Context, currentRoundID uuid.UUID, newFilters types.Filters, count int, userID *uuid.UUID, verbClass string) (*TransitionResult, error) {
	completed, err := s.CompleteRound(ctx, currentRoundID)
	if err != nil {
		return nil, err
	}

	// No compensating rollback past this point: if creation fails, the old
	// round stays completed.
	created, err := s.CreateRound(ctx, newFilters, count, userID, verbClass)
	if err != nil {
		s.log.Warn("TransitionToNewRound: new round creation failed after completion",
			"error", err, "completed_round_id", currentRoundID)
		return nil, err
	}

	return &TransitionResult{
		CompletedRound:   completed.Round,
		NewRound:         created.Round,
		Guesses:          created.Guesses,
		TransitionReason: transitionReasonFilterChange,
	}, nil
}

func (s *roundService) GetActiveRound(ctx context.Context, userID *uuid.UUID) (*RoundWithGuesses, error) {
	round, err := s.roundRepo.GetActive(ctx, nil, userID)
	if err != nil {
		return nil, err
	}
	if round == nil {
		return nil, nil
	}
	guesses, err := s.guessRepo.ListByRoundID(ctx, nil, round.ID)
	if err != nil {
		return nil, err
	}
	return &RoundWithGuesses{Round: round, Guesses: guessViews(guesses)}, nil
}

func (s *roundService) GetRound(ctx context.Context, roundID uuid.UUID) (*RoundWithGuesses, error) {
	round, err := s.roundRepo.GetByID(ctx, nil, roundID)
	if err != nil {
		return nil, err
	}
	if round == nil {
		return nil, ErrRoundNotFound
	}
	guesses, err := s.guessRepo.ListByRoundID(ctx, nil, round.ID)
	if err != nil {
		return nil, err
	}
	return &RoundWithGuesses{Round: round, Guesses: guessViews(guesses)}, nil
}

func verbLemma(g *types.Guess) string {
	if g.Verb != nil && g.Verb.Infinitive != "" {
		return g.Verb.Infinitive
	}
	return "unknown"
}

func guessView(g *types.Guess, lemma string) GuessView {
	return GuessView{
		ID:            g.ID,
		RoundID:       g.RoundID,
		UserID:        g.UserID,
		Verb:          lemma,
		Pronoun:       g.Pronoun,
		Tense:         g.Tense,
		Mood:          g.Mood,
		CorrectAnswer: g.CorrectAnswer,
		UserAnswer:    g.UserAnswer,
		IsCorrect:     g.IsCorrect,
		Skipped:       g.Skipped,
		CreatedAt:     g.CreatedAt,
	}
}

func guessViews(guesses []*types.Guess) []GuessView {
	views := make([]GuessView, 0, len(guesses))
	for _, g := range guesses {
		views = append(views, guessView(g, verbLemma(g)))
	}
	return views
}
