package testutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/castellano-app/castellano-backend/internal/domain"
)

func PtrUUID(id uuid.UUID) *uuid.UUID { return &id }

func PtrInt(v int) *int { return &v }

func PtrBool(v bool) *bool { return &v }

func PtrString(v string) *string { return &v }

// SeedVerb inserts a verb; rank 0 means unranked.
func SeedVerb(tb testing.TB, ctx context.Context, tx *gorm.DB, infinitive string, rank int) *types.Verb {
	tb.Helper()
	v := &types.Verb{
		ID:         uuid.New(),
		Infinitive: infinitive,
	}
	if rank > 0 {
		v.TubelexRank = PtrInt(rank)
		v.TubelexCount = PtrInt(1000 / rank)
	}
	if err := tx.WithContext(ctx).Create(v).Error; err != nil {
		tb.Fatalf("seed verb: %v", err)
	}
	return v
}

func SeedRound(tb testing.TB, ctx context.Context, tx *gorm.DB, userID *uuid.UUID, numQuestions int) *types.Round {
	tb.Helper()
	filters, err := types.Filters{
		Pronoun: []types.Pronoun{types.PronounYo, types.PronounTu},
		Tense:   []types.Tense{types.TensePresent},
		Mood:    []types.Mood{types.MoodIndicative},
	}.JSON()
	if err != nil {
		tb.Fatalf("marshal filters: %v", err)
	}
	r := &types.Round{
		ID:           uuid.New(),
		UserID:       userID,
		Filters:      filters,
		NumQuestions: numQuestions,
	}
	if err := tx.WithContext(ctx).Create(r).Error; err != nil {
		tb.Fatalf("seed round: %v", err)
	}
	return r
}

func SeedGuess(tb testing.TB, ctx context.Context, tx *gorm.DB, roundID *uuid.UUID, verbID uuid.UUID, answer string) *types.Guess {
	tb.Helper()
	g := &types.Guess{
		ID:            uuid.New(),
		RoundID:       roundID,
		VerbID:        verbID,
		Pronoun:       types.PronounYo,
		Tense:         types.TensePresent,
		Mood:          types.MoodIndicative,
		CorrectAnswer: answer,
	}
	if err := tx.WithContext(ctx).Create(g).Error; err != nil {
		tb.Fatalf("seed guess: %v", err)
	}
	return g
}
