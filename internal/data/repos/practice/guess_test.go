package practice

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/castellano-app/castellano-backend/internal/data/repos/testutil"
	types "github.com/castellano-app/castellano-backend/internal/domain"
)

func TestGuessRepoCreateBatchPersistsAnswers(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := NewGuessRepo(db, testutil.Logger(t))

	verb := testutil.SeedVerb(t, ctx, tx, "cantar", 1)
	round := testutil.SeedRound(t, ctx, tx, nil, 2)

	rows := []*types.Guess{
		{
			ID:            uuid.New(),
			RoundID:       testutil.PtrUUID(round.ID),
			VerbID:        verb.ID,
			Pronoun:       types.PronounYo,
			Tense:         types.TensePresent,
			Mood:          types.MoodIndicative,
			CorrectAnswer: "canto",
			UserAnswer:    testutil.PtrString("canto"),
			IsCorrect:     testutil.PtrBool(true),
		},
		{
			ID:            uuid.New(),
			RoundID:       testutil.PtrUUID(round.ID),
			VerbID:        verb.ID,
			Pronoun:       types.PronounTu,
			Tense:         types.TensePresent,
			Mood:          types.MoodIndicative,
			CorrectAnswer: "cantas",
		},
	}
	if _, err := repo.Create(ctx, tx, rows); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByID(ctx, tx, rows[0].ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.UserAnswer == nil || *got.UserAnswer != "canto" {
		t.Fatalf("user answer: want=canto got=%v", got.UserAnswer)
	}
	if got.IsCorrect == nil || !*got.IsCorrect {
		t.Fatalf("is_correct: want=true got=%v", got.IsCorrect)
	}

	count, err := repo.CountCorrectByRoundID(ctx, tx, round.ID)
	if err != nil {
		t.Fatalf("CountCorrectByRoundID: %v", err)
	}
	if count != 1 {
		t.Fatalf("correct count: want=1 got=%d", count)
	}
}

func TestGuessRepoCountCorrectByRoundID(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := NewGuessRepo(db, testutil.Logger(t))

	verb := testutil.SeedVerb(t, ctx, tx, "hablar", 1)
	round := testutil.SeedRound(t, ctx, tx, nil, 3)

	g1 := testutil.SeedGuess(t, ctx, tx, testutil.PtrUUID(round.ID), verb.ID, "hablo")
	g2 := testutil.SeedGuess(t, ctx, tx, testutil.PtrUUID(round.ID), verb.ID, "hablas")
	testutil.SeedGuess(t, ctx, tx, testutil.PtrUUID(round.ID), verb.ID, "habla")

	if err := repo.UpdateFields(ctx, tx, g1.ID, map[string]interface{}{
		"user_answer": "hablo", "is_correct": true,
	}); err != nil {
		t.Fatalf("UpdateFields g1: %v", err)
	}
	if err := repo.UpdateFields(ctx, tx, g2.ID, map[string]interface{}{
		"user_answer": "ablas", "is_correct": false,
	}); err != nil {
		t.Fatalf("UpdateFields g2: %v", err)
	}

	count, err := repo.CountCorrectByRoundID(ctx, tx, round.ID)
	if err != nil {
		t.Fatalf("CountCorrectByRoundID: %v", err)
	}
	if count != 1 {
		t.Fatalf("correct count: want=1 got=%d", count)
	}
}

func TestGuessRepoListByRoundIDPreloadsVerb(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := NewGuessRepo(db, testutil.Logger(t))

	verb := testutil.SeedVerb(t, ctx, tx, "comer", 1)
	round := testutil.SeedRound(t, ctx, tx, nil, 1)
	testutil.SeedGuess(t, ctx, tx, testutil.PtrUUID(round.ID), verb.ID, "como")

	guesses, err := repo.ListByRoundID(ctx, tx, round.ID)
	if err != nil {
		t.Fatalf("ListByRoundID: %v", err)
	}
	if len(guesses) != 1 {
		t.Fatalf("guess count: want=1 got=%d", len(guesses))
	}
	if guesses[0].Verb == nil || guesses[0].Verb.Infinitive != "comer" {
		t.Fatalf("verb relation not preloaded: %+v", guesses[0].Verb)
	}
}

func TestGuessRepoCoverage(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := NewGuessRepo(db, testutil.Logger(t))

	verb := testutil.SeedVerb(t, ctx, tx, "vivir", 1)
	round := testutil.SeedRound(t, ctx, tx, nil, 5)
	rID := testutil.PtrUUID(round.ID)

	// Three yo/present/indicative, one under subjunctive.
	testutil.SeedGuess(t, ctx, tx, rID, verb.ID, "vivo")
	testutil.SeedGuess(t, ctx, tx, rID, verb.ID, "vivo")
	testutil.SeedGuess(t, ctx, tx, rID, verb.ID, "vivo")
	subj := testutil.SeedGuess(t, ctx, tx, rID, verb.ID, "viva")
	if err := repo.UpdateFields(ctx, tx, subj.ID, map[string]interface{}{
		"mood": types.MoodSubjunctive,
	}); err != nil {
		t.Fatalf("UpdateFields: %v", err)
	}

	bins, err := repo.Coverage(ctx, tx, CoverageQuery{})
	if err != nil {
		t.Fatalf("Coverage: %v", err)
	}
	if len(bins) != 2 {
		t.Fatalf("bin count: want=2 got=%d", len(bins))
	}
	// Ordered by question_count descending.
	if bins[0].QuestionCount != 3 || bins[0].Mood != types.MoodIndicative {
		t.Fatalf("top bin: want indicative/3 got %s/%d", bins[0].Mood, bins[0].QuestionCount)
	}

	// Mood filter narrows the result.
	bins, err = repo.Coverage(ctx, tx, CoverageQuery{Moods: []types.Mood{types.MoodSubjunctive}})
	if err != nil {
		t.Fatalf("Coverage(mood): %v", err)
	}
	if len(bins) != 1 || bins[0].Mood != types.MoodSubjunctive {
		t.Fatalf("mood filter: want one subjunctive bin got %+v", bins)
	}

	// MinQuestions drops thin bins.
	bins, err = repo.Coverage(ctx, tx, CoverageQuery{MinQuestions: 2})
	if err != nil {
		t.Fatalf("Coverage(min): %v", err)
	}
	if len(bins) != 1 || bins[0].QuestionCount != 3 {
		t.Fatalf("min_questions filter: want the 3-question bin got %+v", bins)
	}
}

func TestGuessRepoUpdateFieldsMissingIsNoop(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := NewGuessRepo(db, testutil.Logger(t))

	if err := repo.UpdateFields(ctx, tx, uuid.New(), map[string]interface{}{"skipped": true}); err != nil {
		t.Fatalf("UpdateFields on missing row: %v", err)
	}
}
