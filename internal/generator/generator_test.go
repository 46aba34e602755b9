package generator

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/castellano-app/castellano-backend/internal/catalog"
	"github.com/castellano-app/castellano-backend/internal/conjugation"
	"github.com/castellano-app/castellano-backend/internal/data/repos/practice"
	"github.com/castellano-app/castellano-backend/internal/data/repos/testutil"
	types "github.com/castellano-app/castellano-backend/internal/domain"
)

func newAdapter(t *testing.T) *conjugation.Adapter {
	t.Helper()
	return conjugation.NewAdapter(conjugation.NewRuleEngine(), testutil.Logger(t))
}

func newCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	log := testutil.Logger(t)
	return catalog.NewCatalog(practice.NewVerbRepo(testutil.DB(t), log), log)
}

// failingConjugator misses every combination.
type failingConjugator struct{}

func (failingConjugator) Conjugate(verb string, tense types.Tense, mood types.Mood, pronoun types.Pronoun) (string, error) {
	return "", fmt.Errorf("no form")
}

func TestGenerateUniqueTuples(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	testutil.SeedVerb(t, ctx, tx, "hablar", 1)
	testutil.SeedVerb(t, ctx, tx, "comer", 2)
	testutil.SeedVerb(t, ctx, tx, "vivir", 3)

	g := NewGenerator(newCatalog(t), newAdapter(t), testutil.Logger(t))

	questions, err := g.Generate(ctx, tx,
		[]types.Pronoun{types.PronounYo, types.PronounTu},
		[]types.Tense{types.TensePresent},
		[]types.Mood{types.MoodIndicative},
		"top3", 4)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(questions) != 4 {
		t.Fatalf("question count: want=4 got=%d", len(questions))
	}

	seen := map[string]bool{}
	for _, q := range questions {
		key := fmt.Sprintf("%s|%s|%s|%s", q.Pronoun, q.Verb, q.Tense, q.Mood)
		if seen[key] {
			t.Fatalf("duplicate question tuple %s", key)
		}
		seen[key] = true
		if q.Answer == "" {
			t.Fatalf("question %s has empty answer", key)
		}
	}
}

func TestGenerateAnswersMatchAdapter(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	testutil.SeedVerb(t, ctx, tx, "hablar", 1)

	adapter := newAdapter(t)
	g := NewGenerator(newCatalog(t), adapter, testutil.Logger(t))

	questions, err := g.Generate(ctx, tx,
		[]types.Pronoun{types.PronounYo},
		[]types.Tense{types.TensePresent},
		[]types.Mood{types.MoodIndicative},
		"top1", 1)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(questions) != 1 {
		t.Fatalf("question count: want=1 got=%d", len(questions))
	}

	want, err := adapter.Conjugate(questions[0].Verb, questions[0].Tense, questions[0].Mood, questions[0].Pronoun)
	if err != nil {
		t.Fatalf("adapter.Conjugate: %v", err)
	}
	if questions[0].Answer != want {
		t.Fatalf("answer: want=%s got=%s", want, questions[0].Answer)
	}
}

func TestGenerateShortWhenSpaceExhausted(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	testutil.SeedVerb(t, ctx, tx, "hablar", 1)

	g := NewGenerator(newCatalog(t), newAdapter(t), testutil.Logger(t))

	// One combination available, three requested: short result, no error.
	questions, err := g.Generate(ctx, tx,
		[]types.Pronoun{types.PronounYo},
		[]types.Tense{types.TensePresent},
		[]types.Mood{types.MoodIndicative},
		"top1", 3)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(questions) != 1 {
		t.Fatalf("question count: want=1 got=%d", len(questions))
	}
}

func TestGenerateEmptyPool(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	testutil.SeedVerb(t, ctx, tx, "hablar", 1)

	g := NewGenerator(newCatalog(t), newAdapter(t), testutil.Logger(t))

	_, err := g.Generate(ctx, tx,
		nil,
		[]types.Tense{types.TensePresent},
		[]types.Mood{types.MoodIndicative},
		"top1", 2)
	if !errors.Is(err, ErrEmptyPool) {
		t.Fatalf("want ErrEmptyPool, got %v", err)
	}
}

func TestGenerateInvalidClassPropagates(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))

	g := NewGenerator(newCatalog(t), newAdapter(t), testutil.Logger(t))

	_, err := g.Generate(ctx, tx,
		[]types.Pronoun{types.PronounYo},
		[]types.Tense{types.TensePresent},
		[]types.Mood{types.MoodIndicative},
		"best20", 2)
	if !errors.Is(err, catalog.ErrInvalidClass) {
		t.Fatalf("want ErrInvalidClass, got %v", err)
	}
}

func TestGenerateSkipsConjugationMisses(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	testutil.SeedVerb(t, ctx, tx, "hablar", 1)

	g := NewGenerator(newCatalog(t), failingConjugator{}, testutil.Logger(t))

	questions, err := g.Generate(ctx, tx,
		[]types.Pronoun{types.PronounYo},
		[]types.Tense{types.TensePresent},
		[]types.Mood{types.MoodIndicative},
		"top1", 2)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(questions) != 0 {
		t.Fatalf("all conjugations miss: want=0 got=%d", len(questions))
	}
}

func TestGenerateConcurrentCallers(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)

	// Committed rows, not a per-test transaction: the goroutines below must
	// share one Generator the way concurrent handlers do.
	lemmas := []string{"cantar", "bailar", "correr"}
	for i, infinitive := range lemmas {
		testutil.SeedVerb(t, ctx, db, infinitive, 101+i)
	}
	t.Cleanup(func() {
		db.Where("infinitive IN ?", lemmas).Delete(&types.Verb{})
	})

	g := NewGenerator(newCatalog(t), newAdapter(t), testutil.Logger(t))

	const callers = 8
	errs := make(chan error, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			questions, err := g.Generate(ctx, nil,
				[]types.Pronoun{types.PronounYo, types.PronounTu},
				[]types.Tense{types.TensePresent, types.TensePreterite},
				[]types.Mood{types.MoodIndicative},
				"top3", 6)
			if err != nil {
				errs <- err
				return
			}
			if len(questions) != 6 {
				errs <- fmt.Errorf("question count: want=6 got=%d", len(questions))
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("concurrent Generate: %v", err)
	}
}

func TestGenerateZeroCount(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	testutil.SeedVerb(t, ctx, tx, "hablar", 1)

	g := NewGenerator(newCatalog(t), newAdapter(t), testutil.Logger(t))

	questions, err := g.Generate(ctx, tx,
		[]types.Pronoun{types.PronounYo},
		[]types.Tense{types.TensePresent},
		[]types.Mood{types.MoodIndicative},
		"top1", 0)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(questions) != 0 {
		t.Fatalf("zero count: want=0 got=%d", len(questions))
	}
}
