package generator

import (
	"context"
	"errors"
	"math/rand"

	"gorm.io/gorm"

	"github.com/castellano-app/castellano-backend/internal/catalog"
	types "github.com/castellano-app/castellano-backend/internal/domain"
	"github.com/castellano-app/castellano-backend/internal/platform/logger"
)

// ErrEmptyPool reports that one of the draw pools resolved empty, which makes
// generation impossible rather than merely short.
var ErrEmptyPool = errors.New("empty question pool")

// attemptFactor bounds total draw attempts at attemptFactor × count so narrow
// filters terminate instead of spinning when the combination space is smaller
// than the request.
const attemptFactor = 5

// Question is one generated tuple with its correct answer.
type Question struct {
	Pronoun types.Pronoun `json:"pronoun"`
	Tense   types.Tense   `json:"tense"`
	Mood    types.Mood    `json:"mood"`
	Verb    string        `json:"verb"`
	Answer  string        `json:"answer"`
}

type comboKey struct {
	Pronoun types.Pronoun
	Verb    string
	Tense   types.Tense
	Mood    types.Mood
}

// Conjugator is the slice of the adapter the generator needs.
type Conjugator interface {
	Conjugate(verb string, tense types.Tense, mood types.Mood, pronoun types.Pronoun) (string, error)
}

// Generator produces unique random question tuples from the filtered pools.
// One instance serves concurrent requests; draws go through the top-level
// math/rand functions, which are safe for concurrent use.
type Generator struct {
	catalog   *catalog.Catalog
	conjugate Conjugator
	log       *logger.Logger
}

func NewGenerator(cat *catalog.Catalog, conj Conjugator, baseLog *logger.Logger) *Generator {
	return &Generator{
		catalog:   cat,
		conjugate: conj,
		log:       baseLog.With("service", "QuestionGenerator"),
	}
}

// Generate draws up to count unique (pronoun, verb, tense, mood) tuples and
// conjugates each. Conjugation misses are skipped silently and duplicate
// draws are not re-produced; when the attempt budget runs out the slice is
// returned short, which is a valid outcome the caller decides about.
func (g *Generator) Generate(
	ctx context.Context,
	tx *gorm.DB,
	pronouns []types.Pronoun,
	tenses []types.Tense,
	moods []types.Mood,
	verbClass string,
	count int,
) ([]Question, error) {
	verbs, err := g.catalog.VerbsForClass(ctx, tx, verbClass)
	if err != nil {
		return nil, err
	}
	if len(pronouns) == 0 || len(tenses) == 0 || len(moods) == 0 || len(verbs) == 0 {
		return nil, ErrEmptyPool
	}
	if count <= 0 {
		return []Question{}, nil
	}

	seen := make(map[comboKey]struct{}, count)
	questions := make([]Question, 0, count)
	maxAttempts := attemptFactor * count

	for attempts := 0; len(questions) < count && attempts < maxAttempts; attempts++ {
		key := comboKey{
			Pronoun: pronouns[rand.Intn(len(pronouns))],
			Verb:    verbs[rand.Intn(len(verbs))],
			Tense:   tenses[rand.Intn(len(tenses))],
			Mood:    moods[rand.Intn(len(moods))],
		}
		if _, dup := seen[key]; dup {
			continue
		}

		answer, err := g.conjugate.Conjugate(key.Verb, key.Tense, key.Mood, key.Pronoun)
		if err != nil {
			// A miss, not a failure: the tuple stays available for
			// other draws and only the attempt is spent.
			continue
		}

		seen[key] = struct{}{}
		questions = append(questions, Question{
			Pronoun: key.Pronoun,
			Tense:   key.Tense,
			Mood:    key.Mood,
			Verb:    key.Verb,
			Answer:  answer,
		})
	}

	if len(questions) < count {
		g.log.Debug("generation fell short of request",
			"requested", count, "generated", len(questions), "verb_class", verbClass)
	}
	return questions, nil
}
