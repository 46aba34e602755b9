package conjugation

import (
	"errors"
	"strings"
	"unicode/utf8"

	types "github.com/castellano-app/castellano-backend/internal/domain"
	"github.com/castellano-app/castellano-backend/internal/platform/logger"
)

// ErrNoConjugation signals that no usable form is available for the requested
// combination. Callers treat it as a generation miss, not a failure.
var ErrNoConjugation = errors.New("no conjugation available")

// minFormLength guards against the engine's habit of returning truncated
// fragments for some combinations.
const minFormLength = 3

// Adapter wraps an Engine and turns its heterogeneous responses into
// validated surface forms.
type Adapter struct {
	engine Engine
	log    *logger.Logger
}

func NewAdapter(engine Engine, baseLog *logger.Logger) *Adapter {
	return &Adapter{engine: engine, log: baseLog.With("service", "ConjugationAdapter")}
}

// Conjugate returns the surface form for one question tuple. The correction
// table wins over anything the engine would produce; otherwise the pronoun is
// normalized for the mood, the engine response is unwrapped by shape, and the
// result is encoding-repaired and validated.
func (a *Adapter) Conjugate(verb string, tense types.Tense, mood types.Mood, pronoun types.Pronoun) (string, error) {
	normalized := NormalizePronoun(pronoun, mood)

	if form, ok := lookupCorrection(verb, tense, mood, normalized); ok {
		return form, nil
	}

	resp, err := a.engine.Conjugate(verb, tense, mood, normalized)
	if err != nil {
		a.log.Debug("engine conjugation failed",
			"verb", verb, "tense", tense, "mood", mood, "pronoun", pronoun, "error", err)
		return "", ErrNoConjugation
	}

	var answer string
	switch resp.Kind {
	case CompoundKeyed:
		answer = resp.Forms[CompoundKey(pronoun)]
	case SingleForm:
		answer = resp.Form
	}

	answer = repairEncoding(answer)

	if strings.TrimSpace(answer) == "" || utf8.RuneCountInString(answer) < minFormLength {
		a.log.Debug("rejecting suspicious conjugation",
			"verb", verb, "tense", tense, "mood", mood, "pronoun", pronoun, "answer", answer)
		return "", ErrNoConjugation
	}

	return answer, nil
}
