package conjugation

import (
	"errors"
	"fmt"
	"testing"

	types "github.com/castellano-app/castellano-backend/internal/domain"
	"github.com/castellano-app/castellano-backend/internal/platform/logger"
)

func mustTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	t.Cleanup(log.Sync)
	return log
}

// stubEngine records the pronoun it was called with and replies with a canned
// response.
type stubEngine struct {
	resp        Response
	err         error
	calls       int
	lastPronoun types.Pronoun
}

func (s *stubEngine) Conjugate(verb string, tense types.Tense, mood types.Mood, pronoun types.Pronoun) (Response, error) {
	s.calls++
	s.lastPronoun = pronoun
	return s.resp, s.err
}

func TestNormalizePronounSubjunctiveCollapse(t *testing.T) {
	cases := []struct {
		in   types.Pronoun
		mood types.Mood
		want types.Pronoun
	}{
		{types.PronounEl, types.MoodSubjunctive, types.PronounUsted},
		{types.PronounElla, types.MoodSubjunctive, types.PronounUsted},
		{types.PronounEllos, types.MoodSubjunctive, types.PronounUstedes},
		{types.PronounYo, types.MoodSubjunctive, types.PronounYo},
		{types.PronounEl, types.MoodIndicative, types.PronounEl},
		{types.PronounEllos, types.MoodConditional, types.PronounEllos},
	}
	for _, c := range cases {
		got := NormalizePronoun(c.in, c.mood)
		if got != c.want {
			t.Fatalf("NormalizePronoun(%s, %s): want=%s got=%s", c.in, c.mood, c.want, got)
		}
		// Stable under reapplication.
		if again := NormalizePronoun(got, c.mood); again != got {
			t.Fatalf("NormalizePronoun not idempotent for (%s, %s): %s -> %s", c.in, c.mood, got, again)
		}
	}
}

func TestAdapterCorrectionShortCircuitsEngine(t *testing.T) {
	engine := &stubEngine{resp: NewSingleFormResponse("vada")}
	a := NewAdapter(engine, mustTestLogger(t))

	got, err := a.Conjugate("ir", types.TensePresent, types.MoodSubjunctive, types.PronounEl)
	if err != nil {
		t.Fatalf("Conjugate: %v", err)
	}
	if got != "vaya" {
		t.Fatalf("corrected form: want=vaya got=%s", got)
	}
	if engine.calls != 0 {
		t.Fatalf("engine should not be called when a correction exists, got %d calls", engine.calls)
	}
}

func TestAdapterCompoundKeyExtraction(t *testing.T) {
	engine := &stubEngine{resp: NewCompoundResponse(map[string]string{
		"yo":                  "hablo",
		"tu":                  "hablas",
		"el/ella/usted":       "habla",
		"nosotros":            "hablamos",
		"vosotros":            "habláis",
		"ellos/ellas/ustedes": "hablan",
	})}
	a := NewAdapter(engine, mustTestLogger(t))

	cases := []struct {
		pronoun types.Pronoun
		want    string
	}{
		{types.PronounYo, "hablo"},
		{types.PronounEl, "habla"},
		{types.PronounElla, "habla"},
		{types.PronounUsted, "habla"},
		{types.PronounEllos, "hablan"},
		{types.PronounUstedes, "hablan"},
	}
	for _, c := range cases {
		got, err := a.Conjugate("hablar", types.TensePresent, types.MoodIndicative, c.pronoun)
		if err != nil {
			t.Fatalf("Conjugate(%s): %v", c.pronoun, err)
		}
		if got != c.want {
			t.Fatalf("Conjugate(%s): want=%s got=%s", c.pronoun, c.want, got)
		}
	}
}

func TestAdapterEngineErrorBecomesErrNoConjugation(t *testing.T) {
	engine := &stubEngine{err: fmt.Errorf("engine exploded")}
	a := NewAdapter(engine, mustTestLogger(t))

	_, err := a.Conjugate("hablar", types.TensePresent, types.MoodIndicative, types.PronounYo)
	if !errors.Is(err, ErrNoConjugation) {
		t.Fatalf("want ErrNoConjugation, got %v", err)
	}
}

func TestAdapterRejectsSuspiciousForms(t *testing.T) {
	cases := []string{"", "  ", "ab"}
	for _, form := range cases {
		engine := &stubEngine{resp: NewSingleFormResponse(form)}
		a := NewAdapter(engine, mustTestLogger(t))

		_, err := a.Conjugate("hablar", types.TensePresent, types.MoodImperative, types.PronounTu)
		if !errors.Is(err, ErrNoConjugation) {
			t.Fatalf("form %q: want ErrNoConjugation, got %v", form, err)
		}
	}
}

func TestAdapterAcceptsShortAccentedForm(t *testing.T) {
	// Three runes even though more than three bytes.
	engine := &stubEngine{resp: NewSingleFormResponse("vís")}
	a := NewAdapter(engine, mustTestLogger(t))

	got, err := a.Conjugate("vivir", types.TensePresent, types.MoodImperative, types.PronounTu)
	if err != nil {
		t.Fatalf("Conjugate: %v", err)
	}
	if got != "vís" {
		t.Fatalf("want=vís got=%s", got)
	}
}

func TestAdapterPassesNormalizedPronounToEngine(t *testing.T) {
	engine := &stubEngine{resp: NewSingleFormResponse("hablen")}
	a := NewAdapter(engine, mustTestLogger(t))

	if _, err := a.Conjugate("hablar", types.TenseImperfect, types.MoodSubjunctive, types.PronounEllos); err != nil {
		t.Fatalf("Conjugate: %v", err)
	}
	if engine.lastPronoun != types.PronounUstedes {
		t.Fatalf("engine pronoun: want=%s got=%s", types.PronounUstedes, engine.lastPronoun)
	}
}

func TestRepairEncoding(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain ascii untouched", "hablo", "hablo"},
		{"clean utf8 untouched", "está", "está"},
		// "está" mis-decoded as Latin-1 round-trips back.
		{"mojibake repaired", "estÃ¡", "está"},
		{"mojibake with tilde", "aÃ±os", "años"},
	}
	for _, c := range cases {
		if got := repairEncoding(c.in); got != c.want {
			t.Fatalf("%s: repairEncoding(%q): want=%q got=%q", c.name, c.in, c.want, got)
		}
	}
}
