package conjugation

import (
	"testing"

	types "github.com/castellano-app/castellano-backend/internal/domain"
)

func TestRuleEnginePresentIndicativeTable(t *testing.T) {
	e := NewRuleEngine()
	resp, err := e.Conjugate("hablar", types.TensePresent, types.MoodIndicative, types.PronounYo)
	if err != nil {
		t.Fatalf("Conjugate: %v", err)
	}
	if resp.Kind != CompoundKeyed {
		t.Fatalf("indicative response kind: want=CompoundKeyed got=%v", resp.Kind)
	}

	want := map[string]string{
		"yo":                  "hablo",
		"tu":                  "hablas",
		"el/ella/usted":       "habla",
		"nosotros":            "hablamos",
		"vosotros":            "habláis",
		"ellos/ellas/ustedes": "hablan",
	}
	for key, form := range want {
		if resp.Forms[key] != form {
			t.Fatalf("form[%s]: want=%s got=%s", key, form, resp.Forms[key])
		}
	}
}

func TestRuleEngineVerbClasses(t *testing.T) {
	e := NewRuleEngine()
	cases := []struct {
		verb    string
		tense   types.Tense
		mood    types.Mood
		pronoun types.Pronoun
		key     string
		want    string
	}{
		{"comer", types.TensePresent, types.MoodIndicative, types.PronounTu, "tu", "comes"},
		{"vivir", types.TensePresent, types.MoodIndicative, types.PronounNosotros, "nosotros", "vivimos"},
		{"comer", types.TenseImperfect, types.MoodIndicative, types.PronounYo, "yo", "comía"},
		{"hablar", types.TensePreterite, types.MoodIndicative, types.PronounYo, "yo", "hablé"},
		{"vivir", types.TenseFuture, types.MoodIndicative, types.PronounTu, "tu", "vivirás"},
		{"hablar", types.TensePresentPerfect, types.MoodIndicative, types.PronounYo, "yo", "he hablado"},
		{"comer", types.TensePastAnterior, types.MoodIndicative, types.PronounTu, "tu", "hubiste comido"},
		{"vivir", types.TenseFuturePerfect, types.MoodIndicative, types.PronounUsted, "el/ella/usted", "habrá vivido"},
	}
	for _, c := range cases {
		resp, err := e.Conjugate(c.verb, c.tense, c.mood, c.pronoun)
		if err != nil {
			t.Fatalf("Conjugate(%s, %s): %v", c.verb, c.tense, err)
		}
		if resp.Forms[c.key] != c.want {
			t.Fatalf("%s %s [%s]: want=%s got=%s", c.verb, c.tense, c.key, c.want, resp.Forms[c.key])
		}
	}
}

func TestRuleEngineConditional(t *testing.T) {
	e := NewRuleEngine()
	resp, err := e.Conjugate("comer", types.TenseConditionalSimple, types.MoodConditional, types.PronounYo)
	if err != nil {
		t.Fatalf("Conjugate: %v", err)
	}
	if resp.Forms["yo"] != "comería" {
		t.Fatalf("conditional yo: want=comería got=%s", resp.Forms["yo"])
	}
	if resp.Forms["nosotros"] != "comeríamos" {
		t.Fatalf("conditional nosotros: want=comeríamos got=%s", resp.Forms["nosotros"])
	}

	if _, err := e.Conjugate("comer", types.TensePresent, types.MoodConditional, types.PronounYo); err == nil {
		t.Fatalf("conditional with non-conditional tense should fail")
	}
}

func TestRuleEngineSubjunctiveSingleForm(t *testing.T) {
	e := NewRuleEngine()
	cases := []struct {
		verb    string
		tense   types.Tense
		pronoun types.Pronoun
		want    string
	}{
		{"hablar", types.TensePresent, types.PronounYo, "hable"},
		{"comer", types.TensePresent, types.PronounUsted, "coma"},
		{"hablar", types.TenseImperfect, types.PronounTu, "hablaras"},
		{"vivir", types.TenseFuture, types.PronounNosotros, "viviéremos"},
		{"hablar", types.TensePresentPerfect, types.PronounYo, "haya hablado"},
	}
	for _, c := range cases {
		resp, err := e.Conjugate(c.verb, c.tense, types.MoodSubjunctive, c.pronoun)
		if err != nil {
			t.Fatalf("Conjugate(%s, %s, %s): %v", c.verb, c.tense, c.pronoun, err)
		}
		if resp.Kind != SingleForm {
			t.Fatalf("subjunctive response kind: want=SingleForm got=%v", resp.Kind)
		}
		if resp.Form != c.want {
			t.Fatalf("%s %s %s: want=%s got=%s", c.verb, c.tense, c.pronoun, c.want, resp.Form)
		}
	}
}

func TestRuleEngineImperative(t *testing.T) {
	e := NewRuleEngine()
	cases := []struct {
		verb    string
		pronoun types.Pronoun
		want    string
	}{
		{"hablar", types.PronounTu, "habla"},
		{"hablar", types.PronounUsted, "hable"},
		{"comer", types.PronounVosotros, "comed"},
		{"vivir", types.PronounVosotros, "vivid"},
		{"hablar", types.PronounUstedes, "hablen"},
		{"comer", types.PronounNosotros, "comamos"},
	}
	for _, c := range cases {
		resp, err := e.Conjugate(c.verb, types.TensePresent, types.MoodImperative, c.pronoun)
		if err != nil {
			t.Fatalf("Conjugate(%s, %s): %v", c.verb, c.pronoun, err)
		}
		if resp.Form != c.want {
			t.Fatalf("imperative %s %s: want=%s got=%s", c.verb, c.pronoun, c.want, resp.Form)
		}
	}

	if _, err := e.Conjugate("hablar", types.TensePresent, types.MoodImperative, types.PronounYo); err == nil {
		t.Fatalf("imperative yo should fail")
	}
	if _, err := e.Conjugate("hablar", types.TenseFuture, types.MoodImperative, types.PronounTu); err == nil {
		t.Fatalf("non-present imperative should fail")
	}
}

func TestRuleEngineRejectsUnknownShapes(t *testing.T) {
	e := NewRuleEngine()
	if _, err := e.Conjugate("xyz", types.TensePresent, types.MoodIndicative, types.PronounYo); err == nil {
		t.Fatalf("non-infinitive should fail")
	}
	if _, err := e.Conjugate("hablar", types.TenseConditionalSimple, types.MoodIndicative, types.PronounYo); err == nil {
		t.Fatalf("conditional_simple under indicative should fail")
	}
}
