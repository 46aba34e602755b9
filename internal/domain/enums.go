package domain

import "fmt"

// The three axes of a conjugation question. Each set is closed; new members
// are a schema change, not runtime data.

type Pronoun string

const (
	PronounYo       Pronoun = "yo"
	PronounTu       Pronoun = "tu"
	PronounEl       Pronoun = "el"
	PronounElla     Pronoun = "ella"
	PronounUsted    Pronoun = "usted"
	PronounNosotros Pronoun = "nosotros"
	PronounVosotros Pronoun = "vosotros"
	PronounEllos    Pronoun = "ellos"
	PronounUstedes  Pronoun = "ustedes"
)

type Tense string

const (
	TensePresent           Tense = "present"
	TenseImperfect         Tense = "imperfect"
	TensePreterite         Tense = "preterite"
	TenseFuture            Tense = "future"
	TensePresentPerfect    Tense = "present_perfect"
	TensePastAnterior      Tense = "past_anterior"
	TenseFuturePerfect     Tense = "future_perfect"
	TenseConditionalSimple Tense = "conditional_simple"
)

type Mood string

const (
	MoodIndicative  Mood = "indicative"
	MoodSubjunctive Mood = "subjunctive"
	MoodImperative  Mood = "imperative"
	MoodConditional Mood = "conditional"
)

var AllPronouns = []Pronoun{
	PronounYo, PronounTu, PronounEl, PronounElla, PronounUsted,
	PronounNosotros, PronounVosotros, PronounEllos, PronounUstedes,
}

var AllTenses = []Tense{
	TensePresent, TenseImperfect, TensePreterite, TenseFuture,
	TensePresentPerfect, TensePastAnterior, TenseFuturePerfect,
	TenseConditionalSimple,
}

var AllMoods = []Mood{
	MoodIndicative, MoodSubjunctive, MoodImperative, MoodConditional,
}

var (
	pronounSet = toSet(AllPronouns)
	tenseSet   = toSet(AllTenses)
	moodSet    = toSet(AllMoods)
)

func toSet[T comparable](vals []T) map[T]struct{} {
	s := make(map[T]struct{}, len(vals))
	for _, v := range vals {
		s[v] = struct{}{}
	}
	return s
}

func (p Pronoun) Valid() bool { _, ok := pronounSet[p]; return ok }
func (t Tense) Valid() bool   { _, ok := tenseSet[t]; return ok }
func (m Mood) Valid() bool    { _, ok := moodSet[m]; return ok }

func ParsePronoun(s string) (Pronoun, error) {
	p := Pronoun(s)
	if !p.Valid() {
		return "", fmt.Errorf("invalid pronoun %q", s)
	}
	return p, nil
}

func ParseTense(s string) (Tense, error) {
	t := Tense(s)
	if !t.Valid() {
		return "", fmt.Errorf("invalid tense %q", s)
	}
	return t, nil
}

func ParseMood(s string) (Mood, error) {
	m := Mood(s)
	if !m.Valid() {
		return "", fmt.Errorf("invalid mood %q", s)
	}
	return m, nil
}
