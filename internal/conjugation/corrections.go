package conjugation

import (
	types "github.com/castellano-app/castellano-backend/internal/domain"
)

// correctionKey identifies one form the engine is known to get wrong. The
// pronoun is the engine-facing (normalized) one.
type correctionKey struct {
	Verb    string
	Tense   types.Tense
	Mood    types.Mood
	Pronoun types.Pronoun
}

// corrections patches known engine defects. Reviewed as data: extending it is
// a table edit, not an adapter change. Entries short-circuit extraction, so
// whatever the engine would have returned is irrelevant once a tuple is
// listed here.
//
// The present batch covers the high-frequency irregular verbs whose present
// subjunctive the engine mangles.
var corrections = map[correctionKey]string{
	{"ir", types.TensePresent, types.MoodSubjunctive, types.PronounYo}:          "vaya",
	{"ir", types.TensePresent, types.MoodSubjunctive, types.PronounTu}:          "vayas",
	{"ir", types.TensePresent, types.MoodSubjunctive, types.PronounUsted}:       "vaya",
	{"ir", types.TensePresent, types.MoodSubjunctive, types.PronounNosotros}:    "vayamos",
	{"ir", types.TensePresent, types.MoodSubjunctive, types.PronounVosotros}:    "vayáis",
	{"ir", types.TensePresent, types.MoodSubjunctive, types.PronounUstedes}:     "vayan",
	{"ser", types.TensePresent, types.MoodSubjunctive, types.PronounYo}:         "sea",
	{"ser", types.TensePresent, types.MoodSubjunctive, types.PronounUsted}:      "sea",
	{"ser", types.TensePresent, types.MoodSubjunctive, types.PronounUstedes}:    "sean",
	{"estar", types.TensePresent, types.MoodSubjunctive, types.PronounUsted}:    "esté",
	{"estar", types.TensePresent, types.MoodSubjunctive, types.PronounUstedes}:  "estén",
	{"tener", types.TensePresent, types.MoodSubjunctive, types.PronounUsted}:    "tenga",
	{"tener", types.TensePresent, types.MoodSubjunctive, types.PronounUstedes}:  "tengan",
	{"hacer", types.TensePresent, types.MoodSubjunctive, types.PronounUsted}:    "haga",
	{"venir", types.TensePresent, types.MoodSubjunctive, types.PronounUsted}:    "venga",
}

func lookupCorrection(verb string, tense types.Tense, mood types.Mood, pronoun types.Pronoun) (string, bool) {
	form, ok := corrections[correctionKey{Verb: verb, Tense: tense, Mood: mood, Pronoun: pronoun}]
	return form, ok
}
