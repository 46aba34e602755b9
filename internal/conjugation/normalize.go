package conjugation

import (
	types "github.com/castellano-app/castellano-backend/internal/domain"
)

// pronounEngineMap remaps user-facing pronouns to the lemma the engine
// expects for non-subjunctive moods. Currently the identity map; kept as an
// explicit table because the engine contract, not this service, owns the
// spelling (accent-free "tu", "el").
var pronounEngineMap = map[types.Pronoun]types.Pronoun{
	types.PronounYo:       types.PronounYo,
	types.PronounTu:       types.PronounTu,
	types.PronounEl:       types.PronounEl,
	types.PronounElla:     types.PronounElla,
	types.PronounUsted:    types.PronounUsted,
	types.PronounNosotros: types.PronounNosotros,
	types.PronounVosotros: types.PronounVosotros,
	types.PronounEllos:    types.PronounEllos,
	types.PronounUstedes:  types.PronounUstedes,
}

// subjunctivePronounMap collapses grammatical person for subjunctive mood:
// the engine only produces third-person subjunctive forms under the formal
// usted/ustedes keys.
var subjunctivePronounMap = map[types.Pronoun]types.Pronoun{
	types.PronounYo:       types.PronounYo,
	types.PronounTu:       types.PronounTu,
	types.PronounEl:       types.PronounUsted,
	types.PronounElla:     types.PronounUsted,
	types.PronounUsted:    types.PronounUsted,
	types.PronounNosotros: types.PronounNosotros,
	types.PronounVosotros: types.PronounVosotros,
	types.PronounEllos:    types.PronounUstedes,
	types.PronounUstedes:  types.PronounUstedes,
}

// compoundKeyMap maps a user-facing pronoun to the joint key used by
// compound-keyed engine responses.
var compoundKeyMap = map[types.Pronoun]string{
	types.PronounYo:       "yo",
	types.PronounTu:       "tu",
	types.PronounEl:       "el/ella/usted",
	types.PronounElla:     "el/ella/usted",
	types.PronounUsted:    "el/ella/usted",
	types.PronounNosotros: "nosotros",
	types.PronounVosotros: "vosotros",
	types.PronounEllos:    "ellos/ellas/ustedes",
	types.PronounUstedes:  "ellos/ellas/ustedes",
}

// NormalizePronoun converts a user-facing pronoun to the form the engine
// expects for the given mood. Stable under reapplication.
func NormalizePronoun(pronoun types.Pronoun, mood types.Mood) types.Pronoun {
	if mood == types.MoodSubjunctive {
		if p, ok := subjunctivePronounMap[pronoun]; ok {
			return p
		}
		return pronoun
	}
	if p, ok := pronounEngineMap[pronoun]; ok {
		return p
	}
	return pronoun
}

// CompoundKey returns the joint person label a user-facing pronoun reads from
// in a compound-keyed response.
func CompoundKey(pronoun types.Pronoun) string {
	if k, ok := compoundKeyMap[pronoun]; ok {
		return k
	}
	return string(pronoun)
}
