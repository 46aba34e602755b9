package conjugation

import (
	"fmt"
	"strings"

	types "github.com/castellano-app/castellano-backend/internal/domain"
)

// RuleEngine is the built-in Engine: table-driven conjugation of regular
// -ar/-er/-ir verbs. Indicative and conditional moods answer with the full
// person table (compound-keyed); subjunctive and imperative collapse to the
// single requested form, mirroring the upstream engine's response shapes.
// Irregular verbs come out regularized; the adapter's correction table is the
// place to patch the ones that matter.
type RuleEngine struct{}

func NewRuleEngine() *RuleEngine { return &RuleEngine{} }

// Person order: yo, tu, el/ella/usted, nosotros, vosotros, ellos/ellas/ustedes.
var compoundKeys = [6]string{"yo", "tu", "el/ella/usted", "nosotros", "vosotros", "ellos/ellas/ustedes"}

var personIndex = map[types.Pronoun]int{
	types.PronounYo:       0,
	types.PronounTu:       1,
	types.PronounEl:       2,
	types.PronounElla:     2,
	types.PronounUsted:    2,
	types.PronounNosotros: 3,
	types.PronounVosotros: 4,
	types.PronounEllos:    5,
	types.PronounUstedes:  5,
}

type verbClass int

const (
	classAR verbClass = iota
	classER
	classIR
)

// Simple-tense endings appended to the stem, indexed by verb class.
var (
	presentIndicative = [3][6]string{
		{"o", "as", "a", "amos", "áis", "an"},
		{"o", "es", "e", "emos", "éis", "en"},
		{"o", "es", "e", "imos", "ís", "en"},
	}
	imperfectIndicative = [3][6]string{
		{"aba", "abas", "aba", "ábamos", "abais", "aban"},
		{"ía", "ías", "ía", "íamos", "íais", "ían"},
		{"ía", "ías", "ía", "íamos", "íais", "ían"},
	}
	preteriteIndicative = [3][6]string{
		{"é", "aste", "ó", "amos", "asteis", "aron"},
		{"í", "iste", "ió", "imos", "isteis", "ieron"},
		{"í", "iste", "ió", "imos", "isteis", "ieron"},
	}
	presentSubjunctive = [3][6]string{
		{"e", "es", "e", "emos", "éis", "en"},
		{"a", "as", "a", "amos", "áis", "an"},
		{"a", "as", "a", "amos", "áis", "an"},
	}
	imperfectSubjunctive = [3][6]string{
		{"ara", "aras", "ara", "áramos", "arais", "aran"},
		{"iera", "ieras", "iera", "iéramos", "ierais", "ieran"},
		{"iera", "ieras", "iera", "iéramos", "ierais", "ieran"},
	}
	futureSubjunctive = [3][6]string{
		{"are", "ares", "are", "áremos", "areis", "aren"},
		{"iere", "ieres", "iere", "iéremos", "iereis", "ieren"},
		{"iere", "ieres", "iere", "iéremos", "iereis", "ieren"},
	}
)

// Endings appended to the full infinitive.
var (
	futureIndicative  = [6]string{"é", "ás", "á", "emos", "éis", "án"}
	conditionalSimple = [6]string{"ía", "ías", "ía", "íamos", "íais", "ían"}
)

// Auxiliary "haber" paradigms for compound tenses.
var (
	haberPresent     = [6]string{"he", "has", "ha", "hemos", "habéis", "han"}
	haberPreterite   = [6]string{"hube", "hubiste", "hubo", "hubimos", "hubisteis", "hubieron"}
	haberFuture      = [6]string{"habré", "habrás", "habrá", "habremos", "habréis", "habrán"}
	haberSubjunctive = [6]string{"haya", "hayas", "haya", "hayamos", "hayáis", "hayan"}
)

func classify(verb string) (verbClass, string, error) {
	switch {
	case strings.HasSuffix(verb, "ar"):
		return classAR, strings.TrimSuffix(verb, "ar"), nil
	case strings.HasSuffix(verb, "er"):
		return classER, strings.TrimSuffix(verb, "er"), nil
	case strings.HasSuffix(verb, "ir"):
		return classIR, strings.TrimSuffix(verb, "ir"), nil
	default:
		return 0, "", fmt.Errorf("not an -ar/-er/-ir infinitive: %q", verb)
	}
}

func participle(class verbClass, stem string) string {
	if class == classAR {
		return stem + "ado"
	}
	return stem + "ido"
}

func (e *RuleEngine) Conjugate(verb string, tense types.Tense, mood types.Mood, pronoun types.Pronoun) (Response, error) {
	class, stem, err := classify(verb)
	if err != nil {
		return Response{}, err
	}

	switch mood {
	case types.MoodIndicative:
		forms, err := e.indicativeTable(verb, tense, class, stem)
		if err != nil {
			return Response{}, err
		}
		return NewCompoundResponse(keyed(forms)), nil

	case types.MoodConditional:
		if tense != types.TenseConditionalSimple {
			return Response{}, fmt.Errorf("unsupported conditional tense %q", tense)
		}
		var forms [6]string
		for i, end := range conditionalSimple {
			forms[i] = verb + end
		}
		return NewCompoundResponse(keyed(forms)), nil

	case types.MoodSubjunctive:
		forms, err := e.subjunctiveTable(tense, class, stem)
		if err != nil {
			return Response{}, err
		}
		idx, ok := personIndex[pronoun]
		if !ok {
			return Response{}, fmt.Errorf("unknown pronoun %q", pronoun)
		}
		return NewSingleFormResponse(forms[idx]), nil

	case types.MoodImperative:
		form, err := e.imperative(tense, class, stem, pronoun)
		if err != nil {
			return Response{}, err
		}
		return NewSingleFormResponse(form), nil

	default:
		return Response{}, fmt.Errorf("unknown mood %q", mood)
	}
}

func (e *RuleEngine) indicativeTable(verb string, tense types.Tense, class verbClass, stem string) ([6]string, error) {
	var forms [6]string
	switch tense {
	case types.TensePresent:
		for i, end := range presentIndicative[class] {
			forms[i] = stem + end
		}
	case types.TenseImperfect:
		for i, end := range imperfectIndicative[class] {
			forms[i] = stem + end
		}
	case types.TensePreterite:
		for i, end := range preteriteIndicative[class] {
			forms[i] = stem + end
		}
	case types.TenseFuture:
		for i, end := range futureIndicative {
			forms[i] = verb + end
		}
	case types.TensePresentPerfect:
		part := participle(class, stem)
		for i, aux := range haberPresent {
			forms[i] = aux + " " + part
		}
	case types.TensePastAnterior:
		part := participle(class, stem)
		for i, aux := range haberPreterite {
			forms[i] = aux + " " + part
		}
	case types.TenseFuturePerfect:
		part := participle(class, stem)
		for i, aux := range haberFuture {
			forms[i] = aux + " " + part
		}
	default:
		return forms, fmt.Errorf("unsupported indicative tense %q", tense)
	}
	return forms, nil
}

func (e *RuleEngine) subjunctiveTable(tense types.Tense, class verbClass, stem string) ([6]string, error) {
	var forms [6]string
	switch tense {
	case types.TensePresent:
		for i, end := range presentSubjunctive[class] {
			forms[i] = stem + end
		}
	case types.TenseImperfect:
		for i, end := range imperfectSubjunctive[class] {
			forms[i] = stem + end
		}
	case types.TenseFuture:
		for i, end := range futureSubjunctive[class] {
			forms[i] = stem + end
		}
	case types.TensePresentPerfect:
		part := participle(class, stem)
		for i, aux := range haberSubjunctive {
			forms[i] = aux + " " + part
		}
	default:
		return forms, fmt.Errorf("unsupported subjunctive tense %q", tense)
	}
	return forms, nil
}

func (e *RuleEngine) imperative(tense types.Tense, class verbClass, stem string, pronoun types.Pronoun) (string, error) {
	if tense != types.TensePresent {
		return "", fmt.Errorf("unsupported imperative tense %q", tense)
	}
	switch pronoun {
	case types.PronounTu:
		return stem + presentIndicative[class][2], nil
	case types.PronounUsted, types.PronounEl, types.PronounElla:
		return stem + presentSubjunctive[class][2], nil
	case types.PronounNosotros:
		return stem + presentSubjunctive[class][3], nil
	case types.PronounVosotros:
		switch class {
		case classAR:
			return stem + "ad", nil
		case classER:
			return stem + "ed", nil
		default:
			return stem + "id", nil
		}
	case types.PronounUstedes, types.PronounEllos:
		return stem + presentSubjunctive[class][5], nil
	default:
		return "", fmt.Errorf("no imperative form for pronoun %q", pronoun)
	}
}

func keyed(forms [6]string) map[string]string {
	m := make(map[string]string, len(compoundKeys))
	for i, k := range compoundKeys {
		m[k] = forms[i]
	}
	return m
}
