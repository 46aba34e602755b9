package conjugation

import (
	types "github.com/castellano-app/castellano-backend/internal/domain"
)

// Engine is the opaque conjugation capability. Implementations return either
// a full person table (compound-keyed, indicative-like moods) or a single
// surface form (moods the engine collapses to one form per call).
type Engine interface {
	Conjugate(verb string, tense types.Tense, mood types.Mood, pronoun types.Pronoun) (Response, error)
}

// Response is a tagged variant over the two shapes an engine can return.
// Exactly one of the accessors is meaningful, discriminated by Kind.
type ResponseKind int

const (
	// CompoundKeyed: a map keyed by joint person labels such as
	// "el/ella/usted" and "ellos/ellas/ustedes".
	CompoundKeyed ResponseKind = iota
	// SingleForm: one surface form for the requested pronoun.
	SingleForm
)

type Response struct {
	Kind  ResponseKind
	Forms map[string]string
	Form  string
}

func NewCompoundResponse(forms map[string]string) Response {
	return Response{Kind: CompoundKeyed, Forms: forms}
}

func NewSingleFormResponse(form string) Response {
	return Response{Kind: SingleForm, Form: form}
}
