package domain

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Filters selects the question space for a round. Every list must be
// non-empty and hold only known enum members.
type Filters struct {
	Pronoun []Pronoun `json:"pronoun"`
	Tense   []Tense   `json:"tense"`
	Mood    []Mood    `json:"mood"`
}

var ErrInvalidFilters = errors.New("filters must include non-empty pronoun, tense and mood lists")

func (f Filters) Validate() error {
	if len(f.Pronoun) == 0 || len(f.Tense) == 0 || len(f.Mood) == 0 {
		return ErrInvalidFilters
	}
	for _, p := range f.Pronoun {
		if !p.Valid() {
			return ErrInvalidFilters
		}
	}
	for _, t := range f.Tense {
		if !t.Valid() {
			return ErrInvalidFilters
		}
	}
	for _, m := range f.Mood {
		if !m.Valid() {
			return ErrInvalidFilters
		}
	}
	return nil
}

func (f Filters) JSON() (datatypes.JSON, error) {
	b, err := json.Marshal(f)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}

// Round is one practice session. Active while EndedAt is nil; completion sets
// EndedAt and recomputes NumCorrectAnswers from the round's guesses.
type Round struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	UserID *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"`

	StartedAt time.Time  `gorm:"column:started_at;not null;autoCreateTime" json:"started_at"`
	EndedAt   *time.Time `gorm:"column:ended_at;index" json:"ended_at,omitempty"`

	Filters datatypes.JSON `gorm:"column:filters" json:"filters"`

	NumQuestions      int `gorm:"column:num_questions;not null;default:0" json:"num_questions"`
	NumCorrectAnswers int `gorm:"column:num_correct_answers;not null;default:0" json:"num_correct_answers"`

	Guesses []*Guess `gorm:"foreignKey:RoundID" json:"-"`
}

func (Round) TableName() string { return "rounds" }
