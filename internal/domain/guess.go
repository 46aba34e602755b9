package domain

import (
	"time"

	"github.com/google/uuid"
)

// Guess is one generated question plus the user's eventual answer. The
// correct answer is computed at creation and never changes; UserAnswer and
// IsCorrect are written together by the single answer-submission update.
type Guess struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	// RoundID is nullable: the roundless questions mode records guesses
	// without a parent round.
	RoundID *uuid.UUID `gorm:"type:uuid;index" json:"round_id,omitempty"`
	UserID  *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"`
	VerbID  uuid.UUID  `gorm:"type:uuid;not null;index" json:"verb_id"`

	Pronoun Pronoun `gorm:"column:pronoun;type:text;not null" json:"pronoun"`
	Tense   Tense   `gorm:"column:tense;type:text;not null" json:"tense"`
	Mood    Mood    `gorm:"column:mood;type:text;not null" json:"mood"`

	CorrectAnswer string  `gorm:"column:correct_answer;type:text;not null" json:"correct_answer"`
	UserAnswer    *string `gorm:"column:user_answer;type:text" json:"user_answer,omitempty"`
	IsCorrect     *bool   `gorm:"column:is_correct" json:"is_correct,omitempty"`
	Skipped       bool    `gorm:"column:skipped;not null;default:false" json:"skipped"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime;index" json:"created_at"`

	Round *Round `gorm:"foreignKey:RoundID" json:"-"`
	Verb  *Verb  `gorm:"foreignKey:VerbID" json:"-"`
}

func (Guess) TableName() string { return "guesses" }
