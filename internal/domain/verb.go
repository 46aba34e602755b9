package domain

import (
	"time"

	"github.com/google/uuid"
)

// Verb is one infinitive from the catalog. Ranked verbs come from the TubeLex
// corpus import; unranked ones are created lazily the first time a generated
// question references them.
type Verb struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	Infinitive string  `gorm:"column:infinitive;type:text;not null;uniqueIndex" json:"infinitive"`
	Definition *string `gorm:"column:definition;type:text" json:"definition,omitempty"`

	TubelexRank  *int `gorm:"column:tubelex_rank;index" json:"tubelex_rank,omitempty"`
	TubelexCount *int `gorm:"column:tubelex_count" json:"tubelex_count,omitempty"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

func (Verb) TableName() string { return "verbs" }
