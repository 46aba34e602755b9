package practice

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/castellano-app/castellano-backend/internal/domain"
	"github.com/castellano-app/castellano-backend/internal/platform/logger"
)

// CoverageQuery filters the coverage aggregation.
type CoverageQuery struct {
	Moods        []types.Mood
	UserID       *uuid.UUID
	StartDate    *time.Time
	EndDate      *time.Time
	MinQuestions int
}

// CoverageBin is one (pronoun, tense, mood) cell with its question count.
type CoverageBin struct {
	Pronoun       types.Pronoun `json:"pronoun"`
	Tense         types.Tense   `json:"tense"`
	Mood          types.Mood    `json:"mood"`
	QuestionCount int           `json:"question_count"`
}

type GuessRepo interface {
	Create(ctx context.Context, tx *gorm.DB, rows []*types.Guess) ([]*types.Guess, error)

	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Guess, error)

	// ListByRoundID returns a round's guesses in creation order with the
	// verb relation preloaded.
	ListByRoundID(ctx context.Context, tx *gorm.DB, roundID uuid.UUID) ([]*types.Guess, error)

	CountCorrectByRoundID(ctx context.Context, tx *gorm.DB, roundID uuid.UUID) (int64, error)

	UpdateFields(ctx context.Context, tx *gorm.DB, id uuid.UUID, updates map[string]interface{}) error

	Coverage(ctx context.Context, tx *gorm.DB, q CoverageQuery) ([]CoverageBin, error)
}

type guessRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewGuessRepo(db *gorm.DB, baseLog *logger.Logger) GuessRepo {
	return &guessRepo{db: db, log: baseLog.With("repo", "GuessRepo")}
}

func (r *guessRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.Guess) ([]*types.Guess, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if len(rows) == 0 {
		return []*types.Guess{}, nil
	}
	if err := t.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *guessRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Guess, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if id == uuid.Nil {
		return nil, nil
	}
	var out []*types.Guess
	if err := t.WithContext(ctx).
		Preload("Verb").
		Where("id = ?", id).
		Limit(1).
		Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *guessRepo) ListByRoundID(ctx context.Context, tx *gorm.DB, roundID uuid.UUID) ([]*types.Guess, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.Guess
	if roundID == uuid.Nil {
		return out, nil
	}
	if err := t.WithContext(ctx).
		Preload("Verb").
		Where("round_id = ?", roundID).
		Order("created_at ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *guessRepo) CountCorrectByRoundID(ctx context.Context, tx *gorm.DB, roundID uuid.UUID) (int64, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if roundID == uuid.Nil {
		return 0, nil
	}
	var count int64
	if err := t.WithContext(ctx).
		Model(&types.Guess{}).
		Where("round_id = ? AND is_correct = ?", roundID, true).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *guessRepo) UpdateFields(ctx context.Context, tx *gorm.DB, id uuid.UUID, updates map[string]interface{}) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if id == uuid.Nil {
		return nil
	}
	if updates == nil {
		updates = map[string]interface{}{}
	}
	return t.WithContext(ctx).
		Model(&types.Guess{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *guessRepo) Coverage(ctx context.Context, tx *gorm.DB, q CoverageQuery) ([]CoverageBin, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	query := t.WithContext(ctx).
		Model(&types.Guess{}).
		Select("pronoun, tense, mood, COUNT(id) AS question_count")

	if len(q.Moods) > 0 {
		query = query.Where("mood IN ?", q.Moods)
	}
	if q.UserID != nil && *q.UserID != uuid.Nil {
		query = query.Where("user_id = ?", *q.UserID)
	}
	if q.StartDate != nil {
		query = query.Where("created_at >= ?", *q.StartDate)
	}
	if q.EndDate != nil {
		query = query.Where("created_at <= ?", *q.EndDate)
	}

	minQuestions := q.MinQuestions
	if minQuestions < 1 {
		minQuestions = 1
	}

	var bins []CoverageBin
	if err := query.
		Group("pronoun, tense, mood").
		Having("COUNT(id) >= ?", minQuestions).
		Order("question_count DESC").
		Scan(&bins).Error; err != nil {
		return nil, err
	}
	return bins, nil
}
