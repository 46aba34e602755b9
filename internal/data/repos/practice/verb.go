package practice

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/castellano-app/castellano-backend/internal/domain"
	"github.com/castellano-app/castellano-backend/internal/platform/logger"
)

type VerbRepo interface {
	Create(ctx context.Context, tx *gorm.DB, rows []*types.Verb) ([]*types.Verb, error)

	GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.Verb, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Verb, error)
	GetByInfinitive(ctx context.Context, tx *gorm.DB, infinitive string) (*types.Verb, error)

	// ListRanked returns up to limit ranked verbs ordered by ascending
	// frequency rank. Unranked verbs never appear.
	ListRanked(ctx context.Context, tx *gorm.DB, limit int) ([]*types.Verb, error)

	Update(ctx context.Context, tx *gorm.DB, row *types.Verb) error
}

type verbRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewVerbRepo(db *gorm.DB, baseLog *logger.Logger) VerbRepo {
	return &verbRepo{db: db, log: baseLog.With("repo", "VerbRepo")}
}

func (r *verbRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.Verb) ([]*types.Verb, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if len(rows) == 0 {
		return []*types.Verb{}, nil
	}
	if err := t.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *verbRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.Verb, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.Verb
	if len(ids) == 0 {
		return out, nil
	}
	if err := t.WithContext(ctx).Where("id IN ?", ids).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *verbRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Verb, error) {
	if id == uuid.Nil {
		return nil, nil
	}
	rows, err := r.GetByIDs(ctx, tx, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

func (r *verbRepo) GetByInfinitive(ctx context.Context, tx *gorm.DB, infinitive string) (*types.Verb, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if infinitive == "" {
		return nil, nil
	}
	var out []*types.Verb
	if err := t.WithContext(ctx).Where("infinitive = ?", infinitive).Limit(1).Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *verbRepo) ListRanked(ctx context.Context, tx *gorm.DB, limit int) ([]*types.Verb, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.Verb
	if limit <= 0 {
		return out, nil
	}
	if err := t.WithContext(ctx).
		Where("tubelex_rank IS NOT NULL").
		Order("tubelex_rank ASC").
		Limit(limit).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *verbRepo) Update(ctx context.Context, tx *gorm.DB, row *types.Verb) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if row == nil {
		return nil
	}
	return t.WithContext(ctx).Save(row).Error
}
