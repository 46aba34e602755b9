package practice

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/castellano-app/castellano-backend/internal/domain"
	"github.com/castellano-app/castellano-backend/internal/platform/logger"
)

type RoundRepo interface {
	Create(ctx context.Context, tx *gorm.DB, row *types.Round) (*types.Round, error)

	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Round, error)

	// GetActive returns the most recently started round with no end
	// timestamp for the given user context (nil userID matches rounds
	// without an owner), or nil when none exists.
	GetActive(ctx context.Context, tx *gorm.DB, userID *uuid.UUID) (*types.Round, error)

	UpdateFields(ctx context.Context, tx *gorm.DB, id uuid.UUID, updates map[string]interface{}) error
}

type roundRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRoundRepo(db *gorm.DB, baseLog *logger.Logger) RoundRepo {
	return &roundRepo{db: db, log: baseLog.With("repo", "RoundRepo")}
}

func (r *roundRepo) Create(ctx context.Context, tx *gorm.DB, row *types.Round) (*types.Round, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if row == nil {
		return nil, nil
	}
	if err := t.WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (r *roundRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Round, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if id == uuid.Nil {
		return nil, nil
	}
	var out []*types.Round
	if err := t.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *roundRepo) GetActive(ctx context.Context, tx *gorm.DB, userID *uuid.UUID) (*types.Round, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	q := t.WithContext(ctx).Where("ended_at IS NULL")
	if userID != nil && *userID != uuid.Nil {
		q = q.Where("user_id = ?", *userID)
	} else {
		q = q.Where("user_id IS NULL")
	}
	var out []*types.Round
	if err := q.Order("started_at DESC").Limit(1).Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *roundRepo) UpdateFields(ctx context.Context, tx *gorm.DB, id uuid.UUID, updates map[string]interface{}) error {
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
		Model(&types.Round{}).
		Where("id = ?", id).
		Updates(updates).Error
}
