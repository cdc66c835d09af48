package speed

import (
	"context"

	"gorm.io/gorm"

	"github.com/yungbote/aedb-backend/internal/data/db"
	types "github.com/yungbote/aedb-backend/internal/domain"
	"github.com/yungbote/aedb-backend/internal/platform/logger"
)

type RollRepo interface {
	Create(ctx context.Context, tx *gorm.DB, r *types.Roll) (*types.Roll, error)
	GetByID(ctx context.Context, tx *gorm.DB, rollID uint) (*types.Roll, error)
	List(ctx context.Context, tx *gorm.DB) ([]*types.Roll, error)
	ListByReel(ctx context.Context, tx *gorm.DB, reelID uint) ([]*types.Roll, error)
	Update(ctx context.Context, tx *gorm.DB, r *types.Roll) (*types.Roll, error)
	Delete(ctx context.Context, tx *gorm.DB, rollID uint) error
}

type rollRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRollRepo(db *gorm.DB, baseLog *logger.Logger) RollRepo {
	return &rollRepo{db: db, log: baseLog.With("repo", "RollRepo")}
}

func (rr *rollRepo) Create(ctx context.Context, tx *gorm.DB, r *types.Roll) (*types.Roll, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	if err := transaction.WithContext(ctx).Create(r).Error; err != nil {
		return nil, db.Translate(err)
	}
	return r, nil
}

func (rr *rollRepo) GetByID(ctx context.Context, tx *gorm.DB, rollID uint) (*types.Roll, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	var r types.Roll
	if err := transaction.WithContext(ctx).First(&r, rollID).Error; err != nil {
		return nil, db.Translate(err)
	}
	return &r, nil
}

func (rr *rollRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Roll, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	results := []*types.Roll{}
	if err := transaction.WithContext(ctx).Order("id").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (rr *rollRepo) ListByReel(ctx context.Context, tx *gorm.DB, reelID uint) ([]*types.Roll, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	results := []*types.Roll{}
	if err := transaction.WithContext(ctx).
		Where("reel_id = ?", reelID).
		Order("id").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (rr *rollRepo) Update(ctx context.Context, tx *gorm.DB, r *types.Roll) (*types.Roll, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	res := transaction.WithContext(ctx).Model(r).Select("*").Updates(r)
	if res.Error != nil {
		return nil, db.Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, db.ErrNotFound
	}
	return r, nil
}

func (rr *rollRepo) Delete(ctx context.Context, tx *gorm.DB, rollID uint) error {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	res := transaction.WithContext(ctx).Delete(&types.Roll{}, rollID)
	if res.Error != nil {
		return db.Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return db.ErrNotFound
	}
	return nil
}
