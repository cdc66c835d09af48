package speed

import (
	"context"

	"gorm.io/gorm"

	"github.com/yungbote/aedb-backend/internal/data/db"
	types "github.com/yungbote/aedb-backend/internal/domain"
	"github.com/yungbote/aedb-backend/internal/platform/logger"
)

type ReelRepo interface {
	Create(ctx context.Context, tx *gorm.DB, r *types.Reel) (*types.Reel, error)
	GetByID(ctx context.Context, tx *gorm.DB, reelID uint) (*types.Reel, error)
	List(ctx context.Context, tx *gorm.DB) ([]*types.Reel, error)
	Update(ctx context.Context, tx *gorm.DB, r *types.Reel) (*types.Reel, error)
	Delete(ctx context.Context, tx *gorm.DB, reelID uint) error
}

type reelRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewReelRepo(db *gorm.DB, baseLog *logger.Logger) ReelRepo {
	return &reelRepo{db: db, log: baseLog.With("repo", "ReelRepo")}
}

func (rr *reelRepo) Create(ctx context.Context, tx *gorm.DB, r *types.Reel) (*types.Reel, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	if err := transaction.WithContext(ctx).Create(r).Error; err != nil {
		return nil, db.Translate(err)
	}
	return r, nil
}

func (rr *reelRepo) GetByID(ctx context.Context, tx *gorm.DB, reelID uint) (*types.Reel, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	var r types.Reel
	if err := transaction.WithContext(ctx).First(&r, reelID).Error; err != nil {
		return nil, db.Translate(err)
	}
	return &r, nil
}

func (rr *reelRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Reel, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	results := []*types.Reel{}
	if err := transaction.WithContext(ctx).Order("id").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (rr *reelRepo) Update(ctx context.Context, tx *gorm.DB, r *types.Reel) (*types.Reel, error) {
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

// Delete removes the reel together with its rolls and their speeds.
func (rr *reelRepo) Delete(ctx context.Context, tx *gorm.DB, reelID uint) error {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	res := transaction.WithContext(ctx).Delete(&types.Reel{}, reelID)
	if res.Error != nil {
		return db.Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return db.ErrNotFound
	}
	return nil
}
