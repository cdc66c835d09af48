package speed

import (
	"context"

	"gorm.io/gorm"

	"github.com/yungbote/aedb-backend/internal/data/db"
	types "github.com/yungbote/aedb-backend/internal/domain"
	"github.com/yungbote/aedb-backend/internal/platform/logger"
)

type SpeedRepo interface {
	Create(ctx context.Context, tx *gorm.DB, s *types.Speed) (*types.Speed, error)
	GetByID(ctx context.Context, tx *gorm.DB, speedID uint) (*types.Speed, error)
	List(ctx context.Context, tx *gorm.DB) ([]*types.Speed, error)
	ListByRoll(ctx context.Context, tx *gorm.DB, rollID uint) ([]*types.Speed, error)
	Update(ctx context.Context, tx *gorm.DB, s *types.Speed) (*types.Speed, error)
	Delete(ctx context.Context, tx *gorm.DB, speedID uint) error
}

type speedRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSpeedRepo(db *gorm.DB, baseLog *logger.Logger) SpeedRepo {
	return &speedRepo{db: db, log: baseLog.With("repo", "SpeedRepo")}
}

func (sr *speedRepo) Create(ctx context.Context, tx *gorm.DB, s *types.Speed) (*types.Speed, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	if err := transaction.WithContext(ctx).Create(s).Error; err != nil {
		return nil, db.Translate(err)
	}
	return s, nil
}

func (sr *speedRepo) GetByID(ctx context.Context, tx *gorm.DB, speedID uint) (*types.Speed, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	var s types.Speed
	if err := transaction.WithContext(ctx).First(&s, speedID).Error; err != nil {
		return nil, db.Translate(err)
	}
	return &s, nil
}

func (sr *speedRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Speed, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	results := []*types.Speed{}
	if err := transaction.WithContext(ctx).Order("id").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (sr *speedRepo) ListByRoll(ctx context.Context, tx *gorm.DB, rollID uint) ([]*types.Speed, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	results := []*types.Speed{}
	if err := transaction.WithContext(ctx).
		Where("roll_id = ?", rollID).
		Order("id").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// Update rewrites the parameter set. CreatedAt is kept; the model hook
// restamps UpdatedAt.
func (sr *speedRepo) Update(ctx context.Context, tx *gorm.DB, s *types.Speed) (*types.Speed, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	res := transaction.WithContext(ctx).Model(s).Select("*").Omit("created_at").Updates(s)
	if res.Error != nil {
		return nil, db.Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, db.ErrNotFound
	}
	return s, nil
}

func (sr *speedRepo) Delete(ctx context.Context, tx *gorm.DB, speedID uint) error {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	res := transaction.WithContext(ctx).Delete(&types.Speed{}, speedID)
	if res.Error != nil {
		return db.Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return db.ErrNotFound
	}
	return nil
}
