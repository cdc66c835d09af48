package manuals

import (
	"context"

	"gorm.io/gorm"

	"github.com/yungbote/aedb-backend/internal/data/db"
	types "github.com/yungbote/aedb-backend/internal/domain"
	"github.com/yungbote/aedb-backend/internal/platform/logger"
)

// ManualFilter narrows List; zero fields match everything.
type ManualFilter struct {
	CategoryID uint
	GroupID    uint
}

type ManualRepo interface {
	Create(ctx context.Context, tx *gorm.DB, m *types.Manual) (*types.Manual, error)
	GetByID(ctx context.Context, tx *gorm.DB, manualID uint) (*types.Manual, error)
	List(ctx context.Context, tx *gorm.DB, filter ManualFilter) ([]*types.Manual, error)
	ListByGroup(ctx context.Context, tx *gorm.DB, groupID uint) ([]*types.Manual, error)
	Update(ctx context.Context, tx *gorm.DB, m *types.Manual) (*types.Manual, error)
	// MoveGroup points every manual of groupID at categoryID.
	MoveGroup(ctx context.Context, tx *gorm.DB, groupID, categoryID uint) (int64, error)
	Delete(ctx context.Context, tx *gorm.DB, manualID uint) error
}

type manualRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewManualRepo(db *gorm.DB, baseLog *logger.Logger) ManualRepo {
	repoLog := baseLog.With("repo", "ManualRepo")
	return &manualRepo{db: db, log: repoLog}
}

func (mr *manualRepo) Create(ctx context.Context, tx *gorm.DB, m *types.Manual) (*types.Manual, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}
	if err := transaction.WithContext(ctx).Create(m).Error; err != nil {
		return nil, db.Translate(err)
	}
	return m, nil
}

func (mr *manualRepo) GetByID(ctx context.Context, tx *gorm.DB, manualID uint) (*types.Manual, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}
	var m types.Manual
	if err := transaction.WithContext(ctx).First(&m, manualID).Error; err != nil {
		return nil, db.Translate(err)
	}
	return &m, nil
}

func (mr *manualRepo) List(ctx context.Context, tx *gorm.DB, filter ManualFilter) ([]*types.Manual, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}
	q := transaction.WithContext(ctx)
	if filter.CategoryID != 0 {
		q = q.Where("category_id = ?", filter.CategoryID)
	}
	if filter.GroupID != 0 {
		q = q.Where("group_id = ?", filter.GroupID)
	}
	results := []*types.Manual{}
	if err := q.Order("id").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (mr *manualRepo) ListByGroup(ctx context.Context, tx *gorm.DB, groupID uint) ([]*types.Manual, error) {
	return mr.List(ctx, tx, ManualFilter{GroupID: groupID})
}

func (mr *manualRepo) Update(ctx context.Context, tx *gorm.DB, m *types.Manual) (*types.Manual, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}
	res := transaction.WithContext(ctx).Model(m).Select("*").Updates(m)
	if res.Error != nil {
		return nil, db.Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, db.ErrNotFound
	}
	return m, nil
}

func (mr *manualRepo) MoveGroup(ctx context.Context, tx *gorm.DB, groupID, categoryID uint) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}
	res := transaction.WithContext(ctx).
		Model(&types.Manual{}).
		Where("group_id = ?", groupID).
		Update("category_id", categoryID)
	if res.Error != nil {
		return 0, db.Translate(res.Error)
	}
	return res.RowsAffected, nil
}

func (mr *manualRepo) Delete(ctx context.Context, tx *gorm.DB, manualID uint) error {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}
	res := transaction.WithContext(ctx).Delete(&types.Manual{}, manualID)
	if res.Error != nil {
		return db.Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return db.ErrNotFound
	}
	return nil
}
