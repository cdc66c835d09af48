package manuals

import (
	"context"

	"gorm.io/gorm"

	"github.com/yungbote/aedb-backend/internal/data/db"
	types "github.com/yungbote/aedb-backend/internal/domain"
	"github.com/yungbote/aedb-backend/internal/platform/logger"
)

type GroupRepo interface {
	Create(ctx context.Context, tx *gorm.DB, g *types.Group) (*types.Group, error)
	GetByID(ctx context.Context, tx *gorm.DB, groupID uint) (*types.Group, error)
	List(ctx context.Context, tx *gorm.DB) ([]*types.Group, error)
	ListByCategory(ctx context.Context, tx *gorm.DB, categoryID uint) ([]*types.Group, error)
	Update(ctx context.Context, tx *gorm.DB, g *types.Group) (*types.Group, error)
	Delete(ctx context.Context, tx *gorm.DB, groupID uint) error
}

type groupRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewGroupRepo(db *gorm.DB, baseLog *logger.Logger) GroupRepo {
	repoLog := baseLog.With("repo", "GroupRepo")
	return &groupRepo{db: db, log: repoLog}
}

func (gr *groupRepo) Create(ctx context.Context, tx *gorm.DB, g *types.Group) (*types.Group, error) {
	transaction := tx
	if transaction == nil {
		transaction = gr.db
	}
	if err := transaction.WithContext(ctx).Create(g).Error; err != nil {
		return nil, db.Translate(err)
	}
	return g, nil
}

func (gr *groupRepo) GetByID(ctx context.Context, tx *gorm.DB, groupID uint) (*types.Group, error) {
	transaction := tx
	if transaction == nil {
		transaction = gr.db
	}
	var g types.Group
	if err := transaction.WithContext(ctx).First(&g, groupID).Error; err != nil {
		return nil, db.Translate(err)
	}
	return &g, nil
}

func (gr *groupRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Group, error) {
	transaction := tx
	if transaction == nil {
		transaction = gr.db
	}
	results := []*types.Group{}
	if err := transaction.WithContext(ctx).Order("id").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (gr *groupRepo) ListByCategory(ctx context.Context, tx *gorm.DB, categoryID uint) ([]*types.Group, error) {
	transaction := tx
	if transaction == nil {
		transaction = gr.db
	}
	results := []*types.Group{}
	if err := transaction.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("id").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (gr *groupRepo) Update(ctx context.Context, tx *gorm.DB, g *types.Group) (*types.Group, error) {
	transaction := tx
	if transaction == nil {
		transaction = gr.db
	}
	res := transaction.WithContext(ctx).Model(g).Select("*").Updates(g)
	if res.Error != nil {
		return nil, db.Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, db.ErrNotFound
	}
	return g, nil
}

func (gr *groupRepo) Delete(ctx context.Context, tx *gorm.DB, groupID uint) error {
	transaction := tx
	if transaction == nil {
		transaction = gr.db
	}
	res := transaction.WithContext(ctx).Delete(&types.Group{}, groupID)
	if res.Error != nil {
		return db.Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return db.ErrNotFound
	}
	return nil
}
