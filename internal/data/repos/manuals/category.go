package manuals

import (
	"context"

	"gorm.io/gorm"

	"github.com/yungbote/aedb-backend/internal/data/db"
	types "github.com/yungbote/aedb-backend/internal/domain"
	"github.com/yungbote/aedb-backend/internal/platform/logger"
)

type CategoryRepo interface {
	Create(ctx context.Context, tx *gorm.DB, c *types.Category) (*types.Category, error)
	GetByID(ctx context.Context, tx *gorm.DB, categoryID uint) (*types.Category, error)
	List(ctx context.Context, tx *gorm.DB) ([]*types.Category, error)
	Update(ctx context.Context, tx *gorm.DB, c *types.Category) (*types.Category, error)
	// Delete removes the category; the database cascades to its groups and manuals.
	Delete(ctx context.Context, tx *gorm.DB, categoryID uint) error
}

type categoryRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCategoryRepo(db *gorm.DB, baseLog *logger.Logger) CategoryRepo {
	repoLog := baseLog.With("repo", "CategoryRepo")
	return &categoryRepo{db: db, log: repoLog}
}

func (cr *categoryRepo) Create(ctx context.Context, tx *gorm.DB, c *types.Category) (*types.Category, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	if err := transaction.WithContext(ctx).Create(c).Error; err != nil {
		return nil, db.Translate(err)
	}
	return c, nil
}

func (cr *categoryRepo) GetByID(ctx context.Context, tx *gorm.DB, categoryID uint) (*types.Category, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	var c types.Category
	if err := transaction.WithContext(ctx).First(&c, categoryID).Error; err != nil {
		return nil, db.Translate(err)
	}
	return &c, nil
}

func (cr *categoryRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Category, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	results := []*types.Category{}
	if err := transaction.WithContext(ctx).Order("id").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (cr *categoryRepo) Update(ctx context.Context, tx *gorm.DB, c *types.Category) (*types.Category, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	if c.LogoURL == "" {
		c.LogoURL = types.DefaultLogoURL
	}
	res := transaction.WithContext(ctx).Model(c).Select("*").Updates(c)
	if res.Error != nil {
		return nil, db.Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, db.ErrNotFound
	}
	return c, nil
}

func (cr *categoryRepo) Delete(ctx context.Context, tx *gorm.DB, categoryID uint) error {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	res := transaction.WithContext(ctx).Delete(&types.Category{}, categoryID)
	if res.Error != nil {
		return db.Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return db.ErrNotFound
	}
	return nil
}
