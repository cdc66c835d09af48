package posts

import (
	"context"

	"gorm.io/gorm"

	"github.com/yungbote/aedb-backend/internal/data/db"
	types "github.com/yungbote/aedb-backend/internal/domain"
	"github.com/yungbote/aedb-backend/internal/platform/logger"
)

type PostRepo interface {
	Create(ctx context.Context, tx *gorm.DB, p *types.Post) (*types.Post, error)
	GetByID(ctx context.Context, tx *gorm.DB, postID uint) (*types.Post, error)
	List(ctx context.Context, tx *gorm.DB, limit, offset int) ([]*types.Post, error)
	ListByUser(ctx context.Context, tx *gorm.DB, userID uint) ([]*types.Post, error)
	Update(ctx context.Context, tx *gorm.DB, p *types.Post) (*types.Post, error)
	Delete(ctx context.Context, tx *gorm.DB, postID uint) error
}

type postRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPostRepo(db *gorm.DB, baseLog *logger.Logger) PostRepo {
	repoLog := baseLog.With("repo", "PostRepo")
	return &postRepo{db: db, log: repoLog}
}

// Create leaves CreatedAt and UpdatedAt to gorm so both carry the same instant.
func (pr *postRepo) Create(ctx context.Context, tx *gorm.DB, p *types.Post) (*types.Post, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	if err := transaction.WithContext(ctx).Create(p).Error; err != nil {
		return nil, db.Translate(err)
	}
	return p, nil
}

func (pr *postRepo) GetByID(ctx context.Context, tx *gorm.DB, postID uint) (*types.Post, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	var p types.Post
	if err := transaction.WithContext(ctx).First(&p, postID).Error; err != nil {
		return nil, db.Translate(err)
	}
	return &p, nil
}

// List returns the newest posts first. A non-positive limit means no limit.
func (pr *postRepo) List(ctx context.Context, tx *gorm.DB, limit, offset int) ([]*types.Post, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	q := transaction.WithContext(ctx).Order("created_at DESC").Order("id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}
	results := []*types.Post{}
	if err := q.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (pr *postRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uint) ([]*types.Post, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	results := []*types.Post{}
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// Update writes every column of p; UpdatedAt is stamped by gorm.
func (pr *postRepo) Update(ctx context.Context, tx *gorm.DB, p *types.Post) (*types.Post, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	res := transaction.WithContext(ctx).Model(p).Select("*").Omit("created_at").Updates(p)
	if res.Error != nil {
		return nil, db.Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, db.ErrNotFound
	}
	return p, nil
}

func (pr *postRepo) Delete(ctx context.Context, tx *gorm.DB, postID uint) error {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	res := transaction.WithContext(ctx).Delete(&types.Post{}, postID)
	if res.Error != nil {
		return db.Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return db.ErrNotFound
	}
	return nil
}
