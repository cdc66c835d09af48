package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/yungbote/aedb-backend/internal/data/repos"
	types "github.com/yungbote/aedb-backend/internal/domain"
	"github.com/yungbote/aedb-backend/internal/platform/apierr"
	"github.com/yungbote/aedb-backend/internal/platform/ctxutil"
	"github.com/yungbote/aedb-backend/internal/platform/logger"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// PostInput carries the author-editable fields of a post.
type PostInput struct {
	Title       string
	Description string
	Content     string
}

type PostService interface {
	CreatePost(ctx context.Context, in PostInput) (*types.Post, error)
	GetPost(ctx context.Context, postID uint) (*types.Post, error)
	ListPosts(ctx context.Context, limit, offset int) ([]*types.Post, error)
	UpdatePost(ctx context.Context, postID uint, in PostInput) (*types.Post, error)
	DeletePost(ctx context.Context, postID uint) error
}

type postService struct {
	db       *gorm.DB
	log      *logger.Logger
	postRepo repos.PostRepo
}

func NewPostService(db *gorm.DB, baseLog *logger.Logger, postRepo repos.PostRepo) PostService {
	return &postService{
		db:       db,
		log:      baseLog.With("service", "PostService"),
		postRepo: postRepo,
	}
}

func (ps *postService) CreatePost(ctx context.Context, in PostInput) (*types.Post, error) {
	userID := ctxutil.UserID(ctx)
	if userID == 0 {
		return nil, apierr.Unauthorized(errors.New("not authenticated"))
	}
	post := &types.Post{
		UserID:      userID,
		Title:       in.Title,
		Description: in.Description,
		Content:     in.Content,
	}
	if _, err := ps.postRepo.Create(ctx, nil, post); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return post, nil
}

func (ps *postService) GetPost(ctx context.Context, postID uint) (*types.Post, error) {
	return ps.postRepo.GetByID(ctx, nil, postID)
}

func (ps *postService) ListPosts(ctx context.Context, limit, offset int) ([]*types.Post, error) {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return ps.postRepo.List(ctx, nil, limit, offset)
}

func (ps *postService) UpdatePost(ctx context.Context, postID uint, in PostInput) (*types.Post, error) {
	var updated *types.Post
	err := ps.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		post, err := ps.ownedPost(ctx, tx, postID)
		if err != nil {
			return err
		}
		post.Title = in.Title
		post.Description = in.Description
		post.Content = in.Content
		updated, err = ps.postRepo.Update(ctx, tx, post)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (ps *postService) DeletePost(ctx context.Context, postID uint) error {
	return ps.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := ps.ownedPost(ctx, tx, postID); err != nil {
			return err
		}
		return ps.postRepo.Delete(ctx, tx, postID)
	})
}

// ownedPost loads a post the caller authored.
func (ps *postService) ownedPost(ctx context.Context, tx *gorm.DB, postID uint) (*types.Post, error) {
	userID := ctxutil.UserID(ctx)
	if userID == 0 {
		return nil, apierr.Unauthorized(errors.New("not authenticated"))
	}
	post, err := ps.postRepo.GetByID(ctx, tx, postID)
	if err != nil {
		return nil, err
	}
	if post.UserID != userID {
		ps.log.Warn("Post edit by non-author", "post_id", postID, "user_id", userID)
		return nil, apierr.Forbidden(errors.New("only the author can modify this post"))
	}
	return post, nil
}
