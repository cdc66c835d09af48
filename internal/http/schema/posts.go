package schema

import (
	"strings"
	"time"

	types "github.com/yungbote/aedb-backend/internal/domain"
	"github.com/yungbote/aedb-backend/internal/services"
)

type PostSchema struct {
	ID          uint      `json:"id,omitempty"`
	UserID      uint      `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func PostFromModel(p *types.Post) PostSchema {
	return PostSchema{
		ID:          p.ID,
		UserID:      p.UserID,
		Title:       p.Title,
		Description: p.Description,
		Content:     p.Content,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func PostsFromModels(ps []*types.Post) []PostSchema {
	out := make([]PostSchema, 0, len(ps))
	for _, p := range ps {
		out = append(out, PostFromModel(p))
	}
	return out
}

// PostInput is the writable part of a post; the author comes from the token.
type PostInput struct {
	Title       string `json:"title" binding:"required,max=100"`
	Description string `json:"description"`
	Content     string `json:"content" binding:"required"`
}

func (in PostInput) ToService() services.PostInput {
	return services.PostInput{
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		Content:     in.Content,
	}
}

// Page is the limit/offset window of a listing.
type Page struct {
	Limit  int `form:"limit" binding:"omitempty,min=1,max=100"`
	Offset int `form:"offset" binding:"omitempty,min=0"`
}
