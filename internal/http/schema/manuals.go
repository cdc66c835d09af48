// Package schema defines the request and response bodies of the HTTP API and
// their translation to and from the domain models. Binding tags are checked
// by gin before a handler touches persistence.
package schema

import (
	"strings"

	types "github.com/yungbote/aedb-backend/internal/domain"
	"github.com/yungbote/aedb-backend/internal/domain/manuals"
)

// ManualSchema is a catalog manual. CoverImageURL is derived from FileURL on
// output and ignored on input.
type ManualSchema struct {
	ID            uint   `json:"id,omitempty"`
	Title         string `json:"title" binding:"required,max=200"`
	FileURL       string `json:"file_url" binding:"required"`
	CoverImageURL string `json:"cover_image_url"`
	CategoryID    uint   `json:"category_id" binding:"omitempty,gt=0"`
	GroupID       uint   `json:"group_id" binding:"required,gt=0"`
}

func ManualFromModel(m *types.Manual) ManualSchema {
	return ManualSchema{
		ID:            m.ID,
		Title:         m.Title,
		FileURL:       m.FileURL,
		CoverImageURL: manuals.CoverURLFor(m.FileURL),
		CategoryID:    m.CategoryID,
		GroupID:       m.GroupID,
	}
}

func ManualsFromModels(ms []*types.Manual) []ManualSchema {
	out := make([]ManualSchema, 0, len(ms))
	for _, m := range ms {
		out = append(out, ManualFromModel(m))
	}
	return out
}

func (s ManualSchema) ToModel() *types.Manual {
	return &types.Manual{
		Title:      strings.TrimSpace(s.Title),
		FileURL:    strings.TrimSpace(s.FileURL),
		CategoryID: s.CategoryID,
		GroupID:    s.GroupID,
	}
}

// ManualUploadForm is the multipart form accompanying an uploaded manual file.
type ManualUploadForm struct {
	Title      string `form:"title" binding:"required,max=200"`
	GroupID    uint   `form:"group_id" binding:"required,gt=0"`
	CategoryID uint   `form:"category_id" binding:"omitempty,gt=0"`
}

// ManualQuery filters the manual listing.
type ManualQuery struct {
	CategoryID uint `form:"category_id" binding:"omitempty,gt=0"`
	GroupID    uint `form:"group_id" binding:"omitempty,gt=0"`
}

type CategorySchema struct {
	ID      uint   `json:"id,omitempty"`
	Name    string `json:"name" binding:"required,max=100"`
	LogoURL string `json:"logo_url"`
}

func CategoryFromModel(c *types.Category) CategorySchema {
	return CategorySchema{ID: c.ID, Name: c.Name, LogoURL: c.LogoURL}
}

func CategoriesFromModels(cs []*types.Category) []CategorySchema {
	out := make([]CategorySchema, 0, len(cs))
	for _, c := range cs {
		out = append(out, CategoryFromModel(c))
	}
	return out
}

// ToModel leaves an empty logo for the model hook to default.
func (s CategorySchema) ToModel() *types.Category {
	return &types.Category{
		Name:    strings.TrimSpace(s.Name),
		LogoURL: strings.TrimSpace(s.LogoURL),
	}
}

type GroupSchema struct {
	ID         uint   `json:"id,omitempty"`
	Name       string `json:"name" binding:"required,max=100"`
	CategoryID uint   `json:"category_id" binding:"required,gt=0"`
}

func GroupFromModel(g *types.Group) GroupSchema {
	return GroupSchema{ID: g.ID, Name: g.Name, CategoryID: g.CategoryID}
}

func GroupsFromModels(gs []*types.Group) []GroupSchema {
	out := make([]GroupSchema, 0, len(gs))
	for _, g := range gs {
		out = append(out, GroupFromModel(g))
	}
	return out
}

func (s GroupSchema) ToModel() *types.Group {
	return &types.Group{Name: strings.TrimSpace(s.Name), CategoryID: s.CategoryID}
}
