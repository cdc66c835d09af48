package manuals

import (
	"path"
	"strings"
)

// Manual rows cascade from both their group and their category.
type Manual struct {
	ID         uint   `gorm:"primaryKey;index:ix_manuals_id" json:"id"`
	Title      string `gorm:"column:title;size:200;not null" json:"title"`
	FileURL    string `gorm:"column:file_url;not null" json:"file_url"`
	CategoryID uint   `gorm:"column:category_id;not null;index:ix_manuals_category_id" json:"category_id"`
	GroupID    uint   `gorm:"column:group_id;not null" json:"group_id"`
}

func (Manual) TableName() string { return "manuals" }

// CoverImageURL is derived from the file location: covers live next to the
// file with the extension replaced by .png. It is not stored.
func (m Manual) CoverImageURL() string {
	return CoverURLFor(m.FileURL)
}

func CoverURLFor(fileURL string) string {
	fileURL = strings.TrimSpace(fileURL)
	if fileURL == "" {
		return ""
	}
	base, query, _ := strings.Cut(fileURL, "?")
	ext := path.Ext(base)
	if ext != "" && !strings.Contains(ext, "/") {
		base = strings.TrimSuffix(base, ext)
	}
	out := base + ".png"
	if query != "" {
		out += "?" + query
	}
	return out
}
