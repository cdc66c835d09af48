package manuals

import "gorm.io/gorm"

const DefaultLogoURL = "/media/manuals/default-logo.png"

type Category struct {
	ID      uint   `gorm:"primaryKey;index:ix_categories_id" json:"id"`
	Name    string `gorm:"column:category_name;size:100;not null" json:"name"`
	LogoURL string `gorm:"column:logo_url;not null" json:"logo_url"`
}

func (Category) TableName() string { return "categories" }

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.LogoURL == "" {
		c.LogoURL = DefaultLogoURL
	}
	return nil
}
