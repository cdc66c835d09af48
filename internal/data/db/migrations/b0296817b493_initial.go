package migrations

import (
	"time"

	"gorm.io/gorm"
)

// Table shapes as of the initial revision. They are frozen here so later
// changes to the domain structs never alter what this revision creates.
type initialCategory struct {
	ID           int    `gorm:"primaryKey;index:ix_categories_id"`
	CategoryName string `gorm:"column:category_name;size:100;not null"`
	LogoURL      string `gorm:"column:logo_url;not null"`
}

func (initialCategory) TableName() string { return "categories" }

type initialUser struct {
	ID             int    `gorm:"primaryKey;index:ix_users_id"`
	Email          string `gorm:"column:email;not null;unique"`
	Name           string `gorm:"column:name;not null"`
	HashedPassword string `gorm:"column:hashed_password;not null"`
}

func (initialUser) TableName() string { return "users" }

type initialGroup struct {
	ID         int             `gorm:"primaryKey;index:ix_groups_id"`
	GroupName  string          `gorm:"column:group_name;size:100;not null"`
	CategoryID int             `gorm:"column:category_id;not null"`
	Category   initialCategory `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}

func (initialGroup) TableName() string { return "groups" }

type initialPost struct {
	ID          int         `gorm:"primaryKey;index:ix_posts_id"`
	UserID      int         `gorm:"column:user_id;not null"`
	User        initialUser `gorm:"foreignKey:UserID"`
	Content     string      `gorm:"column:content;type:text;not null"`
	CreatedAt   time.Time   `gorm:"column:created_at;not null"`
	UpdatedAt   time.Time   `gorm:"column:updated_at;not null"`
	Title       string      `gorm:"column:title;size:100;not null"`
	Description string      `gorm:"column:description;type:text;not null"`
}

func (initialPost) TableName() string { return "posts" }

type initialManual struct {
	ID      int          `gorm:"primaryKey;index:ix_manuals_id"`
	Title   string       `gorm:"column:title;size:200;not null"`
	FileURL string       `gorm:"column:file_url;not null"`
	GroupID int          `gorm:"column:group_id;not null"`
	Group   initialGroup `gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`
}

func (initialManual) TableName() string { return "manuals" }

func initialMigration() *Revision {
	return &Revision{
		ID:      "b0296817b493",
		Message: "initial migration",
		Up: func(tx *gorm.DB) error {
			m := tx.Migrator()
			for _, model := range []any{&initialCategory{}, &initialUser{}, &initialGroup{}, &initialPost{}, &initialManual{}} {
				if err := m.CreateTable(model); err != nil {
					return err
				}
			}
			return nil
		},
		Down: func(tx *gorm.DB) error {
			m := tx.Migrator()
			for _, model := range []any{&initialManual{}, &initialPost{}, &initialGroup{}, &initialUser{}, &initialCategory{}} {
				if err := m.DropTable(model); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
