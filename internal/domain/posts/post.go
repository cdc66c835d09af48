package posts

import "time"

// Post belongs to the user referenced by UserID. CreatedAt and UpdatedAt are
// maintained by gorm: equal on insert, UpdatedAt advanced on every update.
type Post struct {
	ID          uint      `gorm:"primaryKey;index:ix_posts_id" json:"id"`
	UserID      uint      `gorm:"column:user_id;not null" json:"user_id"`
	Content     string    `gorm:"column:content;type:text;not null" json:"content"`
	CreatedAt   time.Time `gorm:"column:created_at;not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
	Title       string    `gorm:"column:title;size:100;not null" json:"title"`
	Description string    `gorm:"column:description;type:text;not null" json:"description"`
}

func (Post) TableName() string { return "posts" }
