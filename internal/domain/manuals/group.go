package manuals

// Group rows are removed by the database when their category is deleted.
type Group struct {
	ID         uint   `gorm:"primaryKey;index:ix_groups_id" json:"id"`
	Name       string `gorm:"column:group_name;size:100;not null" json:"name"`
	CategoryID uint   `gorm:"column:category_id;not null" json:"category_id"`
}

func (Group) TableName() string { return "groups" }
