// Package speed holds the reel/roll/speed configuration tables.
package speed

type Reel struct {
	ID   uint   `gorm:"primaryKey;index:ix_reels_id" json:"id"`
	Name string `gorm:"column:reel_name;size:100;not null" json:"name"`
}

func (Reel) TableName() string { return "reels" }

// Roll is a forming roll of a reel; deleting the reel deletes its rolls.
type Roll struct {
	ID     uint   `gorm:"primaryKey;index:ix_rolls_id" json:"id"`
	Name   string `gorm:"column:roll_name;size:100;not null" json:"name"`
	ReelID uint   `gorm:"column:reel_id;not null" json:"reel_id"`
}

func (Roll) TableName() string { return "rolls" }
