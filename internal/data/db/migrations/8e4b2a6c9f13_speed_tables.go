package migrations

import (
	"time"

	"gorm.io/gorm"
)

type speedReel struct {
	ID       int    `gorm:"primaryKey;index:ix_reels_id"`
	ReelName string `gorm:"column:reel_name;size:100;not null"`
}

func (speedReel) TableName() string { return "reels" }

type speedRoll struct {
	ID       int       `gorm:"primaryKey;index:ix_rolls_id"`
	RollName string    `gorm:"column:roll_name;size:100;not null"`
	ReelID   int       `gorm:"column:reel_id;not null"`
	Reel     speedReel `gorm:"foreignKey:ReelID;constraint:OnDelete:CASCADE"`
}

func (speedRoll) TableName() string { return "rolls" }

type speedRow struct {
	ID        int       `gorm:"primaryKey;index:ix_speeds_id"`
	Task      float64   `gorm:"column:task;not null"`
	Tspd      int       `gorm:"column:tspd;not null"`
	Fspd      bool      `gorm:"column:fspd;not null"`
	Bmav      int       `gorm:"column:bmav;not null"`
	Bemf      float64   `gorm:"column:bemf;not null"`
	Amav      int       `gorm:"column:amav;not null"`
	Aemf      float64   `gorm:"column:aemf;not null"`
	Memf      float64   `gorm:"column:memf;not null"`
	Corr      bool      `gorm:"column:corr;not null"`
	CreatedAt time.Time `gorm:"column:created_at;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
	RollID    int       `gorm:"column:roll_id;not null"`
	Roll      speedRoll `gorm:"foreignKey:RollID;constraint:OnDelete:CASCADE"`
}

func (speedRow) TableName() string { return "speeds" }

func createSpeedTables() *Revision {
	return &Revision{
		ID:      "8e4b2a6c9f13",
		Parent:  "5d1f0c3e7a92",
		Message: "create speed tables",
		Up: func(tx *gorm.DB) error {
			m := tx.Migrator()
			for _, model := range []any{&speedReel{}, &speedRoll{}, &speedRow{}} {
				if err := m.CreateTable(model); err != nil {
					return err
				}
			}
			return nil
		},
		Down: func(tx *gorm.DB) error {
			return tx.Migrator().DropTable(&speedRow{}, &speedRoll{}, &speedReel{})
		},
	}
}
