package speed

import (
	"time"
	_ "time/tzdata"

	"gorm.io/gorm"
)

// Location is the fixed zone speed timestamps are recorded in.
var Location = mustLoadLocation("Europe/Moscow")

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

// Speed is one speed/EMF parameter set of a roll.
type Speed struct {
	ID          uint      `gorm:"primaryKey;index:ix_speeds_id" json:"id"`
	Task        float64   `gorm:"column:task;not null" json:"task"`
	TargetSpeed int       `gorm:"column:tspd;not null" json:"tspd"`
	FixedSpeed  bool      `gorm:"column:fspd;not null" json:"fspd"`
	BaseMAV     int       `gorm:"column:bmav;not null" json:"bmav"`
	BaseEMF     float64   `gorm:"column:bemf;not null" json:"bemf"`
	ActiveMAV   int       `gorm:"column:amav;not null" json:"amav"`
	ActiveEMF   float64   `gorm:"column:aemf;not null" json:"aemf"`
	MaxEMF      float64   `gorm:"column:memf;not null" json:"memf"`
	Corrected   bool      `gorm:"column:corr;not null" json:"corr"`
	CreatedAt   time.Time `gorm:"column:created_at;not null;autoCreateTime:false" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;not null;autoUpdateTime:false" json:"updated_at"`
	RollID      uint      `gorm:"column:roll_id;not null" json:"roll_id"`
}

func (Speed) TableName() string { return "speeds" }

func (s *Speed) BeforeCreate(tx *gorm.DB) error {
	now := tx.NowFunc().In(Location)
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	s.UpdatedAt = s.CreatedAt
	return nil
}

func (s *Speed) BeforeUpdate(tx *gorm.DB) error {
	tx.Statement.SetColumn("UpdatedAt", tx.NowFunc().In(Location))
	return nil
}
