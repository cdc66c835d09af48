package schema

import (
	"strings"
	"time"

	types "github.com/yungbote/aedb-backend/internal/domain"
	"github.com/yungbote/aedb-backend/internal/domain/speed"
)

type ReelSchema struct {
	ID   uint   `json:"id,omitempty"`
	Name string `json:"name" binding:"required,max=100"`
}

func ReelFromModel(r *types.Reel) ReelSchema {
	return ReelSchema{ID: r.ID, Name: r.Name}
}

func ReelsFromModels(rs []*types.Reel) []ReelSchema {
	out := make([]ReelSchema, 0, len(rs))
	for _, r := range rs {
		out = append(out, ReelFromModel(r))
	}
	return out
}

func (s ReelSchema) ToModel() *types.Reel {
	return &types.Reel{Name: strings.TrimSpace(s.Name)}
}

type RollSchema struct {
	ID     uint   `json:"id,omitempty"`
	Name   string `json:"name" binding:"required,max=100"`
	ReelID uint   `json:"reel_id" binding:"required,gt=0"`
}

func RollFromModel(r *types.Roll) RollSchema {
	return RollSchema{ID: r.ID, Name: r.Name, ReelID: r.ReelID}
}

func RollsFromModels(rs []*types.Roll) []RollSchema {
	out := make([]RollSchema, 0, len(rs))
	for _, r := range rs {
		out = append(out, RollFromModel(r))
	}
	return out
}

func (s RollSchema) ToModel() *types.Roll {
	return &types.Roll{Name: strings.TrimSpace(s.Name), ReelID: s.ReelID}
}

// SpeedSchema carries one speed parameter set. Timestamps are output only and
// reported in the Moscow zone they are recorded in.
type SpeedSchema struct {
	ID        uint      `json:"id,omitempty"`
	RollID    uint      `json:"roll_id" binding:"required,gt=0"`
	Task      float64   `json:"task"`
	Tspd      int       `json:"tspd" binding:"min=0"`
	Fspd      bool      `json:"fspd"`
	Bmav      int       `json:"bmav"`
	Bemf      float64   `json:"bemf"`
	Amav      int       `json:"amav"`
	Aemf      float64   `json:"aemf"`
	Memf      float64   `json:"memf"`
	Corr      bool      `json:"corr"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func SpeedFromModel(s *types.Speed) SpeedSchema {
	return SpeedSchema{
		ID:        s.ID,
		RollID:    s.RollID,
		Task:      s.Task,
		Tspd:      s.TargetSpeed,
		Fspd:      s.FixedSpeed,
		Bmav:      s.BaseMAV,
		Bemf:      s.BaseEMF,
		Amav:      s.ActiveMAV,
		Aemf:      s.ActiveEMF,
		Memf:      s.MaxEMF,
		Corr:      s.Corrected,
		CreatedAt: s.CreatedAt.In(speed.Location),
		UpdatedAt: s.UpdatedAt.In(speed.Location),
	}
}

func SpeedsFromModels(ss []*types.Speed) []SpeedSchema {
	out := make([]SpeedSchema, 0, len(ss))
	for _, s := range ss {
		out = append(out, SpeedFromModel(s))
	}
	return out
}

func (s SpeedSchema) ToModel() *types.Speed {
	return &types.Speed{
		RollID:      s.RollID,
		Task:        s.Task,
		TargetSpeed: s.Tspd,
		FixedSpeed:  s.Fspd,
		BaseMAV:     s.Bmav,
		BaseEMF:     s.Bemf,
		ActiveMAV:   s.Amav,
		ActiveEMF:   s.Aemf,
		MaxEMF:      s.Memf,
		Corrected:   s.Corr,
	}
}
