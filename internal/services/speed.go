package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/yungbote/aedb-backend/internal/data/repos"
	types "github.com/yungbote/aedb-backend/internal/domain"
	"github.com/yungbote/aedb-backend/internal/platform/logger"
)

// SpeedService manages reels, their rolls and the rolls' speed parameter sets.
type SpeedService interface {
	CreateReel(ctx context.Context, r *types.Reel) (*types.Reel, error)
	GetReel(ctx context.Context, reelID uint) (*types.Reel, error)
	ListReels(ctx context.Context) ([]*types.Reel, error)
	UpdateReel(ctx context.Context, reelID uint, r *types.Reel) (*types.Reel, error)
	DeleteReel(ctx context.Context, reelID uint) error
	ListReelRolls(ctx context.Context, reelID uint) ([]*types.Roll, error)

	CreateRoll(ctx context.Context, r *types.Roll) (*types.Roll, error)
	GetRoll(ctx context.Context, rollID uint) (*types.Roll, error)
	ListRolls(ctx context.Context) ([]*types.Roll, error)
	UpdateRoll(ctx context.Context, rollID uint, r *types.Roll) (*types.Roll, error)
	DeleteRoll(ctx context.Context, rollID uint) error
	ListRollSpeeds(ctx context.Context, rollID uint) ([]*types.Speed, error)

	CreateSpeed(ctx context.Context, s *types.Speed) (*types.Speed, error)
	GetSpeed(ctx context.Context, speedID uint) (*types.Speed, error)
	ListSpeeds(ctx context.Context) ([]*types.Speed, error)
	UpdateSpeed(ctx context.Context, speedID uint, s *types.Speed) (*types.Speed, error)
	DeleteSpeed(ctx context.Context, speedID uint) error
}

type speedService struct {
	db        *gorm.DB
	log       *logger.Logger
	reelRepo  repos.ReelRepo
	rollRepo  repos.RollRepo
	speedRepo repos.SpeedRepo
}

func NewSpeedService(
	db *gorm.DB,
	baseLog *logger.Logger,
	reelRepo repos.ReelRepo,
	rollRepo repos.RollRepo,
	speedRepo repos.SpeedRepo,
) SpeedService {
	return &speedService{
		db:        db,
		log:       baseLog.With("service", "SpeedService"),
		reelRepo:  reelRepo,
		rollRepo:  rollRepo,
		speedRepo: speedRepo,
	}
}

func (ss *speedService) CreateReel(ctx context.Context, r *types.Reel) (*types.Reel, error) {
	r.ID = 0
	return ss.reelRepo.Create(ctx, nil, r)
}

func (ss *speedService) GetReel(ctx context.Context, reelID uint) (*types.Reel, error) {
	return ss.reelRepo.GetByID(ctx, nil, reelID)
}

func (ss *speedService) ListReels(ctx context.Context) ([]*types.Reel, error) {
	return ss.reelRepo.List(ctx, nil)
}

func (ss *speedService) UpdateReel(ctx context.Context, reelID uint, r *types.Reel) (*types.Reel, error) {
	r.ID = reelID
	return ss.reelRepo.Update(ctx, nil, r)
}

func (ss *speedService) DeleteReel(ctx context.Context, reelID uint) error {
	if err := ss.reelRepo.Delete(ctx, nil, reelID); err != nil {
		return err
	}
	ss.log.Info("Reel deleted", "reel_id", reelID)
	return nil
}

func (ss *speedService) ListReelRolls(ctx context.Context, reelID uint) ([]*types.Roll, error) {
	if _, err := ss.reelRepo.GetByID(ctx, nil, reelID); err != nil {
		return nil, err
	}
	return ss.rollRepo.ListByReel(ctx, nil, reelID)
}

func (ss *speedService) CreateRoll(ctx context.Context, r *types.Roll) (*types.Roll, error) {
	r.ID = 0
	return ss.rollRepo.Create(ctx, nil, r)
}

func (ss *speedService) GetRoll(ctx context.Context, rollID uint) (*types.Roll, error) {
	return ss.rollRepo.GetByID(ctx, nil, rollID)
}

func (ss *speedService) ListRolls(ctx context.Context) ([]*types.Roll, error) {
	return ss.rollRepo.List(ctx, nil)
}

func (ss *speedService) UpdateRoll(ctx context.Context, rollID uint, r *types.Roll) (*types.Roll, error) {
	r.ID = rollID
	return ss.rollRepo.Update(ctx, nil, r)
}

func (ss *speedService) DeleteRoll(ctx context.Context, rollID uint) error {
	return ss.rollRepo.Delete(ctx, nil, rollID)
}

func (ss *speedService) ListRollSpeeds(ctx context.Context, rollID uint) ([]*types.Speed, error) {
	if _, err := ss.rollRepo.GetByID(ctx, nil, rollID); err != nil {
		return nil, err
	}
	return ss.speedRepo.ListByRoll(ctx, nil, rollID)
}

// CreateSpeed ignores client supplied timestamps.
func (ss *speedService) CreateSpeed(ctx context.Context, s *types.Speed) (*types.Speed, error) {
	s.ID = 0
	s.CreatedAt = time.Time{}
	return ss.speedRepo.Create(ctx, nil, s)
}

func (ss *speedService) GetSpeed(ctx context.Context, speedID uint) (*types.Speed, error) {
	return ss.speedRepo.GetByID(ctx, nil, speedID)
}

func (ss *speedService) ListSpeeds(ctx context.Context) ([]*types.Speed, error) {
	return ss.speedRepo.List(ctx, nil)
}

func (ss *speedService) UpdateSpeed(ctx context.Context, speedID uint, s *types.Speed) (*types.Speed, error) {
	var updated *types.Speed
	err := ss.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := ss.speedRepo.GetByID(ctx, tx, speedID)
		if err != nil {
			return err
		}
		s.ID = speedID
		s.CreatedAt = existing.CreatedAt
		updated, err = ss.speedRepo.Update(ctx, tx, s)
		return err
	})
	return updated, err
}

func (ss *speedService) DeleteSpeed(ctx context.Context, speedID uint) error {
	return ss.speedRepo.Delete(ctx, nil, speedID)
}
