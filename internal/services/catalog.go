package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/yungbote/aedb-backend/internal/data/db"
	"github.com/yungbote/aedb-backend/internal/data/repos"
	types "github.com/yungbote/aedb-backend/internal/domain"
	"github.com/yungbote/aedb-backend/internal/platform/apierr"
	"github.com/yungbote/aedb-backend/internal/platform/logger"
)

// CatalogService manages the category > group > manual hierarchy.
type CatalogService interface {
	CreateCategory(ctx context.Context, c *types.Category) (*types.Category, error)
	GetCategory(ctx context.Context, categoryID uint) (*types.Category, error)
	ListCategories(ctx context.Context) ([]*types.Category, error)
	UpdateCategory(ctx context.Context, categoryID uint, c *types.Category) (*types.Category, error)
	DeleteCategory(ctx context.Context, categoryID uint) error
	ListCategoryGroups(ctx context.Context, categoryID uint) ([]*types.Group, error)

	CreateGroup(ctx context.Context, g *types.Group) (*types.Group, error)
	GetGroup(ctx context.Context, groupID uint) (*types.Group, error)
	ListGroups(ctx context.Context) ([]*types.Group, error)
	UpdateGroup(ctx context.Context, groupID uint, g *types.Group) (*types.Group, error)
	DeleteGroup(ctx context.Context, groupID uint) error
	ListGroupManuals(ctx context.Context, groupID uint) ([]*types.Manual, error)

	CreateManual(ctx context.Context, m *types.Manual) (*types.Manual, error)
	GetManual(ctx context.Context, manualID uint) (*types.Manual, error)
	ListManuals(ctx context.Context, filter repos.ManualFilter) ([]*types.Manual, error)
	UpdateManual(ctx context.Context, manualID uint, m *types.Manual) (*types.Manual, error)
	DeleteManual(ctx context.Context, manualID uint) error
}

type catalogService struct {
	db           *gorm.DB
	log          *logger.Logger
	categoryRepo repos.CategoryRepo
	groupRepo    repos.GroupRepo
	manualRepo   repos.ManualRepo
}

func NewCatalogService(
	db *gorm.DB,
	baseLog *logger.Logger,
	categoryRepo repos.CategoryRepo,
	groupRepo repos.GroupRepo,
	manualRepo repos.ManualRepo,
) CatalogService {
	return &catalogService{
		db:           db,
		log:          baseLog.With("service", "CatalogService"),
		categoryRepo: categoryRepo,
		groupRepo:    groupRepo,
		manualRepo:   manualRepo,
	}
}

func (cs *catalogService) CreateCategory(ctx context.Context, c *types.Category) (*types.Category, error) {
	c.ID = 0
	return cs.categoryRepo.Create(ctx, nil, c)
}

func (cs *catalogService) GetCategory(ctx context.Context, categoryID uint) (*types.Category, error) {
	return cs.categoryRepo.GetByID(ctx, nil, categoryID)
}

func (cs *catalogService) ListCategories(ctx context.Context) ([]*types.Category, error) {
	return cs.categoryRepo.List(ctx, nil)
}

func (cs *catalogService) UpdateCategory(ctx context.Context, categoryID uint, c *types.Category) (*types.Category, error) {
	c.ID = categoryID
	return cs.categoryRepo.Update(ctx, nil, c)
}

func (cs *catalogService) DeleteCategory(ctx context.Context, categoryID uint) error {
	if err := cs.categoryRepo.Delete(ctx, nil, categoryID); err != nil {
		return err
	}
	cs.log.Info("Category deleted", "category_id", categoryID)
	return nil
}

func (cs *catalogService) ListCategoryGroups(ctx context.Context, categoryID uint) ([]*types.Group, error) {
	if _, err := cs.categoryRepo.GetByID(ctx, nil, categoryID); err != nil {
		return nil, err
	}
	return cs.groupRepo.ListByCategory(ctx, nil, categoryID)
}

func (cs *catalogService) CreateGroup(ctx context.Context, g *types.Group) (*types.Group, error) {
	g.ID = 0
	return cs.groupRepo.Create(ctx, nil, g)
}

func (cs *catalogService) GetGroup(ctx context.Context, groupID uint) (*types.Group, error) {
	return cs.groupRepo.GetByID(ctx, nil, groupID)
}

func (cs *catalogService) ListGroups(ctx context.Context) ([]*types.Group, error) {
	return cs.groupRepo.List(ctx, nil)
}

// UpdateGroup carries the group's manuals along when it changes category.
func (cs *catalogService) UpdateGroup(ctx context.Context, groupID uint, g *types.Group) (*types.Group, error) {
	g.ID = groupID
	var updated *types.Group
	err := cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := cs.groupRepo.GetByID(ctx, tx, groupID)
		if err != nil {
			return err
		}
		updated, err = cs.groupRepo.Update(ctx, tx, g)
		if err != nil {
			return err
		}
		if existing.CategoryID == g.CategoryID {
			return nil
		}
		moved, err := cs.manualRepo.MoveGroup(ctx, tx, groupID, g.CategoryID)
		if err != nil {
			return err
		}
		cs.log.Info("Group moved", "group_id", groupID, "from", existing.CategoryID, "to", g.CategoryID, "manuals", moved)
		return nil
	})
	return updated, err
}

func (cs *catalogService) DeleteGroup(ctx context.Context, groupID uint) error {
	return cs.groupRepo.Delete(ctx, nil, groupID)
}

func (cs *catalogService) ListGroupManuals(ctx context.Context, groupID uint) ([]*types.Manual, error) {
	if _, err := cs.groupRepo.GetByID(ctx, nil, groupID); err != nil {
		return nil, err
	}
	return cs.manualRepo.ListByGroup(ctx, nil, groupID)
}

func (cs *catalogService) CreateManual(ctx context.Context, m *types.Manual) (*types.Manual, error) {
	m.ID = 0
	var created *types.Manual
	err := cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := cs.placeManual(ctx, tx, m); err != nil {
			return err
		}
		var err error
		created, err = cs.manualRepo.Create(ctx, tx, m)
		return err
	})
	return created, err
}

func (cs *catalogService) GetManual(ctx context.Context, manualID uint) (*types.Manual, error) {
	return cs.manualRepo.GetByID(ctx, nil, manualID)
}

func (cs *catalogService) ListManuals(ctx context.Context, filter repos.ManualFilter) ([]*types.Manual, error) {
	return cs.manualRepo.List(ctx, nil, filter)
}

func (cs *catalogService) UpdateManual(ctx context.Context, manualID uint, m *types.Manual) (*types.Manual, error) {
	m.ID = manualID
	var updated *types.Manual
	err := cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := cs.manualRepo.GetByID(ctx, tx, manualID); err != nil {
			return err
		}
		if err := cs.placeManual(ctx, tx, m); err != nil {
			return err
		}
		var err error
		updated, err = cs.manualRepo.Update(ctx, tx, m)
		return err
	})
	return updated, err
}

func (cs *catalogService) DeleteManual(ctx context.Context, manualID uint) error {
	return cs.manualRepo.Delete(ctx, nil, manualID)
}

// placeManual resolves the manual's category from its group. A manual always
// sits in its group's category.
func (cs *catalogService) placeManual(ctx context.Context, tx *gorm.DB, m *types.Manual) error {
	// The lookup derives the category; manuals.group_id is still enforced by
	// its foreign key on insert.
	group, err := cs.groupRepo.GetByID(ctx, tx, m.GroupID)
	if err != nil {
		if db.IsNotFound(err) {
			return fmt.Errorf("%w: group %d does not exist", db.ErrForeignKeyViolation, m.GroupID)
		}
		return err
	}
	if m.CategoryID == 0 {
		m.CategoryID = group.CategoryID
	}
	if m.CategoryID != group.CategoryID {
		return apierr.Invalid(errors.New("category_id does not match the group's category"))
	}
	return nil
}
