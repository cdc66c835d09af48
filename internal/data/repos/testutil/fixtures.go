package testutil

import (
	"context"
	"testing"

	"gorm.io/gorm"

	types "github.com/yungbote/aedb-backend/internal/domain"
)

func SeedUser(tb testing.TB, ctx context.Context, tx *gorm.DB, email string) *types.User {
	tb.Helper()
	u := &types.User{
		Email:          email,
		Name:           "A",
		HashedPassword: "pw",
	}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedCategory(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *types.Category {
	tb.Helper()
	c := &types.Category{Name: name}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed category: %v", err)
	}
	return c
}

func SeedGroup(tb testing.TB, ctx context.Context, tx *gorm.DB, categoryID uint, name string) *types.Group {
	tb.Helper()
	g := &types.Group{Name: name, CategoryID: categoryID}
	if err := tx.WithContext(ctx).Create(g).Error; err != nil {
		tb.Fatalf("seed group: %v", err)
	}
	return g
}

func SeedManual(tb testing.TB, ctx context.Context, tx *gorm.DB, g *types.Group, title string) *types.Manual {
	tb.Helper()
	m := &types.Manual{
		Title:      title,
		FileURL:    "/media/manuals/" + title + ".pdf",
		CategoryID: g.CategoryID,
		GroupID:    g.ID,
	}
	if err := tx.WithContext(ctx).Create(m).Error; err != nil {
		tb.Fatalf("seed manual: %v", err)
	}
	return m
}

func SeedReel(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *types.Reel {
	tb.Helper()
	r := &types.Reel{Name: name}
	if err := tx.WithContext(ctx).Create(r).Error; err != nil {
		tb.Fatalf("seed reel: %v", err)
	}
	return r
}

func SeedRoll(tb testing.TB, ctx context.Context, tx *gorm.DB, reelID uint, name string) *types.Roll {
	tb.Helper()
	r := &types.Roll{Name: name, ReelID: reelID}
	if err := tx.WithContext(ctx).Create(r).Error; err != nil {
		tb.Fatalf("seed roll: %v", err)
	}
	return r
}

func SeedSpeed(tb testing.TB, ctx context.Context, tx *gorm.DB, rollID uint) *types.Speed {
	tb.Helper()
	s := &types.Speed{
		Task:        1.5,
		TargetSpeed: 120,
		BaseMAV:     10,
		BaseEMF:     0.5,
		ActiveMAV:   12,
		ActiveEMF:   0.7,
		MaxEMF:      1.1,
		RollID:      rollID,
	}
	if err := tx.WithContext(ctx).Create(s).Error; err != nil {
		tb.Fatalf("seed speed: %v", err)
	}
	return s
}
