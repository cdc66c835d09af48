package manuals

import (
	"context"
	"errors"
	"testing"

	"github.com/yungbote/aedb-backend/internal/data/db"
	"github.com/yungbote/aedb-backend/internal/data/repos/testutil"
	types "github.com/yungbote/aedb-backend/internal/domain"
)

func TestDeletingCategoryCascades(t *testing.T) {
	gdb := testutil.DB(t)
	log := testutil.Logger(t)
	ctx := context.Background()

	categories := NewCategoryRepo(gdb, log)
	groups := NewGroupRepo(gdb, log)
	manuals := NewManualRepo(gdb, log)

	pumps, err := categories.Create(ctx, nil, &types.Category{Name: "Pumps"})
	if err != nil {
		t.Fatalf("Create category: %v", err)
	}
	if pumps.LogoURL != types.DefaultLogoURL {
		t.Fatalf("logo: want=%q got=%q", types.DefaultLogoURL, pumps.LogoURL)
	}
	hydraulic, err := groups.Create(ctx, nil, &types.Group{Name: "Hydraulic", CategoryID: pumps.ID})
	if err != nil {
		t.Fatalf("Create group: %v", err)
	}
	manualA, err := manuals.Create(ctx, nil, &types.Manual{
		Title:      "Manual A",
		FileURL:    "/media/manuals/a.pdf",
		CategoryID: pumps.ID,
		GroupID:    hydraulic.ID,
	})
	if err != nil {
		t.Fatalf("Create manual: %v", err)
	}

	inGroup, err := manuals.ListByGroup(ctx, nil, hydraulic.ID)
	if err != nil || len(inGroup) != 1 {
		t.Fatalf("ListByGroup: err=%v got=%+v", err, inGroup)
	}

	if err := categories.Delete(ctx, nil, pumps.ID); err != nil {
		t.Fatalf("Delete category: %v", err)
	}
	if _, err := groups.GetByID(ctx, nil, hydraulic.ID); !errors.Is(err, db.ErrNotFound) {
		t.Fatalf("group after cascade: want=%v got=%v", db.ErrNotFound, err)
	}
	if _, err := manuals.GetByID(ctx, nil, manualA.ID); !errors.Is(err, db.ErrNotFound) {
		t.Fatalf("manual after cascade: want=%v got=%v", db.ErrNotFound, err)
	}
}

func TestDanglingReferencesAreRejected(t *testing.T) {
	gdb := testutil.DB(t)
	log := testutil.Logger(t)
	ctx := context.Background()

	if _, err := NewGroupRepo(gdb, log).Create(ctx, nil, &types.Group{Name: "orphan", CategoryID: 77}); !errors.Is(err, db.ErrForeignKeyViolation) {
		t.Fatalf("group: want=%v got=%v", db.ErrForeignKeyViolation, err)
	}

	cat := testutil.SeedCategory(t, ctx, gdb, "Valves")
	_, err := NewManualRepo(gdb, log).Create(ctx, nil, &types.Manual{Title: "m", FileURL: "/f.pdf", CategoryID: cat.ID, GroupID: 77})
	if !errors.Is(err, db.ErrForeignKeyViolation) {
		t.Fatalf("manual: want=%v got=%v", db.ErrForeignKeyViolation, err)
	}
}

func TestManualFilterAndUpdate(t *testing.T) {
	gdb := testutil.DB(t)
	log := testutil.Logger(t)
	ctx := context.Background()
	repo := NewManualRepo(gdb, log)

	pumps := testutil.SeedCategory(t, ctx, gdb, "Pumps")
	valves := testutil.SeedCategory(t, ctx, gdb, "Valves")
	hydraulic := testutil.SeedGroup(t, ctx, gdb, pumps.ID, "Hydraulic")
	gate := testutil.SeedGroup(t, ctx, gdb, valves.ID, "Gate")
	testutil.SeedManual(t, ctx, gdb, hydraulic, "a")
	testutil.SeedManual(t, ctx, gdb, hydraulic, "b")
	c := testutil.SeedManual(t, ctx, gdb, gate, "c")

	got, err := repo.List(ctx, nil, ManualFilter{CategoryID: pumps.ID})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("List by category: want=2 got=%d", len(got))
	}
	all, _ := repo.List(ctx, nil, ManualFilter{})
	if len(all) != 3 {
		t.Fatalf("List all: want=3 got=%d", len(all))
	}

	c.Title = "renamed"
	if _, err := repo.Update(ctx, nil, c); err != nil {
		t.Fatalf("Update: %v", err)
	}
	stored, _ := repo.GetByID(ctx, nil, c.ID)
	if stored.Title != "renamed" {
		t.Fatalf("Update: title=%q", stored.Title)
	}

	missing := &types.Manual{ID: 999, Title: "x", FileURL: "/x.pdf", CategoryID: pumps.ID, GroupID: hydraulic.ID}
	if _, err := repo.Update(ctx, nil, missing); !errors.Is(err, db.ErrNotFound) {
		t.Fatalf("Update missing: want=%v got=%v", db.ErrNotFound, err)
	}
}
