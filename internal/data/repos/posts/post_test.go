package posts

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/yungbote/aedb-backend/internal/data/db"
	"github.com/yungbote/aedb-backend/internal/data/repos/testutil"
	types "github.com/yungbote/aedb-backend/internal/domain"
)

func TestPostTimestamps(t *testing.T) {
	clock := testutil.NewClock(time.Date(2024, 10, 20, 12, 0, 0, 0, time.UTC))
	gdb := testutil.DBWithClock(t, clock.Now)
	repo := NewPostRepo(gdb, testutil.Logger(t))
	ctx := context.Background()

	author := testutil.SeedUser(t, ctx, gdb, "author@example.com")

	p, err := repo.Create(ctx, nil, &types.Post{
		UserID:      author.ID,
		Title:       "Hello",
		Description: "d",
		Content:     "c",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !p.CreatedAt.Equal(p.UpdatedAt) {
		t.Fatalf("Create: created_at=%v updated_at=%v", p.CreatedAt, p.UpdatedAt)
	}
	if !p.CreatedAt.Equal(clock.Now()) {
		t.Fatalf("Create: want=%v got=%v", clock.Now(), p.CreatedAt)
	}

	clock.Advance(time.Minute)
	p.Title = "Hello again"
	if _, err := repo.Update(ctx, nil, p); err != nil {
		t.Fatalf("Update: %v", err)
	}

	stored, err := repo.GetByID(ctx, nil, p.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if stored.Title != "Hello again" {
		t.Fatalf("title: want=%q got=%q", "Hello again", stored.Title)
	}
	if !stored.UpdatedAt.After(stored.CreatedAt) {
		t.Fatalf("updated_at not advanced: created_at=%v updated_at=%v", stored.CreatedAt, stored.UpdatedAt)
	}
	if !stored.UpdatedAt.Equal(clock.Now()) {
		t.Fatalf("updated_at: want=%v got=%v", clock.Now(), stored.UpdatedAt)
	}
}

func TestPostRepoListAndDelete(t *testing.T) {
	clock := testutil.NewClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	gdb := testutil.DBWithClock(t, clock.Now)
	repo := NewPostRepo(gdb, testutil.Logger(t))
	ctx := context.Background()

	a := testutil.SeedUser(t, ctx, gdb, "a@example.com")
	b := testutil.SeedUser(t, ctx, gdb, "b@example.com")
	for i, uid := range []uint{a.ID, b.ID, a.ID} {
		clock.Advance(time.Second)
		if _, err := repo.Create(ctx, nil, &types.Post{UserID: uid, Title: "t", Content: "c", Description: "d"}); err != nil {
			t.Fatalf("Create %d: %v", i, err)
		}
	}

	all, err := repo.List(ctx, nil, 2, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 2 || all[0].ID != 3 {
		t.Fatalf("List: unexpected result: %+v", all)
	}

	mine, err := repo.ListByUser(ctx, nil, a.ID)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("ListByUser: want=2 got=%d", len(mine))
	}

	if err := repo.Delete(ctx, nil, mine[0].ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := repo.Delete(ctx, nil, mine[0].ID); !errors.Is(err, db.ErrNotFound) {
		t.Fatalf("Delete twice: want=%v got=%v", db.ErrNotFound, err)
	}
}

func TestPostRequiresExistingUser(t *testing.T) {
	gdb := testutil.DB(t)
	repo := NewPostRepo(gdb, testutil.Logger(t))

	_, err := repo.Create(context.Background(), nil, &types.Post{UserID: 42, Title: "t", Content: "c", Description: "d"})
	if !errors.Is(err, db.ErrForeignKeyViolation) {
		t.Fatalf("Create: want=%v got=%v", db.ErrForeignKeyViolation, err)
	}
}
