package speed

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/yungbote/aedb-backend/internal/data/db"
	"github.com/yungbote/aedb-backend/internal/data/repos/testutil"
	types "github.com/yungbote/aedb-backend/internal/domain"
)

func TestDeletingReelCascades(t *testing.T) {
	gdb := testutil.DB(t)
	log := testutil.Logger(t)
	ctx := context.Background()

	reel := testutil.SeedReel(t, ctx, gdb, "R1")
	roll := testutil.SeedRoll(t, ctx, gdb, reel.ID, "roll-1")
	sp := testutil.SeedSpeed(t, ctx, gdb, roll.ID)

	rolls, err := NewRollRepo(gdb, log).ListByReel(ctx, nil, reel.ID)
	if err != nil || len(rolls) != 1 {
		t.Fatalf("ListByReel: err=%v got=%+v", err, rolls)
	}

	if err := NewReelRepo(gdb, log).Delete(ctx, nil, reel.ID); err != nil {
		t.Fatalf("Delete reel: %v", err)
	}
	if _, err := NewRollRepo(gdb, log).GetByID(ctx, nil, roll.ID); !errors.Is(err, db.ErrNotFound) {
		t.Fatalf("roll after cascade: want=%v got=%v", db.ErrNotFound, err)
	}
	if _, err := NewSpeedRepo(gdb, log).GetByID(ctx, nil, sp.ID); !errors.Is(err, db.ErrNotFound) {
		t.Fatalf("speed after cascade: want=%v got=%v", db.ErrNotFound, err)
	}
}

func TestSpeedTimestampsUseMoscowTime(t *testing.T) {
	clock := testutil.NewClock(time.Date(2024, 10, 20, 9, 0, 0, 0, time.UTC))
	gdb := testutil.DBWithClock(t, clock.Now)
	repo := NewSpeedRepo(gdb, testutil.Logger(t))
	ctx := context.Background()

	roll := testutil.SeedRoll(t, ctx, gdb, testutil.SeedReel(t, ctx, gdb, "R").ID, "r")
	created, err := repo.Create(ctx, nil, &types.Speed{RollID: roll.ID, Task: 2, TargetSpeed: 100, FixedSpeed: true})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, offset := created.CreatedAt.Zone(); offset != 3*60*60 {
		t.Fatalf("created_at offset: want=%d got=%d", 3*60*60, offset)
	}
	if !created.CreatedAt.Equal(clock.Now()) || !created.UpdatedAt.Equal(created.CreatedAt) {
		t.Fatalf("Create: created_at=%v updated_at=%v", created.CreatedAt, created.UpdatedAt)
	}

	clock.Advance(time.Hour)
	created.Corrected = true
	if _, err := repo.Update(ctx, nil, created); err != nil {
		t.Fatalf("Update: %v", err)
	}
	stored, err := repo.GetByID(ctx, nil, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if !stored.Corrected || !stored.FixedSpeed {
		t.Fatalf("flags: %+v", stored)
	}
	if !stored.UpdatedAt.Equal(clock.Now()) {
		t.Fatalf("updated_at: want=%v got=%v", clock.Now(), stored.UpdatedAt)
	}
	if !stored.CreatedAt.Equal(clock.Now().Add(-time.Hour)) {
		t.Fatalf("created_at changed: %v", stored.CreatedAt)
	}
}

func TestSpeedRequiresExistingRoll(t *testing.T) {
	gdb := testutil.DB(t)
	_, err := NewSpeedRepo(gdb, testutil.Logger(t)).Create(context.Background(), nil, &types.Speed{RollID: 5})
	if !errors.Is(err, db.ErrForeignKeyViolation) {
		t.Fatalf("Create: want=%v got=%v", db.ErrForeignKeyViolation, err)
	}
	_, err = NewRollRepo(gdb, testutil.Logger(t)).Create(context.Background(), nil, &types.Roll{Name: "r", ReelID: 5})
	if !errors.Is(err, db.ErrForeignKeyViolation) {
		t.Fatalf("Create roll: want=%v got=%v", db.ErrForeignKeyViolation, err)
	}
}
