package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/aedb-backend/internal/data/db"
	"github.com/yungbote/aedb-backend/internal/data/repos"
	"github.com/yungbote/aedb-backend/internal/data/repos/testutil"
	types "github.com/yungbote/aedb-backend/internal/domain"
)

func newTestSpeeds(t *testing.T, clock *testutil.Clock) SpeedService {
	t.Helper()
	gdb := testutil.DBWithClock(t, clock.Now)
	log := testutil.Logger(t)
	return NewSpeedService(gdb, log, repos.NewReelRepo(gdb, log), repos.NewRollRepo(gdb, log), repos.NewSpeedRepo(gdb, log))
}

func TestSpeedLifecycle(t *testing.T) {
	clock := testutil.NewClock(time.Date(2024, 3, 1, 6, 30, 0, 0, time.UTC))
	ss := newTestSpeeds(t, clock)
	ctx := context.Background()

	reel, err := ss.CreateReel(ctx, &types.Reel{ID: 77, Name: "Reel 1"})
	require.NoError(t, err)
	assert.NotEqual(t, uint(77), reel.ID)

	roll, err := ss.CreateRoll(ctx, &types.Roll{Name: "Roll A", ReelID: reel.ID})
	require.NoError(t, err)

	stale := time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC)
	sp, err := ss.CreateSpeed(ctx, &types.Speed{RollID: roll.ID, TargetSpeed: 90, CreatedAt: stale})
	require.NoError(t, err)
	if !sp.CreatedAt.Equal(clock.Now()) {
		t.Fatalf("created_at: want=%v got=%v", clock.Now(), sp.CreatedAt)
	}

	clock.Advance(30 * time.Minute)
	updated, err := ss.UpdateSpeed(ctx, sp.ID, &types.Speed{RollID: roll.ID, TargetSpeed: 95, Corrected: true, CreatedAt: stale})
	require.NoError(t, err)
	assert.Equal(t, 95, updated.TargetSpeed)

	stored, err := ss.GetSpeed(ctx, sp.ID)
	require.NoError(t, err)
	if !stored.CreatedAt.Equal(clock.Now().Add(-30 * time.Minute)) {
		t.Fatalf("created_at after update: got=%v", stored.CreatedAt)
	}
	if !stored.UpdatedAt.Equal(clock.Now()) {
		t.Fatalf("updated_at: want=%v got=%v", clock.Now(), stored.UpdatedAt)
	}

	speeds, err := ss.ListRollSpeeds(ctx, roll.ID)
	require.NoError(t, err)
	assert.Len(t, speeds, 1)

	_, err = ss.UpdateSpeed(ctx, 999, &types.Speed{RollID: roll.ID})
	assert.ErrorIs(t, err, db.ErrNotFound)
}

func TestDeletingReelRemovesRollsAndSpeeds(t *testing.T) {
	ss := newTestSpeeds(t, testutil.NewClock(time.Now()))
	ctx := context.Background()

	reel, err := ss.CreateReel(ctx, &types.Reel{Name: "Reel"})
	require.NoError(t, err)
	roll, err := ss.CreateRoll(ctx, &types.Roll{Name: "Roll", ReelID: reel.ID})
	require.NoError(t, err)
	sp, err := ss.CreateSpeed(ctx, &types.Speed{RollID: roll.ID})
	require.NoError(t, err)

	require.NoError(t, ss.DeleteReel(ctx, reel.ID))

	_, err = ss.GetRoll(ctx, roll.ID)
	assert.ErrorIs(t, err, db.ErrNotFound)
	_, err = ss.GetSpeed(ctx, sp.ID)
	assert.ErrorIs(t, err, db.ErrNotFound)
	_, err = ss.ListReelRolls(ctx, reel.ID)
	assert.ErrorIs(t, err, db.ErrNotFound)
}

func TestSpeedRejectsDanglingParents(t *testing.T) {
	ss := newTestSpeeds(t, testutil.NewClock(time.Now()))
	ctx := context.Background()

	_, err := ss.CreateRoll(ctx, &types.Roll{Name: "Orphan", ReelID: 404})
	assert.ErrorIs(t, err, db.ErrForeignKeyViolation)
	_, err = ss.CreateSpeed(ctx, &types.Speed{RollID: 404})
	assert.ErrorIs(t, err, db.ErrForeignKeyViolation)
}
