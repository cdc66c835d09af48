package testutil

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/yungbote/aedb-backend/internal/data/db"
	"github.com/yungbote/aedb-backend/internal/data/db/migrations"
	"github.com/yungbote/aedb-backend/internal/platform/logger"
)

func Logger(tb testing.TB) *logger.Logger {
	tb.Helper()
	return logger.Nop()
}

// DB opens a fresh sqlite file migrated to head. Every test gets its own file.
func DB(tb testing.TB) *gorm.DB {
	tb.Helper()
	return DBWithClock(tb, nil)
}

// DBWithClock is DB with gorm's timestamp clock replaced by now.
func DBWithClock(tb testing.TB, now func() time.Time) *gorm.DB {
	tb.Helper()
	svc, err := db.NewService(Logger(tb), db.Options{
		DSN:     "sqlite:///" + filepath.Join(tb.TempDir(), "test.db"),
		NowFunc: now,
	})
	if err != nil {
		tb.Fatalf("open test db: %v", err)
	}
	tb.Cleanup(func() { _ = svc.Close() })

	runner, err := migrations.NewRunner(svc.DB(), Logger(tb), migrations.All())
	if err != nil {
		tb.Fatalf("migration runner: %v", err)
	}
	if err := runner.Upgrade(context.Background(), migrations.TargetHead); err != nil {
		tb.Fatalf("migrate test db: %v", err)
	}
	return svc.DB()
}

func Tx(tb testing.TB, db *gorm.DB) *gorm.DB {
	tb.Helper()
	tx := db.Begin()
	if tx.Error != nil {
		tb.Fatalf("begin tx: %v", tx.Error)
	}
	tb.Cleanup(func() {
		_ = tx.Rollback().Error
	})
	return tx
}

// Clock is a manually advanced time source for NowFunc.
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

func NewClock(start time.Time) *Clock {
	return &Clock{now: start}
}

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}
