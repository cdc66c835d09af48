package migrations

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/yungbote/aedb-backend/internal/platform/logger"
)

const (
	TargetHead = "head"
	TargetBase = "base"
)

// VersionTable records the revision the database is at. It holds zero rows at
// base and exactly one row otherwise.
const VersionTable = "schema_revision"

type versionRow struct {
	VersionNum string `gorm:"column:version_num;primaryKey;size:32"`
}

func (versionRow) TableName() string { return VersionTable }

type Runner struct {
	db    *gorm.DB
	log   *logger.Logger
	chain []*Revision
	index map[string]int
}

func NewRunner(db *gorm.DB, baseLog *logger.Logger, revisions []*Revision) (*Runner, error) {
	chain, err := linearize(revisions)
	if err != nil {
		return nil, err
	}
	index := make(map[string]int, len(chain))
	for i, rev := range chain {
		index[rev.ID] = i
	}
	return &Runner{
		db:    db,
		log:   baseLog.With("component", "MigrationRunner"),
		chain: chain,
		index: index,
	}, nil
}

// History returns the revisions root first.
func (r *Runner) History() []*Revision {
	out := make([]*Revision, len(r.chain))
	copy(out, r.chain)
	return out
}

// Heads returns the ids no revision builds on. A valid chain has exactly one.
func (r *Runner) Heads() []string { return []string{r.chain[len(r.chain)-1].ID} }

// Current returns the recorded revision id, or "" when the database is at base.
func (r *Runner) Current(ctx context.Context) (string, error) {
	var current string
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		v, err := readVersion(tx)
		current = v
		return err
	})
	if err != nil {
		return "", err
	}
	if _, err := r.position(current); err != nil {
		return current, err
	}
	return current, nil
}

// Pending lists the revisions between the recorded revision and head.
func (r *Runner) Pending(ctx context.Context) ([]*Revision, error) {
	current, err := r.Current(ctx)
	if err != nil {
		return nil, err
	}
	pos, _ := r.position(current)
	return append([]*Revision(nil), r.chain[pos+1:]...), nil
}

// Upgrade applies revisions after the recorded one up to target, which is
// "head", a revision id or "+N".
func (r *Runner) Upgrade(ctx context.Context, target string) error {
	current, err := r.Current(ctx)
	if err != nil {
		return err
	}
	from, _ := r.position(current)
	to, err := r.resolve(target, from, +1)
	if err != nil {
		return err
	}
	if to < from {
		return fmt.Errorf("%w: %s is behind current revision %s, downgrade instead", ErrInvalidTarget, target, current)
	}
	if to == from {
		r.log.Info("Database already at target", "revision", current)
		return nil
	}
	for i := from + 1; i <= to; i++ {
		if err := r.step(ctx, r.chain[i], true); err != nil {
			return err
		}
	}
	return nil
}

// Downgrade reverts revisions down to target, which is "base", a revision id
// (left applied) or "-N".
func (r *Runner) Downgrade(ctx context.Context, target string) error {
	current, err := r.Current(ctx)
	if err != nil {
		return err
	}
	from, _ := r.position(current)
	to, err := r.resolve(target, from, -1)
	if err != nil {
		return err
	}
	if to > from {
		return fmt.Errorf("%w: %s is ahead of current revision %q, upgrade instead", ErrInvalidTarget, target, current)
	}
	for i := from; i > to; i-- {
		if err := r.step(ctx, r.chain[i], false); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) step(ctx context.Context, rev *Revision, up bool) error {
	expect, next, verb, apply := rev.Parent, rev.ID, "upgrade", rev.Up
	if !up {
		expect, next, verb, apply = rev.ID, rev.Parent, "downgrade", rev.Down
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureVersionTable(tx); err != nil {
			return fmt.Errorf("create %s: %w", VersionTable, err)
		}
		recorded, err := readVersion(tx)
		if err != nil {
			return err
		}
		if recorded != expect {
			return fmt.Errorf("%w: %s %s needs database at %q, found %q", ErrRevisionMismatch, verb, rev.ID, expect, recorded)
		}
		if err := apply(tx); err != nil {
			return fmt.Errorf("%s %s: %w", verb, rev.ID, err)
		}
		return writeVersion(tx, next)
	})
	if err != nil {
		r.log.Error("Migration step failed", "direction", verb, "revision", rev.ID, "error", err)
		return err
	}
	r.log.Info("Migration step applied", "direction", verb, "revision", rev.ID, "message", rev.Message)
	return nil
}

// position maps a revision id to its chain index; base is -1.
func (r *Runner) position(id string) (int, error) {
	if id == "" {
		return -1, nil
	}
	i, ok := r.index[id]
	if !ok {
		return -1, fmt.Errorf("%w: %q is not part of the revision history", ErrUnknownRevision, id)
	}
	return i, nil
}

func (r *Runner) resolve(target string, from int, dir int) (int, error) {
	target = strings.TrimSpace(target)
	switch {
	case target == "" || strings.EqualFold(target, TargetHead):
		return len(r.chain) - 1, nil
	case strings.EqualFold(target, TargetBase):
		return -1, nil
	case strings.HasPrefix(target, "+") || strings.HasPrefix(target, "-"):
		n, err := strconv.Atoi(target)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTarget, target)
		}
		if (n > 0) != (dir > 0) {
			return 0, fmt.Errorf("%w: relative step %q runs the wrong way", ErrInvalidTarget, target)
		}
		to := from + n
		if to < -1 || to >= len(r.chain) {
			return 0, fmt.Errorf("%w: %q moves outside the history", ErrInvalidTarget, target)
		}
		return to, nil
	default:
		return r.position(target)
	}
}

func ensureVersionTable(tx *gorm.DB) error {
	if tx.Migrator().HasTable(&versionRow{}) {
		return nil
	}
	return tx.Migrator().CreateTable(&versionRow{})
}

// readVersion treats a missing marker table as base.
func readVersion(tx *gorm.DB) (string, error) {
	if !tx.Migrator().HasTable(&versionRow{}) {
		return "", nil
	}
	var rows []versionRow
	if err := tx.Find(&rows).Error; err != nil {
		return "", fmt.Errorf("read %s: %w", VersionTable, err)
	}
	switch len(rows) {
	case 0:
		return "", nil
	case 1:
		return rows[0].VersionNum, nil
	default:
		return "", fmt.Errorf("%w: %s holds %d rows", ErrRevisionMismatch, VersionTable, len(rows))
	}
}

func writeVersion(tx *gorm.DB, id string) error {
	if err := tx.Exec("DELETE FROM " + VersionTable).Error; err != nil {
		return err
	}
	if id == "" {
		return nil
	}
	return tx.Create(&versionRow{VersionNum: id}).Error
}
