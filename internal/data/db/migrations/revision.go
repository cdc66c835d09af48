// Package migrations holds the ordered schema revision history and the runner
// that moves a database along it.
package migrations

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	// ErrInvalidChain means the revision set is not a single linear history.
	ErrInvalidChain = errors.New("invalid revision chain")
	// ErrUnknownRevision means a revision id (recorded or requested) is not in the chain.
	ErrUnknownRevision = errors.New("unknown revision")
	// ErrRevisionMismatch means the recorded revision is not the one a step builds on.
	ErrRevisionMismatch = errors.New("revision mismatch")
	// ErrInvalidTarget means the target lies in the wrong direction.
	ErrInvalidTarget = errors.New("invalid migration target")
)

// Revision is one schema change-set. Parent is empty for the root.
type Revision struct {
	ID      string
	Parent  string
	Message string
	Up      func(tx *gorm.DB) error
	Down    func(tx *gorm.DB) error
}

func (r *Revision) String() string {
	parent := r.Parent
	if parent == "" {
		parent = "<base>"
	}
	return fmt.Sprintf("%s -> %s, %s", parent, r.ID, r.Message)
}

// linearize orders revisions root first. It rejects duplicate ids, missing
// parents, multiple roots, branches and cycles.
func linearize(revisions []*Revision) ([]*Revision, error) {
	if len(revisions) == 0 {
		return nil, fmt.Errorf("%w: no revisions", ErrInvalidChain)
	}
	byID := make(map[string]*Revision, len(revisions))
	childOf := make(map[string]*Revision, len(revisions))
	var root *Revision
	for _, r := range revisions {
		if r == nil || r.ID == "" {
			return nil, fmt.Errorf("%w: revision without id", ErrInvalidChain)
		}
		if r.Up == nil || r.Down == nil {
			return nil, fmt.Errorf("%w: revision %s lacks up or down", ErrInvalidChain, r.ID)
		}
		if _, dup := byID[r.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate revision %s", ErrInvalidChain, r.ID)
		}
		byID[r.ID] = r
		if r.Parent == "" {
			if root != nil {
				return nil, fmt.Errorf("%w: multiple roots %s and %s", ErrInvalidChain, root.ID, r.ID)
			}
			root = r
			continue
		}
		if other, taken := childOf[r.Parent]; taken {
			return nil, fmt.Errorf("%w: %s and %s both revise %s", ErrInvalidChain, other.ID, r.ID, r.Parent)
		}
		childOf[r.Parent] = r
	}
	if root == nil {
		return nil, fmt.Errorf("%w: no root revision", ErrInvalidChain)
	}
	for _, r := range revisions {
		if r.Parent != "" {
			if _, ok := byID[r.Parent]; !ok {
				return nil, fmt.Errorf("%w: %s revises missing %s", ErrInvalidChain, r.ID, r.Parent)
			}
		}
	}

	ordered := make([]*Revision, 0, len(revisions))
	for cur := root; cur != nil; cur = childOf[cur.ID] {
		ordered = append(ordered, cur)
		if len(ordered) > len(revisions) {
			break
		}
	}
	if len(ordered) != len(revisions) {
		return nil, fmt.Errorf("%w: %d revisions unreachable from root %s", ErrInvalidChain, len(revisions)-len(ordered), root.ID)
	}
	return ordered, nil
}
