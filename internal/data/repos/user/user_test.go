package user

import (
	"context"
	"errors"
	"testing"

	"github.com/yungbote/aedb-backend/internal/data/db"
	"github.com/yungbote/aedb-backend/internal/data/repos/testutil"
	types "github.com/yungbote/aedb-backend/internal/domain"
)

func TestUserRepo(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)

	repo := NewUserRepo(gdb, testutil.Logger(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, tx, &types.User{
		Email:          " UserRepo@Example.com",
		Name:           "A",
		HashedPassword: "hash",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == 0 || created.Email != "userrepo@example.com" {
		t.Fatalf("Create: unexpected result: %+v", created)
	}

	got, err := repo.GetByEmail(ctx, tx, "USERREPO@example.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if got.ID != created.ID {
		t.Fatalf("GetByEmail: want=%d got=%d", created.ID, got.ID)
	}

	byID, err := repo.GetByID(ctx, tx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if byID.HashedPassword != "hash" {
		t.Fatalf("GetByID: unexpected result: %+v", byID)
	}

	exists, err := repo.EmailExists(ctx, tx, created.Email)
	if err != nil {
		t.Fatalf("EmailExists: %v", err)
	}
	if !exists {
		t.Fatalf("EmailExists: expected true")
	}

	exists, err = repo.EmailExists(ctx, tx, "does-not-exist@example.com")
	if err != nil {
		t.Fatalf("EmailExists (missing): %v", err)
	}
	if exists {
		t.Fatalf("EmailExists (missing): expected false")
	}
}

func TestUserRepoErrors(t *testing.T) {
	gdb := testutil.DB(t)
	repo := NewUserRepo(gdb, testutil.Logger(t))
	ctx := context.Background()

	if _, err := repo.Create(ctx, nil, &types.User{Email: "dup@example.com", Name: "A", HashedPassword: "x"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	_, err := repo.Create(ctx, nil, &types.User{Email: "DUP@example.com", Name: "B", HashedPassword: "y"})
	if !errors.Is(err, db.ErrDuplicateKey) {
		t.Fatalf("Create duplicate: want=%v got=%v", db.ErrDuplicateKey, err)
	}

	if _, err := repo.GetByID(ctx, nil, 999); !errors.Is(err, db.ErrNotFound) {
		t.Fatalf("GetByID missing: want=%v got=%v", db.ErrNotFound, err)
	}
}
