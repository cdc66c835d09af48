package db

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestTranslate(t *testing.T) {
	plain := errors.New("boom")
	cases := []struct {
		name string
		in   error
		want error
	}{
		{"gorm not found", gorm.ErrRecordNotFound, ErrNotFound},
		{"gorm fk", gorm.ErrForeignKeyViolated, ErrForeignKeyViolation},
		{"gorm dup", gorm.ErrDuplicatedKey, ErrDuplicateKey},
		{"pg fk", &pgconn.PgError{Code: "23503"}, ErrForeignKeyViolation},
		{"pg dup", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}), ErrDuplicateKey},
		{"sqlite fk", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey}, ErrForeignKeyViolation},
		{"sqlite unique", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}, ErrDuplicateKey},
		{"message fk", errors.New("FOREIGN KEY constraint failed"), ErrForeignKeyViolation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Translate(tc.in)
			assert.ErrorIs(t, got, tc.want)
			assert.ErrorIs(t, got, tc.in)
		})
	}

	assert.Same(t, plain, Translate(plain))
	assert.NoError(t, Translate(nil))
}

func TestTranslateIsIdempotent(t *testing.T) {
	once := Translate(gorm.ErrForeignKeyViolated)
	assert.Same(t, once, Translate(once))
	assert.True(t, IsForeignKeyViolation(gorm.ErrForeignKeyViolated))
	assert.False(t, IsNotFound(gorm.ErrDuplicatedKey))
}
