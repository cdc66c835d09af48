package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDSN(t *testing.T) {
	cases := []struct {
		in      string
		dialect Dialect
		conn    string
	}{
		{"sqlite+aiosqlite:///./database_aedb.db", DialectSQLite, "./database_aedb.db?_foreign_keys=on"},
		{"sqlite:////var/lib/aedb.db", DialectSQLite, "/var/lib/aedb.db?_foreign_keys=on"},
		{"sqlite://", DialectSQLite, ":memory:?_foreign_keys=on"},
		{"file:test.db?cache=shared", DialectSQLite, "file:test.db?cache=shared&_foreign_keys=on"},
		{"./x.db?_fk=1", DialectSQLite, "./x.db?_fk=1"},
		{"postgresql+asyncpg://u:p@localhost:5432/aedb", DialectPostgres, "postgres://u:p@localhost:5432/aedb"},
		{"postgres://u@db/aedb?sslmode=disable", DialectPostgres, "postgres://u@db/aedb?sslmode=disable"},
		{"host=localhost dbname=aedb", DialectPostgres, "host=localhost dbname=aedb"},
	}
	for _, tc := range cases {
		got, err := ParseDSN(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.dialect, got.Dialect, tc.in)
		assert.Equal(t, tc.conn, got.Conn, tc.in)
	}
}

func TestParseDSNRejects(t *testing.T) {
	for _, in := range []string{"", "mysql://u@h/db"} {
		_, err := ParseDSN(in)
		assert.Error(t, err, in)
	}
}

func TestInMemory(t *testing.T) {
	target, err := ParseDSN(":memory:")
	require.NoError(t, err)
	assert.True(t, target.InMemory())
}
