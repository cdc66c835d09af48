package db

import (
	"fmt"
	"net/url"
	"strings"
)

type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

// Target is a parsed connection string.
type Target struct {
	Dialect Dialect
	// Conn is the driver-native connection string.
	Conn string
}

func (t Target) InMemory() bool {
	return t.Dialect == DialectSQLite && strings.Contains(t.Conn, ":memory:")
}

// ParseDSN accepts URL style DSNs ("sqlite:///./app.db", "sqlite+aiosqlite:///./app.db",
// "postgresql+asyncpg://user:pw@host/db", "postgres://..."), keyword postgres
// DSNs ("host=... dbname=..."), and bare sqlite paths ("./app.db", ":memory:",
// "file:app.db?cache=shared"). SQLite connections always get foreign keys enabled.
func ParseDSN(raw string) (Target, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Target{}, fmt.Errorf("empty dsn")
	}

	scheme, rest, hasScheme := strings.Cut(raw, "://")
	if hasScheme {
		base, _, _ := strings.Cut(strings.ToLower(scheme), "+")
		switch base {
		case "sqlite", "sqlite3":
			// sqlite:///relative.db and sqlite:////abs/path.db
			path := strings.TrimPrefix(rest, "/")
			if path == "" {
				path = ":memory:"
			}
			return Target{Dialect: DialectSQLite, Conn: withForeignKeys(path)}, nil
		case "postgres", "postgresql":
			u, err := url.Parse("postgres://" + rest)
			if err != nil {
				return Target{}, fmt.Errorf("parse postgres dsn: %w", err)
			}
			return Target{Dialect: DialectPostgres, Conn: u.String()}, nil
		default:
			return Target{}, fmt.Errorf("unsupported dsn scheme %q", scheme)
		}
	}

	if strings.Contains(raw, "host=") || strings.Contains(raw, "dbname=") {
		return Target{Dialect: DialectPostgres, Conn: raw}, nil
	}
	return Target{Dialect: DialectSQLite, Conn: withForeignKeys(raw)}, nil
}

func withForeignKeys(conn string) string {
	lower := strings.ToLower(conn)
	if strings.Contains(lower, "_foreign_keys=") || strings.Contains(lower, "_fk=") {
		return conn
	}
	if strings.Contains(conn, "?") {
		return conn + "&_foreign_keys=on"
	}
	return conn + "?_foreign_keys=on"
}
