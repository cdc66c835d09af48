package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestSecretValuesAreRedacted(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	log := FromZap(zap.New(core))

	log.Info("login", "email", "a@example.com", "access_token", "abc.def.ghi", "hashed_password", "$2a$")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("entries: want=1 got=%d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["email"] != "a@example.com" {
		t.Fatalf("email: got=%v", fields["email"])
	}
	if fields["access_token"] != "[REDACTED]" {
		t.Fatalf("access_token: got=%v", fields["access_token"])
	}
	if fields["hashed_password"] != "[REDACTED]" {
		t.Fatalf("hashed_password: got=%v", fields["hashed_password"])
	}
}

func TestWithoutRedactionKeepsValues(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	log := FromZap(zap.New(core)).WithoutRedaction()

	log.Debug("raw", "token", "t")

	if got := logs.All()[0].ContextMap()["token"]; got != "t" {
		t.Fatalf("token: got=%v", got)
	}
}

func TestNewTestModeIsNop(t *testing.T) {
	log, err := New("test")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	log.Info("discarded")
}
