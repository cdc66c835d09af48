package app

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/aedb-backend/internal/platform/envutil"
)

func requiredEnv() map[string]string {
	return map[string]string{
		"TOKEN_KEY":             "signing-key",
		"AWS_REGION":            "ru-central1",
		"AWS_ENDPOINT":          "https://storage.example.com",
		"AWS_BUCKET_NAME":       "manuals",
		"AWS_ACCESS_KEY_ID":     "AKID",
		"AWS_SECRET_ACCESS_KEY": "s3cr3t",
	}
}

func withEnv(extra map[string]string) envutil.Source {
	m := requiredEnv()
	for k, v := range extra {
		m[k] = v
	}
	return envutil.FromMap(m)
}

func TestLoadSettingsDefaults(t *testing.T) {
	s, err := LoadSettings(withEnv(nil))
	require.NoError(t, err)

	assert.Equal(t, "signing-key", s.TokenKey)
	assert.Equal(t, "s3", s.AWSServiceName)
	assert.Equal(t, DefaultDSN, s.DSN)
	assert.True(t, s.DocsAccess)
	assert.Equal(t, []string{}, s.AllowOrigins)
	assert.True(t, s.AllowCredentials)
	assert.Equal(t, []string{"*"}, s.AllowMethods)
	assert.Equal(t, []string{"*"}, s.AllowHeaders)
	assert.Equal(t, "development", s.LogMode)
	assert.Equal(t, "0.0.0.0:8000", s.Addr())
	assert.Equal(t, time.Hour, s.AccessTokenTTL)
	assert.Equal(t, "./static", s.StaticDir)
	assert.Equal(t, "./media", s.MediaDir)
	assert.False(t, s.MetricsEnabled)
	assert.False(t, s.OTelEnabled)
}

func TestLoadSettingsReportsEveryMissingKey(t *testing.T) {
	_, err := LoadSettings(envutil.FromMap(map[string]string{"TOKEN_KEY": "k", "AWS_REGION": "  "}))
	require.Error(t, err)

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.ElementsMatch(t, []string{
		"AWS_REGION", "AWS_ENDPOINT", "AWS_BUCKET_NAME", "AWS_ACCESS_KEY_ID", "AWS_SECRET_ACCESS_KEY",
	}, cfgErr.Missing)
	assert.Empty(t, cfgErr.Invalid)
	assert.Contains(t, err.Error(), "AWS_BUCKET_NAME")
}

func TestLoadSettingsIsCaseInsensitive(t *testing.T) {
	m := map[string]string{}
	for k, v := range requiredEnv() {
		m[strings.ToLower(k)] = v
	}
	m["docs_access"] = "off"
	m["Port"] = "9090"
	m["SOMETHING_ELSE"] = "ignored"

	s, err := LoadSettings(envutil.FromMap(m))
	require.NoError(t, err)
	assert.False(t, s.DocsAccess)
	assert.Equal(t, 9090, s.Port)
}

func TestLoadSettingsParsesLists(t *testing.T) {
	s, err := LoadSettings(withEnv(map[string]string{
		"ALLOW_ORIGINS":     `["http://localhost:3000", "https://aedb.example.com"]`,
		"ALLOW_METHODS":     "GET, POST",
		"ALLOW_HEADERS":     "Authorization,Content-Type",
		"ALLOW_CREDENTIALS": "false",
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"http://localhost:3000", "https://aedb.example.com"}, s.AllowOrigins)
	assert.Equal(t, []string{"GET", "POST"}, s.AllowMethods)
	assert.Equal(t, []string{"Authorization", "Content-Type"}, s.AllowHeaders)
	assert.False(t, s.AllowCredentials)
}

func TestLoadSettingsRejectsMalformedValues(t *testing.T) {
	_, err := LoadSettings(withEnv(map[string]string{
		"ALLOW_ORIGINS":    "localhost:3000",
		"DOCS_ACCESS":      "maybe",
		"PORT":             "eighty",
		"ACCESS_TOKEN_TTL": "0",
	}))
	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Empty(t, cfgErr.Missing)
	for _, key := range []string{"ALLOW_ORIGINS", "DOCS_ACCESS", "PORT", "ACCESS_TOKEN_TTL"} {
		if _, ok := cfgErr.Invalid[key]; !ok {
			t.Fatalf("Invalid[%s]: want entry got=%v", key, cfgErr.Invalid)
		}
	}
}

func TestCORSMirrorsSettingsAndCopiesSlices(t *testing.T) {
	s, err := LoadSettings(withEnv(map[string]string{
		"ALLOW_ORIGINS":     "*",
		"ALLOW_CREDENTIALS": "true",
		"ALLOW_METHODS":     "GET",
		"ALLOW_HEADERS":     "*",
	}))
	require.NoError(t, err)

	p := s.CORS()
	assert.Equal(t, CORSParams{
		AllowOrigins:     []string{"*"},
		AllowCredentials: true,
		AllowMethods:     []string{"GET"},
		AllowHeaders:     []string{"*"},
	}, p)

	p.AllowOrigins[0] = "http://evil.example"
	p.AllowMethods[0] = "DELETE"
	if s.AllowOrigins[0] != "*" || s.AllowMethods[0] != "GET" {
		t.Fatalf("CORS: settings mutated through copy: origins=%v methods=%v", s.AllowOrigins, s.AllowMethods)
	}
}

func TestSettingsStringRedactsSecrets(t *testing.T) {
	s, err := LoadSettings(withEnv(map[string]string{"DSN": "postgresql://aedb:hunter2@db:5432/aedb"}))
	require.NoError(t, err)

	out := s.String()
	for _, secret := range []string{"signing-key", "s3cr3t", "hunter2"} {
		assert.NotContains(t, out, secret)
	}
	assert.Contains(t, out, "manuals")
	assert.Contains(t, out, "db:5432")
}

func TestLoadSettingsFromEnvFilePrefersProcessEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "aedb.env")
	var b strings.Builder
	for k, v := range requiredEnv() {
		b.WriteString(k + "=" + v + "\n")
	}
	b.WriteString("PORT=7000\n")
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o600))

	t.Setenv("ENV_FILE", path)
	t.Setenv("PORT", "7100")

	s, err := LoadSettingsFromEnv()
	require.NoError(t, err)
	assert.Equal(t, 7100, s.Port)
	assert.Equal(t, "manuals", s.AWSBucketName)
}

func TestLoadSettingsFromEnvToleratesMissingFile(t *testing.T) {
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "absent.env"))
	for k, v := range requiredEnv() {
		t.Setenv(k, v)
	}
	_, err := LoadSettingsFromEnv()
	require.NoError(t, err)
}
