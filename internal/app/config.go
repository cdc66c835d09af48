package app

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/yungbote/aedb-backend/internal/platform/envutil"
)

const (
	DefaultDSN       = "sqlite:///./database_aedb.db"
	DefaultEnvFile   = ".env"
	redacted         = "[REDACTED]"
	defaultAccessTTL = 3600
)

// CORSParams is a read-only copy of the CORS settings.
type CORSParams struct {
	AllowOrigins     []string
	AllowCredentials bool
	AllowMethods     []string
	AllowHeaders     []string
}

// Settings is the process configuration. It is loaded once at startup and
// passed to constructors; nothing reads the environment afterwards.
type Settings struct {
	TokenKey string

	AWSServiceName     string
	AWSRegion          string
	AWSEndpoint        string
	AWSBucketName      string
	AWSAccessKeyID     string
	AWSSecretAccessKey string

	DSN        string
	DocsAccess bool

	AllowOrigins     []string
	AllowCredentials bool
	AllowMethods     []string
	AllowHeaders     []string

	LogMode        string
	Host           string
	Port           int
	AccessTokenTTL time.Duration
	StaticDir      string
	MediaDir       string

	MetricsEnabled bool
	OTelEnabled    bool
	OTelEndpoint   string
	OTelHeaders    string
	OTelInsecure   bool
	OTelSampleRate float64
}

// ConfigError reports every missing and malformed setting at once.
type ConfigError struct {
	Missing []string
	Invalid map[string]string
}

func (e *ConfigError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "missing required settings: "+strings.Join(e.Missing, ", "))
	}
	if len(e.Invalid) > 0 {
		keys := make([]string, 0, len(e.Invalid))
		for k := range e.Invalid {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		invalid := make([]string, 0, len(keys))
		for _, k := range keys {
			invalid = append(invalid, k+": "+e.Invalid[k])
		}
		parts = append(parts, "invalid settings: "+strings.Join(invalid, "; "))
	}
	return "config: " + strings.Join(parts, "; ")
}

func (e *ConfigError) empty() bool { return len(e.Missing) == 0 && len(e.Invalid) == 0 }

// LoadSettingsFromEnv reads the process environment on top of the optional
// dotenv file named by ENV_FILE. Real environment values win.
func LoadSettingsFromEnv() (Settings, error) {
	env := envutil.OS()
	path := DefaultEnvFile
	if v, ok := env("ENV_FILE"); ok && strings.TrimSpace(v) != "" {
		path = strings.TrimSpace(v)
	}
	fileValues, err := godotenv.Read(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return Settings{}, fmt.Errorf("read %s: %w", path, err)
		}
		fileValues = nil
	}
	return LoadSettings(envutil.Chain(env, envutil.FromMap(fileValues)))
}

// LoadSettings builds Settings from lookup. Key matching is case-insensitive;
// unknown keys are ignored.
func LoadSettings(lookup envutil.Source) (Settings, error) {
	l := loader{lookup: lookup, err: &ConfigError{Invalid: map[string]string{}}}

	s := Settings{
		TokenKey: l.required("TOKEN_KEY"),

		AWSServiceName:     l.str("AWS_SERVICE_NAME", "s3"),
		AWSRegion:          l.required("AWS_REGION"),
		AWSEndpoint:        l.required("AWS_ENDPOINT"),
		AWSBucketName:      l.required("AWS_BUCKET_NAME"),
		AWSAccessKeyID:     l.required("AWS_ACCESS_KEY_ID"),
		AWSSecretAccessKey: l.required("AWS_SECRET_ACCESS_KEY"),

		DSN:        l.str("DSN", DefaultDSN),
		DocsAccess: l.boolean("DOCS_ACCESS", true),

		AllowOrigins:     l.list("ALLOW_ORIGINS", []string{}),
		AllowCredentials: l.boolean("ALLOW_CREDENTIALS", true),
		AllowMethods:     l.list("ALLOW_METHODS", []string{"*"}),
		AllowHeaders:     l.list("ALLOW_HEADERS", []string{"*"}),

		LogMode:        l.str("LOG_MODE", "development"),
		Host:           l.str("HOST", "0.0.0.0"),
		Port:           l.integer("PORT", 8000),
		AccessTokenTTL: time.Duration(l.integer("ACCESS_TOKEN_TTL", defaultAccessTTL)) * time.Second,
		StaticDir:      l.str("STATIC_DIR", "./static"),
		MediaDir:       l.str("MEDIA_DIR", "./media"),

		MetricsEnabled: l.boolean("METRICS_ENABLED", false),
		OTelEnabled:    l.boolean("OTEL_ENABLED", false),
		OTelEndpoint:   l.str("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		OTelHeaders:    l.str("OTEL_EXPORTER_OTLP_HEADERS", ""),
		OTelInsecure:   l.boolean("OTEL_EXPORTER_OTLP_INSECURE", false),
		OTelSampleRate: l.float("OTEL_SAMPLER_RATIO", 0.1),
	}

	for _, origin := range s.AllowOrigins {
		if origin != "*" && !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			l.invalid("ALLOW_ORIGINS", fmt.Sprintf("origin %q must be \"*\" or start with http:// or https://", origin))
			break
		}
	}
	if s.Port <= 0 || s.Port > 65535 {
		l.invalid("PORT", fmt.Sprintf("%d is out of range", s.Port))
	}
	if s.AccessTokenTTL <= 0 {
		l.invalid("ACCESS_TOKEN_TTL", "must be positive")
	}

	if !l.err.empty() {
		if len(l.err.Invalid) == 0 {
			l.err.Invalid = nil
		}
		return Settings{}, l.err
	}
	return s, nil
}

// CORS returns a copy of the four CORS settings.
func (s Settings) CORS() CORSParams {
	return CORSParams{
		AllowOrigins:     append([]string{}, s.AllowOrigins...),
		AllowCredentials: s.AllowCredentials,
		AllowMethods:     append([]string{}, s.AllowMethods...),
		AllowHeaders:     append([]string{}, s.AllowHeaders...),
	}
}

func (s Settings) Addr() string {
	return s.Host + ":" + strconv.Itoa(s.Port)
}

// String renders the settings with secrets masked.
func (s Settings) String() string {
	return fmt.Sprintf(
		"Settings{TokenKey:%s AWSServiceName:%s AWSRegion:%s AWSEndpoint:%s AWSBucketName:%s AWSAccessKeyID:%s AWSSecretAccessKey:%s DSN:%s DocsAccess:%t AllowOrigins:%v AllowCredentials:%t AllowMethods:%v AllowHeaders:%v LogMode:%s Addr:%s}",
		mask(s.TokenKey), s.AWSServiceName, s.AWSRegion, s.AWSEndpoint, s.AWSBucketName,
		s.AWSAccessKeyID, mask(s.AWSSecretAccessKey), redactDSN(s.DSN), s.DocsAccess,
		s.AllowOrigins, s.AllowCredentials, s.AllowMethods, s.AllowHeaders, s.LogMode, s.Addr(),
	)
}

func mask(secret string) string {
	if secret == "" {
		return ""
	}
	return redacted
}

func redactDSN(dsn string) string {
	u, err := url.Parse(dsn)
	if err != nil || u.User == nil {
		return dsn
	}
	if _, ok := u.User.Password(); ok {
		u.User = url.UserPassword(u.User.Username(), "xxxxx")
	}
	return u.String()
}

type loader struct {
	lookup envutil.Source
	err    *ConfigError
}

func (l *loader) raw(key string) (string, bool) {
	v, ok := l.lookup(key)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}

func (l *loader) invalid(key, reason string) {
	if _, seen := l.err.Invalid[key]; !seen {
		l.err.Invalid[key] = reason
	}
}

func (l *loader) required(key string) string {
	v, ok := l.raw(key)
	if !ok {
		l.err.Missing = append(l.err.Missing, key)
	}
	return v
}

func (l *loader) str(key, def string) string {
	if v, ok := l.raw(key); ok {
		return v
	}
	return def
}

func (l *loader) boolean(key string, def bool) bool {
	v, ok := l.raw(key)
	if !ok {
		return def
	}
	b, err := envutil.ParseBool(v)
	if err != nil {
		l.invalid(key, err.Error())
		return def
	}
	return b
}

func (l *loader) integer(key string, def int) int {
	v, ok := l.raw(key)
	if !ok {
		return def
	}
	i, err := envutil.ParseInt(v)
	if err != nil {
		l.invalid(key, err.Error())
		return def
	}
	return i
}

func (l *loader) float(key string, def float64) float64 {
	v, ok := l.raw(key)
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		l.invalid(key, fmt.Sprintf("invalid number %q", v))
		return def
	}
	return f
}

func (l *loader) list(key string, def []string) []string {
	v, ok := l.raw(key)
	if !ok {
		return def
	}
	out, err := envutil.ParseList(v)
	if err != nil {
		l.invalid(key, err.Error())
		return def
	}
	return out
}
