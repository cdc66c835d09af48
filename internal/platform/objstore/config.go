package objstore

import (
	"fmt"
	"net/url"
	"strings"
)

const ServiceS3 = "s3"

// Config describes an S3-compatible bucket.
type Config struct {
	ServiceName     string
	Region          string
	Endpoint        string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
}

type ConfigErrorCode string

const (
	ConfigErrorUnsupportedService ConfigErrorCode = "unsupported_service"
	ConfigErrorInvalidEndpoint    ConfigErrorCode = "invalid_endpoint"
	ConfigErrorMissingBucket      ConfigErrorCode = "missing_bucket"
)

type ConfigError struct {
	Code     ConfigErrorCode
	Service  string
	Endpoint string
	Cause    error
}

func (e *ConfigError) Error() string {
	if e == nil {
		return "invalid object storage config"
	}
	switch e.Code {
	case ConfigErrorUnsupportedService:
		return fmt.Sprintf("unsupported AWS_SERVICE_NAME=%q (allowed: %q)", e.Service, ServiceS3)
	case ConfigErrorInvalidEndpoint:
		return fmt.Sprintf("invalid AWS_ENDPOINT=%q; expected absolute URL like https://storage.example.com", e.Endpoint)
	case ConfigErrorMissingBucket:
		return "AWS_BUCKET_NAME must be set"
	default:
		return "invalid object storage config"
	}
}

func (e *ConfigError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// endpoint is the parsed form of Config.Endpoint as minio wants it.
type endpoint struct {
	host   string
	secure bool
	base   string
}

func parseEndpoint(raw string) (endpoint, error) {
	raw = strings.TrimSpace(raw)
	if !strings.Contains(raw, "://") {
		// bare host[:port] means TLS
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return endpoint{}, &ConfigError{Code: ConfigErrorInvalidEndpoint, Endpoint: raw, Cause: err}
	}
	return endpoint{
		host:   u.Host,
		secure: u.Scheme == "https",
		base:   u.Scheme + "://" + u.Host,
	}, nil
}

func (cfg Config) validate() (endpoint, error) {
	service := strings.ToLower(strings.TrimSpace(cfg.ServiceName))
	if service != "" && service != ServiceS3 {
		return endpoint{}, &ConfigError{Code: ConfigErrorUnsupportedService, Service: cfg.ServiceName}
	}
	if strings.TrimSpace(cfg.Bucket) == "" {
		return endpoint{}, &ConfigError{Code: ConfigErrorMissingBucket}
	}
	return parseEndpoint(cfg.Endpoint)
}
