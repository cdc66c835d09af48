package objstore

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/yungbote/aedb-backend/internal/platform/logger"
)

type BucketService interface {
	UploadFile(ctx context.Context, key string, file io.Reader, size int64) error
	DeleteFile(ctx context.Context, key string) error
	GetPublicURL(key string) string
}

type bucketService struct {
	log      *logger.Logger
	client   *minio.Client
	bucket   string
	endpoint endpoint
}

// NewBucketService builds a client; no request is made until the first call.
func NewBucketService(log *logger.Logger, cfg Config) (BucketService, error) {
	ep, err := cfg.validate()
	if err != nil {
		return nil, err
	}
	serviceLog := log.With("service", "BucketService")

	client, err := minio.New(ep.host, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: ep.secure,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	serviceLog.Info(
		"Object storage initialized",
		"endpoint", ep.base,
		"region", cfg.Region,
		"bucket", cfg.Bucket,
	)
	return &bucketService{
		log:      serviceLog,
		client:   client,
		bucket:   cfg.Bucket,
		endpoint: ep,
	}, nil
}

func (bs *bucketService) UploadFile(ctx context.Context, key string, file io.Reader, size int64) error {
	key = cleanKey(key)
	if key == "" {
		return fmt.Errorf("empty object key")
	}
	if size <= 0 {
		size = -1
	}
	info, err := bs.client.PutObject(ctx, bs.bucket, key, file, size, minio.PutObjectOptions{
		ContentType: ContentTypeForKey(key),
	})
	if err != nil {
		bs.log.Error("Upload failed", "key", key, "error", err)
		return fmt.Errorf("upload %s: %w", key, err)
	}
	bs.log.Debug("Uploaded object", "key", key, "size", info.Size)
	return nil
}

func (bs *bucketService) DeleteFile(ctx context.Context, key string) error {
	key = cleanKey(key)
	if err := bs.client.RemoveObject(ctx, bs.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// GetPublicURL returns the path-style URL of key.
func (bs *bucketService) GetPublicURL(key string) string {
	return publicURL(bs.endpoint.base, bs.bucket, key)
}

func publicURL(base, bucket, key string) string {
	segments := strings.Split(cleanKey(key), "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return fmt.Sprintf("%s/%s/%s", strings.TrimRight(base, "/"), url.PathEscape(bucket), strings.Join(segments, "/"))
}

func cleanKey(key string) string {
	return strings.TrimLeft(strings.TrimSpace(key), "/")
}

// NewKey returns a collision free key under prefix keeping the extension of
// filename.
func NewKey(prefix, filename string) string {
	ext := strings.ToLower(path.Ext(strings.TrimSpace(filename)))
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		return uuid.NewString() + ext
	}
	return prefix + "/" + uuid.NewString() + ext
}

func ContentTypeForKey(key string) string {
	s := strings.ToLower(strings.TrimSpace(key))
	if i := strings.Index(s, "?"); i >= 0 {
		s = s[:i]
	}
	switch path.Ext(s) {
	case ".pdf":
		return "application/pdf"
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".webp":
		return "image/webp"
	case ".svg":
		return "image/svg+xml"
	case ".doc":
		return "application/msword"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case ".txt":
		return "text/plain"
	default:
		return "application/octet-stream"
	}
}
