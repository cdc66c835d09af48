package services

import (
	"context"
	"fmt"
	"io"

	types "github.com/yungbote/aedb-backend/internal/domain"
	"github.com/yungbote/aedb-backend/internal/platform/logger"
	"github.com/yungbote/aedb-backend/internal/platform/objstore"
)

const manualKeyPrefix = "manuals"

// ManualUpload is a manual file received from a client together with its
// catalog placement.
type ManualUpload struct {
	Title      string
	Filename   string
	Size       int64
	GroupID    uint
	CategoryID uint
}

type FileService interface {
	UploadManual(ctx context.Context, in ManualUpload, file io.Reader) (*types.Manual, error)
}

type fileService struct {
	log            *logger.Logger
	bucketService  objstore.BucketService
	catalogService CatalogService
}

func NewFileService(
	baseLog *logger.Logger,
	bucketService objstore.BucketService,
	catalogService CatalogService,
) FileService {
	return &fileService{
		log:            baseLog.With("service", "FileService"),
		bucketService:  bucketService,
		catalogService: catalogService,
	}
}

// UploadManual stores the file and creates the manual pointing at it. The
// object is removed again when the manual cannot be created.
func (fs *fileService) UploadManual(ctx context.Context, in ManualUpload, file io.Reader) (*types.Manual, error) {
	key := objstore.NewKey(manualKeyPrefix, in.Filename)
	if err := fs.bucketService.UploadFile(ctx, key, file, in.Size); err != nil {
		return nil, fmt.Errorf("upload manual file: %w", err)
	}

	manual, err := fs.catalogService.CreateManual(ctx, &types.Manual{
		Title:      in.Title,
		FileURL:    fs.bucketService.GetPublicURL(key),
		GroupID:    in.GroupID,
		CategoryID: in.CategoryID,
	})
	if err != nil {
		if delErr := fs.bucketService.DeleteFile(context.WithoutCancel(ctx), key); delErr != nil {
			fs.log.Warn("Failed to remove orphaned upload", "key", key, "error", delErr)
		}
		return nil, err
	}
	fs.log.Info("Manual uploaded", "manual_id", manual.ID, "key", key)
	return manual, nil
}
