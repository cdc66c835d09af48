package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/aedb-backend/internal/http/response"
	"github.com/yungbote/aedb-backend/internal/http/schema"
	"github.com/yungbote/aedb-backend/internal/services"
)

const (
	maxManualBytes = 50 << 20
	// room for the other form fields and multipart framing
	maxUploadBody = maxManualBytes + 1<<20
	memoryBuffer  = 32 << 20
)

var errFileTooLarge = errors.New("manual file exceeds 50MB")

type UploadHandler struct {
	fileService services.FileService
}

func NewUploadHandler(fileService services.FileService) *UploadHandler {
	return &UploadHandler{fileService: fileService}
}

// POST /manuals/upload (multipart/form-data)
// fields: file, title, group_id, category_id (optional)
func (uh *UploadHandler) UploadManual(c *gin.Context) {
	if c.Request.ContentLength > maxUploadBody {
		response.RespondError(c, http.StatusRequestEntityTooLarge, "file_too_large", errFileTooLarge)
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBody)
	if err := c.Request.ParseMultipartForm(memoryBuffer); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.RespondError(c, http.StatusRequestEntityTooLarge, "file_too_large", errFileTooLarge)
			return
		}
		response.RespondInvalid(c, err)
		return
	}

	var form schema.ManualUploadForm
	if err := c.ShouldBind(&form); err != nil {
		response.RespondInvalid(c, err)
		return
	}
	fh, err := c.FormFile("file")
	if err != nil {
		response.RespondInvalid(c, errors.New("missing file"))
		return
	}
	if fh.Size > maxManualBytes {
		response.RespondError(c, http.StatusRequestEntityTooLarge, "file_too_large", errFileTooLarge)
		return
	}
	f, err := fh.Open()
	if err != nil {
		response.RespondInvalid(c, err)
		return
	}
	defer f.Close()

	manual, err := uh.fileService.UploadManual(c.Request.Context(), services.ManualUpload{
		Title:      form.Title,
		Filename:   fh.Filename,
		Size:       fh.Size,
		GroupID:    form.GroupID,
		CategoryID: form.CategoryID,
	}, f)
	if err != nil {
		response.RespondErr(c, err)
		return
	}
	response.RespondCreated(c, schema.ManualFromModel(manual))
}
