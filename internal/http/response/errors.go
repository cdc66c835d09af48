package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/yungbote/aedb-backend/internal/data/db"
	"github.com/yungbote/aedb-backend/internal/platform/apierr"
)

const (
	CodeNotFound         = "not_found"
	CodeConflict         = "conflict"
	CodeIntegrityError   = "integrity_error"
	CodeValidationFailed = "validation_failed"
	CodeInternal         = "internal_error"
)

// Status maps an error returned by a service to its HTTP status and code.
func Status(err error) (int, string) {
	if ae, ok := apierr.As(err); ok {
		status := ae.Status
		if status == 0 {
			status = http.StatusInternalServerError
		}
		return status, ae.Code
	}
	var verrs validator.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		return http.StatusUnprocessableEntity, CodeValidationFailed
	case errors.Is(err, db.ErrNotFound):
		return http.StatusNotFound, CodeNotFound
	case errors.Is(err, db.ErrForeignKeyViolation):
		return http.StatusConflict, CodeIntegrityError
	case errors.Is(err, db.ErrDuplicateKey):
		return http.StatusConflict, CodeConflict
	default:
		return http.StatusInternalServerError, CodeInternal
	}
}

// RespondErr writes err in the error envelope. Internal failures are reported
// without their cause.
func RespondErr(c *gin.Context, err error) {
	status, code := Status(err)
	_ = c.Error(err)
	if status >= http.StatusInternalServerError {
		RespondError(c, status, code, errors.New("internal server error"))
		return
	}
	RespondError(c, status, code, err)
}

// RespondInvalid rejects a request whose body or query failed binding.
func RespondInvalid(c *gin.Context, err error) {
	_ = c.Error(err)
	RespondError(c, http.StatusUnprocessableEntity, CodeValidationFailed, err)
}
