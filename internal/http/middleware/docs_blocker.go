package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/aedb-backend/internal/http/response"
)

var docsPaths = map[string]bool{
	"/docs":         true,
	"/redoc":        true,
	"/openapi.json": true,
}

// DocsBlocker answers 403 on the documentation endpoints unless access is
// enabled.
func DocsBlocker(enabled bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !enabled && docsPaths[c.Request.URL.Path] {
			response.AbortError(c, http.StatusForbidden, "docs_forbidden", errors.New("documentation access is disabled"))
			return
		}
		c.Next()
	}
}
