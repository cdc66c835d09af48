package handlers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/aedb-backend/internal/http/response"
)

// pathID reads a positive integer path parameter. It writes the 422 response
// itself and reports false when the value is unusable.
func pathID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		response.RespondInvalid(c, fmt.Errorf("invalid %s %q", name, raw))
		return 0, false
	}
	return uint(id), true
}
