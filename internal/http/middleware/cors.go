package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const wildcard = "*"

var allMethods = []string{
	http.MethodDelete,
	http.MethodGet,
	http.MethodHead,
	http.MethodOptions,
	http.MethodPatch,
	http.MethodPost,
	http.MethodPut,
}

// CORSOptions mirrors the four CORS settings of the process configuration.
// "*" in any list means everything.
type CORSOptions struct {
	AllowOrigins     []string
	AllowCredentials bool
	AllowMethods     []string
	AllowHeaders     []string
}

// CORS builds the cors middleware. An empty origin list rejects every
// cross-origin request. A wildcard origin with credentials echoes the request
// origin, since browsers refuse "*" on credentialed requests.
func CORS(opts CORSOptions) gin.HandlerFunc {
	cfg := cors.Config{
		AllowCredentials: opts.AllowCredentials,
		AllowMethods:     opts.AllowMethods,
	}
	switch {
	case contains(opts.AllowOrigins, wildcard) && opts.AllowCredentials:
		cfg.AllowOriginFunc = func(string) bool { return true }
	case contains(opts.AllowOrigins, wildcard):
		cfg.AllowAllOrigins = true
	case len(opts.AllowOrigins) == 0:
		cfg.AllowOriginFunc = func(string) bool { return false }
	default:
		cfg.AllowOrigins = opts.AllowOrigins
	}
	if len(opts.AllowMethods) == 0 || contains(opts.AllowMethods, wildcard) {
		cfg.AllowMethods = allMethods
	}

	anyHeader := contains(opts.AllowHeaders, wildcard)
	if !anyHeader {
		cfg.AllowHeaders = opts.AllowHeaders
	}
	handler := cors.New(cfg)
	if !anyHeader {
		return handler
	}
	return func(c *gin.Context) {
		if isPreflight(c.Request) {
			if requested := c.GetHeader("Access-Control-Request-Headers"); requested != "" {
				c.Header("Access-Control-Allow-Headers", requested)
				c.Writer.Header().Add("Vary", "Access-Control-Request-Headers")
			}
		}
		handler(c)
	}
}

func isPreflight(r *http.Request) bool {
	return r.Method == http.MethodOptions &&
		r.Header.Get("Origin") != "" &&
		r.Header.Get("Access-Control-Request-Method") != ""
}

func contains(list []string, want string) bool {
	for _, v := range list {
		if strings.TrimSpace(v) == want {
			return true
		}
	}
	return false
}
