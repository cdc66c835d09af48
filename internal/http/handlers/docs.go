package handlers

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gopkg.in/yaml.v3"
)

//go:embed openapi.yaml
var openAPISpec []byte

const swaggerPage = `<!DOCTYPE html>
<html>
<head><title>AEDB API</title>
<link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/swagger-ui-dist@5/swagger-ui.css"></head>
<body><div id="swagger-ui"></div>
<script src="https://cdn.jsdelivr.net/npm/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
<script>SwaggerUIBundle({url: "/openapi.json", dom_id: "#swagger-ui"});</script>
</body></html>`

const redocPage = `<!DOCTYPE html>
<html>
<head><title>AEDB API</title></head>
<body><redoc spec-url="/openapi.json"></redoc>
<script src="https://cdn.jsdelivr.net/npm/redoc@2/bundles/redoc.standalone.js"></script>
</body></html>`

type DocsHandler struct {
	specJSON []byte
}

// NewDocsHandler converts the embedded YAML description to JSON once.
func NewDocsHandler() (*DocsHandler, error) {
	specJSON, err := yamlToJSON(openAPISpec)
	if err != nil {
		return nil, fmt.Errorf("load api description: %w", err)
	}
	return &DocsHandler{specJSON: specJSON}, nil
}

func yamlToJSON(raw []byte) ([]byte, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return json.Marshal(doc)
}

// GET /openapi.json
func (dh *DocsHandler) Spec(c *gin.Context) {
	c.Data(http.StatusOK, "application/json; charset=utf-8", dh.specJSON)
}

// GET /docs
func (dh *DocsHandler) Swagger(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(swaggerPage))
}

// GET /redoc
func (dh *DocsHandler) Redoc(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(redocPage))
}
