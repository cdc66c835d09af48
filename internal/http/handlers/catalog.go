package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/aedb-backend/internal/data/repos"
	"github.com/yungbote/aedb-backend/internal/http/response"
	"github.com/yungbote/aedb-backend/internal/http/schema"
	"github.com/yungbote/aedb-backend/internal/services"
)

// CatalogHandler serves categories, groups and manuals.
type CatalogHandler struct {
	catalogService services.CatalogService
}

func NewCatalogHandler(catalogService services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// GET /categories
func (ch *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := ch.catalogService.ListCategories(c.Request.Context())
	if err != nil {
		response.RespondErr(c, err)
		return
	}
	response.RespondOK(c, schema.CategoriesFromModels(categories))
}

// GET /categories/:id
func (ch *CatalogHandler) GetCategory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	category, err := ch.catalogService.GetCategory(c.Request.Context(), id)
	if err != nil {
		response.RespondErr(c, err)
		return
	}
	response.RespondOK(c, schema.CategoryFromModel(category))
}

// POST /categories
func (ch *CatalogHandler) CreateCategory(c *gin.Context) {
	var req schema.CategorySchema
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondInvalid(c, err)
		return
	}
	category, err := ch.catalogService.CreateCategory(c.Request.Context(), req.ToModel())
	if err != nil {
		response.RespondErr(c, err)
		return
	}
	response.RespondCreated(c, schema.CategoryFromModel(category))
}

// PUT /categories/:id
func (ch *CatalogHandler) UpdateCategory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req schema.CategorySchema
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondInvalid(c, err)
		return
	}
	category, err := ch.catalogService.UpdateCategory(c.Request.Context(), id, req.ToModel())
	if err != nil {
		response.RespondErr(c, err)
		return
	}
	response.RespondOK(c, schema.CategoryFromModel(category))
}

// DELETE /categories/:id removes the category with its groups and manuals.
func (ch *CatalogHandler) DeleteCategory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := ch.catalogService.DeleteCategory(c.Request.Context(), id); err != nil {
		response.RespondErr(c, err)
		return
	}
	response.RespondNoContent(c)
}

// GET /categories/:id/groups
func (ch *CatalogHandler) ListCategoryGroups(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	groups, err := ch.catalogService.ListCategoryGroups(c.Request.Context(), id)
	if err != nil {
		response.RespondErr(c, err)
		return
	}
	response.RespondOK(c, schema.GroupsFromModels(groups))
}

// GET /groups
func (ch *CatalogHandler) ListGroups(c *gin.Context) {
	groups, err := ch.catalogService.ListGroups(c.Request.Context())
	if err != nil {
		response.RespondErr(c, err)
		return
	}
	response.RespondOK(c, schema.GroupsFromModels(groups))
}

// GET /groups/:id
func (ch *CatalogHandler) GetGroup(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	group, err := ch.catalogService.GetGroup(c.Request.Context(), id)
	if err != nil {
		response.RespondErr(c, err)
		return
	}
	response.RespondOK(c, schema.GroupFromModel(group))
}

// POST /groups
func (ch *CatalogHandler) CreateGroup(c *gin.Context) {
	var req schema.GroupSchema
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondInvalid(c, err)
		return
	}
	group, err := ch.catalogService.CreateGroup(c.Request.Context(), req.ToModel())
	if err != nil {
		response.RespondErr(c, err)
		return
	}
	response.RespondCreated(c, schema.GroupFromModel(group))
}

// PUT /groups/:id
func (ch *CatalogHandler) UpdateGroup(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req schema.GroupSchema
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondInvalid(c, err)
		return
	}
	group, err := ch.catalogService.UpdateGroup(c.Request.Context(), id, req.ToModel())
	if err != nil {
		response.RespondErr(c, err)
		return
	}
	response.RespondOK(c, schema.GroupFromModel(group))
}

// DELETE /groups/:id
func (ch *CatalogHandler) DeleteGroup(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := ch.catalogService.DeleteGroup(c.Request.Context(), id); err != nil {
		response.RespondErr(c, err)
		return
	}
	response.RespondNoContent(c)
}

// GET /groups/:id/manuals
func (ch *CatalogHandler) ListGroupManuals(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	manuals, err := ch.catalogService.ListGroupManuals(c.Request.Context(), id)
	if err != nil {
		response.RespondErr(c, err)
		return
	}
	response.RespondOK(c, schema.ManualsFromModels(manuals))
}

// GET /manuals?category_id=&group_id=
func (ch *CatalogHandler) ListManuals(c *gin.Context) {
	var q schema.ManualQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.RespondInvalid(c, err)
		return
	}
	manuals, err := ch.catalogService.ListManuals(c.Request.Context(), repos.ManualFilter{
		CategoryID: q.CategoryID,
		GroupID:    q.GroupID,
	})
	if err != nil {
		response.RespondErr(c, err)
		return
	}
	response.RespondOK(c, schema.ManualsFromModels(manuals))
}

// GET /manuals/:id
func (ch *CatalogHandler) GetManual(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	manual, err := ch.catalogService.GetManual(c.Request.Context(), id)
	if err != nil {
		response.RespondErr(c, err)
		return
	}
	response.RespondOK(c, schema.ManualFromModel(manual))
}

// POST /manuals
func (ch *CatalogHandler) CreateManual(c *gin.Context) {
	var req schema.ManualSchema
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondInvalid(c, err)
		return
	}
	manual, err := ch.catalogService.CreateManual(c.Request.Context(), req.ToModel())
	if err != nil {
		response.RespondErr(c, err)
		return
	}
	response.RespondCreated(c, schema.ManualFromModel(manual))
}

// PUT /manuals/:id
func (ch *CatalogHandler) UpdateManual(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req schema.ManualSchema
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondInvalid(c, err)
		return
	}
	manual, err := ch.catalogService.UpdateManual(c.Request.Context(), id, req.ToModel())
	if err != nil {
		response.RespondErr(c, err)
		return
	}
	response.RespondOK(c, schema.ManualFromModel(manual))
}

// DELETE /manuals/:id
func (ch *CatalogHandler) DeleteManual(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := ch.catalogService.DeleteManual(c.Request.Context(), id); err != nil {
		response.RespondErr(c, err)
		return
	}
	response.RespondNoContent(c)
}
