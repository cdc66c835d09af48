package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/aedb-backend/internal/http/response"
	"github.com/yungbote/aedb-backend/internal/http/schema"
	"github.com/yungbote/aedb-backend/internal/services"
)

type PostHandler struct {
	postService services.PostService
}

func NewPostHandler(postService services.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// GET /posts?limit=&offset=
func (ph *PostHandler) List(c *gin.Context) {
	var page schema.Page
	if err := c.ShouldBindQuery(&page); err != nil {
		response.RespondInvalid(c, err)
		return
	}
	posts, err := ph.postService.ListPosts(c.Request.Context(), page.Limit, page.Offset)
	if err != nil {
		response.RespondErr(c, err)
		return
	}
	response.RespondOK(c, schema.PostsFromModels(posts))
}

// GET /posts/:id
func (ph *PostHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	post, err := ph.postService.GetPost(c.Request.Context(), id)
	if err != nil {
		response.RespondErr(c, err)
		return
	}
	response.RespondOK(c, schema.PostFromModel(post))
}

// POST /posts
func (ph *PostHandler) Create(c *gin.Context) {
	var req schema.PostInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondInvalid(c, err)
		return
	}
	post, err := ph.postService.CreatePost(c.Request.Context(), req.ToService())
	if err != nil {
		response.RespondErr(c, err)
		return
	}
	response.RespondCreated(c, schema.PostFromModel(post))
}

// PUT /posts/:id
func (ph *PostHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req schema.PostInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondInvalid(c, err)
		return
	}
	post, err := ph.postService.UpdatePost(c.Request.Context(), id, req.ToService())
	if err != nil {
		response.RespondErr(c, err)
		return
	}
	response.RespondOK(c, schema.PostFromModel(post))
}

// DELETE /posts/:id
func (ph *PostHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := ph.postService.DeletePost(c.Request.Context(), id); err != nil {
		response.RespondErr(c, err)
		return
	}
	response.RespondNoContent(c)
}
