package handler

import (
	"context"

	"github.com/forumhub/backend/internal/model"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type postService interface {
	Create(ctx context.Context, userID int64, req model.CreatePostRequest) (*model.Post, error)
	Update(ctx context.Context, id, userID int64, req model.UpdatePostRequest) (*model.Post, error)
	Delete(ctx context.Context, id, userID int64) error
	Get(ctx context.Context, id int64) (*model.Post, error)
	List(ctx context.Context, communityID int64) ([]model.Post, error)
	ListByUser(ctx context.Context, userID, communityID int64) ([]model.Post, error)
	Communities(ctx context.Context) ([]model.Community, error)
}

type PostHandler struct {
	svc   postService
	guard guard
	log   *zap.Logger
}

func NewPostHandler(svc postService, g guard, log *zap.Logger) *PostHandler {
	return &PostHandler{svc: svc, guard: g, log: log}
}

// CreatePost godoc
// @Summary Create a post
// @Tags post
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreatePostRequest true "Post"
// @Success 200 {object} model.Envelope{data=model.Post}
// @Failure 400,401,404,500 {object} model.Envelope
// @Router /post [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	identity, ok := authorize(c, h.guard, h.log)
	if !ok {
		return
	}

	var req model.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "title, content and communityId are required")
		return
	}

	post, err := h.svc.Create(c.Request.Context(), identity.ID, req)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	respondOK(c, "Create successfully", post)
}

// UpdatePost godoc
// @Summary Update own post
// @Tags post
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Param request body model.UpdatePostRequest true "Fields to change"
// @Success 200 {object} model.Envelope{data=model.Post}
// @Failure 400,401,404,500 {object} model.Envelope
// @Router /post/{id} [put]
func (h *PostHandler) UpdatePost(c *gin.Context) {
	identity, ok := authorize(c, h.guard, h.log)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req model.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request")
		return
	}

	post, err := h.svc.Update(c.Request.Context(), id, identity.ID, req)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	respondOK(c, "Update successfully", post)
}

// DeletePost godoc
// @Summary Delete own post
// @Tags post
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Success 200 {object} model.Envelope
// @Failure 400,401,404,500 {object} model.Envelope
// @Router /post/{id} [delete]
func (h *PostHandler) DeletePost(c *gin.Context) {
	identity, ok := authorize(c, h.guard, h.log)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id, identity.ID); err != nil {
		writeError(c, h.log, err)
		return
	}
	respondOK(c, "Deleted successfully", nil)
}

// GetPosts godoc
// @Summary List posts
// @Tags post
// @Produce json
// @Param communityId query int false "Community ID"
// @Success 200 {object} model.Envelope{data=[]model.Post}
// @Failure 400,500 {object} model.Envelope
// @Router /post [get]
func (h *PostHandler) GetPosts(c *gin.Context) {
	communityID, ok := queryID(c, "communityId")
	if !ok {
		return
	}

	posts, err := h.svc.List(c.Request.Context(), communityID)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	respondOK(c, "Get posts successfully", posts)
}

// GetMyPosts godoc
// @Summary List the caller's posts
// @Tags post
// @Produce json
// @Security BearerAuth
// @Param communityId query int false "Community ID"
// @Success 200 {object} model.Envelope{data=[]model.Post}
// @Failure 400,401,500 {object} model.Envelope
// @Router /post/me [get]
func (h *PostHandler) GetMyPosts(c *gin.Context) {
	identity, ok := authorize(c, h.guard, h.log)
	if !ok {
		return
	}
	communityID, ok := queryID(c, "communityId")
	if !ok {
		return
	}

	posts, err := h.svc.ListByUser(c.Request.Context(), identity.ID, communityID)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	respondOK(c, "Get posts successfully", posts)
}

// GetPost godoc
// @Summary Get post detail with comments
// @Tags post
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} model.Envelope{data=model.Post}
// @Failure 400,404,500 {object} model.Envelope
// @Router /post/{id} [get]
func (h *PostHandler) GetPost(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	post, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	respondOK(c, "Get post successfully", post)
}

// GetCommunities godoc
// @Summary List communities
// @Tags community
// @Produce json
// @Success 200 {object} model.Envelope{data=[]model.Community}
// @Failure 500 {object} model.Envelope
// @Router /community [get]
func (h *PostHandler) GetCommunities(c *gin.Context) {
	list, err := h.svc.Communities(c.Request.Context())
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	respondOK(c, "Get communities successfully", list)
}
