package handler

import (
	"context"

	"github.com/forumhub/backend/internal/model"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type commentService interface {
	Create(ctx context.Context, userID int64, req model.CreateCommentRequest) (*model.Comment, error)
	Update(ctx context.Context, id, userID int64, req model.UpdateCommentRequest) (*model.Comment, error)
	Delete(ctx context.Context, id, userID int64) error
	ListByPost(ctx context.Context, postID int64) ([]model.Comment, error)
}

type CommentHandler struct {
	svc   commentService
	guard guard
	log   *zap.Logger
}

func NewCommentHandler(svc commentService, g guard, log *zap.Logger) *CommentHandler {
	return &CommentHandler{svc: svc, guard: g, log: log}
}

// CreateComment godoc
// @Summary Comment on a post
// @Tags comment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateCommentRequest true "Comment"
// @Success 200 {object} model.Envelope{data=model.Comment}
// @Failure 400,401,404,500 {object} model.Envelope
// @Router /comment [post]
func (h *CommentHandler) CreateComment(c *gin.Context) {
	identity, ok := authorize(c, h.guard, h.log)
	if !ok {
		return
	}

	var req model.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "content and postId are required")
		return
	}

	comment, err := h.svc.Create(c.Request.Context(), identity.ID, req)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	respondOK(c, "Create successfully", comment)
}

// UpdateComment godoc
// @Summary Update own comment
// @Tags comment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Comment ID"
// @Param request body model.UpdateCommentRequest true "New content"
// @Success 200 {object} model.Envelope{data=model.Comment}
// @Failure 400,401,404,500 {object} model.Envelope
// @Router /comment/{id} [put]
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	identity, ok := authorize(c, h.guard, h.log)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req model.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "content is required")
		return
	}

	comment, err := h.svc.Update(c.Request.Context(), id, identity.ID, req)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	respondOK(c, "Update successfully", comment)
}

// DeleteComment godoc
// @Summary Delete own comment
// @Tags comment
// @Produce json
// @Security BearerAuth
// @Param id path int true "Comment ID"
// @Success 200 {object} model.Envelope
// @Failure 400,401,404,500 {object} model.Envelope
// @Router /comment/{id} [delete]
func (h *CommentHandler) DeleteComment(c *gin.Context) {
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

// GetCommentsByPost godoc
// @Summary List comments of a post
// @Tags comment
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} model.Envelope{data=[]model.Comment}
// @Failure 400,500 {object} model.Envelope
// @Router /comment/{id}/comments [get]
func (h *CommentHandler) GetCommentsByPost(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}

	comments, err := h.svc.ListByPost(c.Request.Context(), postID)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	respondOK(c, "get comment by post successfully", comments)
}
