package service

import (
	"context"
	"strings"

	"github.com/forumhub/backend/internal/db"
	"github.com/forumhub/backend/internal/model"
	"go.uber.org/zap"
)

type commentRepo interface {
	PostExists(ctx context.Context, id int64) (bool, error)
	CreateComment(ctx context.Context, postID, userID int64, content string) (*model.Comment, error)
	UpdateComment(ctx context.Context, id, userID int64, content string) (*model.Comment, error)
	DeleteComment(ctx context.Context, id, userID int64) error
	ListCommentsByPost(ctx context.Context, postID int64) ([]model.Comment, error)
}

type CommentService struct {
	repo commentRepo
	log  *zap.Logger
}

func NewCommentService(repo commentRepo, log *zap.Logger) *CommentService {
	return &CommentService{repo: repo, log: log}
}

func (s *CommentService) Create(ctx context.Context, userID int64, req model.CreateCommentRequest) (*model.Comment, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, ErrEmptyCommentContent
	}
	if req.PostID <= 0 {
		return nil, ErrInvalidPostID
	}

	exists, err := s.repo.PostExists(ctx, req.PostID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrPostNotFound
	}

	comment, err := s.repo.CreateComment(ctx, req.PostID, userID, content)
	if err != nil {
		return nil, err
	}
	s.log.Info("comment created", zap.Int64("comment_id", comment.ID), zap.Int64("post_id", req.PostID))
	return comment, nil
}

// Update and Delete look the comment up scoped to (id, userID); a comment
// owned by someone else is reported exactly like a missing one.
func (s *CommentService) Update(ctx context.Context, id, userID int64, req model.UpdateCommentRequest) (*model.Comment, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, ErrEmptyCommentContent
	}

	comment, err := s.repo.UpdateComment(ctx, id, userID, content)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) Delete(ctx context.Context, id, userID int64) error {
	if err := s.repo.DeleteComment(ctx, id, userID); err != nil {
		if db.IsNoRows(err) {
			return ErrCommentNotFound
		}
		return err
	}
	return nil
}

func (s *CommentService) ListByPost(ctx context.Context, postID int64) ([]model.Comment, error) {
	return s.repo.ListCommentsByPost(ctx, postID)
}
