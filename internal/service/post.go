package service

import (
	"context"
	"strings"

	"github.com/forumhub/backend/internal/db"
	"github.com/forumhub/backend/internal/model"
	"go.uber.org/zap"
)

type postRepo interface {
	CreatePost(ctx context.Context, userID, communityID int64, title, content string) (int64, error)
	GetPost(ctx context.Context, id int64) (*model.Post, error)
	GetOwnedPost(ctx context.Context, id, userID int64) (*model.Post, error)
	UpdatePost(ctx context.Context, id, userID, communityID int64, title, content string) error
	DeletePost(ctx context.Context, id, userID int64) error
	ListPosts(ctx context.Context, filter model.PostFilter) ([]model.Post, error)
	GetCommunity(ctx context.Context, id int64) (*model.Community, error)
	ListCommunities(ctx context.Context) ([]model.Community, error)
}

type PostService struct {
	repo postRepo
	log  *zap.Logger
}

func NewPostService(repo postRepo, log *zap.Logger) *PostService {
	return &PostService{repo: repo, log: log}
}

func (s *PostService) Create(ctx context.Context, userID int64, req model.CreatePostRequest) (*model.Post, error) {
	title := strings.TrimSpace(req.Title)
	content := strings.TrimSpace(req.Content)
	switch {
	case title == "":
		return nil, ErrEmptyPostTitle
	case content == "":
		return nil, ErrEmptyPostContent
	case req.CommunityID <= 0:
		return nil, ErrInvalidCommunityID
	}

	if err := s.ensureCommunity(ctx, req.CommunityID); err != nil {
		return nil, err
	}

	id, err := s.repo.CreatePost(ctx, userID, req.CommunityID, title, content)
	if err != nil {
		return nil, err
	}
	s.log.Info("post created", zap.Int64("post_id", id), zap.Int64("user_id", userID))
	return s.repo.GetPost(ctx, id)
}

// Update changes only the supplied fields of a post owned by userID.
func (s *PostService) Update(ctx context.Context, id, userID int64, req model.UpdatePostRequest) (*model.Post, error) {
	post, err := s.repo.GetOwnedPost(ctx, id, userID)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	title, content, communityID := post.Title, post.Content, post.Community.ID
	if req.Title != nil {
		if title = strings.TrimSpace(*req.Title); title == "" {
			return nil, ErrEmptyPostTitle
		}
	}
	if req.Content != nil {
		if content = strings.TrimSpace(*req.Content); content == "" {
			return nil, ErrEmptyPostContent
		}
	}
	if req.CommunityID != nil && *req.CommunityID != communityID {
		if err := s.ensureCommunity(ctx, *req.CommunityID); err != nil {
			return nil, err
		}
		communityID = *req.CommunityID
	}

	if err := s.repo.UpdatePost(ctx, id, userID, communityID, title, content); err != nil {
		if db.IsNoRows(err) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return s.repo.GetPost(ctx, id)
}

func (s *PostService) Delete(ctx context.Context, id, userID int64) error {
	if err := s.repo.DeletePost(ctx, id, userID); err != nil {
		if db.IsNoRows(err) {
			return ErrPostNotFound
		}
		return err
	}
	s.log.Info("post deleted", zap.Int64("post_id", id), zap.Int64("user_id", userID))
	return nil
}

func (s *PostService) Get(ctx context.Context, id int64) (*model.Post, error) {
	post, err := s.repo.GetPost(ctx, id)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return post, nil
}

// List returns the public feed, optionally narrowed to one community.
func (s *PostService) List(ctx context.Context, communityID int64) ([]model.Post, error) {
	return s.repo.ListPosts(ctx, model.PostFilter{CommunityID: communityID})
}

func (s *PostService) ListByUser(ctx context.Context, userID, communityID int64) ([]model.Post, error) {
	return s.repo.ListPosts(ctx, model.PostFilter{UserID: userID, CommunityID: communityID})
}

func (s *PostService) Communities(ctx context.Context) ([]model.Community, error) {
	return s.repo.ListCommunities(ctx)
}

func (s *PostService) ensureCommunity(ctx context.Context, id int64) error {
	if _, err := s.repo.GetCommunity(ctx, id); err != nil {
		if db.IsNoRows(err) {
			return ErrCommunityNotFound
		}
		return err
	}
	return nil
}
