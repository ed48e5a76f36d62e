package service

import (
	"context"
	"fmt"

	"github.com/forumhub/backend/internal/model"
	"go.uber.org/zap"
)

const (
	seedUsername = "admin"
	seedUserImg  = "https://i.pravatar.cc/300"
)

type seedRepo interface {
	CountUsers(ctx context.Context) (int64, error)
	CreateUser(ctx context.Context, username, img string) (*model.User, error)
	CountCommunities(ctx context.Context) (int64, error)
	CreateCommunities(ctx context.Context, names []string) (int64, error)
}

// Seeder fills an empty database with the admin user and the default
// communities. Running it again is a no-op.
type Seeder struct {
	repo        seedRepo
	communities []string
	log         *zap.Logger
}

func NewSeeder(repo seedRepo, communities []string, log *zap.Logger) *Seeder {
	return &Seeder{repo: repo, communities: communities, log: log}
}

func (s *Seeder) Seed(ctx context.Context) error {
	users, err := s.repo.CountUsers(ctx)
	if err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if users == 0 {
		if _, err := s.repo.CreateUser(ctx, seedUsername, seedUserImg); err != nil {
			return fmt.Errorf("seed admin user: %w", err)
		}
		s.log.Info("seeded admin user")
	} else {
		s.log.Info("database already seeded", zap.Int64("users", users))
	}

	communities, err := s.repo.CountCommunities(ctx)
	if err != nil {
		return fmt.Errorf("count communities: %w", err)
	}
	if communities == 0 && len(s.communities) > 0 {
		added, err := s.repo.CreateCommunities(ctx, s.communities)
		if err != nil {
			return fmt.Errorf("seed communities: %w", err)
		}
		s.log.Info("seeded communities", zap.Int64("count", added))
	}
	return nil
}
