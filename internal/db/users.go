package db

import (
	"context"

	"github.com/forumhub/backend/internal/model"
)

const userColumns = `id, username, img, created_at, updated_at`

func (db *Postgres) CreateUser(ctx context.Context, username, img string) (*model.User, error) {
	query := `
		INSERT INTO users (username, img, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		RETURNING ` + userColumns
	var user model.User
	err := db.Pool.QueryRow(ctx, query, username, img).Scan(
		&user.ID,
		&user.Username,
		&user.Img,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (db *Postgres) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	var user model.User
	err := db.Pool.QueryRow(ctx, query, username).Scan(
		&user.ID,
		&user.Username,
		&user.Img,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (db *Postgres) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	err := db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count)
	return count, err
}
