package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/forumhub/backend/internal/model"
	"github.com/jackc/pgx/v5"
)

type scanner interface {
	Scan(dest ...any) error
}

const postSelect = `
	SELECT
		p.id, p.title, p.content, p.created_at, p.updated_at,
		c.id, c.name,
		u.id, u.username, u.img, u.created_at, u.updated_at
	FROM posts p
	JOIN community c ON c.id = p.community_id
	JOIN users u ON u.id = p.user_id
`

func scanPost(row scanner) (*model.Post, error) {
	p := model.Post{Community: &model.Community{}, User: &model.User{}, Comments: []model.Comment{}}
	err := row.Scan(
		&p.ID, &p.Title, &p.Content, &p.CreatedAt, &p.UpdatedAt,
		&p.Community.ID, &p.Community.Name,
		&p.User.ID, &p.User.Username, &p.User.Img, &p.User.CreatedAt, &p.User.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (db *Postgres) CreatePost(ctx context.Context, userID, communityID int64, title, content string) (int64, error) {
	var id int64
	err := db.Pool.QueryRow(ctx, `
		INSERT INTO posts (title, content, community_id, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id
	`, title, content, communityID, userID).Scan(&id)
	return id, err
}

// GetPost loads a post with its community, author and comments (newest
// comment first).
func (db *Postgres) GetPost(ctx context.Context, id int64) (*model.Post, error) {
	post, err := scanPost(db.Pool.QueryRow(ctx, postSelect+` WHERE p.id = $1`, id))
	if err != nil {
		return nil, err
	}
	comments, err := db.commentsForPosts(ctx, []int64{post.ID})
	if err != nil {
		return nil, err
	}
	if list, ok := comments[post.ID]; ok {
		post.Comments = list
	}
	return post, nil
}

// GetOwnedPost returns pgx.ErrNoRows when the post does not exist or belongs
// to someone else.
func (db *Postgres) GetOwnedPost(ctx context.Context, id, userID int64) (*model.Post, error) {
	return scanPost(db.Pool.QueryRow(ctx, postSelect+` WHERE p.id = $1 AND p.user_id = $2`, id, userID))
}

func (db *Postgres) UpdatePost(ctx context.Context, id, userID, communityID int64, title, content string) error {
	tag, err := db.Pool.Exec(ctx, `
		UPDATE posts
		SET title = $1, content = $2, community_id = $3, updated_at = NOW()
		WHERE id = $4 AND user_id = $5
	`, title, content, communityID, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (db *Postgres) DeletePost(ctx context.Context, id, userID int64) error {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM posts WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// ListPosts returns posts with community, author and comments. Listings
// scoped to a user are ordered by creation time, the public feed by id.
func (db *Postgres) ListPosts(ctx context.Context, filter model.PostFilter) ([]model.Post, error) {
	var (
		conds []string
		args  []any
	)
	if filter.CommunityID > 0 {
		args = append(args, filter.CommunityID)
		conds = append(conds, fmt.Sprintf("p.community_id = $%d", len(args)))
	}
	if filter.UserID > 0 {
		args = append(args, filter.UserID)
		conds = append(conds, fmt.Sprintf("p.user_id = $%d", len(args)))
	}

	query := postSelect
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	if filter.UserID > 0 {
		query += " ORDER BY p.created_at DESC, p.id DESC"
	} else {
		query += " ORDER BY p.id DESC"
	}

	rows, err := db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := []model.Post{}
	ids := []int64{}
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, *post)
		ids = append(ids, post.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	comments, err := db.commentsForPosts(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range posts {
		if list, ok := comments[posts[i].ID]; ok {
			posts[i].Comments = list
		}
	}
	return posts, nil
}
