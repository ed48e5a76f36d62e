package db

import (
	"context"

	"github.com/forumhub/backend/internal/model"
	"github.com/jackc/pgx/v5"
)

const commentColumns = `
	cm.id, cm.content, cm.post_id, cm.created_at, cm.updated_at,
	u.id, u.username, u.img, u.created_at, u.updated_at
`

func scanComment(row scanner) (*model.Comment, error) {
	c := model.Comment{User: &model.User{}}
	err := row.Scan(
		&c.ID, &c.Content, &c.PostID, &c.CreatedAt, &c.UpdatedAt,
		&c.User.ID, &c.User.Username, &c.User.Img, &c.User.CreatedAt, &c.User.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (db *Postgres) PostExists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := db.Pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM posts WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

func (db *Postgres) CreateComment(ctx context.Context, postID, userID int64, content string) (*model.Comment, error) {
	return scanComment(db.Pool.QueryRow(ctx, `
		WITH cm AS (
			INSERT INTO comments (content, user_id, post_id, created_at, updated_at)
			VALUES ($1, $2, $3, NOW(), NOW())
			RETURNING *
		)
		SELECT `+commentColumns+`
		FROM cm JOIN users u ON u.id = cm.user_id
	`, content, userID, postID))
}

// UpdateComment only touches a comment owned by userID; otherwise it returns
// pgx.ErrNoRows.
func (db *Postgres) UpdateComment(ctx context.Context, id, userID int64, content string) (*model.Comment, error) {
	return scanComment(db.Pool.QueryRow(ctx, `
		WITH cm AS (
			UPDATE comments
			SET content = $1, updated_at = NOW()
			WHERE id = $2 AND user_id = $3
			RETURNING *
		)
		SELECT `+commentColumns+`
		FROM cm JOIN users u ON u.id = cm.user_id
	`, content, id, userID))
}

func (db *Postgres) DeleteComment(ctx context.Context, id, userID int64) error {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM comments WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (db *Postgres) ListCommentsByPost(ctx context.Context, postID int64) ([]model.Comment, error) {
	byPost, err := db.commentsForPosts(ctx, []int64{postID})
	if err != nil {
		return nil, err
	}
	if list, ok := byPost[postID]; ok {
		return list, nil
	}
	return []model.Comment{}, nil
}

func (db *Postgres) commentsForPosts(ctx context.Context, postIDs []int64) (map[int64][]model.Comment, error) {
	out := make(map[int64][]model.Comment, len(postIDs))
	if len(postIDs) == 0 {
		return out, nil
	}

	rows, err := db.Pool.Query(ctx, `
		SELECT `+commentColumns+`
		FROM comments cm
		JOIN users u ON u.id = cm.user_id
		WHERE cm.post_id = ANY($1)
		ORDER BY cm.created_at DESC, cm.id DESC
	`, postIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		out[c.PostID] = append(out[c.PostID], *c)
	}
	return out, rows.Err()
}
