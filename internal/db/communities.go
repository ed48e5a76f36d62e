package db

import (
	"context"

	"github.com/forumhub/backend/internal/model"
)

func (db *Postgres) ListCommunities(ctx context.Context) ([]model.Community, error) {
	rows, err := db.Pool.Query(ctx, `SELECT id, name FROM community ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []model.Community{}
	for rows.Next() {
		var c model.Community
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (db *Postgres) GetCommunity(ctx context.Context, id int64) (*model.Community, error) {
	var c model.Community
	err := db.Pool.QueryRow(ctx, `SELECT id, name FROM community WHERE id = $1`, id).Scan(&c.ID, &c.Name)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// CreateCommunities inserts names that do not exist yet and reports how many
// rows were added.
func (db *Postgres) CreateCommunities(ctx context.Context, names []string) (int64, error) {
	if len(names) == 0 {
		return 0, nil
	}
	tag, err := db.Pool.Exec(ctx, `
		INSERT INTO community (name)
		SELECT UNNEST($1::text[])
		ON CONFLICT (name) DO NOTHING
	`, names)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (db *Postgres) CountCommunities(ctx context.Context) (int64, error) {
	var count int64
	err := db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM community`).Scan(&count)
	return count, err
}
