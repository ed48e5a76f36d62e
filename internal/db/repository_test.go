package db

import (
	"context"
	"testing"
	"time"

	"github.com/forumhub/backend/internal/config"
	"github.com/forumhub/backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
)

// startPostgres runs a throwaway PostgreSQL container and returns a migrated
// repository on top of it.
func startPostgres(t *testing.T) *Postgres {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres container test in short mode")
	}
	ctx := context.Background()

	ctr, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "forum",
				"POSTGRES_PASSWORD": "forum",
				"POSTGRES_DB":       "forum",
			},
			WaitingFor: wait.ForAll(
				wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
				wait.ForListeningPort("5432/tcp"),
			).WithDeadline(2 * time.Minute),
		},
		Started: true,
	})
	testcontainers.CleanupContainer(t, ctr)
	require.NoError(t, err)

	host, err := ctr.Host(ctx)
	require.NoError(t, err)
	port, err := ctr.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	pool, err := NewPostgresPool(ctx, config.PostgresConfig{
		Host:     host,
		Port:     port.Port(),
		User:     "forum",
		Password: "forum",
		Database: "forum",
		SSLMode:  "disable",
	}, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	pg := NewPostgres(pool)
	require.NoError(t, pg.Migrate(ctx))
	return pg
}

func communityID(t *testing.T, pg *Postgres, name string) int64 {
	t.Helper()
	list, err := pg.ListCommunities(context.Background())
	require.NoError(t, err)
	for _, c := range list {
		if c.Name == name {
			return c.ID
		}
	}
	t.Fatalf("community %q not found", name)
	return 0
}

func TestRepositories(t *testing.T) {
	pg := startPostgres(t)
	ctx := context.Background()

	alice, err := pg.CreateUser(ctx, "alice", "https://i.pravatar.cc/300")
	require.NoError(t, err)
	bob, err := pg.CreateUser(ctx, "bob", "")
	require.NoError(t, err)

	t.Run("communities are inserted once", func(t *testing.T) {
		added, err := pg.CreateCommunities(ctx, []string{"general", "golang", "general"})
		require.NoError(t, err)
		assert.Equal(t, int64(2), added)

		added, err = pg.CreateCommunities(ctx, []string{"general", "rust"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), added)

		count, err := pg.CountCommunities(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)

		_, err = pg.GetCommunity(ctx, 9999)
		assert.ErrorIs(t, err, pgx.ErrNoRows)
	})

	general := communityID(t, pg, "general")
	golang := communityID(t, pg, "golang")

	t.Run("users", func(t *testing.T) {
		got, err := pg.GetUserByUsername(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, alice.ID, got.ID)

		_, err = pg.GetUserByUsername(ctx, "carol")
		assert.True(t, IsNoRows(err))

		count, err := pg.CountUsers(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})

	postID, err := pg.CreatePost(ctx, alice.ID, general, "hello", "world")
	require.NoError(t, err)

	t.Run("post writes are owner scoped", func(t *testing.T) {
		err := pg.UpdatePost(ctx, postID, bob.ID, golang, "hijacked", "x")
		assert.ErrorIs(t, err, pgx.ErrNoRows)

		assert.ErrorIs(t, pg.DeletePost(ctx, postID, bob.ID), pgx.ErrNoRows)

		_, err = pg.GetOwnedPost(ctx, postID, bob.ID)
		assert.ErrorIs(t, err, pgx.ErrNoRows)

		require.NoError(t, pg.UpdatePost(ctx, postID, alice.ID, golang, "hello again", "world"))

		post, err := pg.GetPost(ctx, postID)
		require.NoError(t, err)
		assert.Equal(t, "hello again", post.Title)
		assert.Equal(t, "golang", post.Community.Name)
		assert.Equal(t, "alice", post.User.Username)
	})

	t.Run("list filters", func(t *testing.T) {
		otherID, err := pg.CreatePost(ctx, bob.ID, general, "bob's", "post")
		require.NoError(t, err)

		all, err := pg.ListPosts(ctx, model.PostFilter{})
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, otherID, all[0].ID, "public feed is newest id first")

		inGolang, err := pg.ListPosts(ctx, model.PostFilter{CommunityID: golang})
		require.NoError(t, err)
		require.Len(t, inGolang, 1)
		assert.Equal(t, postID, inGolang[0].ID)

		mine, err := pg.ListPosts(ctx, model.PostFilter{UserID: bob.ID})
		require.NoError(t, err)
		require.Len(t, mine, 1)
		assert.Equal(t, otherID, mine[0].ID)
	})

	var first, second *model.Comment
	t.Run("comments come back newest first", func(t *testing.T) {
		first, err = pg.CreateComment(ctx, postID, bob.ID, "first")
		require.NoError(t, err)
		assert.Equal(t, "bob", first.User.Username)

		second, err = pg.CreateComment(ctx, postID, alice.ID, "second")
		require.NoError(t, err)

		list, err := pg.ListCommentsByPost(ctx, postID)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, second.ID, list[0].ID)
		assert.Equal(t, first.ID, list[1].ID)

		post, err := pg.GetPost(ctx, postID)
		require.NoError(t, err)
		require.Len(t, post.Comments, 2)
		assert.Equal(t, second.ID, post.Comments[0].ID)

		empty, err := pg.ListCommentsByPost(ctx, 9999)
		require.NoError(t, err)
		assert.Empty(t, empty)
	})

	t.Run("comment writes are owner scoped", func(t *testing.T) {
		require.NotNil(t, first)

		_, err := pg.UpdateComment(ctx, first.ID, alice.ID, "not yours")
		assert.ErrorIs(t, err, pgx.ErrNoRows)
		assert.ErrorIs(t, pg.DeleteComment(ctx, first.ID, alice.ID), pgx.ErrNoRows)

		updated, err := pg.UpdateComment(ctx, first.ID, bob.ID, "edited")
		require.NoError(t, err)
		assert.Equal(t, "edited", updated.Content)
		assert.Equal(t, bob.ID, updated.User.ID)
	})

	t.Run("deleting a post removes its comments", func(t *testing.T) {
		require.NoError(t, pg.DeletePost(ctx, postID, alice.ID))

		exists, err := pg.PostExists(ctx, postID)
		require.NoError(t, err)
		assert.False(t, exists)

		var remaining int
		err = pg.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM comments WHERE post_id = $1`, postID).Scan(&remaining)
		require.NoError(t, err)
		assert.Zero(t, remaining)

		_, err = pg.GetPost(ctx, postID)
		assert.ErrorIs(t, err, pgx.ErrNoRows)
	})
}
