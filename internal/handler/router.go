package handler

import (
	"fmt"

	"github.com/forumhub/backend/internal/ratelimit"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type RouterDeps struct {
	Auth           *AuthHandler
	Post           *PostHandler
	Comment        *CommentHandler
	LoginLimiter   ratelimit.Limiter
	AllowedOrigins []string
	TrustedProxies []string
	Log            *zap.Logger
}

// NewRouter registers every route. Protected routes resolve the caller
// themselves through the auth guard.
func NewRouter(d RouterDeps) (*gin.Engine, error) {
	router := gin.New()
	// nil trusts no proxy, so ClientIP is the socket address.
	if err := router.SetTrustedProxies(d.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}
	router.Use(
		Recovery(d.Log),
		RequestLogger(d.Log),
		Metrics(),
		CORSMiddleware(d.AllowedOrigins, true),
	)

	router.GET("/ping", Ping)
	router.GET("/", Root)
	router.GET("/openapi.json", OpenAPIDoc)
	router.GET("/metrics", MetricsHandler())

	limiter := d.LoginLimiter
	if limiter == nil {
		limiter = ratelimit.Unlimited{}
	}
	users := router.Group("/users")
	users.POST("/login", RateLimit(limiter, "login", d.Log), d.Auth.Login)
	users.POST("/refresh", d.Auth.Refresh)

	post := router.Group("/post")
	post.POST("", d.Post.CreatePost)
	post.GET("", d.Post.GetPosts)
	post.GET("/me", d.Post.GetMyPosts)
	post.GET("/:id", d.Post.GetPost)
	post.PUT("/:id", d.Post.UpdatePost)
	post.DELETE("/:id", d.Post.DeletePost)

	router.GET("/community", d.Post.GetCommunities)

	comment := router.Group("/comment")
	comment.POST("", d.Comment.CreateComment)
	comment.PUT("/:id", d.Comment.UpdateComment)
	comment.DELETE("/:id", d.Comment.DeleteComment)
	comment.GET("/:id/comments", d.Comment.GetCommentsByPost)

	return router, nil
}
