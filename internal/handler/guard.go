package handler

import (
	"github.com/forumhub/backend/internal/model"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// guard resolves the caller of a protected operation from the raw
// Authorization header.
type guard interface {
	Authorize(header string) (*model.Identity, error)
}

// authorize is the first call of every protected handler. On failure it has
// already written the 401 response.
func authorize(c *gin.Context, g guard, log *zap.Logger) (*model.Identity, bool) {
	identity, err := g.Authorize(c.GetHeader("Authorization"))
	if err != nil {
		writeError(c, log, err)
		return nil, false
	}
	return identity, true
}
