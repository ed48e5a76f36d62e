package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/forumhub/backend/internal/model"
	"github.com/forumhub/backend/internal/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func respond(c *gin.Context, status int, message string, data any) {
	c.JSON(status, model.Envelope{StatusCode: status, Message: message, Data: data})
}

func respondOK(c *gin.Context, message string, data any) {
	respond(c, http.StatusOK, message, data)
}

// writeError maps service error kinds to HTTP statuses. Anything unknown is
// logged and hidden behind a 500.
func writeError(c *gin.Context, log *zap.Logger, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrUnauthorized):
		status = http.StatusUnauthorized
		c.Header("WWW-Authenticate", "Bearer")
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrTooManyRequests):
		status = http.StatusTooManyRequests
	}

	if status == http.StatusInternalServerError {
		log.Error("request failed",
			zap.Error(err),
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.String("request_id", c.GetString(requestIDKey)),
		)
		respond(c, status, "Internal server error", nil)
		return
	}

	var svcErr *service.Error
	if errors.As(err, &svcErr) {
		respond(c, status, svcErr.Error(), nil)
		return
	}
	respond(c, status, http.StatusText(status), nil)
}

func badRequest(c *gin.Context, message string) {
	respond(c, http.StatusBadRequest, message, nil)
}

// pathID parses a positive integer path parameter.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		badRequest(c, "invalid "+name)
		return 0, false
	}
	return id, true
}

// queryID parses an optional positive integer query parameter; absent means 0.
func queryID(c *gin.Context, name string) (int64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		badRequest(c, "invalid "+name)
		return 0, false
	}
	return id, true
}
