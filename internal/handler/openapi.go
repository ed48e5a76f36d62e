package handler

import (
	"net/http"

	"github.com/forumhub/backend/docs"
	"github.com/gin-gonic/gin"
	"github.com/swaggo/swag"
)

// OpenAPIDoc serves the swagger document registered by the docs package.
func OpenAPIDoc(c *gin.Context) {
	doc, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	if err != nil {
		respond(c, http.StatusInternalServerError, "openapi document unavailable", nil)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(doc))
}
