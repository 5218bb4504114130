package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func renderNotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "not_found.html", gin.H{})
	c.Abort()
}

func renderServerError(c *gin.Context) {
	c.HTML(http.StatusInternalServerError, "server_error.html", gin.H{})
	c.Abort()
}
