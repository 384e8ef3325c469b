package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// JSON writes the payload with the given status.
func JSON(c *gin.Context, status int, payload interface{}) {
	c.JSON(status, payload)
}

// OK writes the payload with 200.
func OK(c *gin.Context, payload interface{}) {
	JSON(c, http.StatusOK, payload)
}
