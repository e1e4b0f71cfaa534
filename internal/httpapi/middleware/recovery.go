package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KevinUnadkat/social-media-reply/pkg/log"
)

// Recovery converts panics into a 500 with the standard error body instead of
// tearing down the connection.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Errorw("panic recovered",
					"panic", r,
					"path", c.Request.URL.Path,
					"request_id", c.GetString(RequestIDHeader),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"detail": "internal server error",
				})
			}
		}()
		c.Next()
	}
}
