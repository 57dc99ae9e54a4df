// Package middleware contain implementation of gin middlewares used by the routes
package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kirubhashini2006-coder/internship-portal/internal/utilities"
)

// RequireAccessKey guards the admin routes. The key is taken from the
// Authorization bearer header, falling back to X-Access-Key, and compared in
// constant time.
func RequireAccessKey(accessKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		presented := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if presented == "" || presented == c.GetHeader("Authorization") {
			presented = c.GetHeader("X-Access-Key")
		}

		if presented == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utilities.ErrorResponse{
				Error: "Access key not provided",
			})
			return
		}
		if subtle.ConstantTimeCompare([]byte(presented), []byte(accessKey)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utilities.ErrorResponse{
				Error: "Invalid access key",
			})
			return
		}

		c.Next()
	}
}
