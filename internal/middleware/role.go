package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireStaff gates admin-only routes: approve, decline, complete,
// payment verification, availability management, uploads, audit logs.
func RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsStaff(c) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "staff_only"})
			return
		}
		c.Next()
	}
}
