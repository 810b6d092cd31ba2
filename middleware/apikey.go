package middleware

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// ValidateAPIKey guards the admin route group. The expected key comes from
// the ADMIN_API_KEY environment variable; an unset key rejects everything.
func ValidateAPIKey(c *gin.Context) {
	expected := os.Getenv("ADMIN_API_KEY")
	if expected == "" || c.GetHeader("X-API-KEY") != expected {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or missing API key"})
		c.Abort()
		return
	}
	c.Next()
}
