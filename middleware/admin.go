package middleware

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
)

// AdminEmails parses the operator allow-list from ADMIN_EMAILS
// (comma-separated).
func AdminEmails() []string {
	raw := os.Getenv("ADMIN_EMAILS")
	if raw == "" {
		return nil
	}
	var emails []string
	for _, part := range strings.Split(raw, ",") {
		email := strings.ToLower(strings.TrimSpace(part))
		if email != "" {
			emails = append(emails, email)
		}
	}
	return emails
}

func IsAdminEmail(email string, allowList []string) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return false
	}
	for _, allowed := range allowList {
		if email == allowed {
			return true
		}
	}
	return false
}

// AdminOnly gates moderation routes. It re-checks the allow-list on every
// request rather than trusting the isAdmin claim alone, since claims can
// outlive a change to ADMIN_EMAILS. Must run after JWTAuthMiddleware.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString("email")
		if !IsAdminEmail(email, AdminEmails()) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Admin access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}
