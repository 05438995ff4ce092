package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminUserKey is the gin context key holding the authenticated admin
// username after the guard has run.
const AdminUserKey = "admin_user"

// SessionValidator validates a session token and returns the username
// it was issued for.
type SessionValidator interface {
	Validate(token string) (string, error)
}

// AdminGuard protects admin routes behind the session cookie. Requests
// without a valid session are redirected to the login page, matching
// the behavior of the old admin panel.
func AdminGuard(sessions SessionValidator, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		username, err := sessions.Validate(token)
		if err != nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set(AdminUserKey, username)
		c.Next()
	}
}
