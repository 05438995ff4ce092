package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	identityapp "github.com/amconceito/storefront/internal/application/identity"
	"github.com/amconceito/storefront/internal/infrastructure/config"
)

// AuthHandler serves the admin login and logout endpoints
type AuthHandler struct {
	BaseHandler
	authService *identityapp.AuthService
	session     *config.SessionConfig
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *identityapp.AuthService, session *config.SessionConfig) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		session:     session,
	}
}

type loginRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

// LoginPage returns the login page descriptor
func (h *AuthHandler) LoginPage(c *gin.Context) {
	h.Success(c, gin.H{"page": "login"})
}

// Login authenticates the admin and sets the session cookie. The old
// admin panel posts a form; API clients send JSON. Both are accepted.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if strings.Contains(c.ContentType(), "application/json") {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.BadRequest(c, "Username and password are required")
			return
		}
	} else {
		if err := c.ShouldBind(&req); err != nil {
			h.BadRequest(c, "Username and password are required")
			return
		}
	}

	token, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.SetCookie(
		h.session.CookieName,
		token,
		int(h.session.TTL.Seconds()),
		"/",
		"",
		h.session.CookieSecure,
		true,
	)

	h.Success(c, gin.H{"redirect": "/admin"})
}

// Logout clears the session cookie and sends the admin back to the
// storefront.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(h.session.CookieName, "", -1, "/", "", h.session.CookieSecure, true)
	c.Redirect(http.StatusFound, "/")
}
