package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devteamsyntacticsinc/custom-product-designer/internal/models"
)

// Session state is four plain cookies set at login. Access control
// checks only the role cookie; there is no signed token.
const (
	UserIDCookie    = "user_id"
	UserNameCookie  = "user_name"
	UserEmailCookie = "user_email"
	UserRoleCookie  = "user_role"

	RoleAdmin = "admin"
)

// SetSessionCookies writes the login session onto the response.
func SetSessionCookies(c *gin.Context, user models.LoginUser) {
	c.SetCookie(UserIDCookie, user.ID, 0, "/", "", false, false)
	c.SetCookie(UserNameCookie, user.Name, 0, "/", "", false, false)
	c.SetCookie(UserEmailCookie, user.Email, 0, "/", "", false, false)
	c.SetCookie(UserRoleCookie, user.Role, 0, "/", "", false, false)
}

// AdminRequired gates a route on the role cookie.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, err := c.Cookie(UserRoleCookie)
		if err != nil || role == "" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "authentication required"})
			c.Abort()
			return
		}

		if role != RoleAdmin {
			c.JSON(http.StatusForbidden, models.ErrorResponse{Error: "admin access required"})
			c.Abort()
			return
		}

		c.Next()
	}
}
