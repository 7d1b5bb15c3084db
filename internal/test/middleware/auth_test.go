package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/devteamsyntacticsinc/custom-product-designer/internal/middleware"
	"github.com/devteamsyntacticsinc/custom-product-designer/internal/models"
)

func adminRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/admin", middleware.AdminRequired(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router
}

func TestAdminRequired_NoCookie(t *testing.T) {
	router := adminRouter()

	req, _ := http.NewRequest("GET", "/admin", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "authentication required")
}

func TestAdminRequired_EmptyRole(t *testing.T) {
	router := adminRouter()

	req, _ := http.NewRequest("GET", "/admin", nil)
	req.AddCookie(&http.Cookie{Name: middleware.UserRoleCookie, Value: ""})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminRequired_NonAdminRole(t *testing.T) {
	router := adminRouter()

	req, _ := http.NewRequest("GET", "/admin", nil)
	req.AddCookie(&http.Cookie{Name: middleware.UserRoleCookie, Value: "user"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "admin access required")
}

func TestAdminRequired_Admin(t *testing.T) {
	router := adminRouter()

	req, _ := http.NewRequest("GET", "/admin", nil)
	req.AddCookie(&http.Cookie{Name: middleware.UserRoleCookie, Value: middleware.RoleAdmin})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSetSessionCookies(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/login", func(c *gin.Context) {
		middleware.SetSessionCookies(c, models.LoginUser{
			ID:    "u-1",
			Name:  "dana",
			Email: "dana@example.com",
			Role:  "admin",
		})
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	req, _ := http.NewRequest("POST", "/login", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	cookies := w.Result().Cookies()
	got := make(map[string]string, len(cookies))
	for _, ck := range cookies {
		got[ck.Name] = ck.Value
	}

	assert.Equal(t, "u-1", got[middleware.UserIDCookie])
	assert.Equal(t, "dana", got[middleware.UserNameCookie])
	// gin query-escapes cookie values on the way out.
	assert.Equal(t, "dana%40example.com", got[middleware.UserEmailCookie])
	assert.Equal(t, "admin", got[middleware.UserRoleCookie])
}
