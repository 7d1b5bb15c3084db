package handlers_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/devteamsyntacticsinc/custom-product-designer/internal/handlers"
	"github.com/devteamsyntacticsinc/custom-product-designer/internal/logger"
	"github.com/devteamsyntacticsinc/custom-product-designer/internal/middleware"
	"github.com/devteamsyntacticsinc/custom-product-designer/internal/models"
)

type stubUserStore struct {
	users map[string]*models.User
}

func (s *stubUserStore) GetUserByEmail(email string) (*models.User, error) {
	user, ok := s.users[email]
	if !ok {
		return nil, errors.New("sql: no rows in result set")
	}
	return user, nil
}

func loginRouterWith(store handlers.UserStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := handlers.NewAuthHandler(store, logger.NewNop())

	router := gin.New()
	router.POST("/api/login", handler.Login)
	return router
}

func loginRouter() *gin.Engine {
	return loginRouterWith(nil)
}

func adminUser(t *testing.T, password string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &models.User{
		ID:           uuid.New(),
		Name:         "dana",
		Email:        "dana@example.com",
		PasswordHash: string(hash),
		Role:         "admin",
	}
}

func postLogin(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("POST", "/api/login", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestLogin_MissingFields(t *testing.T) {
	router := loginRouter()

	for _, body := range []string{
		`{}`,
		`{"email":"dana@example.com"}`,
		`{"password":"secret"}`,
		`{"email":"","password":""}`,
	} {
		w := postLogin(router, body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body: %s", body)
		assert.Contains(t, w.Body.String(), "Email and password are required")
	}
}

func TestLogin_MalformedJSON(t *testing.T) {
	router := loginRouter()

	w := postLogin(router, `{not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin_UnknownEmailAndWrongPasswordMatch(t *testing.T) {
	store := &stubUserStore{users: map[string]*models.User{
		"dana@example.com": adminUser(t, "correct-horse"),
	}}
	router := loginRouterWith(store)

	unknown := postLogin(router, `{"email":"nobody@example.com","password":"correct-horse"}`)
	wrong := postLogin(router, `{"email":"dana@example.com","password":"battery-staple"}`)

	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.Equal(t, http.StatusUnauthorized, wrong.Code)

	// The two failures are byte-identical so callers cannot tell which
	// emails exist.
	assert.Equal(t, unknown.Body.String(), wrong.Body.String())
	assert.Contains(t, wrong.Body.String(), "Invalid email or password")
}

func TestLogin_Success(t *testing.T) {
	user := adminUser(t, "correct-horse")
	store := &stubUserStore{users: map[string]*models.User{user.Email: user}}
	router := loginRouterWith(store)

	w := postLogin(router, `{"email":"dana@example.com","password":"correct-horse"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
	assert.Contains(t, w.Body.String(), user.ID.String())

	cookies := map[string]string{}
	for _, ck := range w.Result().Cookies() {
		cookies[ck.Name] = ck.Value
	}
	assert.Equal(t, user.ID.String(), cookies[middleware.UserIDCookie])
	assert.Equal(t, "admin", cookies[middleware.UserRoleCookie])
}
