package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/devteamsyntacticsinc/custom-product-designer/internal/middleware"
	"github.com/devteamsyntacticsinc/custom-product-designer/internal/models"
)

// UserStore is the slice of DatabaseClient login reads.
type UserStore interface {
	GetUserByEmail(email string) (*models.User, error)
}

type AuthHandler struct {
	dbClient UserStore
	logger   *zap.Logger
}

func NewAuthHandler(dbClient UserStore, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		dbClient: dbClient,
		logger:   logger,
	}
}

// Login godoc
// @Summary     Log in
// @Description Checks credentials and starts a cookie session. Unknown email and
// @Description wrong password return the same 401 body.
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body models.LoginRequest true "Credentials"
// @Success     200 {object} models.LoginResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Router      /api/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Email and password are required"})
		return
	}

	user, err := h.dbClient.GetUserByEmail(req.Email)
	if err != nil {
		// Same body as a wrong password so the two cases are
		// indistinguishable to the caller.
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "Invalid email or password"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "Invalid email or password"})
		return
	}

	loginUser := models.LoginUser{
		ID:    user.ID.String(),
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}
	middleware.SetSessionCookies(c, loginUser)

	c.JSON(http.StatusOK, models.LoginResponse{
		Success: true,
		User:    loginUser,
	})
}
