package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"cafe-storefront/config"
	"cafe-storefront/models"
	"cafe-storefront/repositories"
	"cafe-storefront/utils"
)

type AuthController struct {
	cfg  *config.Config
	repo *repositories.MemoryRepository
}

func NewAuthController(cfg *config.Config, repo *repositories.MemoryRepository) *AuthController {
	return &AuthController{cfg: cfg, repo: repo}
}

func (ctrl *AuthController) issueToken(user *repositories.StoredUser) (string, error) {
	expiry, err := time.ParseDuration(ctrl.cfg.JWTExpiry)
	if err != nil {
		expiry = 24 * time.Hour
	}
	return utils.GenerateToken(ctrl.cfg.JWTSecret, user.ID, user.Email, user.Role, expiry)
}

func (ctrl *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Detail: "Invalid request body"})
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Detail: "Failed to register user"})
		return
	}

	user, err := ctrl.repo.CreateUser(models.User{
		Username: req.Username,
		Email:    req.Email,
		FullName: req.FullName,
		Phone:    req.Phone,
		Role:     "customer",
	}, hash)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Detail: "User with this email or username already exists",
		})
		return
	}

	c.JSON(http.StatusOK, user.User)
}

func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Detail: "Invalid request body"})
		return
	}

	user, err := ctrl.repo.FindUserByEmail(req.Email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Detail: "Invalid email or password"})
		return
	}

	valid, err := utils.VerifyPassword(user.HashedPassword, req.Password)
	if err != nil || !valid {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Detail: "Invalid email or password"})
		return
	}

	if !user.IsActive {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Detail: "Account is deactivated"})
		return
	}

	token, err := ctrl.issueToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Detail: "Failed to login"})
		return
	}

	c.JSON(http.StatusOK, models.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        user.User,
	})
}

// AdminLogin is Login against the same user set, restricted to the
// privileged role.
func (ctrl *AuthController) AdminLogin(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Detail: "Invalid request body"})
		return
	}

	user, err := ctrl.repo.FindUserByEmail(req.Email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Detail: "Invalid admin credentials"})
		return
	}

	valid, err := utils.VerifyPassword(user.HashedPassword, req.Password)
	if err != nil || !valid || user.Role != models.RoleAdmin {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Detail: "Invalid admin credentials"})
		return
	}

	token, err := ctrl.issueToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Detail: "Failed to login"})
		return
	}

	c.JSON(http.StatusOK, models.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        user.User,
	})
}
