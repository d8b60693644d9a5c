package security

import (
	"net/http"
	"strconv"

	"github.com/ShalinTimalsina/AssetTracker-Test/internal/repository"

	"github.com/gin-gonic/gin"
)

type LoginHandler struct {
	repo *repository.Repository
}

func NewLoginHandler(repo *repository.Repository) *LoginHandler {
	return &LoginHandler{repo: repo}
}

func (h *LoginHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/auth/login", h.Login)
}

func (h *LoginHandler) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	user, err := AuthenticateUser(req.Username, req.Password, h.repo)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := GenerateJWT(strconv.Itoa(user.ID), user.Role, user.Username)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
