package assets

import (
	"errors"
	"net/http"
	"strconv"

	custom_error "github.com/ShalinTimalsina/AssetTracker-Test/pkg/errors"
	"github.com/ShalinTimalsina/AssetTracker-Test/pkg/models"
	"github.com/ShalinTimalsina/AssetTracker-Test/pkg/security"

	"github.com/gin-gonic/gin"
)

type AssetsHandler struct {
	service Service
}

func NewAssetHandler(service Service) *AssetsHandler {
	return &AssetsHandler{service: service}
}

func (h *AssetsHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/assets", h.GetAssetList)
	router.GET("/assets/:id", h.GetAsset)

	protectedRoutes := router.Group("")
	protectedRoutes.Use(security.JWTMiddleware())
	{
		protectedRoutes.POST("/assets", h.CreateAsset)
		protectedRoutes.PATCH("/assets/:id", h.UpdateAsset)
		protectedRoutes.DELETE("/assets/:id", security.Authorize("admin"), h.RemoveAsset)
	}
}

func (h *AssetsHandler) CreateAsset(c *gin.Context) {
	var req models.AssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	asset, err := h.service.CreateAsset(req)
	if err != nil {
		if errors.Is(err, custom_error.ErrSerialAllocationFailed) {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Unable to allocate a unique serial number"})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to create asset"})
		return
	}

	c.JSON(http.StatusCreated, asset)
}

func (h *AssetsHandler) GetAsset(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid asset id"})
		return
	}

	asset, err := h.service.GetAsset(id)
	if err != nil {
		if errors.Is(err, custom_error.ErrNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Asset not found"})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Unable to get asset", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, asset)
}

func (h *AssetsHandler) GetAssetList(c *gin.Context) {
	assets, err := h.service.GetAssetList()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to list assets", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, assets)
}

func (h *AssetsHandler) UpdateAsset(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid asset id"})
		return
	}

	var req models.UpdateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	asset, err := h.service.UpdateAsset(id, req)
	if err != nil {
		if errors.Is(err, custom_error.ErrNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Asset not found"})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to update asset"})
		return
	}

	c.JSON(http.StatusOK, asset)
}

func (h *AssetsHandler) RemoveAsset(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid asset id"})
		return
	}

	if err := h.service.DeleteAsset(id); err != nil {
		switch {
		case errors.Is(err, custom_error.ErrAssetInUse):
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "Asset has an active assignment and cannot be removed"})
		case errors.Is(err, custom_error.ErrNotFound):
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Asset not found"})
		default:
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove asset"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Asset removed"})
}
