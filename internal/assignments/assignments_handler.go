package assignments

import (
	"errors"
	"net/http"
	"strconv"

	custom_error "github.com/ShalinTimalsina/AssetTracker-Test/pkg/errors"
	"github.com/ShalinTimalsina/AssetTracker-Test/pkg/models"
	"github.com/ShalinTimalsina/AssetTracker-Test/pkg/security"

	"github.com/gin-gonic/gin"
)

type AssignmentsHandler struct {
	service Service
}

func NewHandler(service Service) *AssignmentsHandler {
	return &AssignmentsHandler{service: service}
}

func (h *AssignmentsHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/assignments/active", h.GetActiveAssignments)
	router.GET("/assets/:id/assignments", h.GetAssetHistory)

	protectedRoutes := router.Group("")
	protectedRoutes.Use(security.JWTMiddleware())
	{
		protectedRoutes.POST("/assignments", h.AssignAsset)
		protectedRoutes.PATCH("/assignments/:id/return", h.ReturnAsset)
	}
}

func (h *AssignmentsHandler) AssignAsset(c *gin.Context) {
	var req models.AssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	assignment, err := h.service.Assign(req)
	if err != nil {
		switch {
		case errors.Is(err, custom_error.ErrAlreadyAssigned):
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "Asset already has an active assignment"})
		case errors.Is(err, custom_error.ErrNotFound):
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Asset or employee not found"})
		default:
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to assign asset"})
		}
		return
	}

	c.JSON(http.StatusCreated, assignment)
}

func (h *AssignmentsHandler) ReturnAsset(c *gin.Context) {
	assignmentID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid assignment id"})
		return
	}

	assignment, err := h.service.Return(assignmentID)
	if err != nil {
		if errors.Is(err, custom_error.ErrNotFoundOrAlreadyReturned) {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "Assignment not found or already returned"})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to return asset"})
		return
	}

	c.JSON(http.StatusOK, assignment)
}

func (h *AssignmentsHandler) GetActiveAssignments(c *gin.Context) {
	assignments, err := h.service.ActiveAssignments()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to fetch active assignments", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, assignments)
}

func (h *AssignmentsHandler) GetAssetHistory(c *gin.Context) {
	assetID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid asset id"})
		return
	}

	history, err := h.service.AssetHistory(assetID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to fetch assignment history", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, history)
}
