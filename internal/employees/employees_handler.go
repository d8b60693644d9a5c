package employees

import (
	"errors"
	"net/http"
	"strconv"

	custom_error "github.com/ShalinTimalsina/AssetTracker-Test/pkg/errors"
	"github.com/ShalinTimalsina/AssetTracker-Test/pkg/models"
	"github.com/ShalinTimalsina/AssetTracker-Test/pkg/security"

	"github.com/gin-gonic/gin"
)

type EmployeesHandler struct {
	repo EmployeeRepository
}

func NewHandler(repo EmployeeRepository) *EmployeesHandler {
	return &EmployeesHandler{repo: repo}
}

func (h *EmployeesHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/employees", h.GetEmployees)
	router.GET("/employees/:id", h.GetEmployee)

	protectedRoutes := router.Group("")
	protectedRoutes.Use(security.JWTMiddleware())
	{
		protectedRoutes.POST("/employees", h.CreateEmployee)
		protectedRoutes.PATCH("/employees/:id", h.UpdateEmployee)
	}
}

func (h *EmployeesHandler) CreateEmployee(c *gin.Context) {
	var req models.EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	employee, err := h.repo.PersistEmployee(req)
	if err != nil {
		switch err.(type) {
		case *custom_error.UniqueViolationError:
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "Employee email already registered"})
		default:
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to create employee"})
		}
		return
	}

	c.JSON(http.StatusCreated, employee)
}

func (h *EmployeesHandler) GetEmployee(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid employee id"})
		return
	}

	employee, err := h.repo.GetEmployee(id)
	if err != nil {
		if errors.Is(err, custom_error.ErrNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Unable to get employee", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, employee)
}

func (h *EmployeesHandler) GetEmployees(c *gin.Context) {
	employees, err := h.repo.GetEmployees()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to list employees", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, employees)
}

func (h *EmployeesHandler) UpdateEmployee(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid employee id"})
		return
	}

	var req models.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	employee, err := h.repo.UpdateEmployee(id, req)
	if err != nil {
		if errors.Is(err, custom_error.ErrNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to update employee"})
		return
	}

	c.JSON(http.StatusOK, employee)
}
