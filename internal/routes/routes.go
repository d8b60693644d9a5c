package routes

import (
	"database/sql"

	"github.com/ShalinTimalsina/AssetTracker-Test/internal/container"
	"github.com/ShalinTimalsina/AssetTracker-Test/internal/middleware"
	"github.com/ShalinTimalsina/AssetTracker-Test/pkg/security"

	"github.com/gin-gonic/gin"
)

func RegisterPublicRoutes(router *gin.Engine, container *container.Container) {
	container.LoginHandler.RegisterRoutes(router)
	container.AssetHandler.RegisterRoutes(router)
	container.AssignmentsHandler.RegisterRoutes(router)
	container.EmployeesHandler.RegisterRoutes(router)
}

func RegisterProtectedRoutes(router *gin.Engine, container *container.Container) {
	protectedRoutes := router.Group("")
	protectedRoutes.Use(security.JWTMiddleware())

	container.UserHandler.RegisterRoutes(protectedRoutes)
}

func RegisterUtilityRoutes(router *gin.Engine, db *sql.DB) {
	router.GET("/health", middleware.HealthCheckMiddleware(db))
}
