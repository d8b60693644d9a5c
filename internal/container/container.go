package container

import (
	"database/sql"

	"github.com/ShalinTimalsina/AssetTracker-Test/internal/assets"
	"github.com/ShalinTimalsina/AssetTracker-Test/internal/assignments"
	auditLogRepo "github.com/ShalinTimalsina/AssetTracker-Test/internal/auditlog"
	"github.com/ShalinTimalsina/AssetTracker-Test/internal/employees"
	"github.com/ShalinTimalsina/AssetTracker-Test/internal/repository"
	"github.com/ShalinTimalsina/AssetTracker-Test/internal/serial"
	"github.com/ShalinTimalsina/AssetTracker-Test/internal/users"
	"github.com/ShalinTimalsina/AssetTracker-Test/pkg/auditlog"
	"github.com/ShalinTimalsina/AssetTracker-Test/pkg/security"

	"go.uber.org/zap"
)

type Container struct {
	Repository         *repository.Repository
	AuditLog           *auditlog.Auditlog
	LoginHandler       *security.LoginHandler
	AssetHandler       *assets.AssetsHandler
	AssignmentsHandler *assignments.AssignmentsHandler
	EmployeesHandler   *employees.EmployeesHandler
	UserHandler        *users.UsersHandler
}

func NewAppContainer(db *sql.DB, log *zap.Logger) *Container {
	repo := repository.NewRepository(db)
	auditLog := auditlog.NewAuditLog(auditLogRepo.NewRepository(repo), log)

	serialAllocator := serial.NewAllocator(serial.NewRepository(repo), log)

	assetRepo := assets.NewRepository(repo)
	assetService := assets.NewService(assetRepo, serialAllocator, auditLog, log)
	assetHandler := assets.NewAssetHandler(assetService)

	ledgerRepo := assignments.NewRepository(repo)
	ledgerService := assignments.NewService(ledgerRepo, auditLog, log)
	assignmentsHandler := assignments.NewHandler(ledgerService)

	employeeRepo := employees.NewRepository(repo)
	employeesHandler := employees.NewHandler(employeeRepo)

	userRepo := users.NewRepository(repo)
	userHandler := users.NewHandler(userRepo)
	loginHandler := security.NewLoginHandler(repo)

	return &Container{
		Repository:         repo,
		AuditLog:           auditLog,
		LoginHandler:       loginHandler,
		AssetHandler:       assetHandler,
		AssignmentsHandler: assignmentsHandler,
		EmployeesHandler:   employeesHandler,
		UserHandler:        userHandler,
	}
}
