package app

import (
	"go-ems/internal/dashboard"
	"go-ems/internal/employee"
	"go-ems/internal/messaging/kafka"
	"go-ems/internal/shared/config"
	"go-ems/internal/upload"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
	cfg config.Config,
	logger *zap.Logger,
) error {
	// --- Repositories ---
	employeeRepo := employee.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(gormDB)

	uploadStorage, err := upload.NewLocalStorage(cfg.UploadDir)
	if err != nil {
		return err
	}

	// --- Services ---
	employeeService := employee.NewServiceWithOutbox(gormDB, employeeRepo, outboxRepo, rdb, logger)
	dashboardService := dashboard.NewService(employeeRepo, rdb, cfg.DashboardCacheTTL, logger)
	uploadService := upload.NewService(uploadStorage, logger)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService, logger)
	dashboardHandler := dashboard.NewHandler(dashboardService, logger)
	uploadHandler := upload.NewHandler(uploadService, logger)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		employee.RegisterRoutes(api, employeeHandler, rdb, logger)
		dashboard.RegisterRoutes(api, dashboardHandler, logger)
		upload.RegisterRoutes(api, uploadHandler, logger)
	}

	return nil
}
