package app

import (
	"net/http"

	"go-ems/internal/employee"
	"go-ems/internal/messaging/kafka"
	"go-ems/internal/middleware"
	"go-ems/internal/shared/config"
	"go-ems/internal/shared/connection"
	"go-ems/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BuildApp connects the infrastructure and registers every route on router.
// The returned cleanup closes the connections it opened.
func BuildApp(router *gin.Engine, cfg config.Config) (func(), error) {
	logger := zap.L().Named("app")

	gormDB, err := connection.ConnectGORMWithRetry(cfg.DB)
	if err != nil {
		return nil, err
	}
	logger.Info("database connection established")

	if cfg.DB.AutoMigrate {
		if err := migrate(gormDB); err != nil {
			return nil, err
		}
		logger.Info("schema auto-migrated")
	}

	redisClient, err := connection.ConnectRedisWithRetry(cfg.Redis.Addr, cfg.DB.MaxRetries)
	if err != nil {
		return nil, err
	}
	logger.Info("redis connection established")

	router.Use(middleware.RequestID(), middleware.CORS(cfg.CORSAllowedOrigin))
	router.GET("/healthz", healthz)
	router.Static("/uploads", cfg.UploadDir)

	if err := registerModules(router, gormDB, redisClient, cfg, logger); err != nil {
		return nil, err
	}

	cleanup := func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("redis close failed", zap.Error(err))
		}
		if sqlDB, err := gormDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	return cleanup, nil
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(&employee.Employee{}, &kafka.OutboxRecord{})
}

func healthz(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"status": "ok"}, nil)
}
