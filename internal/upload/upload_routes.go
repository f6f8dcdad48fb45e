package upload

import (
	"go-ems/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, logger *zap.Logger) {
	uploads := r.Group("/uploads")
	uploads.Use(middleware.ContextLogger(logger))
	{
		uploads.POST("", middleware.RateLimitByIP(1, 5), handler.Upload)
	}
}
