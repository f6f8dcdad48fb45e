package employee

import (
	"time"

	"go-ems/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const idempotencyTTL = 24 * time.Hour

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	employees := r.Group("/employees")
	employees.Use(middleware.ContextLogger(logger))
	{
		employees.GET("", handler.List)
		employees.GET("/all", handler.GetAll)
		employees.GET("/export", middleware.RateLimitByIP(1, 3), handler.Export)
		employees.GET("/:id", handler.GetByID)

		employees.POST("",
			middleware.RateLimitByIP(5, 10),
			middleware.Idempotency(rdb, idempotencyTTL, logger),
			handler.Create,
		)

		employees.PUT("/:id",
			middleware.RateLimitByIP(5, 10),
			handler.Update,
		)

		employees.DELETE("/:id",
			middleware.RateLimitByIP(2, 5),
			handler.Delete,
		)
	}
}
