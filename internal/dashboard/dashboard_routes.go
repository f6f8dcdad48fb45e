package dashboard

import (
	"go-ems/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, logger *zap.Logger) {
	dashboard := r.Group("/dashboard")
	dashboard.Use(middleware.ContextLogger(logger))
	{
		dashboard.GET("/stats", handler.Stats)
	}

	// headcount report kept at its historical path
	r.GET("/employees/dashboard", middleware.ContextLogger(logger), handler.Headcount)
}
