package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/francoms3/user-management-service/internal/config"
	"github.com/francoms3/user-management-service/internal/http/handler"
	httpmiddleware "github.com/francoms3/user-management-service/internal/http/middleware"
	"github.com/francoms3/user-management-service/internal/middleware"
)

const serviceVersion = "1.0.0"

// NewRouter wires Gin routes and middleware.
func NewRouter(cfg config.Config, userHandler *handler.UserHandler, rateLimiter *middleware.RateLimiter) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpmiddleware.RequestLogger(nil))
	if rateLimiter != nil {
		r.Use(rateLimiter.Handler())
	}
	r.Use(middleware.CORS(cfg))
	r.Use(otelgin.Middleware(cfg.ServiceName))

	users := r.Group("/users")
	{
		users.POST("", userHandler.CreateUser)
		users.GET("", userHandler.ListUsers)
		users.GET("/:id", userHandler.GetUser)
		users.PUT("/:id", userHandler.UpdateUser)
		users.PUT("/:id/email", userHandler.UpdateUserEmail)
		users.DELETE("/:id", userHandler.DeleteUser)
	}

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "User Management Service",
			"service": cfg.ServiceName,
			"version": serviceVersion,
			"status":  "healthy",
		})
	})
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": cfg.ServiceName,
			"version": serviceVersion,
		})
	})

	return r
}
