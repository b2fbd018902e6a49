package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	// Registers the OpenAPI document served under /swagger.
	_ "github.com/teurajarvi/listservice/docs"
	"github.com/teurajarvi/listservice/internal/middleware"
)

// RouterConfig holds configuration for setting up routes
type RouterConfig struct {
	ListHandler *ListHandler
	ServiceName string
	Version     string
}

// SetupRoutes configures all routes. Any path that is not the health check or
// the docs reaches the list handler, which does its own case-insensitive
// suffix matching and answers 404 or 405 itself.
func SetupRoutes(router *gin.Engine, config *RouterConfig) {
	// A redirect for "/v1/list/head/" would bypass the handler's 404.
	router.RedirectTrailingSlash = false
	router.RedirectFixedPath = false
	router.HandleMethodNotAllowed = false

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	secured := router.Group("")
	secured.Use(middleware.SecurityHeaders(ResponseHeaders()))
	{
		secured.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status":  "healthy",
				"service": config.ServiceName,
				"version": config.Version,
			})
		})

		secured.Any("/v1/list/:operation", config.ListHandler.ServeGin)
	}

	router.NoRoute(middleware.SecurityHeaders(ResponseHeaders()), config.ListHandler.ServeGin)
}

// SetupMiddleware configures global middleware
func SetupMiddleware(router *gin.Engine, logger *logrus.Logger) {
	router.Use(middleware.RequestID())
	router.Use(middleware.StructuredLogger(logger))
	router.Use(middleware.Recovery(logger, WriteInternalError))
}
