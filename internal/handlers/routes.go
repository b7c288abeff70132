package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hockeystats-api/internal/config"
	"hockeystats-api/internal/middleware"
	"hockeystats-api/pkg/lambda"
)

// maxRequestBodySize caps POST /add bodies on the local server
const maxRequestBodySize = 1 << 20

// RouterConfig holds configuration for setting up routes
type RouterConfig struct {
	ItemHandler *ItemHandler
	RateLimit   config.RateLimitConfig
	Logger      *logrus.Logger
}

// SetupRoutes configures all routes on the local gin server. The item routes
// are thin wrappers over ItemHandler so both fronts answer identically.
func SetupRoutes(router *gin.Engine, cfg *RouterConfig) {
	logger := cfg.Logger
	if logger == nil {
		logger = logrus.New()
	}

	router.Use(middleware.Recovery(logger))
	router.Use(middleware.AccessLogger(logger))
	router.Use(middleware.CORS())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.RequestSizeLimit(maxRequestBodySize))
	router.Use(middleware.RateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, logger))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "hockeystats-api",
			"version": "1.0.0",
		})
	})

	items := GinHandler(cfg.ItemHandler.Handler())

	router.GET("/", items)
	router.POST("/", items)
	router.GET("/add", items)
	router.POST("/add", items)
	router.GET("/fetch", items)

	// Anything else still goes through Route so 404 and 405 bodies match Lambda
	router.NoRoute(items)
}

// GinHandler adapts a normalized handler to gin: the request is converted
// with lambda.FromHTTPRequest and the response written back verbatim.
func GinHandler(h lambda.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		req, err := lambda.FromHTTPRequest(c.Request)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}

		resp, err := h(c.Request.Context(), req)
		if err != nil || resp == nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: MsgUnexpectedError})
			return
		}

		if err := lambda.WriteHTTPResponse(c.Writer, resp); err != nil {
			_ = c.Error(err)
		}
	}
}
