package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/killallgit/secondlife-api/api/clientconfig"
	"github.com/killallgit/secondlife-api/api/health"
	"github.com/killallgit/secondlife-api/api/search"
	"github.com/killallgit/secondlife-api/api/summarize"
	"github.com/killallgit/secondlife-api/api/types"
	"github.com/killallgit/secondlife-api/api/version"
	_ "github.com/killallgit/secondlife-api/docs/swagger"
)

// RouteOptions carries the per-endpoint rate limiters; nil limiters are skipped
type RouteOptions struct {
	RateLimiting   bool
	SearchLimit    gin.HandlerFunc
	SummarizeLimit gin.HandlerFunc
	DefaultLimit   gin.HandlerFunc
}

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, opts RouteOptions) {
	// Register Swagger documentation route
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Setup 404 handler
	engine.NoRoute(NotFoundHandler())

	apiGroup := engine.Group("/api")

	// Liveness stays unthrottled
	health.RegisterRoutes(apiGroup)

	general := apiGroup.Group("")
	if opts.RateLimiting && opts.DefaultLimit != nil {
		general.Use(opts.DefaultLimit)
	}
	version.RegisterRoutes(general, deps)
	clientconfig.RegisterRoutes(general, deps)

	searchGroup := apiGroup.Group("/search")
	if opts.RateLimiting && opts.SearchLimit != nil {
		searchGroup.Use(opts.SearchLimit)
	}
	search.RegisterRoutes(searchGroup, deps)

	summarizeGroup := apiGroup.Group("/summarize")
	if opts.RateLimiting && opts.SummarizeLimit != nil {
		summarizeGroup.Use(opts.SummarizeLimit)
	}
	summarize.RegisterRoutes(summarizeGroup, deps)
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "The requested endpoint was not found",
			"path":  c.Request.URL.Path,
		})
	}
}
