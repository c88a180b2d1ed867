package endpoint

import (
	"net/http"

	"github.com/ariebrainware/genotator/config"
	"github.com/ariebrainware/genotator/middleware"
	"github.com/ariebrainware/genotator/util"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// NewRouter wires middleware and routes. pc may be nil to disable page caching.
func NewRouter(cfg *config.Config, db *gorm.DB, pc *util.PageCache) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(middleware.RecoveryLogger())
	router.Use(middleware.DatabaseMiddleware(db))
	router.Use(middleware.PageCacheMiddleware(pc))
	router.Use(middleware.EndpointCallLogger())
	router.Use(middleware.RateLimiter(middleware.RateLimitConfig{
		Limit:  cfg.RateLimit,
		Window: cfg.RateWindow,
	}))

	router.GET("/", ListDisorders)
	router.GET("/disorder/:accession", ShowDisorder)
	router.GET("/gene/:id", ShowGene)
	router.GET("/healthz", Healthz)
	router.NoRoute(func(c *gin.Context) {
		renderError(c, http.StatusNotFound, "Page not found", nil)
	})

	api := router.Group("/api")
	api.Use(middleware.CORSMiddleware())
	{
		api.OPTIONS("/*path", func(c *gin.Context) {})
		api.GET("/disorder/:accession", GetDisorderJSON)
		api.GET("/gene/:id", GetGeneJSON)
	}

	return router
}
