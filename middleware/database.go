package middleware

import (
	"github.com/ariebrainware/genotator/util"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	dbKey        = "db"
	pageCacheKey = "page_cache"
)

// DatabaseMiddleware makes db available to handlers through GetDB.
func DatabaseMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(dbKey, db)
		c.Next()
	}
}

// GetDB returns the request's database handle, or nil when none was set.
func GetDB(c *gin.Context) *gorm.DB {
	v, ok := c.Get(dbKey)
	if !ok {
		return nil
	}
	db, _ := v.(*gorm.DB)
	return db
}

// PageCacheMiddleware makes pc available to handlers through GetPageCache.
// A nil cache is stored as-is; its methods are no-ops.
func PageCacheMiddleware(pc *util.PageCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(pageCacheKey, pc)
		c.Next()
	}
}

// GetPageCache returns the request's page cache, possibly nil.
func GetPageCache(c *gin.Context) *util.PageCache {
	v, ok := c.Get(pageCacheKey)
	if !ok {
		return nil
	}
	pc, _ := v.(*util.PageCache)
	return pc
}
