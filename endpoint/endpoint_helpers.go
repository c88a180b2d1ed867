package endpoint

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/ariebrainware/genotator/middleware"
	"github.com/ariebrainware/genotator/util"
	"github.com/ariebrainware/genotator/view"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	htmlContentType = "text/html; charset=utf-8"
	textContentType = "text/plain; charset=utf-8"

	defaultPageLimit = 50
	maxPageLimit     = 500
)

// ensureDB returns the request's DB or answers a JSON 500.
func ensureDB(c *gin.Context) (*gorm.DB, bool) {
	db := middleware.GetDB(c)
	if db == nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Database connection not available",
			Err: fmt.Errorf("db is nil"),
		})
		return nil, false
	}
	return db, true
}

// ensurePageDB returns the request's DB or renders the 500 error page.
func ensurePageDB(c *gin.Context) (*gorm.DB, bool) {
	db := middleware.GetDB(c)
	if db == nil {
		renderError(c, http.StatusInternalServerError, "Database connection not available", fmt.Errorf("db is nil"))
		return nil, false
	}
	return db, true
}

// parseIDParam reads a positive numeric path parameter.
func parseIDParam(c *gin.Context, name string) (uint, error) {
	raw := strings.TrimSpace(c.Param(name))
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}
	return uint(id), nil
}

// pagingParams reads limit and offset, falling back to defaults on bad input.
func pagingParams(c *gin.Context) (limit, offset int) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultPageLimit)))
	if err != nil || limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	offset, err = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}
	return limit, offset
}

func layout(canonicalPath string) view.Layout {
	return util.PageLayout(canonicalPath)
}

// renderPage renders page into a buffer and writes it with status. The
// rendered body is returned so callers can cache it.
func renderPage(c *gin.Context, status int, page string, data interface{}) ([]byte, bool) {
	var buf bytes.Buffer
	if err := view.Default().Render(&buf, page, data); err != nil {
		renderError(c, http.StatusInternalServerError, "Failed to render page", err)
		return nil, false
	}
	c.Data(status, htmlContentType, buf.Bytes())
	return buf.Bytes(), true
}

// renderError logs 404s and 5xx answers, then renders the HTML error page.
func renderError(c *gin.Context, status int, msg string, err error) {
	switch {
	case status == http.StatusNotFound:
		logRequestEvent(c, util.EventNotFound, msg, err)
	case status >= http.StatusInternalServerError:
		logRequestEvent(c, util.EventServerError, msg, err)
	}
	util.RenderErrorPage(c, status, msg)
}

func logRequestEvent(c *gin.Context, eventType util.AccessEventType, msg string, err error) {
	if err != nil {
		msg = fmt.Sprintf("%s: %v", msg, err)
	}
	util.LogAccessEvent(util.AccessEvent{
		EventType: eventType,
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
		Message:   fmt.Sprintf("%s %s: %s", c.Request.Method, c.Request.URL.Path, msg),
	})
}

// serveCached writes a cached page and reports whether there was one.
func serveCached(c *gin.Context, key string) bool {
	page, ok := middleware.GetPageCache(c).Get(c.Request.Context(), key)
	if !ok {
		return false
	}
	c.Header("X-Cache", "HIT")
	c.Data(http.StatusOK, page.ContentType, page.Body)
	return true
}

func storeCached(c *gin.Context, key, contentType string, body []byte) {
	middleware.GetPageCache(c).Set(c.Request.Context(), key, util.CachedPage{
		ContentType: contentType,
		Body:        body,
	})
}
